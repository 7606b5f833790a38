package qrcode_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"lt-att-backend/internal/domain"
	"lt-att-backend/internal/qrcode"
	qrcodeerrors "lt-att-backend/internal/qrcode/errors"
	qrcodeMock "lt-att-backend/internal/qrcode/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeLocker struct {
	err      error
	keys     []string
	released int
}

func (f *fakeLocker) Lock(ctx context.Context, key string) (func(), error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return nil, f.err
	}
	return func() { f.released++ }, nil
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *qrcodeMock.MockRepository
	locker  *fakeLocker
	service qrcode.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	repo := qrcodeMock.NewMockRepository(ctrl)
	locker := &fakeLocker{}

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		locker:  locker,
		service: qrcode.NewService(db, repo, locker, 100),
	}
}

func ptr(v float64) *float64 { return &v }

func generateRequest() qrcode.GenerateQRCodeRequest {
	return qrcode.GenerateQRCodeRequest{
		Type:          qrcode.TypeCheckIn,
		Branch:        "Jakarta HQ",
		ValidityHours: 8,
		Latitude:      ptr(-6.2),
		Longitude:     ptr(106.8),
	}
}

func TestQRCodeService_Generate(t *testing.T) {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.New().String(), Role: domain.RoleManager}

	t.Run("supersedes previous window in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeactivateByBranchAndType(ctx, "Jakarta HQ", qrcode.TypeCheckIn).Return(int64(1), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, q *qrcode.QRCode) error {
			assert.Len(t, q.Code, 32)
			assert.True(t, q.IsActive)
			assert.Equal(t, 8*time.Hour, q.ValidUntil.Sub(q.ValidFrom))
			assert.Equal(t, actor.UserID, q.CreatedBy.String())
			return nil
		})

		resp, err := deps.service.Generate(ctx, actor, generateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "Jakarta HQ", resp.Branch)
		assert.Equal(t, []string{"qr:Jakarta HQ:checkIn"}, deps.locker.keys)
		assert.Equal(t, 1, deps.locker.released)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("lock held elsewhere", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		deps.locker.err = qrcodeerrors.ErrGenerationInProgress

		_, err := deps.service.Generate(ctx, actor, generateRequest())

		assert.ErrorIs(t, err, qrcodeerrors.ErrGenerationInProgress)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeactivateByBranchAndType(ctx, "Jakarta HQ", qrcode.TypeCheckIn).Return(int64(0), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := deps.service.Generate(ctx, actor, generateRequest())

		assert.ErrorIs(t, err, qrcodeerrors.ErrActiveWindowConflict)
		assert.Equal(t, 1, deps.locker.released)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects bad input before locking", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := generateRequest()
		req.Latitude = ptr(120)
		_, err := deps.service.Generate(ctx, actor, req)
		assert.ErrorIs(t, err, qrcodeerrors.ErrInvalidLocation)

		req = generateRequest()
		req.ValidityHours = 0
		_, err = deps.service.Generate(ctx, actor, req)
		assert.Error(t, err)

		assert.Empty(t, deps.locker.keys)
	})
}

func TestQRCodeService_Deactivate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Deactivate(ctx, id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Deactivate(ctx, id), qrcodeerrors.ErrQRCodeNotFound)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Deactivate(ctx, id).Return(nil)

		assert.NoError(t, deps.service.Deactivate(ctx, id))
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		assert.ErrorIs(t, deps.service.Deactivate(ctx, "42"), qrcodeerrors.ErrInvalidQRCodeID)
	})
}

func TestQRCodeService_Validate(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("valid", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByCode(ctx, "abc").Return(window(now), nil)

		resp, err := deps.service.Validate(ctx, qrcode.ValidateQRCodeRequest{Code: "abc", Latitude: ptr(-6.2), Longitude: ptr(106.8)})

		assert.NoError(t, err)
		assert.True(t, resp.Valid)
		assert.Equal(t, "abc", resp.QRCode.Code)
	})

	t.Run("unknown code is reported, not raised", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByCode(ctx, "nope").Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.Validate(ctx, qrcode.ValidateQRCodeRequest{Code: "nope", Latitude: ptr(-6.2), Longitude: ptr(106.8)})

		assert.NoError(t, err)
		assert.False(t, resp.Valid)
		assert.Equal(t, "INVALID_CODE", resp.Reason)
	})

	t.Run("too far", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindActiveByCode(ctx, "abc").Return(window(now), nil)

		resp, err := deps.service.Validate(ctx, qrcode.ValidateQRCodeRequest{Code: "abc", Latitude: ptr(-6.3), Longitude: ptr(106.8)})

		assert.NoError(t, err)
		assert.Equal(t, "OUT_OF_RANGE", resp.Reason)
	})

	t.Run("store failure is raised", func(t *testing.T) {
		deps := setupServiceTest(t)
		dbErr := errors.New("db down")
		deps.repo.EXPECT().FindActiveByCode(ctx, "abc").Return(nil, dbErr)

		_, err := deps.service.Validate(ctx, qrcode.ValidateQRCodeRequest{Code: "abc", Latitude: ptr(-6.2), Longitude: ptr(106.8)})
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestQRCodeService_Image(t *testing.T) {
	ctx := context.Background()

	t.Run("renders png", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByCode(ctx, "abc").Return(&qrcode.QRCode{Code: "abc"}, nil)

		png, err := deps.service.Image(ctx, "abc")

		assert.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	})

	t.Run("unknown code", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByCode(ctx, "zzz").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Image(ctx, "zzz")
		assert.ErrorIs(t, err, qrcodeerrors.ErrQRCodeNotFound)
	})
}
