package qrcode

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"lt-att-backend/internal/domain"
	qrcodeerrors "lt-att-backend/internal/qrcode/errors"
	"lt-att-backend/internal/shared/apperror"
	"lt-att-backend/internal/shared/geo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	goqrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const imageSize = 256

//go:generate mockgen -source=qrcode_service.go -destination=mock/qrcode_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, actor domain.Actor, req GenerateQRCodeRequest) (QRCodeResponse, error)
	GetAll(ctx context.Context) ([]QRCodeResponse, error)
	GetActive(ctx context.Context) ([]QRCodeResponse, error)
	Deactivate(ctx context.Context, id string) error
	Validate(ctx context.Context, req ValidateQRCodeRequest) (ValidateQRCodeResponse, error)
	Image(ctx context.Context, code string) ([]byte, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	locker Locker
	radius float64
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, locker Locker, radiusMeters float64, logger ...*zap.Logger) Service {
	l := zap.L().Named("qrcode.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("qrcode.service")
	}
	return &service{db: db, repo: repo, locker: locker, radius: radiusMeters, logger: l}
}

func newCode() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Generate memutar window aktif: window lama untuk (branch, type) dinonaktifkan
// dan window baru dibuat dalam satu transaksi, di bawah redis lock.
func (s *service) Generate(ctx context.Context, actor domain.Actor, req GenerateQRCodeRequest) (QRCodeResponse, error) {
	branch := strings.TrimSpace(req.Branch)
	if branch == "" {
		return QRCodeResponse{}, apperror.RequiredField("Branch")
	}
	if req.Type != TypeCheckIn && req.Type != TypeCheckOut {
		return QRCodeResponse{}, apperror.InvalidField("Type")
	}
	if req.ValidityHours < 1 {
		return QRCodeResponse{}, apperror.InvalidField("Validity Hours")
	}
	if req.Latitude == nil || req.Longitude == nil {
		return QRCodeResponse{}, qrcodeerrors.ErrInvalidLocation
	}
	ref := geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if !ref.Valid() {
		return QRCodeResponse{}, qrcodeerrors.ErrInvalidLocation
	}

	var departmentID *uuid.UUID
	if req.DepartmentID != "" {
		id, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return QRCodeResponse{}, apperror.InvalidField("Department ID")
		}
		departmentID = &id
	}

	code, err := newCode()
	if err != nil {
		return QRCodeResponse{}, err
	}

	release, err := s.locker.Lock(ctx, lockKey(branch, req.Type))
	if err != nil {
		s.logger.Warn("generate qr lock failed", zap.String("branch", branch), zap.Error(err))
		return QRCodeResponse{}, err
	}
	defer release()

	now := time.Now().UTC()
	q := &QRCode{
		ID:           uuid.New(),
		Code:         code,
		Type:         req.Type,
		Branch:       branch,
		DepartmentID: departmentID,
		ValidFrom:    now,
		ValidUntil:   now.Add(time.Duration(req.ValidityHours) * time.Hour),
		IsActive:     true,
		Latitude:     ref.Latitude,
		Longitude:    ref.Longitude,
	}
	if id, err := uuid.Parse(actor.UserID); err == nil {
		q.CreatedBy = &id
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return QRCodeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	superseded, err := qtx.DeactivateByBranchAndType(ctx, branch, req.Type)
	if err != nil {
		s.logger.Error("deactivate previous qr failed", zap.Error(err))
		return QRCodeResponse{}, err
	}

	if err := qtx.Create(ctx, q); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return QRCodeResponse{}, qrcodeerrors.ErrActiveWindowConflict
		}
		s.logger.Error("create qr failed", zap.Error(err))
		return QRCodeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return QRCodeResponse{}, err
	}

	s.logger.Info("qr code generated",
		zap.String("qr_id", q.ID.String()),
		zap.String("branch", branch),
		zap.String("type", q.Type),
		zap.Int64("superseded", superseded),
		zap.String("created_by", actor.UserID),
	)
	return mapToResponse(*q), nil
}

func (s *service) GetAll(ctx context.Context) ([]QRCodeResponse, error) {
	codes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(codes), nil
}

func (s *service) GetActive(ctx context.Context) ([]QRCodeResponse, error) {
	codes, err := s.repo.FindActive(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return mapToListResponse(codes), nil
}

func (s *service) Deactivate(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return qrcodeerrors.ErrInvalidQRCodeID
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return qrcodeerrors.ErrQRCodeNotFound
		}
		return err
	}

	s.logger.Info("qr code deactivated", zap.String("qr_id", id))
	return nil
}

// Validate menjalankan pengecekan yang sama dengan scan tanpa menulis attendance.
func (s *service) Validate(ctx context.Context, req ValidateQRCodeRequest) (ValidateQRCodeResponse, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return ValidateQRCodeResponse{}, qrcodeerrors.ErrInvalidLocation
	}

	window, err := s.repo.FindActiveByCode(ctx, strings.TrimSpace(req.Code))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ValidateQRCodeResponse{}, err
	}

	at := geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := Admit(window, time.Now().UTC(), at, s.radius); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return ValidateQRCodeResponse{Valid: false, Reason: appErr.Code}, nil
		}
		return ValidateQRCodeResponse{}, err
	}

	resp := mapToResponse(*window)
	return ValidateQRCodeResponse{Valid: true, QRCode: &resp}, nil
}

func (s *service) Image(ctx context.Context, code string) ([]byte, error) {
	q, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, qrcodeerrors.ErrQRCodeNotFound
		}
		return nil, err
	}

	return goqrcode.Encode(q.Code, goqrcode.Medium, imageSize)
}

func mapToResponse(q QRCode) QRCodeResponse {
	resp := QRCodeResponse{
		ID:         q.ID.String(),
		Code:       q.Code,
		Type:       q.Type,
		Branch:     q.Branch,
		ValidFrom:  q.ValidFrom.Format(time.RFC3339),
		ValidUntil: q.ValidUntil.Format(time.RFC3339),
		IsActive:   q.IsActive,
		Latitude:   q.Latitude,
		Longitude:  q.Longitude,
	}
	if q.DepartmentID != nil {
		resp.DepartmentID = q.DepartmentID.String()
	}
	if q.CreatedBy != nil {
		resp.CreatedBy = q.CreatedBy.String()
	}
	if !q.CreatedAt.IsZero() {
		resp.CreatedAt = q.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(codes []QRCode) []QRCodeResponse {
	res := make([]QRCodeResponse, len(codes))
	for i, q := range codes {
		res[i] = mapToResponse(q)
	}
	return res
}
