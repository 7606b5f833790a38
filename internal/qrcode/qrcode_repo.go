package qrcode

import (
	"context"
	"database/sql"
	"time"

	"lt-att-backend/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=qrcode_repo.go -destination=mock/qrcode_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, q *QRCode) error
	DeactivateByBranchAndType(ctx context.Context, branch, qrType string) (int64, error)
	Deactivate(ctx context.Context, id string) error
	FindActiveByCode(ctx context.Context, code string) (*QRCode, error)
	FindByCode(ctx context.Context, code string) (*QRCode, error)
	FindAll(ctx context.Context) ([]QRCode, error)
	FindActive(ctx context.Context, now time.Time) ([]QRCode, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, q *QRCode) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *repository) DeactivateByBranchAndType(ctx context.Context, branch, qrType string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&QRCode{}).
		Scopes(scope.Active).
		Where("branch = ? AND type = ?", branch, qrType).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&QRCode{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindActiveByCode(ctx context.Context, code string) (*QRCode, error) {
	var q QRCode
	err := r.db.WithContext(ctx).
		Scopes(scope.Active).
		First(&q, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *repository) FindByCode(ctx context.Context, code string) (*QRCode, error) {
	var q QRCode
	if err := r.db.WithContext(ctx).First(&q, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *repository) FindAll(ctx context.Context) ([]QRCode, error) {
	var codes []QRCode
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&codes).Error
	return codes, err
}

func (r *repository) FindActive(ctx context.Context, now time.Time) ([]QRCode, error) {
	var codes []QRCode
	err := r.db.WithContext(ctx).
		Scopes(scope.Active).
		Where("valid_from <= ? AND valid_until >= ?", now, now).
		Order("created_at DESC").
		Find(&codes).Error
	return codes, err
}
