package payroll

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateExport(ctx context.Context, job *ExportJob) error
	FindExportByID(ctx context.Context, id string) (*ExportJob, error)
	MarkExportReady(ctx context.Context, id, fileName string, content []byte) error
	MarkExportFailed(ctx context.Context, id, reason string) error
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

func (r *repository) CreateExport(ctx context.Context, job *ExportJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *repository) FindExportByID(ctx context.Context, id string) (*ExportJob, error) {
	var job ExportJob
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// MarkExportReady hanya mengubah job yang masih PENDING, redelivery dari kafka jadi no-op.
func (r *repository) MarkExportReady(ctx context.Context, id, fileName string, content []byte) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&ExportJob{}).
		Where("id = ? AND status = ?", id, ExportStatusPending).
		Updates(map[string]any{
			"status":       ExportStatusReady,
			"file_name":    fileName,
			"content":      content,
			"completed_at": now,
			"updated_at":   now,
		}).Error
}

func (r *repository) MarkExportFailed(ctx context.Context, id, reason string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&ExportJob{}).
		Where("id = ? AND status = ?", id, ExportStatusPending).
		Updates(map[string]any{
			"status":        ExportStatusFailed,
			"error_message": reason,
			"completed_at":  now,
			"updated_at":    now,
		}).Error
}
