package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExportStatusPending = "PENDING"
	ExportStatusReady   = "READY"
	ExportStatusFailed  = "FAILED"
)

// ExportJob adalah permintaan export salary report yang dirender oleh consumer.
type ExportJob struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestedBy  uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartDate    time.Time  `gorm:"type:date;not null"`
	EndDate      time.Time  `gorm:"type:date;not null"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	Status       string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	FileName     *string    `gorm:"type:varchar(200)"`
	Content      []byte     `gorm:"type:bytea"`
	ErrorMessage *string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CompletedAt  *time.Time
}

func (ExportJob) TableName() string {
	return "salary_report_exports"
}
