package qrcode

import (
	"time"

	"lt-att-backend/internal/shared/geo"

	"github.com/google/uuid"
)

const (
	TypeCheckIn  = "checkIn"
	TypeCheckOut = "checkOut"
)

// QRCode is one activation window. At most one row per (branch, type) is active,
// enforced by the partial unique index uq_qr_codes_active_branch_type.
type QRCode struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code         string     `gorm:"size:64;not null;uniqueIndex:uq_qr_codes_code"`
	Type         string     `gorm:"size:16;not null"`
	Branch       string     `gorm:"size:255;not null"`
	DepartmentID *uuid.UUID `gorm:"type:uuid"`
	ValidFrom    time.Time  `gorm:"not null"`
	ValidUntil   time.Time  `gorm:"not null"`
	IsActive     bool       `gorm:"not null;default:true"`
	Latitude     float64    `gorm:"not null"`
	Longitude    float64    `gorm:"not null"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

func (QRCode) TableName() string {
	return "qr_codes"
}

func (q *QRCode) Reference() geo.Point {
	return geo.Point{Latitude: q.Latitude, Longitude: q.Longitude}
}

// ActiveAt reports whether now lies in [ValidFrom, ValidUntil], both inclusive.
func (q *QRCode) ActiveAt(now time.Time) bool {
	return q.IsActive && !now.Before(q.ValidFrom) && !now.After(q.ValidUntil)
}
