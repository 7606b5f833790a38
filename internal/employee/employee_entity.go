package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Employee struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeNumber   string          `gorm:"uniqueIndex:uq_employee_number"`
	FullName         string          `gorm:"not null"`
	Email            string          `gorm:"uniqueIndex:uq_employee_email"`
	Phone            string          `gorm:"type:varchar(32)"`
	DepartmentID     *uuid.UUID      `gorm:"type:uuid;index"`
	Department       *Department     `gorm:"foreignKey:DepartmentID"`
	Position         string
	Role             string          `gorm:"default:employee"`
	Salary           decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	WorkStart        string          `gorm:"type:varchar(5);not null"`
	WorkEnd          string          `gorm:"type:varchar(5);not null"`
	JoiningDate      time.Time       `gorm:"type:date"`
	EmploymentStatus string          `gorm:"default:active"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// Department adalah proyeksi ringan dari tabel departments untuk preload.
type Department struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (Department) TableName() string {
	return "departments"
}
