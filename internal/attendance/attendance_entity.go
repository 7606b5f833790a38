package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
	StatusHalfDay = "half_day"
	StatusOnLeave = "on_leave"
)

// Attendance adalah satu event per (employee, tanggal kalender).
type Attendance struct {
	ID                uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID        uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	DepartmentID      *uuid.UUID   `gorm:"column:department_id;type:uuid;index"`
	AttendanceDate    time.Time    `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	CheckInTime       *time.Time   `gorm:"column:check_in_time;type:timestamptz"`
	CheckInLatitude   *float64     `gorm:"column:check_in_latitude"`
	CheckInLongitude  *float64     `gorm:"column:check_in_longitude"`
	CheckInCode       *string      `gorm:"column:check_in_code;type:varchar(64)"`
	CheckOutTime      *time.Time   `gorm:"column:check_out_time;type:timestamptz"`
	CheckOutLatitude  *float64     `gorm:"column:check_out_latitude"`
	CheckOutLongitude *float64     `gorm:"column:check_out_longitude"`
	CheckOutCode      *string      `gorm:"column:check_out_code;type:varchar(64)"`
	ExpectedCheckIn   string       `gorm:"column:expected_check_in;type:varchar(40)"`
	Status            string       `gorm:"column:status;type:varchar(20);not null;default:present"`
	Notes             *string      `gorm:"column:notes;type:text"`
	VerifiedBy        *uuid.UUID   `gorm:"column:verified_by;type:uuid"`
	CreatedAt         time.Time    `gorm:"column:created_at"`
	UpdatedAt         time.Time    `gorm:"column:updated_at"`
	Employee          *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FullName       string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusLate, StatusAbsent, StatusHalfDay, StatusOnLeave:
		return true
	default:
		return false
	}
}
