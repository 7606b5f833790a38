package scope

import (
	"time"

	"gorm.io/gorm"
)

// Department membatasi query ke satu department. Kosong berarti tanpa filter.
func Department(departmentID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if departmentID == "" {
			return db
		}
		return db.Where("department_id = ?", departmentID)
	}
}

// DateRange filters column to [start, end], both inclusive calendar dates.
func DateRange(column string, start, end time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}

// Active mengecualikan row yang sudah di-soft delete lewat kolom is_active.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
