package attendance

import (
	"context"
	"database/sql"
	"time"

	"lt-att-backend/internal/shared/dateutil"
	"lt-att-backend/internal/shared/geo"
	"lt-att-backend/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Mark adalah satu sisi scan (check-in atau check-out).
type Mark struct {
	Time     time.Time
	Location geo.Point
	Code     string
}

// Filter membatasi pembacaan event. Nilai kosong berarti tanpa filter.
type Filter struct {
	Start        time.Time
	End          time.Time
	DepartmentID string
	EmployeeID   string
	Status       string
}

// DayCounts adalah hitungan event pada satu tanggal kalender.
type DayCounts struct {
	Total     int64 `gorm:"column:total"`
	CheckedIn int64 `gorm:"column:checked_in"`
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateIfAbsent(ctx context.Context, a *Attendance) (bool, error)
	MarkCheckIn(ctx context.Context, employeeID string, date time.Time, in Mark, expectedCheckIn, status string) (int64, error)
	MarkCheckOut(ctx context.Context, employeeID string, date time.Time, out Mark) (int64, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindByEmployee(ctx context.Context, employeeID string, limit int) ([]Attendance, error)
	FindInRange(ctx context.Context, filter Filter) ([]Attendance, error)
	Upsert(ctx context.Context, a *Attendance) error
	CountDay(ctx context.Context, date time.Time) (DayCounts, error)
	FindRecent(ctx context.Context, limit int) ([]Attendance, error)
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

var employeeDateConflict = []clause.Column{{Name: "employee_id"}, {Name: "attendance_date"}}

// CreateIfAbsent inserts a and reports false when the (employee, date) row already exists.
func (r *repository) CreateIfAbsent(ctx context.Context, a *Attendance) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit("Employee").
		Clauses(clause.OnConflict{Columns: employeeDateConflict, DoNothing: true}).
		Create(a)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// MarkCheckIn hanya menang jika check-in hari itu masih kosong.
func (r *repository) MarkCheckIn(ctx context.Context, employeeID string, date time.Time, in Mark, expectedCheckIn, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("employee_id = ? AND attendance_date = ?", employeeID, date.Format(dateutil.DateLayout)).
		Where("check_in_time IS NULL").
		Updates(map[string]any{
			"check_in_time":      in.Time,
			"check_in_latitude":  in.Location.Latitude,
			"check_in_longitude": in.Location.Longitude,
			"check_in_code":      in.Code,
			"expected_check_in":  expectedCheckIn,
			"status":             status,
		})
	return res.RowsAffected, res.Error
}

// MarkCheckOut hanya menang jika sudah check-in dan belum check-out.
func (r *repository) MarkCheckOut(ctx context.Context, employeeID string, date time.Time, out Mark) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("employee_id = ? AND attendance_date = ?", employeeID, date.Format(dateutil.DateLayout)).
		Where("check_in_time IS NOT NULL AND check_out_time IS NULL").
		Updates(map[string]any{
			"check_out_time":      out.Time,
			"check_out_latitude":  out.Location.Latitude,
			"check_out_longitude": out.Location.Longitude,
			"check_out_code":      out.Code,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ? AND attendance_date = ?", employeeID, date.Format(dateutil.DateLayout)).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, limit int) ([]Attendance, error) {
	var rows []Attendance
	q := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("attendance_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) FindInRange(ctx context.Context, filter Filter) ([]Attendance, error) {
	var rows []Attendance
	q := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(scope.Department(filter.DepartmentID))
	if !filter.Start.IsZero() && !filter.End.IsZero() {
		q = q.Scopes(scope.DateRange("attendance_date", filter.Start, filter.End))
	} else if !filter.Start.IsZero() {
		q = q.Where("attendance_date >= ?", filter.Start.Format(dateutil.DateLayout))
	} else if !filter.End.IsZero() {
		q = q.Where("attendance_date <= ?", filter.End.Format(dateutil.DateLayout))
	}
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("attendance_date DESC, check_in_time DESC").Find(&rows).Error
	return rows, err
}

// Upsert menimpa status hari itu (penandaan manual oleh manager/admin).
func (r *repository) Upsert(ctx context.Context, a *Attendance) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return r.db.WithContext(ctx).
		Omit("Employee").
		Clauses(clause.OnConflict{
			Columns:   employeeDateConflict,
			DoUpdates: clause.AssignmentColumns([]string{"status", "notes", "verified_by", "updated_at"}),
		}).
		Create(a).Error
}

// CountDay menghitung event hari itu dan jumlah employee berbeda yang sudah check-in.
func (r *repository) CountDay(ctx context.Context, date time.Time) (DayCounts, error) {
	var c DayCounts
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Select("COUNT(*) AS total, COUNT(DISTINCT employee_id) FILTER (WHERE check_in_time IS NOT NULL) AS checked_in").
		Where("attendance_date = ?", date.Format(dateutil.DateLayout)).
		Scan(&c).Error
	return c, err
}

// FindRecent returns the latest touched events, newest first.
func (r *repository) FindRecent(ctx context.Context, limit int) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("updated_at DESC, created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
