package employee

import (
	"context"
	"database/sql"

	"lt-att-backend/internal/domain"
	"lt-att-backend/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, departmentID string) ([]Employee, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindRoster(ctx context.Context, departmentID string) ([]Employee, error)
	CountRoster(ctx context.Context) (int64, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx menjalankan query berikutnya di atas *sql.Tx milik service.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department").Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, departmentID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Scopes(scope.Department(departmentID)).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Select("id", "full_name").
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

// FindRoster returns the payroll roster: only role employee, optionally one department.
func (r *repository) FindRoster(ctx context.Context, departmentID string) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Scopes(scope.Department(departmentID)).
		Where("role = ?", domain.RoleEmployee).
		Order("full_name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) CountRoster(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("role = ?", domain.RoleEmployee).
		Count(&total).Error
	return total, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department").Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
