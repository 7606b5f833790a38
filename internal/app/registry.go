package app

import (
	"database/sql"
	"time"

	"lt-att-backend/internal/attendance"
	"lt-att-backend/internal/auth"
	"lt-att-backend/internal/config"
	"lt-att-backend/internal/department"
	"lt-att-backend/internal/employee"
	"lt-att-backend/internal/messaging/kafka"
	"lt-att-backend/internal/payroll"
	"lt-att-backend/internal/qrcode"
	"lt-att-backend/internal/rbac"
	"lt-att-backend/internal/shared/counter"

	"github.com/bsm/redislock"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const qrLockTTL = 15 * time.Second

// newPayrollService dipakai API (report sinkron) dan consumer (export async).
func newPayrollService(cfg config.App, db *sql.DB, gormDB *gorm.DB) payroll.Service {
	return payroll.NewService(
		db,
		payroll.NewRepository(gormDB),
		kafka.NewOutboxRepository(db),
		employee.NewRepository(gormDB),
		attendance.NewRepository(gormDB),
		cfg.ExportTopic,
	)
}

func registerModules(
	router *gin.Engine,
	cfg config.App,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	qrcodeRepo := qrcode.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo, employeeRepo, auth.TokenConfig{
		Secret:     cfg.JWTSecret,
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,
	})
	qrcodeService := qrcode.NewService(
		db,
		qrcodeRepo,
		qrcode.NewRedisLocker(redislock.New(rdb), qrLockTTL),
		cfg.QRRadiusMeters,
	)
	attendanceService := attendance.NewService(db, attendanceRepo, qrcodeRepo, employeeRepo, attendance.Settings{
		RadiusMeters: cfg.QRRadiusMeters,
		Location:     cfg.Location(),
	})
	departmentService := department.NewService(db, departmentRepo, rdb)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, rdb)
	payrollService := newPayrollService(cfg, db, gormDB)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	attendanceHandler := attendance.NewHandler(attendanceService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	payrollHandler := payroll.NewHandler(payrollService)
	qrcodeHandler := qrcode.NewHandler(qrcodeService)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb)
		qrcode.RegisterRoutes(api, qrcodeHandler, rbacService)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
	}

	return nil
}
