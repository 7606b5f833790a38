package payroll

import (
	"lt-att-backend/internal/middleware"
	"lt-att-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	reports := r.Group("/reports/salary")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceReport, "read"), h.GetSalaryReport)
		reports.GET("/export", middleware.RBACAuthorize(rbacService, rbac.ResourceReport, "export"), h.ExportSalaryReport)
		reports.GET("/employees/:id/payslip", middleware.RBACAuthorize(rbacService, rbac.ResourceReport, "read"), h.GetPayslip)

		reports.POST("/exports",
			middleware.RBACAuthorize(rbacService, rbac.ResourceReport, "export"),
			middleware.Idempotency(rdb),
			h.RequestExport,
		)
		reports.GET("/exports/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceReport, "export"), h.GetExport)
		reports.GET("/exports/:id/download", middleware.RBACAuthorize(rbacService, rbac.ResourceReport, "export"), h.DownloadExport)
	}
}
