package attendance

import (
	"lt-att-backend/internal/middleware"
	"lt-att-backend/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/scan",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, "scan"),
			middleware.RequireEmployee(),
			middleware.Idempotency(rdb),
			h.Scan,
		)
		attendances.GET("/me",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, "read_own"),
			middleware.RequireEmployee(),
			h.GetMine,
		)
		attendances.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, "read"), h.GetReport)
		attendances.GET("/summary", middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, "read"), h.GetSummary)
		attendances.PUT("/status", middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, "mark"), h.MarkStatus)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(
		middleware.AuthMiddleware(),
		middleware.RBACAuthorize(rbacService, rbac.ResourceReport, "read"),
	)
	{
		dashboard.GET("/stats", h.GetDashboardStats)
		dashboard.GET("/recent-attendance", h.GetRecentAttendance)
	}
}
