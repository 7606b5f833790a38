package department

import (
	"lt-att-backend/internal/middleware"
	"lt-att-backend/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	departments := r.Group("/departments")

	departments.Use(middleware.AuthMiddleware())

	{
		departments.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, "read"), h.GetAll)
		departments.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, "create"), h.Create)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, "read"), h.GetById)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, "update"), h.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, "delete"), h.Delete)
	}
}
