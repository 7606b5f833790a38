package rbac

import (
	"lt-att-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	auth := r.Group("/auth")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/permissions", h.Permissions)
		auth.POST("/authorize", h.Authorize)
	}
}
