package qrcode

import (
	"lt-att-backend/internal/middleware"
	"lt-att-backend/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	codes := r.Group("/qr-codes")
	codes.Use(middleware.AuthMiddleware())
	{
		codes.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, rbac.ResourceQRCode, "create"),
			h.Generate,
		)
		codes.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceQRCode, "read"), h.GetAll)
		codes.GET("/active", middleware.RBACAuthorize(rbacService, rbac.ResourceQRCode, "read"), h.GetActive)
		codes.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceQRCode, "delete"), h.Deactivate)
		codes.POST("/validate",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourceQRCode, "validate"),
			h.Validate,
		)
		codes.GET("/:code/image", middleware.RBACAuthorize(rbacService, rbac.ResourceQRCode, "read"), h.Image)
	}
}
