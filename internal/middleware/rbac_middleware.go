package middleware

import (
	"net/http"

	"lt-att-backend/internal/domain"
	"lt-att-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Authorize bisa masuk ke sini.
type RBACService interface {
	Authorize(actor domain.Actor, action, resource string) (bool, error)
}

// RBACAuthorize is the single authorization gate every protected route goes through.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		actor := ActorFromContext(c)

		allowed, err := service.Authorize(actor, action, resource)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to evaluate permission", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFromContext membaca identitas yang sudah dipasang AuthMiddleware.
func ActorFromContext(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID:     c.GetString("user_id"),
		EmployeeID: c.GetString("employee_id"),
		Role:       c.GetString("role"),
	}
}
