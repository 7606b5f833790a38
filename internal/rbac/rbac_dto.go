package rbac

import "lt-att-backend/internal/domain"

type PermissionsResponse struct {
	Role        string                      `json:"role"`
	Permissions []domain.PermissionResponse `json:"permissions"`
}
