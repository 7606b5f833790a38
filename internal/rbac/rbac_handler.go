package rbac

import (
	"net/http"
	"strings"

	"lt-att-backend/internal/domain"
	"lt-att-backend/internal/middleware"
	"lt-att-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Permissions lists every resource/action the caller's role grants, inherited tiers included.
func (h *Handler) Permissions(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	perms, err := h.service.Permissions(actor.Role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load permissions", nil)
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{
		Role:        actor.Role,
		Permissions: perms,
	}, nil)
}

// Authorize lets a client ask whether the caller may perform one action.
func (h *Handler) Authorize(c *gin.Context) {
	var req domain.AuthorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)

	allowed, err := h.service.Authorize(middleware.ActorFromContext(c), req.Action, req.Resource)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to evaluate permission", nil)
		return
	}

	response.Success(c, http.StatusOK, domain.AuthorizeResponse{Allowed: allowed}, nil)
}
