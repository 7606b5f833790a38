package rbac

import (
	"sort"

	"lt-att-backend/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Authorize(actor domain.Actor, action, resource string) (bool, error)
	Permissions(role string) ([]domain.PermissionResponse, error)
}

type service struct {
	enforcer *casbin.SyncedEnforcer
	logger   *zap.Logger
}

func NewService(enforcer *casbin.SyncedEnforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

// Authorize is a pure decision over the static policy; it performs no I/O.
func (s *service) Authorize(actor domain.Actor, action, resource string) (bool, error) {
	if !domain.ValidRole(actor.Role) {
		s.logger.Debug("rbac deny unknown role",
			zap.String("user_id", actor.UserID),
			zap.String("role", actor.Role),
		)
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(actor.Role, resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", actor.Role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", actor.UserID),
		zap.String("role", actor.Role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Permissions(role string) ([]domain.PermissionResponse, error) {
	if !domain.ValidRole(role) {
		return []domain.PermissionResponse{}, nil
	}

	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	res := make([]domain.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		res = append(res, domain.PermissionResponse{Resource: p[1], Action: p[2]})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Resource != res[j].Resource {
			return res[i].Resource < res[j].Resource
		}
		return res[i].Action < res[j].Action
	})
	return res, nil
}
