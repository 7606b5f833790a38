package rbac

import (
	"testing"

	"lt-att-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	enforcer, err := NewEnforcer()
	assert.NoError(t, err)
	return NewService(enforcer)
}

func TestRBACService_Authorize(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		{domain.RoleEmployee, ResourceAttendance, "scan", true},
		{domain.RoleEmployee, ResourceAttendance, "read_own", true},
		{domain.RoleEmployee, ResourceAttendance, "read", false},
		{domain.RoleEmployee, ResourceQRCode, "create", false},
		{domain.RoleEmployee, ResourceQRCode, "validate", true},
		{domain.RoleEmployee, ResourceReport, "read", false},
		{domain.RoleManager, ResourceAttendance, "scan", true},
		{domain.RoleManager, ResourceAttendance, "mark", true},
		{domain.RoleManager, ResourceQRCode, "create", true},
		{domain.RoleManager, ResourceEmployee, "read", false},
		{domain.RoleManager, ResourceDepartment, "create", false},
		{domain.RoleAdmin, ResourceReport, "export", true},
		{domain.RoleAdmin, ResourceQRCode, "delete", true},
		{domain.RoleAdmin, ResourceAttendance, "scan", true},
		{domain.RoleAdmin, ResourceUser, "register", true},
		{"superuser", ResourceReport, "read", false},
		{"", ResourceDepartment, "read", false},
	}

	for _, tt := range tests {
		t.Run(tt.role+":"+tt.resource+":"+tt.action, func(t *testing.T) {
			allowed, err := svc.Authorize(domain.Actor{UserID: "u-1", Role: tt.role}, tt.action, tt.resource)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestRBACService_Permissions_InheritsLowerTiers(t *testing.T) {
	svc := newTestService(t)

	employeePerms, err := svc.Permissions(domain.RoleEmployee)
	assert.NoError(t, err)
	assert.Len(t, employeePerms, 4)

	managerPerms, err := svc.Permissions(domain.RoleManager)
	assert.NoError(t, err)
	assert.Len(t, managerPerms, 9)
	assert.Contains(t, managerPerms, domain.PermissionResponse{Resource: ResourceAttendance, Action: "scan"})

	adminPerms, err := svc.Permissions(domain.RoleAdmin)
	assert.NoError(t, err)
	assert.Len(t, adminPerms, len(policies))

	unknown, err := svc.Permissions("guest")
	assert.NoError(t, err)
	assert.Empty(t, unknown)
}
