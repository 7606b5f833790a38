package rbac

import (
	"lt-att-backend/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// Resources
const (
	ResourceAttendance = "attendance"
	ResourceQRCode     = "qrcode"
	ResourceDepartment = "department"
	ResourceEmployee   = "employee"
	ResourceReport     = "report"
	ResourceUser       = "user"
)

// policies hanya mencantumkan role terendah yang boleh; tier di atasnya mewarisi lewat grouping.
var policies = [][]string{
	{domain.RoleEmployee, ResourceAttendance, "scan"},
	{domain.RoleEmployee, ResourceAttendance, "read_own"},
	{domain.RoleEmployee, ResourceQRCode, "validate"},
	{domain.RoleEmployee, ResourceDepartment, "read"},

	{domain.RoleManager, ResourceAttendance, "read"},
	{domain.RoleManager, ResourceAttendance, "mark"},
	{domain.RoleManager, ResourceQRCode, "create"},
	{domain.RoleManager, ResourceQRCode, "read"},
	{domain.RoleManager, ResourceQRCode, "delete"},

	{domain.RoleAdmin, ResourceDepartment, "create"},
	{domain.RoleAdmin, ResourceDepartment, "update"},
	{domain.RoleAdmin, ResourceDepartment, "delete"},
	{domain.RoleAdmin, ResourceEmployee, "read"},
	{domain.RoleAdmin, ResourceEmployee, "create"},
	{domain.RoleAdmin, ResourceEmployee, "update"},
	{domain.RoleAdmin, ResourceEmployee, "delete"},
	{domain.RoleAdmin, ResourceReport, "read"},
	{domain.RoleAdmin, ResourceReport, "export"},
	{domain.RoleAdmin, ResourceUser, "register"},
}

var groupings = [][]string{
	{domain.RoleManager, domain.RoleEmployee},
	{domain.RoleAdmin, domain.RoleManager},
}

// NewEnforcer builds an in-memory enforcer loaded with the static role policy.
func NewEnforcer() (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicies(groupings); err != nil {
		return nil, err
	}

	return e, nil
}
