package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleSuperAdmin, PermissionUserManage))
	assert.True(t, HasPermission(RoleHRAdmin, PermissionEmployeeManage))
	assert.False(t, HasPermission(RoleHRAdmin, PermissionUserManage))

	// Payroll admin runs payroll but does not manage employees
	assert.True(t, HasPermission(RolePayrollAdmin, PermissionPayrollProcess))
	assert.True(t, HasPermission(RolePayrollAdmin, PermissionEmployeeViewAll))
	assert.False(t, HasPermission(RolePayrollAdmin, PermissionEmployeeManage))
	assert.False(t, HasPermission(RolePayrollAdmin, PermissionSalaryManage))

	assert.True(t, HasPermission(RoleManager, PermissionAttendanceViewAll))
	assert.False(t, HasPermission(RoleManager, PermissionPayrollManage))

	assert.False(t, HasPermission(RoleEmployee, PermissionEmployeeViewAll))
	assert.False(t, HasPermission(Role("unknown"), PermissionEmployeeViewAll))
}

func TestCanAccessEmployee(t *testing.T) {
	self := "emp-1"
	other := "emp-2"
	manager := "mgr-1"

	// Admin roles see everyone
	for _, role := range []Role{RoleSuperAdmin, RoleHRAdmin, RolePayrollAdmin} {
		assert.True(t, CanAccessEmployee(role, nil, other, nil), "role %s", role)
	}

	// Employees only see themselves
	assert.True(t, CanAccessEmployee(RoleEmployee, &self, self, nil))
	assert.False(t, CanAccessEmployee(RoleEmployee, &self, other, nil))
	assert.False(t, CanAccessEmployee(RoleEmployee, nil, self, nil))

	// Managers see themselves and their direct reports
	assert.True(t, CanAccessEmployee(RoleManager, &manager, manager, nil))
	assert.True(t, CanAccessEmployee(RoleManager, &manager, other, &manager))
	otherManager := "mgr-2"
	assert.False(t, CanAccessEmployee(RoleManager, &manager, other, &otherManager))
	assert.False(t, CanAccessEmployee(RoleManager, &manager, other, nil))
	assert.False(t, CanAccessEmployee(RoleManager, nil, other, &manager))

	assert.False(t, CanAccessEmployee(Role("unknown"), &self, self, nil))
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleSuperAdmin, RoleHRAdmin, RolePayrollAdmin, RoleManager, RoleEmployee} {
		assert.True(t, role.Valid(), "role %s", role)
	}
	assert.False(t, Role("").Valid())
	assert.False(t, Role("admin").Valid())
}
