package user

type Permission string

const (
	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"

	// Salary Structures
	PermissionSalaryManage Permission = "salary.manage"

	// Attendance Management
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceManage  Permission = "attendance.manage"

	// Payroll Runs
	PermissionPayrollManage  Permission = "payroll.manage"
	PermissionPayrollProcess Permission = "payroll.process"
	PermissionPayrollApprove Permission = "payroll.approve"

	// Master Data
	PermissionMasterManage Permission = "master.manage"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionSalaryManage,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionPayrollManage,
		PermissionPayrollProcess,
		PermissionPayrollApprove,
		PermissionMasterManage,
		PermissionUserManage,
	},
	RoleHRAdmin: {
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionSalaryManage,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionPayrollManage,
		PermissionPayrollProcess,
		PermissionPayrollApprove,
		PermissionMasterManage,
	},
	RolePayrollAdmin: {
		PermissionEmployeeViewAll,
		PermissionAttendanceViewAll,
		PermissionAttendanceManage,
		PermissionPayrollManage,
		PermissionPayrollProcess,
		PermissionPayrollApprove,
	},
	RoleManager: {
		PermissionAttendanceViewAll,
	},
	RoleEmployee: {},
}

// HasPermission reports whether role carries the given permission.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// CanAccessEmployee decides whether a requester may read data belonging to the
// target employee. Admin roles see everyone, employees only themselves, and
// managers themselves plus their direct reports. The decision is a pure
// function of the role and the ownership relationship so it can be enforced
// identically from any transport.
func CanAccessEmployee(role Role, requesterEmployeeID *string, targetEmployeeID string, targetManagerID *string) bool {
	switch role {
	case RoleSuperAdmin, RoleHRAdmin, RolePayrollAdmin:
		return true
	case RoleEmployee:
		return requesterEmployeeID != nil && *requesterEmployeeID == targetEmployeeID
	case RoleManager:
		if requesterEmployeeID == nil {
			return false
		}
		if *requesterEmployeeID == targetEmployeeID {
			return true
		}
		return targetManagerID != nil && *targetManagerID == *requesterEmployeeID
	}
	return false
}
