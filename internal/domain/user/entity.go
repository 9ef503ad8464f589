package user

import "time"

type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleHRAdmin      Role = "hr_admin"
	RolePayrollAdmin Role = "payroll_admin"
	RoleManager      Role = "manager"
	RoleEmployee     Role = "employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleHRAdmin, RolePayrollAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
