package department

import "context"

type DepartmentRepository interface {
	CreateDepartment(ctx context.Context, dept Department) (Department, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	CreateDesignation(ctx context.Context, des Designation) (Designation, error)
	ListDesignations(ctx context.Context, departmentID *string) ([]Designation, error)
}
