package department

import "context"

type MasterService interface {
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	CreateDesignation(ctx context.Context, req CreateDesignationRequest) (DesignationResponse, error)
	ListDesignations(ctx context.Context, departmentID *string) ([]DesignationResponse, error)
}
