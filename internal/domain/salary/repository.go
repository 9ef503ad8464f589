package salary

import "context"

type SalaryRepository interface {
	Create(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)
	GetActiveByEmployeeID(ctx context.Context, employeeID string) (SalaryStructure, error)
	DeactivateByEmployeeID(ctx context.Context, employeeID string) error
	ListByEmployeeID(ctx context.Context, employeeID string) ([]SalaryStructure, error)
}
