package salary

import "context"

type SalaryService interface {
	// CreateStructure deactivates any prior structure for the employee and
	// inserts the new one in a single transaction.
	CreateStructure(ctx context.Context, req CreateSalaryStructureRequest) (SalaryStructureResponse, error)
	GetActiveStructure(ctx context.Context, employeeID string) (SalaryStructureResponse, error)
	ListStructures(ctx context.Context, employeeID string) ([]SalaryStructureResponse, error)
}
