package payroll

import "context"

type PayrollService interface {
	CreateRun(ctx context.Context, req CreatePayrollRunRequest) (PayrollRunResponse, error)
	GetRun(ctx context.Context, id string) (PayrollRunResponse, error)
	ListRuns(ctx context.Context, filter RunFilter) (ListPayrollRunResponse, error)
	ProcessRun(ctx context.Context, id string) (ProcessPayrollResponse, error)
	ApproveRun(ctx context.Context, id string) (PayrollRunResponse, error)
	CancelRun(ctx context.Context, id string) (PayrollRunResponse, error)
	ListRunItems(ctx context.Context, runID string, page, limit int) (ListPayrollItemResponse, error)
	ListEmployeePayslips(ctx context.Context, employeeID string, year *int, page, limit int) ([]PayslipResponse, error)
}
