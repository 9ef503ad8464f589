package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// Runs
	CreateRun(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetRunByID(ctx context.Context, id string) (PayrollRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]PayrollRun, int64, error)
	HasOverlappingRun(ctx context.Context, periodStart, periodEnd time.Time) (bool, error)

	// ClaimRunForProcessing atomically advances a run from draft to
	// processing via a conditional update. It reports false when the run was
	// not in draft status, which is how two concurrent processing requests
	// for the same run are serialized.
	ClaimRunForProcessing(ctx context.Context, id string) (bool, error)
	CompleteRun(ctx context.Context, id string, totals RunTotals) error
	ApproveRun(ctx context.Context, id string, approvedBy string) (bool, error)
	CancelRun(ctx context.Context, id string) (bool, error)

	// Items
	CreateItem(ctx context.Context, item PayrollItem) (PayrollItem, error)
	ListItemsByRun(ctx context.Context, runID string, page, limit int) ([]PayrollItem, int64, error)
	ListPayslipsByEmployee(ctx context.Context, employeeID string, year *int, page, limit int) ([]Payslip, error)

	// GetEligibleEmployees returns active employees joined to their active
	// salary structure effective on or before asOf.
	GetEligibleEmployees(ctx context.Context, asOf time.Time) ([]EligibleEmployee, error)
}
