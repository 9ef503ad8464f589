package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunStatus enum. Lifecycle: draft -> processing -> completed -> approved,
// with cancelled reachable from any pre-approved state.
type RunStatus string

const (
	RunStatusDraft      RunStatus = "draft"
	RunStatusProcessing RunStatus = "processing"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusApproved   RunStatus = "approved"
	RunStatusCancelled  RunStatus = "cancelled"
)

// PayrollRun identifies one pay period. Aggregate totals are populated only
// after processing.
type PayrollRun struct {
	ID               string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	PayDate          time.Time
	Status           RunStatus
	TotalEmployees   int
	TotalGrossSalary decimal.Decimal
	TotalDeductions  decimal.Decimal
	TotalNetSalary   decimal.Decimal
	ProcessedBy      *string
	ApprovedBy       *string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	ProcessedByEmail *string
	ApprovedByEmail  *string
}

// PayrollItem is the computed pay breakdown for one employee within one run.
// Items are immutable once created; reprocessing a run is not supported.
type PayrollItem struct {
	ID                  string
	PayrollRunID        string
	EmployeeID          string
	BasicSalary         decimal.Decimal
	HRA                 decimal.Decimal
	ConveyanceAllowance decimal.Decimal
	MedicalAllowance    decimal.Decimal
	SpecialAllowance    decimal.Decimal
	OvertimeAmount      decimal.Decimal
	GrossSalary         decimal.Decimal
	PFDeduction         decimal.Decimal
	ESIDeduction        decimal.Decimal
	ProfessionalTax     decimal.Decimal
	TDSDeduction        decimal.Decimal
	TotalDeductions     decimal.Decimal
	NetSalary           decimal.Decimal
	DaysPresent         decimal.Decimal
	DaysAbsent          decimal.Decimal
	OvertimeHours       decimal.Decimal
	CreatedAt           time.Time

	// Joined fields
	EmployeeCode   *string
	FirstName      *string
	LastName       *string
	EmployeeEmail  *string
	DepartmentName *string
}

// Payslip is a payroll item together with its run's period, as seen by the
// employee it belongs to.
type Payslip struct {
	PayrollItem
	PeriodStart time.Time
	PeriodEnd   time.Time
	PayDate     time.Time
	RunStatus   RunStatus
}

// EligibleEmployee is an active employee joined to the salary structure in
// effect for a run's period.
type EligibleEmployee struct {
	EmployeeID          string
	EmployeeCode        string
	FirstName           string
	LastName            string
	BasicSalary         decimal.Decimal
	HRA                 decimal.Decimal
	ConveyanceAllowance decimal.Decimal
	MedicalAllowance    decimal.Decimal
	SpecialAllowance    decimal.Decimal
	ProfessionalTax     decimal.Decimal
}

// RunTotals carries the aggregate figures written back to a run when
// processing completes.
type RunTotals struct {
	TotalEmployees   int
	TotalGrossSalary decimal.Decimal
	TotalDeductions  decimal.Decimal
	TotalNetSalary   decimal.Decimal
}
