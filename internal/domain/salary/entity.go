package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure is a versioned snapshot of an employee's pay components.
// At most one structure is active per employee at a time; creating a new one
// deactivates the previous active structure in the same transaction.
type SalaryStructure struct {
	ID                  string
	EmployeeID          string
	BasicSalary         decimal.Decimal
	HRA                 decimal.Decimal
	ConveyanceAllowance decimal.Decimal
	MedicalAllowance    decimal.Decimal
	SpecialAllowance    decimal.Decimal
	PFContribution      decimal.Decimal
	ESIContribution     decimal.Decimal
	ProfessionalTax     decimal.Decimal
	EffectiveFrom       time.Time
	EffectiveTo         *time.Time
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
