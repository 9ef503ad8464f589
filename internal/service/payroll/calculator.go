package payroll

import (
	"github.com/payflow-pro/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Statutory rates. PF and ESI are the Indian EPF and ESIC employee
// contribution rates; TDS here is a flat placeholder rate, not a slab
// computation.
var (
	pfRate             = decimal.NewFromFloat(0.12)
	esiRate            = decimal.NewFromFloat(0.0075)
	esiGrossCeiling    = decimal.NewFromInt(21000)
	tdsRate            = decimal.NewFromFloat(0.1)
	tdsAnnualThreshold = decimal.NewFromInt(250000)
	overtimeMultiplier = decimal.NewFromFloat(1.5)
	monthsPerYear      = decimal.NewFromInt(12)
	hoursPerWorkingDay = decimal.NewFromInt(8)
)

// computeItem builds the pay breakdown for one employee over one period.
// Earnings components are prorated by attendance; multiplication happens
// before division so a full-attendance month reproduces the nominal
// structure exactly. The overtime hourly rate is derived from the nominal
// basic salary, not the prorated one.
func computeItem(emp payroll.EligibleEmployee, summary attendance.PeriodSummary, workingDays int) payroll.PayrollItem {
	wd := decimal.NewFromInt(int64(workingDays))
	presentDays := summary.PresentDays

	prorate := func(c decimal.Decimal) decimal.Decimal {
		return c.Mul(presentDays).Div(wd)
	}

	basic := prorate(emp.BasicSalary)
	hra := prorate(emp.HRA)
	conveyance := prorate(emp.ConveyanceAllowance)
	medical := prorate(emp.MedicalAllowance)
	special := prorate(emp.SpecialAllowance)

	hourlyRate := emp.BasicSalary.Div(wd.Mul(hoursPerWorkingDay))
	overtimeAmount := summary.TotalOvertimeHours.Mul(hourlyRate).Mul(overtimeMultiplier)

	gross := basic.Add(hra).Add(conveyance).Add(medical).Add(special).Add(overtimeAmount)

	pf := basic.Mul(pfRate)

	esi := decimal.Zero
	if gross.LessThanOrEqual(esiGrossCeiling) {
		esi = gross.Mul(esiRate)
	}

	tds := decimal.Zero
	if gross.Mul(monthsPerYear).GreaterThan(tdsAnnualThreshold) {
		tds = gross.Mul(tdsRate)
	}

	totalDeductions := pf.Add(esi).Add(emp.ProfessionalTax).Add(tds)
	net := gross.Sub(totalDeductions)

	return payroll.PayrollItem{
		EmployeeID:          emp.EmployeeID,
		BasicSalary:         basic,
		HRA:                 hra,
		ConveyanceAllowance: conveyance,
		MedicalAllowance:    medical,
		SpecialAllowance:    special,
		OvertimeAmount:      overtimeAmount,
		GrossSalary:         gross,
		PFDeduction:         pf,
		ESIDeduction:        esi,
		ProfessionalTax:     emp.ProfessionalTax,
		TDSDeduction:        tds,
		TotalDeductions:     totalDeductions,
		NetSalary:           net,
		DaysPresent:         presentDays,
		DaysAbsent:          wd.Sub(presentDays),
		OvertimeHours:       summary.TotalOvertimeHours,
	}
}
