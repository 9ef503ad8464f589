package payroll

import (
	"testing"
	"time"

	"github.com/payflow-pro/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testEmployee() payroll.EligibleEmployee {
	return payroll.EligibleEmployee{
		EmployeeID:          "emp-1",
		EmployeeCode:        "EMP0001",
		FirstName:           "Asha",
		LastName:            "Nair",
		BasicSalary:         dec("44000"),
		HRA:                 dec("17600"),
		ConveyanceAllowance: dec("1600"),
		MedicalAllowance:    dec("1250"),
		SpecialAllowance:    dec("5550"),
		ProfessionalTax:     dec("200"),
	}
}

func fullAttendance(days int64) attendance.PeriodSummary {
	return attendance.PeriodSummary{
		EmployeeID:  "emp-1",
		PresentDays: decimal.NewFromInt(days),
	}
}

// June 2026 has 22 weekdays.
func TestComputeItemFullAttendance(t *testing.T) {
	emp := testEmployee()
	item := computeItem(emp, fullAttendance(22), 22)

	// Full attendance reproduces the nominal structure exactly
	assert.True(t, item.BasicSalary.Equal(dec("44000")), "basic = %s", item.BasicSalary)
	assert.True(t, item.HRA.Equal(dec("17600")), "hra = %s", item.HRA)
	assert.True(t, item.ConveyanceAllowance.Equal(dec("1600")))
	assert.True(t, item.MedicalAllowance.Equal(dec("1250")))
	assert.True(t, item.SpecialAllowance.Equal(dec("5550")))
	assert.True(t, item.OvertimeAmount.IsZero())
	assert.True(t, item.GrossSalary.Equal(dec("70000")), "gross = %s", item.GrossSalary)

	// PF on prorated basic
	assert.True(t, item.PFDeduction.Equal(dec("5280")), "pf = %s", item.PFDeduction)
	// Gross exceeds the ESI ceiling
	assert.True(t, item.ESIDeduction.IsZero())
	assert.True(t, item.ProfessionalTax.Equal(dec("200")))
	// Annualized gross crosses the TDS threshold
	assert.True(t, item.TDSDeduction.Equal(dec("7000")), "tds = %s", item.TDSDeduction)

	assert.True(t, item.TotalDeductions.Equal(dec("12480")), "deductions = %s", item.TotalDeductions)
	assert.True(t, item.NetSalary.Equal(dec("57520")), "net = %s", item.NetSalary)
	assert.True(t, item.DaysAbsent.IsZero())
}

func TestComputeItemProration(t *testing.T) {
	emp := testEmployee()

	// 11 of 22 working days present: everything halves
	summary := fullAttendance(11)
	item := computeItem(emp, summary, 22)

	assert.True(t, item.BasicSalary.Equal(dec("22000")), "basic = %s", item.BasicSalary)
	assert.True(t, item.HRA.Equal(dec("8800")))
	assert.True(t, item.GrossSalary.Equal(dec("35000")), "gross = %s", item.GrossSalary)
	assert.True(t, item.PFDeduction.Equal(dec("2640")))
	assert.True(t, item.DaysAbsent.Equal(dec("11")))
}

func TestComputeItemHalfDays(t *testing.T) {
	emp := testEmployee()

	// 20 full days plus 4 half days = 22 counted days
	summary := attendance.PeriodSummary{
		EmployeeID:  "emp-1",
		PresentDays: dec("22"),
		HalfDays:    4,
	}
	item := computeItem(emp, summary, 22)
	assert.True(t, item.BasicSalary.Equal(dec("44000")))
	assert.True(t, item.DaysPresent.Equal(dec("22")))
}

func TestComputeItemOvertime(t *testing.T) {
	emp := testEmployee()

	summary := fullAttendance(22)
	summary.TotalOvertimeHours = dec("10")
	item := computeItem(emp, summary, 22)

	// hourly rate 44000/(22*8) = 250, x10h x1.5 = 3750
	assert.True(t, item.OvertimeAmount.Equal(dec("3750")), "overtime = %s", item.OvertimeAmount)
	assert.True(t, item.GrossSalary.Equal(dec("73750")))
	assert.True(t, item.OvertimeHours.Equal(dec("10")))
}

func TestComputeItemESIUnderCeiling(t *testing.T) {
	emp := payroll.EligibleEmployee{
		EmployeeID:      "emp-2",
		BasicSalary:     dec("12000"),
		HRA:             dec("4800"),
		ProfessionalTax: dec("150"),
	}
	item := computeItem(emp, fullAttendance(22), 22)

	require.True(t, item.GrossSalary.Equal(dec("16800")))
	// 16800 x 0.0075 = 126
	assert.True(t, item.ESIDeduction.Equal(dec("126")), "esi = %s", item.ESIDeduction)
	// 16800 x 12 = 201600, below the TDS threshold
	assert.True(t, item.TDSDeduction.IsZero())
}

func TestComputeItemESIAtCeiling(t *testing.T) {
	// Gross exactly at the ceiling still attracts ESI
	emp := payroll.EligibleEmployee{
		EmployeeID:  "emp-3",
		BasicSalary: dec("21000"),
	}
	item := computeItem(emp, fullAttendance(22), 22)

	require.True(t, item.GrossSalary.Equal(dec("21000")))
	assert.True(t, item.ESIDeduction.Equal(dec("157.50")), "esi = %s", item.ESIDeduction)
	// 21000 x 12 = 252000 > 250000
	assert.True(t, item.TDSDeduction.Equal(dec("2100")))
}

func TestComputeItemTDSThresholdStrict(t *testing.T) {
	// Annualized gross of exactly 250000 stays below the strict threshold
	emp := payroll.EligibleEmployee{
		EmployeeID:  "emp-4",
		BasicSalary: dec("20833.3333333333333333"),
	}
	summary := fullAttendance(24)
	item := computeItem(emp, summary, 24)

	annual := item.GrossSalary.Mul(decimal.NewFromInt(12))
	require.True(t, annual.LessThanOrEqual(dec("250000")), "annual = %s", annual)
	assert.True(t, item.TDSDeduction.IsZero())
}

func TestComputeItemZeroAttendance(t *testing.T) {
	emp := testEmployee()
	item := computeItem(emp, attendance.PeriodSummary{EmployeeID: "emp-1"}, 22)

	assert.True(t, item.BasicSalary.IsZero())
	assert.True(t, item.GrossSalary.IsZero())
	assert.True(t, item.PFDeduction.IsZero())
	assert.True(t, item.ESIDeduction.IsZero())
	assert.True(t, item.TDSDeduction.IsZero())
	// Professional tax passes through even at zero attendance
	assert.True(t, item.ProfessionalTax.Equal(dec("200")))
	assert.True(t, item.DaysAbsent.Equal(dec("22")))
}

func TestComputeItemNetIsGrossMinusDeductions(t *testing.T) {
	emp := testEmployee()
	summary := attendance.PeriodSummary{
		EmployeeID:         "emp-1",
		PresentDays:        dec("17.5"),
		TotalOvertimeHours: dec("6"),
	}
	item := computeItem(emp, summary, 22)

	assert.True(t, item.NetSalary.Equal(item.GrossSalary.Sub(item.TotalDeductions)))
	sum := item.BasicSalary.
		Add(item.HRA).
		Add(item.ConveyanceAllowance).
		Add(item.MedicalAllowance).
		Add(item.SpecialAllowance).
		Add(item.OvertimeAmount)
	assert.True(t, item.GrossSalary.Equal(sum))
}

func TestComputeItemWorkedExample(t *testing.T) {
	emp := payroll.EligibleEmployee{
		EmployeeID:          "emp-3",
		BasicSalary:         dec("22000"),
		HRA:                 dec("11000"),
		ConveyanceAllowance: dec("2000"),
		MedicalAllowance:    dec("1500"),
		SpecialAllowance:    dec("3000"),
		ProfessionalTax:     dec("200"),
	}
	summary := attendance.PeriodSummary{
		EmployeeID:         "emp-3",
		PresentDays:        dec("20"),
		TotalOvertimeHours: dec("4"),
	}
	item := computeItem(emp, summary, 22)

	// 20/22 of each component; basic and hra divide evenly
	assert.True(t, item.BasicSalary.Equal(dec("20000")), "basic = %s", item.BasicSalary)
	assert.True(t, item.HRA.Equal(dec("10000")), "hra = %s", item.HRA)
	assert.True(t, item.ConveyanceAllowance.Round(2).Equal(dec("1818.18")))
	assert.True(t, item.MedicalAllowance.Round(2).Equal(dec("1363.64")))
	assert.True(t, item.SpecialAllowance.Round(2).Equal(dec("2727.27")))

	// hourly rate 22000/176 = 125, x4h x1.5 = 750
	assert.True(t, item.OvertimeAmount.Equal(dec("750")), "overtime = %s", item.OvertimeAmount)
	assert.True(t, item.GrossSalary.Round(2).Equal(dec("36659.09")), "gross = %s", item.GrossSalary)

	assert.True(t, item.PFDeduction.Equal(dec("2400")), "pf = %s", item.PFDeduction)
	assert.True(t, item.ESIDeduction.IsZero(), "esi = %s", item.ESIDeduction)
	assert.True(t, item.TDSDeduction.Round(2).Equal(dec("3665.91")), "tds = %s", item.TDSDeduction)
	assert.True(t, item.TotalDeductions.Round(2).Equal(dec("6265.91")))
	assert.True(t, item.NetSalary.Round(2).Equal(dec("30393.18")), "net = %s", item.NetSalary)
}

func TestComputeItemOvertimeMonotonic(t *testing.T) {
	emp := testEmployee()

	prevOvertime := decimal.NewFromInt(-1)
	prevGross := decimal.NewFromInt(-1)
	for hours := 0; hours <= 8; hours++ {
		summary := fullAttendance(22)
		summary.TotalOvertimeHours = decimal.NewFromInt(int64(hours))
		item := computeItem(emp, summary, 22)

		assert.True(t, item.OvertimeAmount.GreaterThan(prevOvertime),
			"overtime at %dh = %s, previous = %s", hours, item.OvertimeAmount, prevOvertime)
		assert.True(t, item.GrossSalary.GreaterThan(prevGross),
			"gross at %dh = %s, previous = %s", hours, item.GrossSalary, prevGross)

		prevOvertime = item.OvertimeAmount
		prevGross = item.GrossSalary
	}
}

func TestWorkingDays(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"june 2026", "2026-06-01", "2026-06-30", 22},
		{"february 2026", "2026-02-01", "2026-02-28", 20},
		{"single weekday", "2026-06-03", "2026-06-03", 1},
		{"single saturday", "2026-06-06", "2026-06-06", 0},
		{"weekend only", "2026-06-06", "2026-06-07", 0},
		{"one full week", "2026-06-01", "2026-06-07", 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, err := time.Parse("2006-01-02", c.start)
			require.NoError(t, err)
			end, err := time.Parse("2006-01-02", c.end)
			require.NoError(t, err)
			assert.Equal(t, c.want, payroll.WorkingDays(start, end))
		})
	}
}
