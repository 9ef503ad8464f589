package payroll

import (
	"testing"

	"github.com/payflow-pro/payflow-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePayrollRunRequestValidate(t *testing.T) {
	valid := CreatePayrollRunRequest{
		PeriodStart: "2026-06-01",
		PeriodEnd:   "2026-06-30",
		PayDate:     "2026-07-01",
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		req   CreatePayrollRunRequest
		field string
	}{
		{
			name:  "missing start",
			req:   CreatePayrollRunRequest{PeriodEnd: "2026-06-30", PayDate: "2026-07-01"},
			field: "payroll_period_start",
		},
		{
			name:  "malformed date",
			req:   CreatePayrollRunRequest{PeriodStart: "01-06-2026", PeriodEnd: "2026-06-30", PayDate: "2026-07-01"},
			field: "payroll_period_start",
		},
		{
			name:  "end before start",
			req:   CreatePayrollRunRequest{PeriodStart: "2026-06-30", PeriodEnd: "2026-06-01", PayDate: "2026-07-01"},
			field: "payroll_period_end",
		},
		{
			name:  "weekend only period",
			req:   CreatePayrollRunRequest{PeriodStart: "2026-06-06", PeriodEnd: "2026-06-07", PayDate: "2026-07-01"},
			field: "payroll_period_start",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}
