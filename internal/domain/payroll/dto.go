package payroll

import (
	"time"

	"github.com/payflow-pro/payflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayrollRunRequest struct {
	PeriodStart string  `json:"payroll_period_start"`
	PeriodEnd   string  `json:"payroll_period_end"`
	PayDate     string  `json:"payroll_date"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreatePayrollRunRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "payroll_period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "payroll_period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.PayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "payroll_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if startOK && endOK {
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "payroll_period_end", Message: "must not be before payroll_period_start"})
		} else if WorkingDays(start, end) == 0 {
			// A weekend-only period would make the proration divisor zero,
			// so it is rejected here instead of failing during processing.
			errs = append(errs, validator.ValidationError{Field: "payroll_period_start", Message: "period contains no working days"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunFilter struct {
	Page   int
	Limit  int
	Status string
	Year   int
	Month  time.Month
}

type PayrollRunResponse struct {
	ID               string          `json:"id"`
	PeriodStart      string          `json:"payroll_period_start"`
	PeriodEnd        string          `json:"payroll_period_end"`
	PayDate          string          `json:"payroll_date"`
	Status           string          `json:"status"`
	TotalEmployees   int             `json:"total_employees"`
	TotalGrossSalary decimal.Decimal `json:"total_gross_salary"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
	ProcessedBy      *string         `json:"processed_by,omitempty"`
	ProcessedByEmail *string         `json:"processed_by_email,omitempty"`
	ApprovedBy       *string         `json:"approved_by,omitempty"`
	ApprovedByEmail  *string         `json:"approved_by_email,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	CreatedAt        string          `json:"created_at"`
}

type ListPayrollRunResponse struct {
	Data       []PayrollRunResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

// ProcessPayrollResponse is the success payload of the processing operation.
type ProcessPayrollResponse struct {
	TotalEmployees   int             `json:"total_employees"`
	TotalGrossSalary decimal.Decimal `json:"total_gross_salary"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	TotalNetSalary   decimal.Decimal `json:"total_net_salary"`
}

type PayrollItemResponse struct {
	ID                  string          `json:"id"`
	PayrollRunID        string          `json:"payroll_run_id"`
	EmployeeID          string          `json:"employee_id"`
	EmployeeCode        *string         `json:"employee_code,omitempty"`
	EmployeeName        *string         `json:"employee_name,omitempty"`
	DepartmentName      *string         `json:"department_name,omitempty"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	HRA                 decimal.Decimal `json:"hra"`
	ConveyanceAllowance decimal.Decimal `json:"conveyance_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance    decimal.Decimal `json:"special_allowance"`
	OvertimeAmount      decimal.Decimal `json:"overtime_amount"`
	GrossSalary         decimal.Decimal `json:"gross_salary"`
	PFDeduction         decimal.Decimal `json:"pf_deduction"`
	ESIDeduction        decimal.Decimal `json:"esi_deduction"`
	ProfessionalTax     decimal.Decimal `json:"professional_tax"`
	TDSDeduction        decimal.Decimal `json:"tds_deduction"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	NetSalary           decimal.Decimal `json:"net_salary"`
	DaysPresent         decimal.Decimal `json:"days_present"`
	DaysAbsent          decimal.Decimal `json:"days_absent"`
	OvertimeHours       decimal.Decimal `json:"overtime_hours"`
}

type ListPayrollItemResponse struct {
	Data       []PayrollItemResponse `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
}

type PayslipResponse struct {
	PayrollItemResponse
	PeriodStart string `json:"payroll_period_start"`
	PeriodEnd   string `json:"payroll_period_end"`
	PayDate     string `json:"payroll_date"`
	RunStatus   string `json:"run_status"`
}

func ToRunResponse(r PayrollRun) PayrollRunResponse {
	return PayrollRunResponse{
		ID:               r.ID,
		PeriodStart:      r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:        r.PeriodEnd.Format("2006-01-02"),
		PayDate:          r.PayDate.Format("2006-01-02"),
		Status:           string(r.Status),
		TotalEmployees:   r.TotalEmployees,
		TotalGrossSalary: r.TotalGrossSalary,
		TotalDeductions:  r.TotalDeductions,
		TotalNetSalary:   r.TotalNetSalary,
		ProcessedBy:      r.ProcessedBy,
		ProcessedByEmail: r.ProcessedByEmail,
		ApprovedBy:       r.ApprovedBy,
		ApprovedByEmail:  r.ApprovedByEmail,
		Notes:            r.Notes,
		CreatedAt:        r.CreatedAt.Format(time.RFC3339),
	}
}

func ToItemResponse(i PayrollItem) PayrollItemResponse {
	resp := PayrollItemResponse{
		ID:                  i.ID,
		PayrollRunID:        i.PayrollRunID,
		EmployeeID:          i.EmployeeID,
		EmployeeCode:        i.EmployeeCode,
		DepartmentName:      i.DepartmentName,
		BasicSalary:         i.BasicSalary,
		HRA:                 i.HRA,
		ConveyanceAllowance: i.ConveyanceAllowance,
		MedicalAllowance:    i.MedicalAllowance,
		SpecialAllowance:    i.SpecialAllowance,
		OvertimeAmount:      i.OvertimeAmount,
		GrossSalary:         i.GrossSalary,
		PFDeduction:         i.PFDeduction,
		ESIDeduction:        i.ESIDeduction,
		ProfessionalTax:     i.ProfessionalTax,
		TDSDeduction:        i.TDSDeduction,
		TotalDeductions:     i.TotalDeductions,
		NetSalary:           i.NetSalary,
		DaysPresent:         i.DaysPresent,
		DaysAbsent:          i.DaysAbsent,
		OvertimeHours:       i.OvertimeHours,
	}
	if i.FirstName != nil && i.LastName != nil {
		name := *i.FirstName + " " + *i.LastName
		resp.EmployeeName = &name
	}
	return resp
}

func ToPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		PayrollItemResponse: ToItemResponse(p.PayrollItem),
		PeriodStart:         p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:           p.PeriodEnd.Format("2006-01-02"),
		PayDate:             p.PayDate.Format("2006-01-02"),
		RunStatus:           string(p.RunStatus),
	}
}
