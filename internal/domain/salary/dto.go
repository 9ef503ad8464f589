package salary

import (
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSalaryStructureRequest struct {
	EmployeeID          string
	BasicSalary         decimal.Decimal  `json:"basic_salary"`
	HRA                 *decimal.Decimal `json:"hra,omitempty"`
	ConveyanceAllowance *decimal.Decimal `json:"conveyance_allowance,omitempty"`
	MedicalAllowance    *decimal.Decimal `json:"medical_allowance,omitempty"`
	SpecialAllowance    *decimal.Decimal `json:"special_allowance,omitempty"`
	PFContribution      *decimal.Decimal `json:"pf_contribution,omitempty"`
	ESIContribution     *decimal.Decimal `json:"esi_contribution,omitempty"`
	ProfessionalTax     *decimal.Decimal `json:"professional_tax,omitempty"`
	EffectiveFrom       string           `json:"effective_from"`
}

func (r *CreateSalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.BasicSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	for field, v := range map[string]*decimal.Decimal{
		"hra":                  r.HRA,
		"conveyance_allowance": r.ConveyanceAllowance,
		"medical_allowance":    r.MedicalAllowance,
		"special_allowance":    r.SpecialAllowance,
		"pf_contribution":      r.PFContribution,
		"esi_contribution":     r.ESIContribution,
		"professional_tax":     r.ProfessionalTax,
	} {
		if v != nil && v.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryStructureResponse struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employee_id"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	HRA                 decimal.Decimal `json:"hra"`
	ConveyanceAllowance decimal.Decimal `json:"conveyance_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance    decimal.Decimal `json:"special_allowance"`
	PFContribution      decimal.Decimal `json:"pf_contribution"`
	ESIContribution     decimal.Decimal `json:"esi_contribution"`
	ProfessionalTax     decimal.Decimal `json:"professional_tax"`
	EffectiveFrom       string          `json:"effective_from"`
	EffectiveTo         *string         `json:"effective_to,omitempty"`
	IsActive            bool            `json:"is_active"`
}

func ToResponse(s SalaryStructure) SalaryStructureResponse {
	resp := SalaryStructureResponse{
		ID:                  s.ID,
		EmployeeID:          s.EmployeeID,
		BasicSalary:         s.BasicSalary,
		HRA:                 s.HRA,
		ConveyanceAllowance: s.ConveyanceAllowance,
		MedicalAllowance:    s.MedicalAllowance,
		SpecialAllowance:    s.SpecialAllowance,
		PFContribution:      s.PFContribution,
		ESIContribution:     s.ESIContribution,
		ProfessionalTax:     s.ProfessionalTax,
		EffectiveFrom:       s.EffectiveFrom.Format("2006-01-02"),
		IsActive:            s.IsActive,
	}
	if s.EffectiveTo != nil {
		str := s.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &str
	}
	return resp
}
