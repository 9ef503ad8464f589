package department

import "github.com/payflow-pro/payflow-backend-go/internal/pkg/validator"

type CreateDepartmentRequest struct {
	Name   string  `json:"name"`
	Code   string  `json:"code"`
	HeadID *string `json:"head_id,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDesignationRequest struct {
	Title        string  `json:"title"`
	Level        *int    `json:"level,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
}

func (r *CreateDesignationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Code   string  `json:"code"`
	HeadID *string `json:"head_id,omitempty"`
}

type DesignationResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Level        *int    `json:"level,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
}
