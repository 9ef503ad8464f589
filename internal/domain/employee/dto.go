package employee

import (
	"time"

	"github.com/payflow-pro/payflow-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Email             string  `json:"email"`
	Phone             *string `json:"phone,omitempty"`
	DateOfBirth       *string `json:"date_of_birth,omitempty"`
	JoiningDate       string  `json:"joining_date"`
	DepartmentID      *string `json:"department_id,omitempty"`
	DesignationID     *string `json:"designation_id,omitempty"`
	ManagerID         *string `json:"manager_id,omitempty"`
	EmploymentType    string  `json:"employment_type"`
	PANNumber         *string `json:"pan_number,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	BankIFSC          *string `json:"bank_ifsc,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	Address           *string `json:"address,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if !EmploymentType(r.EmploymentType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "must be one of full_time, part_time, contract, intern"})
	}
	if r.PANNumber != nil && !validator.IsValidPAN(*r.PANNumber) {
		errs = append(errs, validator.ValidationError{Field: "pan_number", Message: "must be a valid PAN"})
	}
	if r.BankIFSC != nil && !validator.IsValidIFSC(*r.BankIFSC) {
		errs = append(errs, validator.ValidationError{Field: "bank_ifsc", Message: "must be a valid IFSC code"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	DepartmentID      *string `json:"department_id,omitempty"`
	DesignationID     *string `json:"designation_id,omitempty"`
	ManagerID         *string `json:"manager_id,omitempty"`
	EmploymentType    *string `json:"employment_type,omitempty"`
	PANNumber         *string `json:"pan_number,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	BankIFSC          *string `json:"bank_ifsc,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	Address           *string `json:"address,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "must not be empty"})
	}
	if r.EmploymentType != nil && !EmploymentType(*r.EmploymentType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "must be one of full_time, part_time, contract, intern"})
	}
	if r.PANNumber != nil && !validator.IsValidPAN(*r.PANNumber) {
		errs = append(errs, validator.ValidationError{Field: "pan_number", Message: "must be a valid PAN"})
	}
	if r.BankIFSC != nil && !validator.IsValidIFSC(*r.BankIFSC) {
		errs = append(errs, validator.ValidationError{Field: "bank_ifsc", Message: "must be a valid IFSC code"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Page           int
	Limit          int
	Search         string
	DepartmentID   string
	DesignationID  string
	EmploymentType string
	// IsActive filters by active flag; nil means all employees.
	IsActive *bool
}

type EmployeeResponse struct {
	ID                string  `json:"id"`
	EmployeeCode      string  `json:"employee_code"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Email             string  `json:"email"`
	Phone             *string `json:"phone,omitempty"`
	DateOfBirth       *string `json:"date_of_birth,omitempty"`
	JoiningDate       string  `json:"joining_date"`
	ResignationDate   *string `json:"resignation_date,omitempty"`
	DepartmentID      *string `json:"department_id,omitempty"`
	DepartmentName    *string `json:"department_name,omitempty"`
	DesignationID     *string `json:"designation_id,omitempty"`
	DesignationTitle  *string `json:"designation_title,omitempty"`
	ManagerID         *string `json:"manager_id,omitempty"`
	ManagerName       *string `json:"manager_name,omitempty"`
	EmploymentType    string  `json:"employment_type"`
	PANNumber         *string `json:"pan_number,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	BankIFSC          *string `json:"bank_ifsc,omitempty"`
	BankName          *string `json:"bank_name,omitempty"`
	Address           *string `json:"address,omitempty"`
	IsActive          bool    `json:"is_active"`
	CreatedAt         string  `json:"created_at"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                e.ID,
		EmployeeCode:      e.EmployeeCode,
		FirstName:         e.FirstName,
		LastName:          e.LastName,
		Email:             e.Email,
		Phone:             e.Phone,
		JoiningDate:       e.JoiningDate.Format("2006-01-02"),
		DepartmentID:      e.DepartmentID,
		DepartmentName:    e.DepartmentName,
		DesignationID:     e.DesignationID,
		DesignationTitle:  e.DesignationTitle,
		ManagerID:         e.ManagerID,
		EmploymentType:    string(e.EmploymentType),
		PANNumber:         e.PANNumber,
		BankAccountNumber: e.BankAccountNumber,
		BankIFSC:          e.BankIFSC,
		BankName:          e.BankName,
		Address:           e.Address,
		IsActive:          e.IsActive,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
	}
	if e.DateOfBirth != nil {
		str := e.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &str
	}
	if e.ResignationDate != nil {
		str := e.ResignationDate.Format("2006-01-02")
		resp.ResignationDate = &str
	}
	if e.ManagerFirstName != nil && e.ManagerLastName != nil {
		name := *e.ManagerFirstName + " " + *e.ManagerLastName
		resp.ManagerName = &name
	}
	return resp
}
