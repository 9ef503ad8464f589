package response

import (
	"errors"
	"net/http"

	"github.com/payflow-pro/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/auth"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/department"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/payroll"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/salary"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/user"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrWrongCurrentPassword):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrInsufficientRole):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrEmployeeAccessOnly):
		Forbidden(w, "You can only access your own data")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrManagerNotFound):
		BadRequest(w, "Manager not found", nil)
	case errors.Is(err, employee.ErrAlreadyInactive):
		Conflict(w, "Employee is already inactive")
	case errors.Is(err, employee.ErrAlreadyActive):
		Conflict(w, "Employee is already active")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentCodeTaken):
		Conflict(w, "Department code already exists")
	case errors.Is(err, department.ErrDesignationNotFound):
		NotFound(w, "Designation not found")

	// Salary domain errors
	case errors.Is(err, salary.ErrStructureNotFound):
		NotFound(w, "No active salary structure found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunNotDraft):
		BadRequest(w, "Payroll run must be in draft status", nil)
	case errors.Is(err, payroll.ErrRunNotCompleted):
		BadRequest(w, "Payroll run must be in completed status", nil)
	case errors.Is(err, payroll.ErrRunNotCancellable):
		BadRequest(w, "Payroll run can no longer be cancelled", nil)
	case errors.Is(err, payroll.ErrNoEligibleEmployees):
		BadRequest(w, "No active employees found with salary structures", nil)
	case errors.Is(err, payroll.ErrOverlappingPeriod):
		Conflict(w, "A payroll run already covers part of this period")
	case errors.Is(err, payroll.ErrNoWorkingDays):
		BadRequest(w, "Payroll period contains no working days", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
