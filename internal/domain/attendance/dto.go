package attendance

import (
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpsertAttendanceRequest struct {
	EmployeeID    string           `json:"employee_id"`
	Date          string           `json:"date"`
	Status        string           `json:"status"`
	CheckInTime   *string          `json:"check_in_time,omitempty"`
	CheckOutTime  *string          `json:"check_out_time,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	Remarks       *string          `json:"remarks,omitempty"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, half_day, late, early_departure"})
	}
	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceRecordResponse struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	Date          string           `json:"date"`
	Status        string           `json:"status"`
	CheckInTime   *string          `json:"check_in_time,omitempty"`
	CheckOutTime  *string          `json:"check_out_time,omitempty"`
	TotalHours    *decimal.Decimal `json:"total_hours,omitempty"`
	OvertimeHours decimal.Decimal  `json:"overtime_hours"`
	Remarks       *string          `json:"remarks,omitempty"`
}

type ListAttendanceResponse struct {
	Data       []AttendanceRecordResponse `json:"data"`
	TotalCount int64                      `json:"total_count"`
	Page       int                        `json:"page"`
	Limit      int                        `json:"limit"`
}

func ToResponse(rec AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		Date:          rec.Date.Format("2006-01-02"),
		Status:        string(rec.Status),
		CheckInTime:   rec.CheckInTime,
		CheckOutTime:  rec.CheckOutTime,
		TotalHours:    rec.TotalHours,
		OvertimeHours: rec.OvertimeHours,
		Remarks:       rec.Remarks,
	}
}
