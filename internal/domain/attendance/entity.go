package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent        Status = "present"
	StatusAbsent         Status = "absent"
	StatusHalfDay        Status = "half_day"
	StatusLate           Status = "late"
	StatusEarlyDeparture Status = "early_departure"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLate, StatusEarlyDeparture:
		return true
	}
	return false
}

// AttendanceRecord is one row per employee per calendar date.
type AttendanceRecord struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckInTime   *string
	CheckOutTime  *string
	TotalHours    *decimal.Decimal
	OvertimeHours decimal.Decimal
	Status        Status
	Remarks       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PeriodSummary aggregates an employee's attendance over a date range.
// PresentDays counts half days at 0.5, so it can be fractional.
type PeriodSummary struct {
	EmployeeID         string
	PresentDays        decimal.Decimal
	AbsentDays         int64
	HalfDays           int64
	TotalOvertimeHours decimal.Decimal
}
