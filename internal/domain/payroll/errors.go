package payroll

import "errors"

var (
	ErrRunNotFound         = errors.New("payroll run not found")
	ErrRunNotDraft         = errors.New("payroll run must be in draft status")
	ErrRunNotCompleted     = errors.New("payroll run must be in completed status")
	ErrRunNotCancellable   = errors.New("payroll run can no longer be cancelled")
	ErrNoEligibleEmployees = errors.New("no active employees found with salary structures")
	ErrOverlappingPeriod   = errors.New("overlapping payroll period exists")
	ErrNoWorkingDays       = errors.New("payroll period contains no working days")
)
