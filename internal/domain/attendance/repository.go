package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Upsert(ctx context.Context, rec AttendanceRecord) (AttendanceRecord, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, page, limit int) ([]AttendanceRecord, int64, error)
	// GetPeriodSummary aggregates attendance for one employee over an
	// inclusive date range. Employees with no rows yield a zero summary.
	GetPeriodSummary(ctx context.Context, employeeID string, from, to time.Time) (PeriodSummary, error)
}
