package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceRecordResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, page, limit int) (ListAttendanceResponse, error)
}
