package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, check_in_time, check_out_time, total_hours,
			overtime_hours, status, remarks
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			check_in_time = EXCLUDED.check_in_time,
			check_out_time = EXCLUDED.check_out_time,
			total_hours = EXCLUDED.total_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			status = EXCLUDED.status,
			remarks = EXCLUDED.remarks,
			updated_at = NOW()
		RETURNING id, employee_id, date, check_in_time, check_out_time, total_hours,
			overtime_hours, status, remarks, created_at, updated_at
	`

	var a attendance.AttendanceRecord
	err := q.QueryRow(ctx, query,
		uuid.New().String(), rec.EmployeeID, rec.Date, rec.CheckInTime, rec.CheckOutTime,
		rec.TotalHours, rec.OvertimeHours, rec.Status, rec.Remarks,
	).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckInTime, &a.CheckOutTime, &a.TotalHours,
		&a.OvertimeHours, &a.Status, &a.Remarks, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, page, limit int) ([]attendance.AttendanceRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	var totalCount int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
	`, employeeID, from, to).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := `
		SELECT id, employee_id, date, check_in_time, check_out_time, total_hours,
			overtime_hours, status, remarks, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC
		LIMIT $4 OFFSET $5
	`

	rows, err := q.Query(ctx, query, employeeID, from, to, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var a attendance.AttendanceRecord
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.CheckInTime, &a.CheckOutTime, &a.TotalHours,
			&a.OvertimeHours, &a.Status, &a.Remarks, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, totalCount, nil
}

func (r *attendanceRepository) GetPeriodSummary(ctx context.Context, employeeID string, from, to time.Time) (attendance.PeriodSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'present') AS present_days,
			COUNT(*) FILTER (WHERE status = 'absent') AS absent_days,
			COUNT(*) FILTER (WHERE status = 'half_day') AS half_days,
			COALESCE(SUM(overtime_hours), 0) AS total_overtime_hours
		FROM attendance_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
	`

	var fullDays int64
	summary := attendance.PeriodSummary{EmployeeID: employeeID}
	err := q.QueryRow(ctx, query, employeeID, from, to).Scan(
		&fullDays, &summary.AbsentDays, &summary.HalfDays, &summary.TotalOvertimeHours,
	)
	if err != nil {
		return attendance.PeriodSummary{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	// Half days count as 0.5 of a present day.
	summary.PresentDays = decimal.NewFromInt(fullDays).
		Add(decimal.NewFromInt(summary.HalfDays).Mul(decimal.NewFromFloat(0.5)))

	return summary, nil
}
