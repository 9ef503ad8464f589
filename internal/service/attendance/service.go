package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func getClaimsFromContext(ctx context.Context) (employeeID *string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	if eid, ok := claims["employee_id"].(string); ok && eid != "" {
		employeeID = &eid
	}

	roleStr, _ := claims["role"].(string)
	role = user.Role(roleStr)
	if !role.Valid() {
		return nil, "", fmt.Errorf("role claim is missing or invalid")
	}

	return employeeID, role, nil
}

func (s *AttendanceServiceImpl) Upsert(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.AttendanceRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceRecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceRecordResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	rec := attendance.AttendanceRecord{
		EmployeeID:   req.EmployeeID,
		Date:         date,
		Status:       attendance.Status(req.Status),
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Remarks:      req.Remarks,
	}
	if req.OvertimeHours != nil {
		rec.OvertimeHours = *req.OvertimeHours
	}

	saved, err := s.attendanceRepo.Upsert(ctx, rec)
	if err != nil {
		return attendance.AttendanceRecordResponse{}, err
	}

	return attendance.ToResponse(saved), nil
}

func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, page, limit int) (attendance.ListAttendanceResponse, error) {
	requesterEmployeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	canViewAll := user.HasPermission(role, user.PermissionAttendanceViewAll)
	if !canViewAll && !user.CanAccessEmployee(role, requesterEmployeeID, emp.ID, emp.ManagerID) {
		return attendance.ListAttendanceResponse{}, user.ErrEmployeeAccessOnly
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 31
	}

	records, totalCount, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, from, to, page, limit)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	data := make([]attendance.AttendanceRecordResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, attendance.ToResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
	}, nil
}
