package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/attendance"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/payroll"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/user"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/database"
	"github.com/payflow-pro/payflow-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Helper to get user_id, employee_id and role from JWT context
func getClaimsFromContext(ctx context.Context) (userID string, employeeID *string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", nil, "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", nil, "", fmt.Errorf("user_id claim is missing or invalid")
	}

	if eid, ok := claims["employee_id"].(string); ok && eid != "" {
		employeeID = &eid
	}

	roleStr, _ := claims["role"].(string)
	role = user.Role(roleStr)
	if !role.Valid() {
		return "", nil, "", fmt.Errorf("role claim is missing or invalid")
	}

	return userID, employeeID, role, nil
}

func (s *PayrollServiceImpl) CreateRun(ctx context.Context, req payroll.CreatePayrollRunRequest) (payroll.PayrollRunResponse, error) {
	userID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	periodStart, _ := time.Parse("2006-01-02", req.PeriodStart)
	periodEnd, _ := time.Parse("2006-01-02", req.PeriodEnd)
	payDate, _ := time.Parse("2006-01-02", req.PayDate)

	overlaps, err := s.payrollRepo.HasOverlappingRun(ctx, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}
	if overlaps {
		return payroll.PayrollRunResponse{}, payroll.ErrOverlappingPeriod
	}

	run, err := s.payrollRepo.CreateRun(ctx, payroll.PayrollRun{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		PayDate:     payDate,
		Status:      payroll.RunStatusDraft,
		ProcessedBy: &userID,
		Notes:       req.Notes,
	})
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return payroll.ToRunResponse(run), nil
}

func (s *PayrollServiceImpl) GetRun(ctx context.Context, id string) (payroll.PayrollRunResponse, error) {
	run, err := s.payrollRepo.GetRunByID(ctx, id)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return payroll.ToRunResponse(run), nil
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context, filter payroll.RunFilter) (payroll.ListPayrollRunResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	runs, totalCount, err := s.payrollRepo.ListRuns(ctx, filter)
	if err != nil {
		return payroll.ListPayrollRunResponse{}, err
	}

	data := make([]payroll.PayrollRunResponse, 0, len(runs))
	for _, run := range runs {
		data = append(data, payroll.ToRunResponse(run))
	}

	return payroll.ListPayrollRunResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// ProcessRun computes and persists payroll items for every eligible employee
// of the run's period. The claim, the item inserts and the totals update all
// happen in one transaction, so a failed run leaves no partial items behind
// and the run stays in draft.
func (s *PayrollServiceImpl) ProcessRun(ctx context.Context, id string) (payroll.ProcessPayrollResponse, error) {
	if _, _, _, err := getClaimsFromContext(ctx); err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	var resp payroll.ProcessPayrollResponse

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		run, err := s.payrollRepo.GetRunByID(txCtx, id)
		if err != nil {
			return err
		}
		if run.Status != payroll.RunStatusDraft {
			return payroll.ErrRunNotDraft
		}

		claimed, err := s.payrollRepo.ClaimRunForProcessing(txCtx, id)
		if err != nil {
			return err
		}
		if !claimed {
			return payroll.ErrRunNotDraft
		}

		workingDays := payroll.WorkingDays(run.PeriodStart, run.PeriodEnd)
		if workingDays == 0 {
			return payroll.ErrNoWorkingDays
		}

		eligible, err := s.payrollRepo.GetEligibleEmployees(txCtx, run.PeriodEnd)
		if err != nil {
			return err
		}
		if len(eligible) == 0 {
			return payroll.ErrNoEligibleEmployees
		}

		totals := payroll.RunTotals{
			TotalGrossSalary: decimal.Zero,
			TotalDeductions:  decimal.Zero,
			TotalNetSalary:   decimal.Zero,
		}

		for _, emp := range eligible {
			summary, err := s.attendanceRepo.GetPeriodSummary(txCtx, emp.EmployeeID, run.PeriodStart, run.PeriodEnd)
			if err != nil {
				return err
			}

			item := computeItem(emp, summary, workingDays)
			item.PayrollRunID = run.ID

			if _, err := s.payrollRepo.CreateItem(txCtx, item); err != nil {
				return err
			}

			totals.TotalEmployees++
			totals.TotalGrossSalary = totals.TotalGrossSalary.Add(item.GrossSalary)
			totals.TotalDeductions = totals.TotalDeductions.Add(item.TotalDeductions)
			totals.TotalNetSalary = totals.TotalNetSalary.Add(item.NetSalary)
		}

		if err := s.payrollRepo.CompleteRun(txCtx, id, totals); err != nil {
			return err
		}

		resp = payroll.ProcessPayrollResponse{
			TotalEmployees:   totals.TotalEmployees,
			TotalGrossSalary: totals.TotalGrossSalary,
			TotalDeductions:  totals.TotalDeductions,
			TotalNetSalary:   totals.TotalNetSalary,
		}
		return nil
	})
	if err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	return resp, nil
}

func (s *PayrollServiceImpl) ApproveRun(ctx context.Context, id string) (payroll.PayrollRunResponse, error) {
	userID, _, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	approved, err := s.payrollRepo.ApproveRun(ctx, id, userID)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}
	if !approved {
		if _, err := s.payrollRepo.GetRunByID(ctx, id); err != nil {
			return payroll.PayrollRunResponse{}, err
		}
		return payroll.PayrollRunResponse{}, payroll.ErrRunNotCompleted
	}

	run, err := s.payrollRepo.GetRunByID(ctx, id)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return payroll.ToRunResponse(run), nil
}

func (s *PayrollServiceImpl) CancelRun(ctx context.Context, id string) (payroll.PayrollRunResponse, error) {
	cancelled, err := s.payrollRepo.CancelRun(ctx, id)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}
	if !cancelled {
		if _, err := s.payrollRepo.GetRunByID(ctx, id); err != nil {
			return payroll.PayrollRunResponse{}, err
		}
		return payroll.PayrollRunResponse{}, payroll.ErrRunNotCancellable
	}

	run, err := s.payrollRepo.GetRunByID(ctx, id)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return payroll.ToRunResponse(run), nil
}

func (s *PayrollServiceImpl) ListRunItems(ctx context.Context, runID string, page, limit int) (payroll.ListPayrollItemResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	if _, err := s.payrollRepo.GetRunByID(ctx, runID); err != nil {
		return payroll.ListPayrollItemResponse{}, err
	}

	items, totalCount, err := s.payrollRepo.ListItemsByRun(ctx, runID, page, limit)
	if err != nil {
		return payroll.ListPayrollItemResponse{}, err
	}

	data := make([]payroll.PayrollItemResponse, 0, len(items))
	for _, item := range items {
		data = append(data, payroll.ToItemResponse(item))
	}

	return payroll.ListPayrollItemResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
	}, nil
}

func (s *PayrollServiceImpl) ListEmployeePayslips(ctx context.Context, employeeID string, year *int, page, limit int) ([]payroll.PayslipResponse, error) {
	_, requesterEmployeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	// Payslips are visible to admin roles and to the employee themselves.
	// Managers do not get payslip access to their reports.
	isSelf := requesterEmployeeID != nil && *requesterEmployeeID == employeeID
	if !isSelf && !user.HasPermission(role, user.PermissionEmployeeViewAll) {
		return nil, user.ErrEmployeeAccessOnly
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	payslips, err := s.payrollRepo.ListPayslipsByEmployee(ctx, employeeID, year, page, limit)
	if err != nil {
		return nil, err
	}

	data := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		data = append(data, payroll.ToPayslipResponse(p))
	}

	return data, nil
}
