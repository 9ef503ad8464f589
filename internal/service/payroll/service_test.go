package payroll

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/payroll"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/user"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/database"
	jwtpkg "github.com/payflow-pro/payflow-backend-go/internal/pkg/jwt"
	"github.com/payflow-pro/payflow-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPayrollDB *database.DB

var testSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS departments (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		code TEXT NOT NULL,
		head_id UUID,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT departments_code_key UNIQUE (code)
	)`,
	`CREATE TABLE IF NOT EXISTS designations (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		level INT,
		department_id UUID,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		user_id UUID,
		employee_code TEXT NOT NULL UNIQUE,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		date_of_birth DATE,
		joining_date DATE NOT NULL,
		resignation_date DATE,
		department_id UUID,
		designation_id UUID,
		manager_id UUID,
		employment_type TEXT NOT NULL,
		pan_number TEXT,
		bank_account_number TEXT,
		bank_ifsc TEXT,
		bank_name TEXT,
		address TEXT,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT employees_email_key UNIQUE (email)
	)`,
	`CREATE TABLE IF NOT EXISTS salary_structures (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees(id),
		basic_salary NUMERIC(12,2) NOT NULL,
		hra NUMERIC(12,2) NOT NULL DEFAULT 0,
		conveyance_allowance NUMERIC(12,2) NOT NULL DEFAULT 0,
		medical_allowance NUMERIC(12,2) NOT NULL DEFAULT 0,
		special_allowance NUMERIC(12,2) NOT NULL DEFAULT 0,
		pf_contribution NUMERIC(12,2) NOT NULL DEFAULT 0,
		esi_contribution NUMERIC(12,2) NOT NULL DEFAULT 0,
		professional_tax NUMERIC(12,2) NOT NULL DEFAULT 0,
		effective_from DATE NOT NULL,
		effective_to DATE,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees(id),
		date DATE NOT NULL,
		check_in_time TEXT,
		check_out_time TEXT,
		total_hours NUMERIC(5,2),
		overtime_hours NUMERIC(5,2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		remarks TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (employee_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS payroll_runs (
		id UUID PRIMARY KEY,
		payroll_period_start DATE NOT NULL,
		payroll_period_end DATE NOT NULL,
		payroll_date DATE NOT NULL,
		status TEXT NOT NULL DEFAULT 'draft',
		total_employees INT NOT NULL DEFAULT 0,
		total_gross_salary NUMERIC(14,2) NOT NULL DEFAULT 0,
		total_deductions NUMERIC(14,2) NOT NULL DEFAULT 0,
		total_net_salary NUMERIC(14,2) NOT NULL DEFAULT 0,
		processed_by UUID,
		approved_by UUID,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payroll_items (
		id UUID PRIMARY KEY,
		payroll_run_id UUID NOT NULL REFERENCES payroll_runs(id),
		employee_id UUID NOT NULL REFERENCES employees(id),
		basic_salary NUMERIC(12,2) NOT NULL,
		hra NUMERIC(12,2) NOT NULL,
		conveyance_allowance NUMERIC(12,2) NOT NULL,
		medical_allowance NUMERIC(12,2) NOT NULL,
		special_allowance NUMERIC(12,2) NOT NULL,
		overtime_amount NUMERIC(12,2) NOT NULL,
		gross_salary NUMERIC(12,2) NOT NULL,
		pf_deduction NUMERIC(12,2) NOT NULL,
		esi_deduction NUMERIC(12,2) NOT NULL,
		professional_tax NUMERIC(12,2) NOT NULL,
		tds_deduction NUMERIC(12,2) NOT NULL,
		total_deductions NUMERIC(12,2) NOT NULL,
		net_salary NUMERIC(12,2) NOT NULL,
		days_present NUMERIC(5,2) NOT NULL,
		days_absent NUMERIC(5,2) NOT NULL,
		overtime_hours NUMERIC(5,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

func payrollTestInit(t *testing.T) {
	if testPayrollDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Skipf("test database unreachable: %v", err)
	}

	ctx := context.Background()
	for _, stmt := range testSchema {
		_, err := db.Exec(ctx, stmt)
		require.NoError(t, err)
	}
	testPayrollDB = db
}

func truncatePayrollTables(t *testing.T, ctx context.Context) {
	tables := []string{"payroll_items", "payroll_runs", "attendance_records", "salary_structures", "employees", "users"}
	for _, table := range tables {
		_, err := testPayrollDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newTestService(t *testing.T) payroll.PayrollService {
	payrollTestInit(t)
	payrollRepo := postgresql.NewPayrollRepository(testPayrollDB)
	attendanceRepo := postgresql.NewAttendanceRepository(testPayrollDB)
	employeeRepo := postgresql.NewEmployeeRepository(testPayrollDB)
	return NewPayrollService(testPayrollDB, payrollRepo, attendanceRepo, employeeRepo)
}

func payrollAdminContext(t *testing.T, ctx context.Context, userID string) context.Context {
	jwtSvc := jwtpkg.NewJWTService("payroll-test-secret", "1h", "24h")
	tokenStr, _, err := jwtSvc.GenerateAccessToken(userID, "payroll@payflow.test", nil, user.RolePayrollAdmin)
	require.NoError(t, err)
	token, err := jwtSvc.JWTAuth().Decode(tokenStr)
	require.NoError(t, err)
	return jwtauth.NewContext(ctx, token, nil)
}

func createTestUser(t *testing.T, ctx context.Context) string {
	id := uuid.New().String()
	_, err := testPayrollDB.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role)
		VALUES ($1, $2, 'x', 'payroll_admin')
	`, id, fmt.Sprintf("user-%s@payflow.test", id[:8]))
	require.NoError(t, err)
	return id
}

func createTestEmployee(t *testing.T, ctx context.Context, code string, basic, hra, professionalTax string) string {
	id := uuid.New().String()
	_, err := testPayrollDB.Exec(ctx, `
		INSERT INTO employees (id, employee_code, first_name, last_name, email, joining_date, employment_type)
		VALUES ($1, $2, 'Test', $2, $3, '2025-01-01', 'full_time')
	`, id, code, fmt.Sprintf("%s@payflow.test", code))
	require.NoError(t, err)

	_, err = testPayrollDB.Exec(ctx, `
		INSERT INTO salary_structures (id, employee_id, basic_salary, hra, professional_tax, effective_from)
		VALUES ($1, $2, $3, $4, $5, '2025-01-01')
	`, uuid.New().String(), id, basic, hra, professionalTax)
	require.NoError(t, err)

	return id
}

// markPresent inserts a present attendance row for every weekday in the range.
func markPresent(t *testing.T, ctx context.Context, employeeID string, start, end time.Time) {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		_, err := testPayrollDB.Exec(ctx, `
			INSERT INTO attendance_records (id, employee_id, date, status)
			VALUES ($1, $2, $3, 'present')
		`, uuid.New().String(), employeeID, d)
		require.NoError(t, err)
	}
}

func createRunForJune(t *testing.T, ctx context.Context, svc payroll.PayrollService) payroll.PayrollRunResponse {
	run, err := svc.CreateRun(ctx, payroll.CreatePayrollRunRequest{
		PeriodStart: "2026-06-01",
		PeriodEnd:   "2026-06-30",
		PayDate:     "2026-07-01",
	})
	require.NoError(t, err)
	require.Equal(t, "draft", run.Status)
	return run
}

func TestProcessRunFullCycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	userID := createTestUser(t, ctx)
	ctx = payrollAdminContext(t, ctx, userID)

	periodStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	empA := createTestEmployee(t, ctx, "EMP0001", "44000", "26000", "200")
	empB := createTestEmployee(t, ctx, "EMP0002", "12000", "4800", "150")
	markPresent(t, ctx, empA, periodStart, periodEnd)
	markPresent(t, ctx, empB, periodStart, periodEnd)

	run := createRunForJune(t, ctx, svc)

	result, err := svc.ProcessRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalEmployees)

	// empA: gross 70000, pf 5280, tds 7000, pt 200 -> net 57520
	// empB: gross 16800, pf 1440, esi 126, pt 150 -> net 15084
	assert.True(t, result.TotalGrossSalary.Equal(decimal.NewFromInt(86800)), "gross = %s", result.TotalGrossSalary)
	assert.True(t, result.TotalDeductions.Equal(decimal.RequireFromString("14196")), "deductions = %s", result.TotalDeductions)
	assert.True(t, result.TotalNetSalary.Equal(decimal.RequireFromString("72604")), "net = %s", result.TotalNetSalary)

	processed, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", processed.Status)

	items, err := svc.ListRunItems(ctx, run.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, items.Data, 2)
	assert.Equal(t, "EMP0001", *items.Data[0].EmployeeCode)

	approved, err := svc.ApproveRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	assert.NotNil(t, approved.ApprovedBy)
}

func TestProcessRunRejectsNonDraft(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	userID := createTestUser(t, ctx)
	ctx = payrollAdminContext(t, ctx, userID)

	periodStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	emp := createTestEmployee(t, ctx, "EMP0001", "30000", "12000", "200")
	markPresent(t, ctx, emp, periodStart, periodEnd)

	run := createRunForJune(t, ctx, svc)

	_, err := svc.ProcessRun(ctx, run.ID)
	require.NoError(t, err)

	_, err = svc.ProcessRun(ctx, run.ID)
	assert.ErrorIs(t, err, payroll.ErrRunNotDraft)
}

func TestProcessRunNoEligibleEmployeesRollsBack(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	userID := createTestUser(t, ctx)
	ctx = payrollAdminContext(t, ctx, userID)

	run := createRunForJune(t, ctx, svc)

	_, err := svc.ProcessRun(ctx, run.ID)
	assert.ErrorIs(t, err, payroll.ErrNoEligibleEmployees)

	// The claim was rolled back with everything else
	after, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", after.Status)
}

func TestCreateRunRejectsOverlap(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	userID := createTestUser(t, ctx)
	ctx = payrollAdminContext(t, ctx, userID)

	createRunForJune(t, ctx, svc)

	_, err := svc.CreateRun(ctx, payroll.CreatePayrollRunRequest{
		PeriodStart: "2026-06-15",
		PeriodEnd:   "2026-07-14",
		PayDate:     "2026-07-15",
	})
	assert.ErrorIs(t, err, payroll.ErrOverlappingPeriod)

	// An adjacent period is fine
	_, err = svc.CreateRun(ctx, payroll.CreatePayrollRunRequest{
		PeriodStart: "2026-07-01",
		PeriodEnd:   "2026-07-31",
		PayDate:     "2026-08-01",
	})
	assert.NoError(t, err)
}

func TestCancelRunLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	userID := createTestUser(t, ctx)
	ctx = payrollAdminContext(t, ctx, userID)

	periodStart := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	emp := createTestEmployee(t, ctx, "EMP0001", "30000", "12000", "200")
	markPresent(t, ctx, emp, periodStart, periodEnd)

	// Draft runs can be cancelled
	run := createRunForJune(t, ctx, svc)
	cancelled, err := svc.CancelRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	// A cancelled run no longer blocks the period
	run2 := createRunForJune(t, ctx, svc)
	_, err = svc.ProcessRun(ctx, run2.ID)
	require.NoError(t, err)
	_, err = svc.ApproveRun(ctx, run2.ID)
	require.NoError(t, err)

	// Approved runs cannot be cancelled
	_, err = svc.CancelRun(ctx, run2.ID)
	assert.ErrorIs(t, err, payroll.ErrRunNotCancellable)
}

func TestApproveRequiresCompleted(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	truncatePayrollTables(t, ctx)

	userID := createTestUser(t, ctx)
	ctx = payrollAdminContext(t, ctx, userID)

	run := createRunForJune(t, ctx, svc)

	_, err := svc.ApproveRun(ctx, run.ID)
	assert.ErrorIs(t, err, payroll.ErrRunNotCompleted)
}
