package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/payroll"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// ========== RUNS ==========

const runSelect = `
	SELECT
		pr.id, pr.payroll_period_start, pr.payroll_period_end, pr.payroll_date, pr.status,
		pr.total_employees, pr.total_gross_salary, pr.total_deductions, pr.total_net_salary,
		pr.processed_by, pr.approved_by, pr.notes, pr.created_at, pr.updated_at,
		u1.email AS processed_by_email,
		u2.email AS approved_by_email
	FROM payroll_runs pr
	LEFT JOIN users u1 ON pr.processed_by = u1.id
	LEFT JOIN users u2 ON pr.approved_by = u2.id
`

func scanRun(row pgx.Row) (payroll.PayrollRun, error) {
	var r payroll.PayrollRun
	err := row.Scan(
		&r.ID, &r.PeriodStart, &r.PeriodEnd, &r.PayDate, &r.Status,
		&r.TotalEmployees, &r.TotalGrossSalary, &r.TotalDeductions, &r.TotalNetSalary,
		&r.ProcessedBy, &r.ApprovedBy, &r.Notes, &r.CreatedAt, &r.UpdatedAt,
		&r.ProcessedByEmail, &r.ApprovedByEmail,
	)
	return r, err
}

func (r *payrollRepository) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (
			id, payroll_period_start, payroll_period_end, payroll_date, status,
			total_employees, total_gross_salary, total_deductions, total_net_salary,
			processed_by, notes
		) VALUES ($1, $2, $3, $4, $5, 0, 0, 0, 0, $6, $7)
		RETURNING id, created_at, updated_at
	`

	run.ID = uuid.New().String()
	err := q.QueryRow(ctx, query,
		run.ID, run.PeriodStart, run.PeriodEnd, run.PayDate, run.Status,
		run.ProcessedBy, run.Notes,
	).Scan(&run.ID, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return run, nil
}

func (r *payrollRepository) GetRunByID(ctx context.Context, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	run, err := scanRun(q.QueryRow(ctx, runSelect+` WHERE pr.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	return run, nil
}

func (r *payrollRepository) ListRuns(ctx context.Context, filter payroll.RunFilter) ([]payroll.PayrollRun, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.Status != "" && filter.Status != "all" {
		conditions = append(conditions, fmt.Sprintf("pr.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Year != 0 {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM pr.payroll_period_start) = $%d", argIdx))
		args = append(args, filter.Year)
		argIdx++
	}
	if filter.Month != 0 {
		conditions = append(conditions, fmt.Sprintf("EXTRACT(MONTH FROM pr.payroll_period_start) = $%d", argIdx))
		args = append(args, int(filter.Month))
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM payroll_runs pr` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll runs: %w", err)
	}

	query := runSelect + whereClause +
		fmt.Sprintf(" ORDER BY pr.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, 0, err
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return runs, totalCount, nil
}

func (r *payrollRepository) HasOverlappingRun(ctx context.Context, periodStart, periodEnd time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_runs
			WHERE status NOT IN ('cancelled')
			  AND payroll_period_start <= $2
			  AND payroll_period_end >= $1
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, periodStart, periodEnd).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping runs: %w", err)
	}

	return exists, nil
}

func (r *payrollRepository) ClaimRunForProcessing(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Conditional update: the affected-row count decides whether processing
	// may proceed, so two concurrent requests cannot both claim the run.
	tag, err := q.Exec(ctx, `
		UPDATE payroll_runs
		SET status = 'processing', updated_at = NOW()
		WHERE id = $1 AND status = 'draft'
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to claim payroll run: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *payrollRepository) CompleteRun(ctx context.Context, id string, totals payroll.RunTotals) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_runs
		SET status = 'completed', total_employees = $2, total_gross_salary = $3,
			total_deductions = $4, total_net_salary = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'processing'
	`, id, totals.TotalEmployees, totals.TotalGrossSalary, totals.TotalDeductions, totals.TotalNetSalary)
	if err != nil {
		return fmt.Errorf("failed to complete payroll run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRunNotFound
	}

	return nil
}

func (r *payrollRepository) ApproveRun(ctx context.Context, id string, approvedBy string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_runs
		SET status = 'approved', approved_by = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'completed'
	`, id, approvedBy)
	if err != nil {
		return false, fmt.Errorf("failed to approve payroll run: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *payrollRepository) CancelRun(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_runs
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status NOT IN ('approved', 'cancelled')
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to cancel payroll run: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// ========== ITEMS ==========

func (r *payrollRepository) CreateItem(ctx context.Context, item payroll.PayrollItem) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_items (
			id, payroll_run_id, employee_id, basic_salary, hra, conveyance_allowance,
			medical_allowance, special_allowance, overtime_amount, gross_salary,
			pf_deduction, esi_deduction, professional_tax, tds_deduction,
			total_deductions, net_salary, days_present, days_absent, overtime_hours
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at
	`

	item.ID = uuid.New().String()
	err := q.QueryRow(ctx, query,
		item.ID, item.PayrollRunID, item.EmployeeID, item.BasicSalary, item.HRA,
		item.ConveyanceAllowance, item.MedicalAllowance, item.SpecialAllowance,
		item.OvertimeAmount, item.GrossSalary, item.PFDeduction, item.ESIDeduction,
		item.ProfessionalTax, item.TDSDeduction, item.TotalDeductions, item.NetSalary,
		item.DaysPresent, item.DaysAbsent, item.OvertimeHours,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return payroll.PayrollItem{}, fmt.Errorf("failed to create payroll item: %w", err)
	}

	return item, nil
}

const itemColumns = `
	pi.id, pi.payroll_run_id, pi.employee_id, pi.basic_salary, pi.hra,
	pi.conveyance_allowance, pi.medical_allowance, pi.special_allowance,
	pi.overtime_amount, pi.gross_salary, pi.pf_deduction, pi.esi_deduction,
	pi.professional_tax, pi.tds_deduction, pi.total_deductions, pi.net_salary,
	pi.days_present, pi.days_absent, pi.overtime_hours, pi.created_at`

func scanItem(row pgx.Row, withJoins bool) (payroll.PayrollItem, error) {
	var i payroll.PayrollItem
	dest := []interface{}{
		&i.ID, &i.PayrollRunID, &i.EmployeeID, &i.BasicSalary, &i.HRA,
		&i.ConveyanceAllowance, &i.MedicalAllowance, &i.SpecialAllowance,
		&i.OvertimeAmount, &i.GrossSalary, &i.PFDeduction, &i.ESIDeduction,
		&i.ProfessionalTax, &i.TDSDeduction, &i.TotalDeductions, &i.NetSalary,
		&i.DaysPresent, &i.DaysAbsent, &i.OvertimeHours, &i.CreatedAt,
	}
	if withJoins {
		dest = append(dest, &i.EmployeeCode, &i.FirstName, &i.LastName, &i.EmployeeEmail, &i.DepartmentName)
	}
	return i, row.Scan(dest...)
}

func (r *payrollRepository) ListItemsByRun(ctx context.Context, runID string, page, limit int) ([]payroll.PayrollItem, int64, error) {
	q := GetQuerier(ctx, r.db)

	var totalCount int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM payroll_items WHERE payroll_run_id = $1`, runID).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll items: %w", err)
	}

	query := `
		SELECT` + itemColumns + `,
			e.employee_code, e.first_name, e.last_name, e.email,
			d.name AS department_name
		FROM payroll_items pi
		JOIN employees e ON pi.employee_id = e.id
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE pi.payroll_run_id = $1
		ORDER BY e.employee_code
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, runID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll items: %w", err)
	}
	defer rows.Close()

	var items []payroll.PayrollItem
	for rows.Next() {
		item, err := scanItem(rows, true)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, totalCount, nil
}

func (r *payrollRepository) ListPayslipsByEmployee(ctx context.Context, employeeID string, year *int, page, limit int) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + itemColumns + `,
			e.employee_code, e.first_name, e.last_name, e.email,
			d.name AS department_name,
			pr.payroll_period_start, pr.payroll_period_end, pr.payroll_date, pr.status
		FROM payroll_items pi
		JOIN payroll_runs pr ON pi.payroll_run_id = pr.id
		JOIN employees e ON pi.employee_id = e.id
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE pi.employee_id = $1
	`
	args := []interface{}{employeeID}
	argIdx := 2
	if year != nil {
		query += fmt.Sprintf(` AND EXTRACT(YEAR FROM pr.payroll_period_start) = $%d`, argIdx)
		args = append(args, *year)
		argIdx++
	}
	query += fmt.Sprintf(` ORDER BY pr.payroll_period_start DESC LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		var p payroll.Payslip
		err := rows.Scan(
			&p.ID, &p.PayrollRunID, &p.EmployeeID, &p.BasicSalary, &p.HRA,
			&p.ConveyanceAllowance, &p.MedicalAllowance, &p.SpecialAllowance,
			&p.OvertimeAmount, &p.GrossSalary, &p.PFDeduction, &p.ESIDeduction,
			&p.ProfessionalTax, &p.TDSDeduction, &p.TotalDeductions, &p.NetSalary,
			&p.DaysPresent, &p.DaysAbsent, &p.OvertimeHours, &p.CreatedAt,
			&p.EmployeeCode, &p.FirstName, &p.LastName, &p.EmployeeEmail, &p.DepartmentName,
			&p.PeriodStart, &p.PeriodEnd, &p.PayDate, &p.RunStatus,
		)
		if err != nil {
			return nil, err
		}
		payslips = append(payslips, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payslips, nil
}

// ========== ELIGIBILITY ==========

func (r *payrollRepository) GetEligibleEmployees(ctx context.Context, asOf time.Time) ([]payroll.EligibleEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id, e.employee_code, e.first_name, e.last_name,
			ss.basic_salary, ss.hra, ss.conveyance_allowance, ss.medical_allowance,
			ss.special_allowance, ss.professional_tax
		FROM employees e
		JOIN salary_structures ss ON e.id = ss.employee_id
		WHERE e.is_active = true
		  AND ss.is_active = true
		  AND ss.effective_from <= $1
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to get eligible employees: %w", err)
	}
	defer rows.Close()

	var employees []payroll.EligibleEmployee
	for rows.Next() {
		var emp payroll.EligibleEmployee
		err := rows.Scan(
			&emp.EmployeeID, &emp.EmployeeCode, &emp.FirstName, &emp.LastName,
			&emp.BasicSalary, &emp.HRA, &emp.ConveyanceAllowance, &emp.MedicalAllowance,
			&emp.SpecialAllowance, &emp.ProfessionalTax,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
