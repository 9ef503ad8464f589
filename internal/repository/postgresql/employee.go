package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeSelect = `
	SELECT
		e.id, e.user_id, e.employee_code, e.first_name, e.last_name, e.email, e.phone,
		e.date_of_birth, e.joining_date, e.resignation_date,
		e.department_id, e.designation_id, e.manager_id, e.employment_type,
		e.pan_number, e.bank_account_number, e.bank_ifsc, e.bank_name, e.address,
		e.is_active, e.created_at, e.updated_at,
		d.name AS department_name,
		des.title AS designation_title,
		m.first_name AS manager_first_name,
		m.last_name AS manager_last_name
	FROM employees e
	LEFT JOIN departments d ON e.department_id = d.id
	LEFT JOIN designations des ON e.designation_id = des.id
	LEFT JOIN employees m ON e.manager_id = m.id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.EmployeeCode, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.DateOfBirth, &e.JoiningDate, &e.ResignationDate,
		&e.DepartmentID, &e.DesignationID, &e.ManagerID, &e.EmploymentType,
		&e.PANNumber, &e.BankAccountNumber, &e.BankIFSC, &e.BankName, &e.Address,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName, &e.DesignationTitle, &e.ManagerFirstName, &e.ManagerLastName,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, employee_code, first_name, last_name, email, phone,
			date_of_birth, joining_date, department_id, designation_id, manager_id,
			employment_type, pan_number, bank_account_number, bank_ifsc, bank_name,
			address, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, true)
		RETURNING id, created_at, updated_at
	`

	emp.ID = uuid.New().String()
	err := q.QueryRow(ctx, query,
		emp.ID, emp.UserID, emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.Phone,
		emp.DateOfBirth, emp.JoiningDate, emp.DepartmentID, emp.DesignationID, emp.ManagerID,
		emp.EmploymentType, emp.PANNumber, emp.BankAccountNumber, emp.BankIFSC, emp.BankName,
		emp.Address,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "employees_email_key") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	emp.IsActive = true

	return emp, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.user_id = $1`, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("e.is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}
	if filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, filter.DepartmentID)
		argIdx++
	}
	if filter.DesignationID != "" {
		conditions = append(conditions, fmt.Sprintf("e.designation_id = $%d", argIdx))
		args = append(args, filter.DesignationID)
		argIdx++
	}
	if filter.EmploymentType != "" {
		conditions = append(conditions, fmt.Sprintf("e.employment_type = $%d", argIdx))
		args = append(args, filter.EmploymentType)
		argIdx++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.email ILIKE $%d OR e.employee_code ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM employees e` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := employeeSelect + whereClause +
		fmt.Sprintf(" ORDER BY e.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, totalCount, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	var sets []string
	var args []interface{}
	argIdx := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.FirstName != nil {
		set("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		set("last_name", *req.LastName)
	}
	if req.Phone != nil {
		set("phone", *req.Phone)
	}
	if req.DepartmentID != nil {
		set("department_id", *req.DepartmentID)
	}
	if req.DesignationID != nil {
		set("designation_id", *req.DesignationID)
	}
	if req.ManagerID != nil {
		set("manager_id", *req.ManagerID)
	}
	if req.EmploymentType != nil {
		set("employment_type", *req.EmploymentType)
	}
	if req.PANNumber != nil {
		set("pan_number", *req.PANNumber)
	}
	if req.BankAccountNumber != nil {
		set("bank_account_number", *req.BankAccountNumber)
	}
	if req.BankIFSC != nil {
		set("bank_ifsc", *req.BankIFSC)
	}
	if req.BankName != nil {
		set("bank_name", *req.BankName)
	}
	if req.Address != nil {
		set("address", *req.Address)
	}

	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d", strings.Join(sets, ", "), argIdx)
	args = append(args, req.ID)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	var query string
	var args []interface{}
	if active {
		query = `UPDATE employees SET is_active = true, resignation_date = NULL, updated_at = NOW() WHERE id = $1`
		args = []interface{}{id}
	} else {
		query = `UPDATE employees SET is_active = false, resignation_date = $2, updated_at = NOW() WHERE id = $1`
		args = []interface{}{id, time.Now()}
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set employee active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) ClearManager(ctx context.Context, managerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET manager_id = NULL, updated_at = NOW() WHERE manager_id = $1`
	if _, err := q.Exec(ctx, query, managerID); err != nil {
		return fmt.Errorf("failed to clear manager references: %w", err)
	}

	return nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}
