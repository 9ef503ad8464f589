package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/department"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) CreateDepartment(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, code, head_id, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING id, name, code, head_id, is_active, created_at, updated_at
	`

	var d department.Department
	err := q.QueryRow(ctx, query, uuid.New().String(), dept.Name, dept.Code, dept.HeadID).Scan(
		&d.ID, &d.Name, &d.Code, &d.HeadID, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "departments_code_key") {
			return department.Department{}, department.ErrDepartmentCodeTaken
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return d, nil
}

func (r *departmentRepository) ListDepartments(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, head_id, is_active, created_at, updated_at
		FROM departments
		WHERE is_active = true
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Code, &d.HeadID, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

func (r *departmentRepository) CreateDesignation(ctx context.Context, des department.Designation) (department.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO designations (id, title, level, department_id, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING id, title, level, department_id, is_active, created_at, updated_at
	`

	var d department.Designation
	err := q.QueryRow(ctx, query, uuid.New().String(), des.Title, des.Level, des.DepartmentID).Scan(
		&d.ID, &d.Title, &d.Level, &d.DepartmentID, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return department.Designation{}, fmt.Errorf("failed to create designation: %w", err)
	}

	return d, nil
}

func (r *departmentRepository) ListDesignations(ctx context.Context, departmentID *string) ([]department.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, level, department_id, is_active, created_at, updated_at
		FROM designations
		WHERE is_active = true
	`
	var args []interface{}
	if departmentID != nil {
		query += ` AND department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY title`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}
	defer rows.Close()

	var designations []department.Designation
	for rows.Next() {
		var d department.Designation
		if err := rows.Scan(&d.ID, &d.Title, &d.Level, &d.DepartmentID, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		designations = append(designations, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return designations, nil
}
