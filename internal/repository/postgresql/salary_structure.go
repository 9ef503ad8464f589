package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/salary"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `
	id, employee_id, basic_salary, hra, conveyance_allowance, medical_allowance,
	special_allowance, pf_contribution, esi_contribution, professional_tax,
	effective_from, effective_to, is_active, created_at, updated_at`

func scanStructure(row pgx.Row) (salary.SalaryStructure, error) {
	var s salary.SalaryStructure
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.BasicSalary, &s.HRA, &s.ConveyanceAllowance, &s.MedicalAllowance,
		&s.SpecialAllowance, &s.PFContribution, &s.ESIContribution, &s.ProfessionalTax,
		&s.EffectiveFrom, &s.EffectiveTo, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *salaryRepository) Create(ctx context.Context, structure salary.SalaryStructure) (salary.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (
			id, employee_id, basic_salary, hra, conveyance_allowance, medical_allowance,
			special_allowance, pf_contribution, esi_contribution, professional_tax,
			effective_from, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true)
		RETURNING` + salaryColumns

	s, err := scanStructure(q.QueryRow(ctx, query,
		uuid.New().String(), structure.EmployeeID, structure.BasicSalary, structure.HRA,
		structure.ConveyanceAllowance, structure.MedicalAllowance, structure.SpecialAllowance,
		structure.PFContribution, structure.ESIContribution, structure.ProfessionalTax,
		structure.EffectiveFrom,
	))
	if err != nil {
		return salary.SalaryStructure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}

	return s, nil
}

func (r *salaryRepository) GetActiveByEmployeeID(ctx context.Context, employeeID string) (salary.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + salaryColumns + `
		FROM salary_structures
		WHERE employee_id = $1 AND is_active = true
		ORDER BY effective_from DESC
		LIMIT 1
	`

	s, err := scanStructure(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryStructure{}, salary.ErrStructureNotFound
		}
		return salary.SalaryStructure{}, fmt.Errorf("failed to get active salary structure: %w", err)
	}

	return s, nil
}

func (r *salaryRepository) DeactivateByEmployeeID(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE salary_structures
		SET is_active = false, effective_to = CURRENT_DATE, updated_at = NOW()
		WHERE employee_id = $1 AND is_active = true
	`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to deactivate salary structures: %w", err)
	}

	return nil
}

func (r *salaryRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]salary.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT` + salaryColumns + `
		FROM salary_structures
		WHERE employee_id = $1
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}
	defer rows.Close()

	var structures []salary.SalaryStructure
	for rows.Next() {
		s, err := scanStructure(rows)
		if err != nil {
			return nil, err
		}
		structures = append(structures, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return structures, nil
}
