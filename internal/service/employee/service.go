package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/employee"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/salary"
	"github.com/payflow-pro/payflow-backend-go/internal/domain/user"
	"github.com/payflow-pro/payflow-backend-go/internal/pkg/database"
	"github.com/payflow-pro/payflow-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	salaryRepo   salary.SalaryRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	salaryRepo salary.SalaryRepository,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		salaryRepo:   salaryRepo,
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

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ManagerID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.ManagerID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrManagerNotFound
			}
			return employee.EmployeeResponse{}, err
		}
	}

	count, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	joiningDate, _ := time.Parse("2006-01-02", req.JoiningDate)
	emp := employee.Employee{
		EmployeeCode:      fmt.Sprintf("EMP%04d", count+1),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             req.Phone,
		JoiningDate:       joiningDate,
		DepartmentID:      req.DepartmentID,
		DesignationID:     req.DesignationID,
		ManagerID:         req.ManagerID,
		EmploymentType:    employee.EmploymentType(req.EmploymentType),
		PANNumber:         req.PANNumber,
		BankAccountNumber: req.BankAccountNumber,
		BankIFSC:          req.BankIFSC,
		BankName:          req.BankName,
		Address:           req.Address,
		IsActive:          true,
	}
	if req.DateOfBirth != nil {
		dob, _ := time.Parse("2006-01-02", *req.DateOfBirth)
		emp.DateOfBirth = &dob
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	requesterEmployeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !user.CanAccessEmployee(role, requesterEmployeeID, emp.ID, emp.ManagerID) {
		return employee.EmployeeResponse{}, user.ErrEmployeeAccessOnly
	}

	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	employees, totalCount, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		data = append(data, employee.ToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ManagerID != nil {
		if *req.ManagerID == req.ID {
			return employee.EmployeeResponse{}, employee.ErrManagerNotFound
		}
		if _, err := s.employeeRepo.GetByID(ctx, *req.ManagerID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrManagerNotFound
			}
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !emp.IsActive {
		return employee.ErrAlreadyInactive
	}

	// Deactivation cascades: the active salary structure is retired and the
	// employee stops being anyone's manager, all in one transaction.
	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.SetActive(txCtx, id, false); err != nil {
			return err
		}
		if err := s.salaryRepo.DeactivateByEmployeeID(txCtx, id); err != nil {
			return err
		}
		return s.employeeRepo.ClearManager(txCtx, id)
	})
}

func (s *EmployeeServiceImpl) Activate(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp.IsActive {
		return employee.ErrAlreadyActive
	}

	return s.employeeRepo.SetActive(ctx, id, true)
}

// ========== SALARY STRUCTURES ==========

func (s *EmployeeServiceImpl) CreateStructure(ctx context.Context, req salary.CreateSalaryStructureRequest) (salary.SalaryStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryStructureResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.SalaryStructureResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)
	orZero := func(v *decimal.Decimal) decimal.Decimal {
		if v == nil {
			return decimal.Zero
		}
		return *v
	}

	structure := salary.SalaryStructure{
		EmployeeID:          req.EmployeeID,
		BasicSalary:         req.BasicSalary,
		HRA:                 orZero(req.HRA),
		ConveyanceAllowance: orZero(req.ConveyanceAllowance),
		MedicalAllowance:    orZero(req.MedicalAllowance),
		SpecialAllowance:    orZero(req.SpecialAllowance),
		PFContribution:      orZero(req.PFContribution),
		ESIContribution:     orZero(req.ESIContribution),
		ProfessionalTax:     orZero(req.ProfessionalTax),
		EffectiveFrom:       effectiveFrom,
		IsActive:            true,
	}

	var created salary.SalaryStructure
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.salaryRepo.DeactivateByEmployeeID(txCtx, req.EmployeeID); err != nil {
			return err
		}
		var err error
		created, err = s.salaryRepo.Create(txCtx, structure)
		return err
	})
	if err != nil {
		return salary.SalaryStructureResponse{}, err
	}

	return salary.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetActiveStructure(ctx context.Context, employeeID string) (salary.SalaryStructureResponse, error) {
	requesterEmployeeID, role, err := getClaimsFromContext(ctx)
	if err != nil {
		return salary.SalaryStructureResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return salary.SalaryStructureResponse{}, err
	}

	// Salary data is tighter than general employee data: managers do not see
	// their reports' structures.
	isSelf := requesterEmployeeID != nil && *requesterEmployeeID == emp.ID
	if !isSelf && !user.HasPermission(role, user.PermissionSalaryManage) && !user.HasPermission(role, user.PermissionPayrollManage) {
		return salary.SalaryStructureResponse{}, user.ErrEmployeeAccessOnly
	}

	structure, err := s.salaryRepo.GetActiveByEmployeeID(ctx, employeeID)
	if err != nil {
		return salary.SalaryStructureResponse{}, err
	}

	return salary.ToResponse(structure), nil
}

func (s *EmployeeServiceImpl) ListStructures(ctx context.Context, employeeID string) ([]salary.SalaryStructureResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	structures, err := s.salaryRepo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	data := make([]salary.SalaryStructureResponse, 0, len(structures))
	for _, structure := range structures {
		data = append(data, salary.ToResponse(structure))
	}

	return data, nil
}
