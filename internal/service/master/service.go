package master

import (
	"context"

	"github.com/payflow-pro/payflow-backend-go/internal/domain/department"
)

type MasterServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewMasterService(departmentRepo department.DepartmentRepository) department.MasterService {
	return &MasterServiceImpl{departmentRepo: departmentRepo}
}

func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := s.departmentRepo.CreateDepartment(ctx, department.Department{
		Name:     req.Name,
		Code:     req.Code,
		HeadID:   req.HeadID,
		IsActive: true,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.DepartmentResponse{
		ID:     dept.ID,
		Name:   dept.Name,
		Code:   dept.Code,
		HeadID: dept.HeadID,
	}, nil
}

func (s *MasterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		data = append(data, department.DepartmentResponse{
			ID:     dept.ID,
			Name:   dept.Name,
			Code:   dept.Code,
			HeadID: dept.HeadID,
		})
	}

	return data, nil
}

func (s *MasterServiceImpl) CreateDesignation(ctx context.Context, req department.CreateDesignationRequest) (department.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DesignationResponse{}, err
	}

	des, err := s.departmentRepo.CreateDesignation(ctx, department.Designation{
		Title:        req.Title,
		Level:        req.Level,
		DepartmentID: req.DepartmentID,
		IsActive:     true,
	})
	if err != nil {
		return department.DesignationResponse{}, err
	}

	return department.DesignationResponse{
		ID:           des.ID,
		Title:        des.Title,
		Level:        des.Level,
		DepartmentID: des.DepartmentID,
	}, nil
}

func (s *MasterServiceImpl) ListDesignations(ctx context.Context, departmentID *string) ([]department.DesignationResponse, error) {
	designations, err := s.departmentRepo.ListDesignations(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	data := make([]department.DesignationResponse, 0, len(designations))
	for _, des := range designations {
		data = append(data, department.DesignationResponse{
			ID:           des.ID,
			Title:        des.Title,
			Level:        des.Level,
			DepartmentID: des.DepartmentID,
		})
	}

	return data, nil
}
