package department

import (
	"context"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
)

type Service interface {
	Get(ctx context.Context, id int64) (department.DepartmentResponse, error)
	Create(ctx context.Context, req department.UpsertDepartmentRequest) (department.DepartmentResponse, error)
	Update(ctx context.Context, id int64, req department.UpsertDepartmentRequest) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]department.DepartmentResponse, error)
}

type service struct {
	repo department.DepartmentRepository
}

func NewService(repo department.DepartmentRepository) Service {
	return &service{repo: repo}
}

// Get implements Service.
func (s *service) Get(ctx context.Context, id int64) (department.DepartmentResponse, error) {
	dep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toResponse(dep), nil
}

// Create implements Service.
func (s *service) Create(ctx context.Context, req department.UpsertDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dep, err := s.repo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toResponse(dep), nil
}

// Update implements Service.
func (s *service) Update(ctx context.Context, id int64, req department.UpsertDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, req.Name, req.Description)
}

// Delete implements Service.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// List implements Service.
func (s *service) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dep := range departments {
		responses = append(responses, toResponse(dep))
	}
	return responses, nil
}

func toResponse(dep department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            dep.ID,
		Name:          dep.Name,
		Description:   dep.Description,
		EmployeeCount: dep.EmployeeCount,
	}
}
