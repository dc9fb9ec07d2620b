package employee

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
)

type Service interface {
	Get(ctx context.Context, id int64) (employee.EmployeeResponse, error)
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error
	List(ctx context.Context) ([]employee.EmployeeResponse, error)
	Deactivate(ctx context.Context, id int64) error
}

type service struct {
	repo employee.EmployeeRepository
}

func NewService(repo employee.EmployeeRepository) Service {
	return &service{repo: repo}
}

// Get implements Service.
func (s *service) Get(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// Create implements Service.
func (s *service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FullName:     req.FullName,
		Email:        req.Email,
		Position:     req.Position,
		DepartmentID: req.DepartmentID,
		ProjectID:    req.ProjectID,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		HireDate:     req.HireDate,
		Status:       employee.StatusActive,
	}
	if req.BaseSalary != nil && *req.BaseSalary != "" {
		salary, err := decimal.NewFromString(*req.BaseSalary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("parsing base salary: %w", err)
		}
		emp.BaseSalary = &salary
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(created), nil
}

// Update implements Service.
func (s *service) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, req)
}

// List implements Service.
func (s *service) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

// Deactivate implements Service.
func (s *service) Deactivate(ctx context.Context, id int64) error {
	return s.repo.SetStatus(ctx, id, employee.StatusInactive)
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             emp.ID,
		FullName:       emp.FullName,
		Email:          emp.Email,
		Position:       emp.Position,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		ProjectID:      emp.ProjectID,
		ProjectName:    emp.ProjectName,
		PhoneNumber:    emp.PhoneNumber,
		Address:        emp.Address,
		HireDate:       emp.HireDate,
		Status:         emp.Status,
	}
	if emp.BaseSalary != nil {
		salary := emp.BaseSalary.String()
		resp.BaseSalary = &salary
	}
	return resp
}
