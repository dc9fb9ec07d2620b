package project

import (
	"context"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/project"
)

type Service interface {
	Get(ctx context.Context, id int64) (project.ProjectResponse, error)
	Create(ctx context.Context, req project.UpsertProjectRequest) (project.ProjectResponse, error)
	Update(ctx context.Context, id int64, req project.UpsertProjectRequest) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]project.ProjectResponse, error)
}

type service struct {
	repo project.ProjectRepository
}

func NewService(repo project.ProjectRepository) Service {
	return &service{repo: repo}
}

// Get implements Service.
func (s *service) Get(ctx context.Context, id int64) (project.ProjectResponse, error) {
	proj, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return toResponse(proj), nil
}

// Create implements Service.
func (s *service) Create(ctx context.Context, req project.UpsertProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	status := project.ProjectStatusActive
	if req.Status != nil {
		status = project.ProjectStatus(*req.Status)
	}

	proj, err := s.repo.Create(ctx, project.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      status,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return toResponse(proj), nil
}

// Update implements Service.
func (s *service) Update(ctx context.Context, id int64, req project.UpsertProjectRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, req)
}

// Delete implements Service.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// List implements Service.
func (s *service) List(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, proj := range projects {
		responses = append(responses, toResponse(proj))
	}
	return responses, nil
}

func toResponse(proj project.Project) project.ProjectResponse {
	return project.ProjectResponse{
		ID:          proj.ID,
		Name:        proj.Name,
		Description: proj.Description,
		StartDate:   proj.StartDate,
		EndDate:     proj.EndDate,
		Status:      proj.Status,
	}
}
