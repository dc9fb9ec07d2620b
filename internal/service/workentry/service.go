package workentry

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/workentry"
)

type Service interface {
	Create(ctx context.Context, req workentry.CreateWorkEntryRequest) (workentry.WorkEntryResponse, error)
	Delete(ctx context.Context, id int64) error
	ListByEmployeeMonth(ctx context.Context, employeeID int64, month string) ([]workentry.WorkEntryResponse, error)
}

type service struct {
	repo workentry.WorkEntryRepository
}

func NewService(repo workentry.WorkEntryRepository) Service {
	return &service{repo: repo}
}

// Create implements Service.
func (s *service) Create(ctx context.Context, req workentry.CreateWorkEntryRequest) (workentry.WorkEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return workentry.WorkEntryResponse{}, err
	}

	entry, err := s.repo.Create(ctx, workentry.WorkEntry{
		EmployeeID:  req.EmployeeID,
		ProjectID:   req.ProjectID,
		Date:        req.Date,
		Description: req.Description,
		Hours:       req.Hours,
	})
	if err != nil {
		return workentry.WorkEntryResponse{}, err
	}
	return toResponse(entry), nil
}

// Delete implements Service.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListByEmployeeMonth implements Service.
func (s *service) ListByEmployeeMonth(ctx context.Context, employeeID int64, month string) ([]workentry.WorkEntryResponse, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	entries, err := s.repo.ListByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("loading work entries: %w", err)
	}

	responses := make([]workentry.WorkEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry))
	}
	return responses, nil
}

func toResponse(entry workentry.WorkEntry) workentry.WorkEntryResponse {
	return workentry.WorkEntryResponse{
		ID:          entry.ID,
		EmployeeID:  entry.EmployeeID,
		ProjectID:   entry.ProjectID,
		ProjectName: entry.ProjectName,
		Date:        entry.Date,
		Description: entry.Description,
		Hours:       entry.Hours,
	}
}
