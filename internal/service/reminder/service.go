package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/reminder"
)

type Service interface {
	Create(ctx context.Context, req reminder.CreateReminderRequest) (reminder.ReminderResponse, error)
	MarkDone(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	ListUpcoming(ctx context.Context, employeeID int64) ([]reminder.ReminderResponse, error)
}

type service struct {
	repo reminder.ReminderRepository
}

func NewService(repo reminder.ReminderRepository) Service {
	return &service{repo: repo}
}

// Create implements Service.
func (s *service) Create(ctx context.Context, req reminder.CreateReminderRequest) (reminder.ReminderResponse, error) {
	if err := req.Validate(); err != nil {
		return reminder.ReminderResponse{}, err
	}

	remindAt, err := time.Parse(time.RFC3339, req.RemindAt)
	if err != nil {
		return reminder.ReminderResponse{}, fmt.Errorf("parsing remindAt: %w", err)
	}

	rem, err := s.repo.Create(ctx, reminder.Reminder{
		EmployeeID: req.EmployeeID,
		Title:      req.Title,
		Notes:      req.Notes,
		RemindAt:   remindAt,
	})
	if err != nil {
		return reminder.ReminderResponse{}, err
	}
	return toResponse(rem), nil
}

// MarkDone implements Service.
func (s *service) MarkDone(ctx context.Context, id int64) error {
	return s.repo.MarkDone(ctx, id)
}

// Delete implements Service.
func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListUpcoming implements Service.
func (s *service) ListUpcoming(ctx context.Context, employeeID int64) ([]reminder.ReminderResponse, error) {
	reminders, err := s.repo.ListUpcoming(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("loading reminders: %w", err)
	}

	responses := make([]reminder.ReminderResponse, 0, len(reminders))
	for _, rem := range reminders {
		responses = append(responses, toResponse(rem))
	}
	return responses, nil
}

func toResponse(rem reminder.Reminder) reminder.ReminderResponse {
	return reminder.ReminderResponse{
		ID:         rem.ID,
		EmployeeID: rem.EmployeeID,
		Title:      rem.Title,
		Notes:      rem.Notes,
		RemindAt:   rem.RemindAt.Format(time.RFC3339),
		Done:       rem.Done,
	}
}
