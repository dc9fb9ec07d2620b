package reminder

import (
	"context"
	"errors"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

var ErrReminderNotFound = errors.New("reminder not found")

type Reminder struct {
	ID         int64
	EmployeeID int64
	Title      string
	Notes      *string
	RemindAt   time.Time
	Done       bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ReminderRepository interface {
	Create(ctx context.Context, rem Reminder) (Reminder, error)
	GetByID(ctx context.Context, id int64) (Reminder, error)
	MarkDone(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	// ListUpcoming returns the employee's reminders not yet done, soonest-first.
	ListUpcoming(ctx context.Context, employeeID int64) ([]Reminder, error)
}

type CreateReminderRequest struct {
	EmployeeID int64   `json:"employeeId"`
	Title      string  `json:"title"`
	Notes      *string `json:"notes"`
	RemindAt   string  `json:"remindAt"` // RFC3339
}

func (r *CreateReminderRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if _, ok := validator.IsValidDateTime(r.RemindAt); !ok {
		errs = append(errs, validator.ValidationError{Field: "remindAt", Message: "remindAt must be an RFC3339 timestamp"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReminderResponse struct {
	ID         int64   `json:"id"`
	EmployeeID int64   `json:"employeeId"`
	Title      string  `json:"title"`
	Notes      *string `json:"notes,omitempty"`
	RemindAt   string  `json:"remindAt"`
	Done       bool    `json:"done"`
}
