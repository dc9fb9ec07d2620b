package workentry

import (
	"context"
	"errors"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

var ErrWorkEntryNotFound = errors.New("work entry not found")

// WorkEntry is one logged unit of work: what an employee spent hours on during
// a day, optionally billed against a project.
type WorkEntry struct {
	ID          int64
	EmployeeID  int64
	ProjectID   *int64
	Date        string // YYYY-MM-DD
	Description string
	Hours       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	ProjectName *string
}

type WorkEntryRepository interface {
	Create(ctx context.Context, entry WorkEntry) (WorkEntry, error)
	GetByID(ctx context.Context, id int64) (WorkEntry, error)
	Delete(ctx context.Context, id int64) error
	// ListByEmployeeMonth returns the employee's entries in a YYYY-MM month,
	// newest-first, with project names joined.
	ListByEmployeeMonth(ctx context.Context, employeeID int64, month string) ([]WorkEntry, error)
}

type CreateWorkEntryRequest struct {
	EmployeeID  int64   `json:"employeeId"`
	ProjectID   *int64  `json:"projectId"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}

func (r *CreateWorkEntryRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if r.Hours <= 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be between 0 and 24"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkEntryResponse struct {
	ID          int64   `json:"id"`
	EmployeeID  int64   `json:"employeeId"`
	ProjectID   *int64  `json:"projectId,omitempty"`
	ProjectName *string `json:"projectName,omitempty"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}
