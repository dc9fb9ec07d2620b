package project

import (
	"context"
	"errors"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type Project struct {
	ID          int64
	Name        string
	Description *string
	StartDate   *string // YYYY-MM-DD
	EndDate     *string // YYYY-MM-DD
	Status      ProjectStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (Project, error)
	Create(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, id int64, req UpsertProjectRequest) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Project, error)
}

type UpsertProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Status      *string `json:"status"`
}

func (r *UpsertProjectRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	for field, v := range map[string]*string{"startDate": r.StartDate, "endDate": r.EndDate} {
		if v != nil && *v != "" {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be in YYYY-MM-DD format"})
			}
		}
	}
	if r.Status != nil {
		valid := []string{string(ProjectStatusActive), string(ProjectStatusOnHold), string(ProjectStatusCompleted)}
		if !validator.IsInSlice(*r.Status, valid) {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: active, on-hold, completed"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	StartDate   *string       `json:"startDate,omitempty"`
	EndDate     *string       `json:"endDate,omitempty"`
	Status      ProjectStatus `json:"status"`
}
