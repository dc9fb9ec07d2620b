package department

import (
	"context"
	"errors"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

var ErrDepartmentNotFound = errors.New("department not found")

type Department struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	EmployeeCount int64
}

type DepartmentRepository interface {
	GetByID(ctx context.Context, id int64) (Department, error)
	Create(ctx context.Context, dep Department) (Department, error)
	Update(ctx context.Context, id int64, name string, description *string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Department, error)
}

type UpsertDepartmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r *UpsertDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	EmployeeCount int64   `json:"employeeCount"`
}
