package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error
	List(ctx context.Context) ([]Employee, error)
	// ListActive returns employees eligible for the attendance sweeps.
	ListActive(ctx context.Context) ([]Employee, error)
	SetStatus(ctx context.Context, id int64, status Status) error
}
