package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access for leave-request rows.
type LeaveRequestRepository interface {
	// Create inserts a pending row for one leave day.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID returns one request, or ErrLeaveRequestNotFound.
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)

	// HasPendingOnDate reports whether a pending row exists for the day.
	HasPendingOnDate(ctx context.Context, employeeID int64, date string) (bool, error)

	// GetLatestForDate returns the most recently requested row for the day
	// regardless of status, or (nil, nil) when none exists.
	GetLatestForDate(ctx context.Context, employeeID int64, date string) (*LeaveRequest, error)

	// LatestPerDate returns, for each of the given dates, the most recently
	// requested row keyed by date. Dates with no request are absent.
	LatestPerDate(ctx context.Context, employeeID int64, dates []string) (map[string]LeaveRequest, error)

	// ListByEmployee returns the employee's requests newest-first.
	ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveRequest, error)

	// ListPending returns all pending requests with employee info joined,
	// oldest-first.
	ListPending(ctx context.Context) ([]LeaveRequest, error)

	// UpdateStatus transitions a request and stamps actioned_at.
	UpdateStatus(ctx context.Context, id int64, status RequestStatus, actionedAt time.Time) error

	// ListApprovedEmployeeIDsOnDate returns the ids of employees with an
	// approved leave dated date; the auto-absent sweep excludes them.
	ListApprovedEmployeeIDsOnDate(ctx context.Context, date string) ([]int64, error)
}
