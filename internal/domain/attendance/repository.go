package attendance

import "context"

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. Returns ErrAlreadyCheckedIn when a record
	// for (employeeID, date) already exists (unique constraint).
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns the record for the given day, or (nil, nil)
	// when the employee has no record on that date.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (*Attendance, error)

	// UpdateCheckOut closes a record: sets out time, work hours and the
	// recomputed status.
	UpdateCheckOut(ctx context.Context, id int64, outTime string, workHours float64, status Status) error

	// UpsertLeaveDay writes the leave mirror row for an approved leave day,
	// overwriting any prior check-in data for that (employeeID, date).
	UpsertLeaveDay(ctx context.Context, employeeID int64, date string) error

	// ListRecentByEmployee returns the employee's records newest-first,
	// capped at limit.
	ListRecentByEmployee(ctx context.Context, employeeID int64, limit int) ([]Attendance, error)

	// ListByDate returns all records for one day with employee name and
	// department joined.
	ListByDate(ctx context.Context, date string) ([]Attendance, error)

	// ListByMonth returns all records in a YYYY-MM month with employee names
	// joined, ordered by employee then date.
	ListByMonth(ctx context.Context, month string) ([]Attendance, error)

	// ListOpenSessions returns records on date with an in time, no out time
	// and a present/half-day status; these are the auto-checkout candidates.
	ListOpenSessions(ctx context.Context, date string) ([]Attendance, error)

	// CountByStatusOnDate returns the per-status totals for one day.
	CountByStatusOnDate(ctx context.Context, date string) ([]StatusCount, error)
}
