package attendance

import "time"

// Status is the stored attendance classification. "pending" never appears in
// storage; it is a display-only status produced by the resolver when a leave
// request is still awaiting action.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"

	// DisplayStatusPending is resolver output only.
	DisplayStatusPending Status = "pending"
)

// Attendance is one employee-day record. At most one row exists per
// (EmployeeID, Date); the storage layer enforces this with a unique constraint.
type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       string // YYYY-MM-DD
	Status     Status
	InTime     *string // HH:MM:SS
	OutTime    *string // HH:MM:SS
	WorkHours  *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for admin views
	EmployeeName   *string
	DepartmentName *string
}

// StatusCount is one row of the admin daily breakdown.
type StatusCount struct {
	Status Status
	Total  int64
}
