package leave

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// LeaveRequest is a single leave day. A multi-day request decomposes into one
// row per calendar day; at most one pending row exists per (EmployeeID, Date).
type LeaveRequest struct {
	ID          int64
	EmployeeID  int64
	Date        string // YYYY-MM-DD
	Reason      string
	Status      RequestStatus
	RequestedAt time.Time
	ActionedAt  *time.Time

	// Joined for admin views
	EmployeeName   *string
	DepartmentName *string
}
