package leave

import (
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type RequestLeaveRequest struct {
	EmployeeID int64  `json:"employeeId"`
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	Reason     string `json:"reason"`
}

func (r *RequestLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.FromDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "fromDate",
			Message: "fromDate must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "toDate",
			Message: "toDate must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestLeaveResponse struct {
	Message       string   `json:"message"`
	InsertedDates []string `json:"insertedDates"`
}

type ActionResponse struct {
	Message        string `json:"message"`
	LeaveRequestID int64  `json:"leaveRequestId"`
}

type LeaveRequestResponse struct {
	ID           int64         `json:"id"`
	EmployeeID   int64         `json:"employeeId"`
	EmployeeName *string       `json:"employeeName,omitempty"`
	Department   *string       `json:"department,omitempty"`
	Date         string        `json:"date"`
	Reason       string        `json:"reason"`
	Status       RequestStatus `json:"status"`
	RequestedAt  string        `json:"requestedAt"`
	ActionedAt   *string       `json:"actionedAt,omitempty"`
}
