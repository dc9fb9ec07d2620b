package attendance

import (
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID int64  `json:"employeeId"`
	Status     string `json:"status"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	validStatuses := []string{string(StatusPresent), string(StatusHalfDay), string(StatusAbsent)}
	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, half-day, absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID int64 `json:"employeeId"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckInResponse struct {
	Message string `json:"message"`
	InTime  string `json:"inTime"`
	Date    string `json:"date"`
}

type CheckOutResponse struct {
	Message   string  `json:"message"`
	OutTime   string  `json:"outTime"`
	WorkHours float64 `json:"workHours"`
}

// DayStatus is the resolver output: the attendance record for one day merged
// with any leave request that takes precedence over it.
type DayStatus struct {
	EmployeeID  int64    `json:"employeeId"`
	Date        string   `json:"date"`
	Status      Status   `json:"status"`
	InTime      *string  `json:"inTime"`
	OutTime     *string  `json:"outTime"`
	WorkHours   *float64 `json:"workHours"`
	LeaveReason *string  `json:"leaveReason,omitempty"`
}

// DailyRow is one joined record of the admin per-date view.
type DailyRow struct {
	EmployeeID     int64    `json:"employeeId"`
	EmployeeName   string   `json:"employeeName"`
	DepartmentName *string  `json:"departmentName"`
	Date           string   `json:"date"`
	Status         Status   `json:"status"`
	InTime         *string  `json:"inTime"`
	OutTime        *string  `json:"outTime"`
	WorkHours      *float64 `json:"workHours"`
}

type StatusCountResponse struct {
	Status Status `json:"status"`
	Total  int64  `json:"total"`
}
