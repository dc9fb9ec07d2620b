package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/domain/department"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/leave"
	"github.com/workforcehq/workforce-backend-go/internal/domain/project"
	"github.com/workforcehq/workforce-backend-go/internal/domain/reminder"
	"github.com/workforcehq/workforce-backend-go/internal/domain/workentry"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
)

var badRequestErrors = []error{
	attendance.ErrAlreadyCheckedIn,
	attendance.ErrNotCheckedIn,
	attendance.ErrAlreadyCheckedOut,
	leave.ErrInvalidRange,
	leave.ErrAlreadyChecked,
	leave.ErrNoNewEntries,
	leave.ErrLeaveNotPending,
	employee.ErrEmailExists,
}

var notFoundErrors = []error{
	attendance.ErrAttendanceNotFound,
	leave.ErrLeaveRequestNotFound,
	employee.ErrEmployeeNotFound,
	department.ErrDepartmentNotFound,
	project.ErrProjectNotFound,
	workentry.ErrWorkEntryNotFound,
	reminder.ErrReminderNotFound,
	auth.ErrUserNotFound,
}

// HandleError maps domain errors onto HTTP status codes. Anything it does not
// recognize is treated as a persistence failure and logged.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationFailed(w, validationErrs.ToMap())
		return
	}

	if errors.Is(err, auth.ErrInvalidCredentials) {
		Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			Error(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			Error(w, http.StatusNotFound, err.Error())
			return
		}
	}

	slog.Error("unhandled error", "error", err)
	Error(w, http.StatusInternalServerError, "internal server error")
}
