package leave

import "errors"

var (
	ErrInvalidRange   = errors.New("invalid leave date range")
	ErrAlreadyChecked = errors.New("cannot request leave for today after checking in")
	ErrNoNewEntries   = errors.New("leave already requested for every day in the range")

	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrLeaveNotPending      = errors.New("leave request has already been actioned")
)
