package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/leave"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/clock"
)

// TxRunner executes fn atomically. Production wires postgresql.WithTransaction;
// tests pass a passthrough.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type Service interface {
	RequestLeave(ctx context.Context, req leave.RequestLeaveRequest) (leave.RequestLeaveResponse, error)
	Approve(ctx context.Context, id int64) (leave.ActionResponse, error)
	Reject(ctx context.Context, id int64) (leave.ActionResponse, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]leave.LeaveRequestResponse, error)
	ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error)
}

type service struct {
	leaveRepo      leave.LeaveRequestRepository
	attendanceRepo attendance.AttendanceRepository
	clock          clock.Clock
	logger         *slog.Logger
	inTx           TxRunner
}

func NewService(
	leaveRepo leave.LeaveRequestRepository,
	attendanceRepo attendance.AttendanceRepository,
	clk clock.Clock,
	logger *slog.Logger,
	inTx TxRunner,
) Service {
	return &service{
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
		clock:          clk,
		logger:         logger,
		inTx:           inTx,
	}
}

// RequestLeave implements Service. A multi-day range decomposes into one
// pending row per calendar day; days already pending are skipped silently.
func (s *service) RequestLeave(ctx context.Context, req leave.RequestLeaveRequest) (leave.RequestLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestLeaveResponse{}, err
	}

	from, err := time.Parse(clock.DateLayout, req.FromDate)
	if err != nil {
		return leave.RequestLeaveResponse{}, leave.ErrInvalidRange
	}
	to, err := time.Parse(clock.DateLayout, req.ToDate)
	if err != nil {
		return leave.RequestLeaveResponse{}, leave.ErrInvalidRange
	}
	if to.Before(from) {
		return leave.RequestLeaveResponse{}, leave.ErrInvalidRange
	}

	// Leave cannot be requested retroactively for today once the employee has
	// checked in.
	today := s.clock.Today()
	if todayDate, parseErr := time.Parse(clock.DateLayout, today); parseErr == nil {
		if !todayDate.Before(from) && !todayDate.After(to) {
			record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
			if err != nil {
				return leave.RequestLeaveResponse{}, fmt.Errorf("loading today's attendance: %w", err)
			}
			if record != nil && record.InTime != nil {
				return leave.RequestLeaveResponse{}, leave.ErrAlreadyChecked
			}
		}
	}

	var inserted []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(clock.DateLayout)

		pending, err := s.leaveRepo.HasPendingOnDate(ctx, req.EmployeeID, date)
		if err != nil {
			return leave.RequestLeaveResponse{}, fmt.Errorf("checking pending leave: %w", err)
		}
		if pending {
			continue
		}

		_, err = s.leaveRepo.Create(ctx, leave.LeaveRequest{
			EmployeeID: req.EmployeeID,
			Date:       date,
			Reason:     req.Reason,
			Status:     leave.RequestStatusPending,
		})
		if err != nil {
			return leave.RequestLeaveResponse{}, fmt.Errorf("creating leave request: %w", err)
		}
		inserted = append(inserted, date)
	}

	if len(inserted) == 0 {
		return leave.RequestLeaveResponse{}, leave.ErrNoNewEntries
	}

	s.logger.Info("leave requested",
		"employee_id", req.EmployeeID, "from", req.FromDate, "to", req.ToDate, "inserted", len(inserted))

	return leave.RequestLeaveResponse{
		Message:       "Leave requested successfully",
		InsertedDates: inserted,
	}, nil
}

// Approve implements Service. The status transition and the attendance mirror
// row are written atomically: an approved leave day always shows as
// status=leave with zero work hours, discarding any prior check-in data.
func (s *service) Approve(ctx context.Context, id int64) (leave.ActionResponse, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.ActionResponse{}, err
	}
	if req.Status != leave.RequestStatusPending {
		return leave.ActionResponse{}, leave.ErrLeaveNotPending
	}

	err = s.inTx(ctx, func(ctx context.Context) error {
		if err := s.leaveRepo.UpdateStatus(ctx, id, leave.RequestStatusApproved, s.clock.Now()); err != nil {
			return err
		}
		return s.attendanceRepo.UpsertLeaveDay(ctx, req.EmployeeID, req.Date)
	})
	if err != nil {
		return leave.ActionResponse{}, fmt.Errorf("approving leave request: %w", err)
	}

	s.logger.Info("leave approved", "leave_request_id", id, "employee_id", req.EmployeeID, "date", req.Date)

	return leave.ActionResponse{
		Message:        "Leave request approved",
		LeaveRequestID: id,
	}, nil
}

// Reject implements Service. Terminal, no attendance side effect.
func (s *service) Reject(ctx context.Context, id int64) (leave.ActionResponse, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.ActionResponse{}, err
	}
	if req.Status != leave.RequestStatusPending {
		return leave.ActionResponse{}, leave.ErrLeaveNotPending
	}

	if err := s.leaveRepo.UpdateStatus(ctx, id, leave.RequestStatusRejected, s.clock.Now()); err != nil {
		return leave.ActionResponse{}, fmt.Errorf("rejecting leave request: %w", err)
	}

	s.logger.Info("leave rejected", "leave_request_id", id, "employee_id", req.EmployeeID, "date", req.Date)

	return leave.ActionResponse{
		Message:        "Leave request rejected",
		LeaveRequestID: id,
	}, nil
}

// ListByEmployee implements Service.
func (s *service) ListByEmployee(ctx context.Context, employeeID int64) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("loading leave requests: %w", err)
	}
	return toResponses(requests), nil
}

// ListPending implements Service.
func (s *service) ListPending(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading pending leave requests: %w", err)
	}
	return toResponses(requests), nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		resp := leave.LeaveRequestResponse{
			ID:           req.ID,
			EmployeeID:   req.EmployeeID,
			EmployeeName: req.EmployeeName,
			Department:   req.DepartmentName,
			Date:         req.Date,
			Reason:       req.Reason,
			Status:       req.Status,
			RequestedAt:  req.RequestedAt.Format(time.RFC3339),
		}
		if req.ActionedAt != nil {
			actioned := req.ActionedAt.Format(time.RFC3339)
			resp.ActionedAt = &actioned
		}
		responses = append(responses, resp)
	}
	return responses
}
