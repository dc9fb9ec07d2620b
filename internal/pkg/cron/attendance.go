package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/leave"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/clock"
)

// AttendanceSweeper holds the two end-of-day attendance jobs: marking
// no-shows absent and force-closing forgotten check-outs.
type AttendanceSweeper struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRequestRepository
	clock          clock.Clock
	logger         *slog.Logger

	// autoCheckoutStamp is the synthetic out time written by the checkout
	// sweep, e.g. "19:30:00".
	autoCheckoutStamp string
}

func NewAttendanceSweeper(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	clk clock.Clock,
	logger *slog.Logger,
	autoCheckoutStamp string,
) *AttendanceSweeper {
	return &AttendanceSweeper{
		attendanceRepo:    attendanceRepo,
		employeeRepo:      employeeRepo,
		leaveRepo:         leaveRepo,
		clock:             clk,
		logger:            logger,
		autoCheckoutStamp: autoCheckoutStamp,
	}
}

// MarkAbsent inserts an absent record for every active employee with no
// attendance row and no approved leave for today. Running it twice on the
// same day is a no-op: existing rows are skipped and the unique constraint
// backstops any race.
func (s *AttendanceSweeper) MarkAbsent(ctx context.Context) error {
	today := s.clock.Today()

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("listing active employees: %w", err)
	}

	approvedIDs, err := s.leaveRepo.ListApprovedEmployeeIDsOnDate(ctx, today)
	if err != nil {
		return fmt.Errorf("listing approved leave: %w", err)
	}
	onLeave := make(map[int64]bool, len(approvedIDs))
	for _, id := range approvedIDs {
		onLeave[id] = true
	}

	var marked, failed int
	for _, emp := range employees {
		if onLeave[emp.ID] {
			continue
		}

		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, today)
		if err != nil {
			s.logger.Error("absent sweep: lookup failed", "employee_id", emp.ID, "error", err)
			failed++
			continue
		}
		if existing != nil {
			continue
		}

		zero := 0.0
		_, err = s.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       today,
			Status:     attendance.StatusAbsent,
			WorkHours:  &zero,
		})
		if err != nil {
			if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
				continue
			}
			s.logger.Error("absent sweep: insert failed", "employee_id", emp.ID, "error", err)
			failed++
			continue
		}
		marked++
	}

	s.logger.Info("absent sweep done", "date", today, "marked", marked, "failed", failed)
	return nil
}

// ForceCheckout closes every still-open session for today using the
// configured stamp as the out time and reclassifies the day from the
// resulting hours.
func (s *AttendanceSweeper) ForceCheckout(ctx context.Context) error {
	today := s.clock.Today()

	open, err := s.attendanceRepo.ListOpenSessions(ctx, today)
	if err != nil {
		return fmt.Errorf("listing open sessions: %w", err)
	}

	var closed, failed int
	for _, record := range open {
		if record.InTime == nil {
			continue
		}

		workHours, err := attendance.ComputeWorkHours(*record.InTime, s.autoCheckoutStamp)
		if err != nil {
			s.logger.Error("checkout sweep: bad in time", "attendance_id", record.ID, "in_time", *record.InTime, "error", err)
			failed++
			continue
		}

		status := attendance.ClassifyWorkHours(workHours)
		if err := s.attendanceRepo.UpdateCheckOut(ctx, record.ID, s.autoCheckoutStamp, workHours, status); err != nil {
			s.logger.Error("checkout sweep: update failed", "attendance_id", record.ID, "error", err)
			failed++
			continue
		}
		closed++
	}

	s.logger.Info("checkout sweep done", "date", today, "closed", closed, "failed", failed)
	return nil
}
