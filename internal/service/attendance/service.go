package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/leave"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/clock"
)

const historyLimit = 30

type Service interface {
	CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error)
	CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error)

	// ResolveStatus merges the day's attendance record with its latest leave
	// request: pending beats approved beats the raw record; a rejected request
	// has no effect. Returns nil when the day has neither a record nor an
	// overriding leave request.
	ResolveStatus(ctx context.Context, employeeID int64, date string) (*attendance.DayStatus, error)

	TodayStatus(ctx context.Context, employeeID int64) (*attendance.DayStatus, error)
	History(ctx context.Context, employeeID int64) ([]attendance.DayStatus, error)
	AdminTodayCounts(ctx context.Context) ([]attendance.StatusCountResponse, error)
	AdminByDate(ctx context.Context, date string) ([]attendance.DailyRow, error)
}

type service struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	clock          clock.Clock
	logger         *slog.Logger
}

func NewService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	clk clock.Clock,
	logger *slog.Logger,
) Service {
	return &service{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		clock:          clk,
		logger:         logger,
	}
}

// CheckIn implements Service.
func (s *service) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	today := s.clock.Today()
	now := s.clock.NowTime()

	// The unique constraint on (employee_id, date) is the real guard; a
	// concurrent duplicate surfaces as ErrAlreadyCheckedIn from Create.
	_, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       today,
		Status:     attendance.Status(req.Status),
		InTime:     &now,
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	s.logger.Info("employee checked in", "employee_id", req.EmployeeID, "date", today, "in_time", now)

	return attendance.CheckInResponse{
		Message: "Checked in successfully",
		InTime:  now,
		Date:    today,
	}, nil
}

// CheckOut implements Service.
func (s *service) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	today := s.clock.Today()

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("loading today's attendance: %w", err)
	}
	if record == nil || record.InTime == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}
	if record.OutTime != nil {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	now := s.clock.NowTime()
	workHours, err := attendance.ComputeWorkHours(*record.InTime, now)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("computing work hours: %w", err)
	}

	// Worked duration is authoritative over the status the employee declared
	// at check-in.
	status := attendance.ClassifyWorkHours(workHours)
	if err := s.attendanceRepo.UpdateCheckOut(ctx, record.ID, now, workHours, status); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	s.logger.Info("employee checked out",
		"employee_id", req.EmployeeID, "date", today, "work_hours", workHours, "status", status)

	return attendance.CheckOutResponse{
		Message:   "Checked out successfully",
		OutTime:   now,
		WorkHours: workHours,
	}, nil
}

// ResolveStatus implements Service.
func (s *service) ResolveStatus(ctx context.Context, employeeID int64, date string) (*attendance.DayStatus, error) {
	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("loading attendance record: %w", err)
	}

	latest, err := s.leaveRepo.GetLatestForDate(ctx, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("loading leave request: %w", err)
	}

	return resolve(employeeID, date, record, latest), nil
}

// resolve is the single precedence rule for a day's display status. Every
// read path (today view, history, admin daily view) goes through it.
func resolve(employeeID int64, date string, record *attendance.Attendance, req *leave.LeaveRequest) *attendance.DayStatus {
	var day *attendance.DayStatus
	if record != nil {
		day = &attendance.DayStatus{
			EmployeeID: record.EmployeeID,
			Date:       record.Date,
			Status:     record.Status,
			InTime:     record.InTime,
			OutTime:    record.OutTime,
			WorkHours:  record.WorkHours,
		}
	}

	if req != nil {
		switch req.Status {
		case leave.RequestStatusPending:
			if day == nil {
				day = &attendance.DayStatus{EmployeeID: employeeID, Date: date}
			}
			day.Status = attendance.DisplayStatusPending
			day.LeaveReason = &req.Reason
		case leave.RequestStatusApproved:
			if day == nil {
				day = &attendance.DayStatus{EmployeeID: employeeID, Date: date}
			}
			day.Status = attendance.StatusLeave
			day.LeaveReason = &req.Reason
		}
		// rejected: the raw record (or its absence) stands
	}

	return day
}

// TodayStatus implements Service.
func (s *service) TodayStatus(ctx context.Context, employeeID int64) (*attendance.DayStatus, error) {
	return s.ResolveStatus(ctx, employeeID, s.clock.Today())
}

// History implements Service.
func (s *service) History(ctx context.Context, employeeID int64) ([]attendance.DayStatus, error) {
	records, err := s.attendanceRepo.ListRecentByEmployee(ctx, employeeID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("loading attendance history: %w", err)
	}

	dates := make([]string, 0, len(records))
	for _, r := range records {
		dates = append(dates, r.Date)
	}

	latest, err := s.leaveRepo.LatestPerDate(ctx, employeeID, dates)
	if err != nil {
		return nil, fmt.Errorf("loading leave requests: %w", err)
	}

	history := make([]attendance.DayStatus, 0, len(records))
	for i := range records {
		record := records[i]
		var req *leave.LeaveRequest
		if lr, ok := latest[record.Date]; ok {
			req = &lr
		}
		if day := resolve(employeeID, record.Date, &record, req); day != nil {
			history = append(history, *day)
		}
	}

	return history, nil
}

// AdminTodayCounts implements Service.
func (s *service) AdminTodayCounts(ctx context.Context) ([]attendance.StatusCountResponse, error) {
	counts, err := s.attendanceRepo.CountByStatusOnDate(ctx, s.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("counting today's attendance: %w", err)
	}

	result := make([]attendance.StatusCountResponse, 0, len(counts))
	for _, c := range counts {
		result = append(result, attendance.StatusCountResponse{Status: c.Status, Total: c.Total})
	}

	return result, nil
}

// AdminByDate implements Service.
func (s *service) AdminByDate(ctx context.Context, date string) ([]attendance.DailyRow, error) {
	records, err := s.attendanceRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("loading attendance by date: %w", err)
	}

	rows := make([]attendance.DailyRow, 0, len(records))
	for i := range records {
		record := records[i]

		latest, err := s.leaveRepo.GetLatestForDate(ctx, record.EmployeeID, date)
		if err != nil {
			return nil, fmt.Errorf("loading leave request: %w", err)
		}

		day := resolve(record.EmployeeID, date, &record, latest)

		name := ""
		if record.EmployeeName != nil {
			name = *record.EmployeeName
		}
		rows = append(rows, attendance.DailyRow{
			EmployeeID:     record.EmployeeID,
			EmployeeName:   name,
			DepartmentName: record.DepartmentName,
			Date:           record.Date,
			Status:         day.Status,
			InTime:         day.InTime,
			OutTime:        day.OutTime,
			WorkHours:      day.WorkHours,
		})
	}

	return rows, nil
}
