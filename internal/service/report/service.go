package report

import (
	"context"
	"fmt"
	"math"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/report"
)

type Service interface {
	// MonthlySummary rolls up one YYYY-MM month of attendance per employee.
	// Employees with no records in the month are omitted entirely.
	MonthlySummary(ctx context.Context, month string) ([]report.EmployeeSummary, error)
}

type service struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewService(attendanceRepo attendance.AttendanceRepository) Service {
	return &service{attendanceRepo: attendanceRepo}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// MonthlySummary implements Service.
func (s *service) MonthlySummary(ctx context.Context, month string) ([]report.EmployeeSummary, error) {
	records, err := s.attendanceRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("loading month attendance: %w", err)
	}

	// Records arrive ordered by employee then date; keep that order in the
	// output.
	var order []int64
	byEmployee := make(map[int64][]attendance.Attendance)
	for _, r := range records {
		if _, seen := byEmployee[r.EmployeeID]; !seen {
			order = append(order, r.EmployeeID)
		}
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}

	summaries := make([]report.EmployeeSummary, 0, len(order))
	for _, employeeID := range order {
		rows := byEmployee[employeeID]

		summary := report.EmployeeSummary{
			EmployeeID:  employeeID,
			WorkingDays: len(rows),
			Days:        make([]report.DayEntry, 0, len(rows)),
		}
		if rows[0].EmployeeName != nil {
			summary.EmployeeName = *rows[0].EmployeeName
		}

		var hoursSum float64
		var hoursCount int
		for _, r := range rows {
			switch r.Status {
			case attendance.StatusPresent:
				summary.Present++
			case attendance.StatusAbsent:
				summary.Absent++
			case attendance.StatusHalfDay:
				summary.HalfDay++
			case attendance.StatusLeave:
				summary.Leave++
			}

			if r.WorkHours != nil {
				hoursSum += *r.WorkHours
				hoursCount++
			}

			summary.Days = append(summary.Days, report.DayEntry{
				Date:        r.Date,
				Status:      string(r.Status),
				WorkHours:   r.WorkHours,
				CheckInTime: r.InTime,
			})
		}

		if hoursCount > 0 {
			summary.AverageWorkHours = round1(hoursSum / float64(hoursCount))
		}
		if summary.WorkingDays > 0 {
			summary.AttendancePercentage = round1(float64(summary.Present) / float64(summary.WorkingDays) * 100)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}
