package report

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	byMonth map[string][]attendance.Attendance
}

func (f *fakeAttendanceRepo) ListByMonth(_ context.Context, month string) ([]attendance.Attendance, error) {
	return f.byMonth[month], nil
}

func strptr(s string) *string   { return &s }
func f64ptr(v float64) *float64 { return &v }

func monthOf(employeeID int64, name string, days []attendance.Attendance) []attendance.Attendance {
	out := make([]attendance.Attendance, 0, len(days))
	for i, d := range days {
		d.EmployeeID = employeeID
		d.EmployeeName = strptr(name)
		if d.Date == "" {
			d.Date = fmt.Sprintf("2026-03-%02d", i+1)
		}
		out = append(out, d)
	}
	return out
}

func TestMonthlySummary(t *testing.T) {
	// Employee 7: 20 present, 2 absent, 1 leave over 23 working days.
	var days []attendance.Attendance
	for i := 0; i < 20; i++ {
		days = append(days, attendance.Attendance{
			Status: attendance.StatusPresent, WorkHours: f64ptr(8.0), InTime: strptr("09:00:00"),
		})
	}
	days = append(days,
		attendance.Attendance{Status: attendance.StatusAbsent, WorkHours: f64ptr(0)},
		attendance.Attendance{Status: attendance.StatusAbsent, WorkHours: f64ptr(0)},
		attendance.Attendance{Status: attendance.StatusLeave, WorkHours: f64ptr(0)},
	)

	repo := &fakeAttendanceRepo{byMonth: map[string][]attendance.Attendance{
		"2026-03": monthOf(7, "Ada", days),
	}}
	svc := NewService(repo)

	summaries, err := svc.MonthlySummary(context.Background(), "2026-03")
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, int64(7), s.EmployeeID)
	assert.Equal(t, "Ada", s.EmployeeName)
	assert.Equal(t, 20, s.Present)
	assert.Equal(t, 2, s.Absent)
	assert.Equal(t, 0, s.HalfDay)
	assert.Equal(t, 1, s.Leave)
	assert.Equal(t, 23, s.WorkingDays)
	assert.Equal(t, 87.0, s.AttendancePercentage)
	// 160 hours over 23 non-null values.
	assert.Equal(t, 7.0, s.AverageWorkHours)
	assert.Len(t, s.Days, 23)
	assert.Equal(t, "09:00:00", *s.Days[0].CheckInTime)
}

func TestMonthlySummary_AverageSkipsNullHours(t *testing.T) {
	days := []attendance.Attendance{
		{Status: attendance.StatusPresent, WorkHours: f64ptr(8.0)},
		{Status: attendance.StatusPresent, WorkHours: f64ptr(7.5)},
		{Status: attendance.StatusPresent}, // open session, no hours yet
	}

	repo := &fakeAttendanceRepo{byMonth: map[string][]attendance.Attendance{
		"2026-03": monthOf(7, "Ada", days),
	}}
	svc := NewService(repo)

	summaries, err := svc.MonthlySummary(context.Background(), "2026-03")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	// Mean of 8.0 and 7.5 only, rounded to 1dp.
	assert.Equal(t, 7.8, summaries[0].AverageWorkHours)
}

func TestMonthlySummary_OmitsZeroRecordEmployees(t *testing.T) {
	repo := &fakeAttendanceRepo{byMonth: map[string][]attendance.Attendance{}}
	svc := NewService(repo)

	summaries, err := svc.MonthlySummary(context.Background(), "2026-03")
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestMonthlySummary_MultipleEmployeesKeepOrder(t *testing.T) {
	repo := &fakeAttendanceRepo{byMonth: map[string][]attendance.Attendance{
		"2026-03": append(
			monthOf(3, "Bea", []attendance.Attendance{{Status: attendance.StatusPresent, WorkHours: f64ptr(8)}}),
			monthOf(9, "Cal", []attendance.Attendance{{Status: attendance.StatusAbsent, WorkHours: f64ptr(0)}})...,
		),
	}}
	svc := NewService(repo)

	summaries, err := svc.MonthlySummary(context.Background(), "2026-03")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, int64(3), summaries[0].EmployeeID)
	assert.Equal(t, int64(9), summaries[1].EmployeeID)
	assert.Equal(t, 100.0, summaries[0].AttendancePercentage)
	assert.Equal(t, 0.0, summaries[1].AttendancePercentage)
}
