package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/employee"
	"github.com/workforcehq/workforce-backend-go/internal/domain/leave"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/clock"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	records map[string]*attendance.Attendance // key employeeID|date
	nextID  int64

	failLookupFor map[int64]bool
	failUpdateFor map[int64]bool
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records:       make(map[string]*attendance.Attendance),
		failLookupFor: make(map[int64]bool),
		failUpdateFor: make(map[int64]bool),
	}
}

func key(employeeID int64, date string) string {
	return fmt.Sprintf("%d|%s", employeeID, date)
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	k := key(att.EmployeeID, att.Date)
	if _, exists := f.records[k]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	f.nextID++
	att.ID = f.nextID
	f.records[k] = &att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID int64, date string) (*attendance.Attendance, error) {
	if f.failLookupFor[employeeID] {
		return nil, errors.New("lookup failed")
	}
	return f.records[key(employeeID, date)], nil
}

func (f *fakeAttendanceRepo) ListOpenSessions(_ context.Context, date string) ([]attendance.Attendance, error) {
	var open []attendance.Attendance
	for _, r := range f.records {
		if r.Date != date || r.InTime == nil || r.OutTime != nil {
			continue
		}
		if r.Status != attendance.StatusPresent && r.Status != attendance.StatusHalfDay {
			continue
		}
		open = append(open, *r)
	}
	return open, nil
}

func (f *fakeAttendanceRepo) UpdateCheckOut(_ context.Context, id int64, outTime string, workHours float64, status attendance.Status) error {
	if f.failUpdateFor[id] {
		return errors.New("update failed")
	}
	for _, r := range f.records {
		if r.ID == id {
			r.OutTime = &outTime
			r.WorkHours = &workHours
			r.Status = status
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	active []employee.Employee
}

func (f *fakeEmployeeRepo) ListActive(context.Context) ([]employee.Employee, error) {
	return f.active, nil
}

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository
	approvedByDate map[string][]int64
}

func (f *fakeLeaveRepo) ListApprovedEmployeeIDsOnDate(_ context.Context, date string) ([]int64, error) {
	return f.approvedByDate[date], nil
}

func testLogger(t *testing.T) *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{t}, nil))
}

func strptr(s string) *string { return &s }

func TestMarkAbsent(t *testing.T) {
	today := "2026-03-10"
	clk := clock.Fixed{Instant: time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)}

	attRepo := newFakeAttendanceRepo()
	empRepo := &fakeEmployeeRepo{active: []employee.Employee{
		{ID: 1, FullName: "present already"},
		{ID: 2, FullName: "on approved leave"},
		{ID: 3, FullName: "no show"},
		{ID: 4, FullName: "lookup fails"},
	}}
	leaveRepo := &fakeLeaveRepo{approvedByDate: map[string][]int64{today: {2}}}

	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: 1, Date: today, Status: attendance.StatusPresent, InTime: strptr("09:00:00"),
	})
	require.NoError(t, err)
	attRepo.failLookupFor[4] = true

	sweeper := NewAttendanceSweeper(attRepo, empRepo, leaveRepo, clk, testLogger(t), "19:30:00")
	require.NoError(t, sweeper.MarkAbsent(context.Background()))

	// Only the no-show got an absent row.
	row := attRepo.records[key(3, today)]
	require.NotNil(t, row)
	assert.Equal(t, attendance.StatusAbsent, row.Status)
	require.NotNil(t, row.WorkHours)
	assert.Equal(t, 0.0, *row.WorkHours)

	// Existing record untouched, leave employee skipped, failing employee
	// isolated rather than aborting the sweep.
	assert.Equal(t, attendance.StatusPresent, attRepo.records[key(1, today)].Status)
	assert.Nil(t, attRepo.records[key(2, today)])
	assert.Nil(t, attRepo.records[key(4, today)])
}

func TestMarkAbsent_Idempotent(t *testing.T) {
	clk := clock.Fixed{Instant: time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)}

	attRepo := newFakeAttendanceRepo()
	empRepo := &fakeEmployeeRepo{active: []employee.Employee{{ID: 1}}}
	leaveRepo := &fakeLeaveRepo{}

	sweeper := NewAttendanceSweeper(attRepo, empRepo, leaveRepo, clk, testLogger(t), "19:30:00")
	require.NoError(t, sweeper.MarkAbsent(context.Background()))
	require.NoError(t, sweeper.MarkAbsent(context.Background()))

	assert.Len(t, attRepo.records, 1)
}

func TestForceCheckout(t *testing.T) {
	today := "2026-03-10"
	clk := clock.Fixed{Instant: time.Date(2026, 3, 10, 19, 30, 0, 0, time.UTC)}

	attRepo := newFakeAttendanceRepo()
	ctx := context.Background()

	// Open since 09:00 -> 10.5h, stays present.
	_, err := attRepo.Create(ctx, attendance.Attendance{
		EmployeeID: 1, Date: today, Status: attendance.StatusPresent, InTime: strptr("09:00:00"),
	})
	require.NoError(t, err)

	// Open since 16:00 -> 3.5h, reclassified absent even though the
	// employee declared present at check-in.
	_, err = attRepo.Create(ctx, attendance.Attendance{
		EmployeeID: 2, Date: today, Status: attendance.StatusPresent, InTime: strptr("16:00:00"),
	})
	require.NoError(t, err)

	// Already closed, must not be touched.
	hours := 8.0
	_, err = attRepo.Create(ctx, attendance.Attendance{
		EmployeeID: 3, Date: today, Status: attendance.StatusPresent,
		InTime: strptr("09:00:00"), OutTime: strptr("17:00:00"), WorkHours: &hours,
	})
	require.NoError(t, err)

	sweeper := NewAttendanceSweeper(attRepo, &fakeEmployeeRepo{}, &fakeLeaveRepo{}, clk, testLogger(t), "19:30:00")
	require.NoError(t, sweeper.ForceCheckout(ctx))

	first := attRepo.records[key(1, today)]
	require.NotNil(t, first.OutTime)
	assert.Equal(t, "19:30:00", *first.OutTime)
	assert.Equal(t, 10.5, *first.WorkHours)
	assert.Equal(t, attendance.StatusPresent, first.Status)

	second := attRepo.records[key(2, today)]
	require.NotNil(t, second.OutTime)
	assert.Equal(t, 3.5, *second.WorkHours)
	assert.Equal(t, attendance.StatusAbsent, second.Status)

	third := attRepo.records[key(3, today)]
	assert.Equal(t, "17:00:00", *third.OutTime)
	assert.Equal(t, 8.0, *third.WorkHours)
}

func TestForceCheckout_PerRecordFailureIsolated(t *testing.T) {
	today := "2026-03-10"
	clk := clock.Fixed{Instant: time.Date(2026, 3, 10, 19, 30, 0, 0, time.UTC)}

	attRepo := newFakeAttendanceRepo()
	ctx := context.Background()

	failing, err := attRepo.Create(ctx, attendance.Attendance{
		EmployeeID: 1, Date: today, Status: attendance.StatusPresent, InTime: strptr("09:00:00"),
	})
	require.NoError(t, err)
	attRepo.failUpdateFor[failing.ID] = true

	_, err = attRepo.Create(ctx, attendance.Attendance{
		EmployeeID: 2, Date: today, Status: attendance.StatusPresent, InTime: strptr("08:00:00"),
	})
	require.NoError(t, err)

	sweeper := NewAttendanceSweeper(attRepo, &fakeEmployeeRepo{}, &fakeLeaveRepo{}, clk, testLogger(t), "19:30:00")
	require.NoError(t, sweeper.ForceCheckout(ctx))

	healthy := attRepo.records[key(2, today)]
	require.NotNil(t, healthy.OutTime)
	assert.Equal(t, 11.5, *healthy.WorkHours)
}
