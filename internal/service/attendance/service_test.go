package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/domain/leave"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/clock"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	records map[string]*attendance.Attendance
	nextID  int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
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
	return f.records[key(employeeID, date)], nil
}

func (f *fakeAttendanceRepo) UpdateCheckOut(_ context.Context, id int64, outTime string, workHours float64, status attendance.Status) error {
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

func (f *fakeAttendanceRepo) ListRecentByEmployee(_ context.Context, employeeID int64, limit int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range f.records {
		if r.EmployeeID == employeeID {
			out = append(out, *r)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository

	latest map[string]*leave.LeaveRequest // key employeeID|date
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{latest: make(map[string]*leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) GetLatestForDate(_ context.Context, employeeID int64, date string) (*leave.LeaveRequest, error) {
	return f.latest[key(employeeID, date)], nil
}

func (f *fakeLeaveRepo) LatestPerDate(_ context.Context, employeeID int64, dates []string) (map[string]leave.LeaveRequest, error) {
	out := make(map[string]leave.LeaveRequest)
	for _, d := range dates {
		if req := f.latest[key(employeeID, d)]; req != nil {
			out[d] = *req
		}
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func at(hour, minute int) clock.Clock {
	return clock.Fixed{Instant: time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)}
}

func newService(attRepo *fakeAttendanceRepo, leaveRepo *fakeLeaveRepo, clk clock.Clock) Service {
	return NewService(attRepo, leaveRepo, clk, discardLogger())
}

func TestCheckIn(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newService(attRepo, newFakeLeaveRepo(), at(9, 0))

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: 7, Status: "present"})
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", resp.InTime)
	assert.Equal(t, "2026-03-10", resp.Date)

	record := attRepo.records[key(7, "2026-03-10")]
	require.NotNil(t, record)
	assert.Equal(t, attendance.StatusPresent, record.Status)
	assert.Nil(t, record.OutTime)
}

func TestCheckIn_Duplicate(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newService(attRepo, newFakeLeaveRepo(), at(9, 0))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: 7, Status: "present"})
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: 7, Status: "present"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckIn_InvalidStatus(t *testing.T) {
	svc := newService(newFakeAttendanceRepo(), newFakeLeaveRepo(), at(9, 0))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: 7, Status: "vacationing"})
	assert.Error(t, err)
}

func TestCheckOut_FullDay(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newService(attRepo, newFakeLeaveRepo(), at(9, 0))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: 7, Status: "present"})
	require.NoError(t, err)

	// 09:00 -> 17:00 is 8.0 hours, present.
	svc = newService(attRepo, newFakeLeaveRepo(), at(17, 0))
	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: 7})
	require.NoError(t, err)
	assert.Equal(t, "17:00:00", resp.OutTime)
	assert.Equal(t, 8.0, resp.WorkHours)
	assert.Equal(t, attendance.StatusPresent, attRepo.records[key(7, "2026-03-10")].Status)
}

func TestCheckOut_ShortDayReclassifiedAbsent(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newService(attRepo, newFakeLeaveRepo(), at(9, 0))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: 7, Status: "present"})
	require.NoError(t, err)

	// 09:00 -> 12:30 is 3.5 hours: absent, despite the declared "present".
	svc = newService(attRepo, newFakeLeaveRepo(), at(12, 30))
	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: 7})
	require.NoError(t, err)
	assert.Equal(t, 3.5, resp.WorkHours)
	assert.Equal(t, attendance.StatusAbsent, attRepo.records[key(7, "2026-03-10")].Status)
}

func TestCheckOut_HalfDay(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newService(attRepo, newFakeLeaveRepo(), at(9, 0))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: 7, Status: "present"})
	require.NoError(t, err)

	// 09:00 -> 14:00 is 5.0 hours, half-day.
	svc = newService(attRepo, newFakeLeaveRepo(), at(14, 0))
	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: 7})
	require.NoError(t, err)
	assert.Equal(t, 5.0, resp.WorkHours)
	assert.Equal(t, attendance.StatusHalfDay, attRepo.records[key(7, "2026-03-10")].Status)
}

func TestCheckOut_Guards(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	svc := newService(attRepo, newFakeLeaveRepo(), at(17, 0))

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: 7})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	inTime := "09:00:00"
	outTime := "17:00:00"
	hours := 8.0
	_, err = attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: 7, Date: "2026-03-10", Status: attendance.StatusPresent,
		InTime: &inTime, OutTime: &outTime, WorkHours: &hours,
	})
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: 7})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestResolveStatus_PendingBeatsRecord(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	leaveRepo := newFakeLeaveRepo()

	inTime := "09:00:00"
	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: 7, Date: "2026-03-10", Status: attendance.StatusPresent, InTime: &inTime,
	})
	require.NoError(t, err)
	leaveRepo.latest[key(7, "2026-03-10")] = &leave.LeaveRequest{
		EmployeeID: 7, Date: "2026-03-10", Reason: "flu", Status: leave.RequestStatusPending,
	}

	svc := newService(attRepo, leaveRepo, at(10, 0))
	day, err := svc.ResolveStatus(context.Background(), 7, "2026-03-10")
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, attendance.DisplayStatusPending, day.Status)
	require.NotNil(t, day.LeaveReason)
	assert.Equal(t, "flu", *day.LeaveReason)
	// Record fields still visible underneath the override.
	assert.Equal(t, &inTime, day.InTime)
}

func TestResolveStatus_ApprovedIsLeave(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	leaveRepo := newFakeLeaveRepo()
	leaveRepo.latest[key(7, "2026-03-10")] = &leave.LeaveRequest{
		EmployeeID: 7, Date: "2026-03-10", Reason: "flu", Status: leave.RequestStatusApproved,
	}

	svc := newService(attRepo, leaveRepo, at(10, 0))
	day, err := svc.ResolveStatus(context.Background(), 7, "2026-03-10")
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, attendance.StatusLeave, day.Status)
}

func TestResolveStatus_RejectedHasNoEffect(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	leaveRepo := newFakeLeaveRepo()

	inTime := "09:00:00"
	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: 7, Date: "2026-03-10", Status: attendance.StatusPresent, InTime: &inTime,
	})
	require.NoError(t, err)
	leaveRepo.latest[key(7, "2026-03-10")] = &leave.LeaveRequest{
		EmployeeID: 7, Date: "2026-03-10", Reason: "flu", Status: leave.RequestStatusRejected,
	}

	svc := newService(attRepo, leaveRepo, at(10, 0))
	day, err := svc.ResolveStatus(context.Background(), 7, "2026-03-10")
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, attendance.StatusPresent, day.Status)
	assert.Nil(t, day.LeaveReason)
}

func TestResolveStatus_NothingMarked(t *testing.T) {
	svc := newService(newFakeAttendanceRepo(), newFakeLeaveRepo(), at(10, 0))

	day, err := svc.ResolveStatus(context.Background(), 7, "2026-03-10")
	require.NoError(t, err)
	assert.Nil(t, day)
}

func TestHistory_RoutesThroughResolver(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	leaveRepo := newFakeLeaveRepo()

	_, err := attRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: 7, Date: "2026-03-09", Status: attendance.StatusPresent,
	})
	require.NoError(t, err)
	leaveRepo.latest[key(7, "2026-03-09")] = &leave.LeaveRequest{
		EmployeeID: 7, Date: "2026-03-09", Reason: "flu", Status: leave.RequestStatusPending,
	}

	svc := newService(attRepo, leaveRepo, at(10, 0))
	history, err := svc.History(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, attendance.DisplayStatusPending, history[0].Status)
}
