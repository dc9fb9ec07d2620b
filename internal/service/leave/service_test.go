package leave

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

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository

	requests map[int64]*leave.LeaveRequest
	nextID   int64
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[int64]*leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	req.ID = f.nextID
	req.RequestedAt = time.Now()
	f.requests[req.ID] = &req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id int64) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return *req, nil
}

func (f *fakeLeaveRepo) HasPendingOnDate(_ context.Context, employeeID int64, date string) (bool, error) {
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Date == date && req.Status == leave.RequestStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id int64, status leave.RequestStatus, actionedAt time.Time) error {
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	req.Status = status
	req.ActionedAt = &actionedAt
	return nil
}

func (f *fakeLeaveRepo) datesWithStatus(employeeID int64, status leave.RequestStatus) []string {
	var dates []string
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Status == status {
			dates = append(dates, req.Date)
		}
	}
	return dates
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	records map[string]*attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func key(employeeID int64, date string) string {
	return fmt.Sprintf("%d|%s", employeeID, date)
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID int64, date string) (*attendance.Attendance, error) {
	return f.records[key(employeeID, date)], nil
}

func (f *fakeAttendanceRepo) UpsertLeaveDay(_ context.Context, employeeID int64, date string) error {
	zero := 0.0
	f.records[key(employeeID, date)] = &attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     attendance.StatusLeave,
		WorkHours:  &zero,
	}
	return nil
}

func passthroughTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(leaveRepo *fakeLeaveRepo, attRepo *fakeAttendanceRepo, clk clock.Clock) Service {
	logger := slog.New(slog.DiscardHandler)
	return NewService(leaveRepo, attRepo, clk, logger, passthroughTx)
}

func fixedClock() clock.Clock {
	return clock.Fixed{Instant: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)}
}

func TestRequestLeave_RangeDecomposition(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newService(leaveRepo, newFakeAttendanceRepo(), fixedClock())

	resp, err := svc.RequestLeave(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 7, FromDate: "2026-03-10", ToDate: "2026-03-12", Reason: "flu",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-10", "2026-03-11", "2026-03-12"}, resp.InsertedDates)
	assert.ElementsMatch(t,
		[]string{"2026-03-10", "2026-03-11", "2026-03-12"},
		leaveRepo.datesWithStatus(7, leave.RequestStatusPending))
}

func TestRequestLeave_InvalidRange(t *testing.T) {
	svc := newService(newFakeLeaveRepo(), newFakeAttendanceRepo(), fixedClock())

	_, err := svc.RequestLeave(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 7, FromDate: "2026-03-12", ToDate: "2026-03-10", Reason: "flu",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidRange)
}

func TestRequestLeave_SkipsPendingDays(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newService(leaveRepo, newFakeAttendanceRepo(), fixedClock())

	_, err := svc.RequestLeave(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 7, FromDate: "2026-03-11", ToDate: "2026-03-11", Reason: "flu",
	})
	require.NoError(t, err)

	resp, err := svc.RequestLeave(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 7, FromDate: "2026-03-10", ToDate: "2026-03-12", Reason: "flu",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-10", "2026-03-12"}, resp.InsertedDates)
}

func TestRequestLeave_NoNewEntries(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newService(leaveRepo, newFakeAttendanceRepo(), fixedClock())

	_, err := svc.RequestLeave(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 7, FromDate: "2026-03-10", ToDate: "2026-03-11", Reason: "flu",
	})
	require.NoError(t, err)

	_, err = svc.RequestLeave(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 7, FromDate: "2026-03-10", ToDate: "2026-03-11", Reason: "flu",
	})
	assert.ErrorIs(t, err, leave.ErrNoNewEntries)
}

func TestRequestLeave_TodayAfterCheckIn(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	inTime := "09:00:00"
	attRepo.records[key(7, "2026-03-09")] = &attendance.Attendance{
		EmployeeID: 7, Date: "2026-03-09", Status: attendance.StatusPresent, InTime: &inTime,
	}

	svc := newService(newFakeLeaveRepo(), attRepo, fixedClock())

	// Range includes today (2026-03-09) and the employee already checked in.
	_, err := svc.RequestLeave(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 7, FromDate: "2026-03-09", ToDate: "2026-03-10", Reason: "flu",
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyChecked)

	// A range that starts tomorrow is fine.
	_, err = svc.RequestLeave(context.Background(), leave.RequestLeaveRequest{
		EmployeeID: 7, FromDate: "2026-03-10", ToDate: "2026-03-11", Reason: "flu",
	})
	assert.NoError(t, err)
}

func TestApprove_UpsertsLeaveDay(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	attRepo := newFakeAttendanceRepo()
	svc := newService(leaveRepo, attRepo, fixedClock())

	created, err := leaveRepo.Create(context.Background(), leave.LeaveRequest{
		EmployeeID: 7, Date: "2026-03-10", Reason: "flu", Status: leave.RequestStatusPending,
	})
	require.NoError(t, err)

	// Prior check-in data for the day is discarded by the upsert.
	inTime := "09:00:00"
	attRepo.records[key(7, "2026-03-10")] = &attendance.Attendance{
		EmployeeID: 7, Date: "2026-03-10", Status: attendance.StatusPresent, InTime: &inTime,
	}

	resp, err := svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.LeaveRequestID)

	assert.Equal(t, leave.RequestStatusApproved, leaveRepo.requests[created.ID].Status)
	assert.NotNil(t, leaveRepo.requests[created.ID].ActionedAt)

	mirror := attRepo.records[key(7, "2026-03-10")]
	require.NotNil(t, mirror)
	assert.Equal(t, attendance.StatusLeave, mirror.Status)
	assert.Equal(t, 0.0, *mirror.WorkHours)
	assert.Nil(t, mirror.InTime)
}

func TestApprove_Guards(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := newService(leaveRepo, newFakeAttendanceRepo(), fixedClock())

	_, err := svc.Approve(context.Background(), 999)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	created, err := leaveRepo.Create(context.Background(), leave.LeaveRequest{
		EmployeeID: 7, Date: "2026-03-10", Reason: "flu", Status: leave.RequestStatusPending,
	})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveNotPending)
}

func TestReject(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	attRepo := newFakeAttendanceRepo()
	svc := newService(leaveRepo, attRepo, fixedClock())

	created, err := leaveRepo.Create(context.Background(), leave.LeaveRequest{
		EmployeeID: 7, Date: "2026-03-10", Reason: "flu", Status: leave.RequestStatusPending,
	})
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.RequestStatusRejected, leaveRepo.requests[created.ID].Status)

	// No attendance side effect.
	assert.Nil(t, attRepo.records[key(7, "2026-03-10")])

	_, err = svc.Reject(context.Background(), created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveNotPending)
}
