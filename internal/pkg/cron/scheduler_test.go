package cron

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/clock"
)

func newTestScheduler(t *testing.T, at time.Time) *Scheduler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	return NewScheduler(logger, clock.Fixed{Instant: at})
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestScheduler_RegisterRejectsBadTrigger(t *testing.T) {
	s := newTestScheduler(t, time.Now())

	err := s.Register(Job{Name: "bad", At: "25:00", Run: func(context.Context) error { return nil }})
	assert.Error(t, err)

	err = s.Register(Job{Name: "ok", At: "18:00", Run: func(context.Context) error { return nil }})
	assert.NoError(t, err)
}

func TestScheduler_TickFiresOnMatchingMinute(t *testing.T) {
	at := time.Date(2026, 3, 10, 18, 0, 15, 0, time.UTC)
	s := newTestScheduler(t, at)

	var fired int
	require.NoError(t, s.Register(Job{Name: "sweep", At: "18:00", Run: func(context.Context) error {
		fired++
		return nil
	}}))
	require.NoError(t, s.Register(Job{Name: "other", At: "19:30", Run: func(context.Context) error {
		t.Fatal("job with non-matching trigger must not fire")
		return nil
	}}))

	s.Tick(context.Background())
	assert.Equal(t, 1, fired)
}

func TestScheduler_TickFiresAtMostOncePerDay(t *testing.T) {
	at := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	s := newTestScheduler(t, at)

	var fired int
	require.NoError(t, s.Register(Job{Name: "sweep", At: "18:00", Run: func(context.Context) error {
		fired++
		return nil
	}}))

	s.Tick(context.Background())
	s.Tick(context.Background())
	assert.Equal(t, 1, fired, "second tick within the same minute must be suppressed")

	// Next day, same minute: fires again.
	s.clock = clock.Fixed{Instant: at.AddDate(0, 0, 1)}
	s.Tick(context.Background())
	assert.Equal(t, 2, fired)
}

func TestScheduler_JobErrorDoesNotStopOthers(t *testing.T) {
	at := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	s := newTestScheduler(t, at)

	var secondRan bool
	require.NoError(t, s.Register(Job{Name: "failing", At: "18:00", Run: func(context.Context) error {
		return errors.New("boom")
	}}))
	require.NoError(t, s.Register(Job{Name: "panicking", At: "18:00", Run: func(context.Context) error {
		panic("boom")
	}}))
	require.NoError(t, s.Register(Job{Name: "healthy", At: "18:00", Run: func(context.Context) error {
		secondRan = true
		return nil
	}}))

	s.Tick(context.Background())
	assert.True(t, secondRan)
}
