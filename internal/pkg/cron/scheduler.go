package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/clock"
)

// Job is a unit of scheduled work. Errors are logged, never propagated: a
// failing job must not take the scheduler down with it.
type Job struct {
	Name string
	// At is the local wall-clock trigger in "HH:MM" form.
	At  string
	Run func(ctx context.Context) error
}

// Scheduler fires registered jobs once per day at their configured wall-clock
// minute.
type Scheduler struct {
	logger *slog.Logger
	clock  clock.Clock

	mu       sync.Mutex
	jobs     []Job
	lastFire map[string]string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(logger *slog.Logger, clk clock.Clock) *Scheduler {
	return &Scheduler{
		logger:   logger,
		clock:    clk,
		lastFire: make(map[string]string),
	}
}

// Register adds a job. At must be "HH:MM" in 24-hour form.
func (s *Scheduler) Register(job Job) error {
	if _, err := time.Parse("15:04", job.At); err != nil {
		return fmt.Errorf("invalid trigger time %q for job %s: %w", job.At, job.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
	return nil
}

// Start launches the polling loop. Call Stop to shut it down.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		s.logger.Info("scheduler started", "jobs", len(s.jobs))
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("scheduler stopped")
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}()
}

// Tick fires every job whose trigger minute matches the current wall clock
// and has not already fired today. Exposed so tests can drive the scheduler
// with a fixed clock.
func (s *Scheduler) Tick(ctx context.Context) {
	now := s.clock.Now()
	minute := now.Format("15:04")
	today := now.Format(clock.DateLayout)

	s.mu.Lock()
	jobs := make([]Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		if job.At != minute {
			continue
		}
		if s.lastFire[job.Name] == today {
			continue
		}
		s.lastFire[job.Name] = today
		jobs = append(jobs, job)
	}
	s.mu.Unlock()

	for _, job := range jobs {
		s.runJob(ctx, job)
	}
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled job panicked", "job", job.Name, "panic", r)
		}
	}()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		s.logger.Error("scheduled job failed", "job", job.Name, "error", err)
		return
	}
	s.logger.Info("scheduled job finished", "job", job.Name, "duration", time.Since(start))
}

// Stop cancels the loop and waits for in-flight jobs to finish.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
