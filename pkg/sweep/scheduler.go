package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a job on a cron schedule, for unattended recurring
// housekeeping (e.g. daily at 3 AM). Overlapping executions are
// prevented: a tick that fires while the previous run is still active
// is skipped with a warning.
type Scheduler struct {
	expression string
	job        func(context.Context)
	cron       *cron.Cron
	mu         sync.Mutex
	log        *slog.Logger
	running    bool
	active     atomic.Bool
}

// NewScheduler creates a scheduler that invokes job on each firing of
// the cron expression.
//
// Common expressions:
//   - "0 3 * * *"    - daily at 3 AM
//   - "0 */6 * * *"  - every 6 hours
//   - "0 0 * * 0"    - weekly on Sunday at midnight
func NewScheduler(expression string, job func(context.Context)) *Scheduler {
	return &Scheduler{
		expression: expression,
		job:        job,
		cron:       cron.New(),
		log:        slog.Default().With("component", "sweep.scheduler"),
	}
}

// Start validates the expression and begins scheduling. The scheduler
// stops itself when ctx is cancelled. Calling Start on a running
// scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.expression == "" {
		return fmt.Errorf("cron schedule is empty")
	}

	if _, err := cron.ParseStandard(s.expression); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.expression, err)
	}

	if _, err := s.cron.AddFunc(s.expression, func() {
		s.tick(ctx)
	}); err != nil {
		return fmt.Errorf("failed to schedule runs: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.log.Info("scheduler started", "schedule", s.expression)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// tick executes one scheduled run unless the previous one is still
// active.
func (s *Scheduler) tick(ctx context.Context) {
	if !s.active.CompareAndSwap(false, true) {
		s.log.Warn("previous run still active, skipping this tick")
		return
	}
	defer s.active.Store(false)

	s.log.Info("starting scheduled run")
	s.job(ctx)
}

// Stop stops the scheduler and waits for any running job to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done() // Wait for a running job to finish
		s.running = false
		s.log.Info("scheduler stopped")
	}
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// NextRun returns the next scheduled firing time.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
