package indexer

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// CycleRunner executes one sync cycle.
type CycleRunner interface {
	RunCycle(ctx context.Context) (*CycleResult, error)
}

// Scheduler drives cycles continuously until its context ends.
type Scheduler struct {
	runner   CycleRunner
	interval time.Duration
	base     time.Duration
	max      time.Duration
	logger   *zap.Logger
}

// NewScheduler creates a continuous loop over runner.
func NewScheduler(runner CycleRunner, cfg Config, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		runner:   runner,
		interval: cfg.Interval(),
		base:     cfg.BackoffBase(),
		max:      cfg.BackoffMax(),
		logger:   logger,
	}
}

func (s *Scheduler) newBackoff() retry.Backoff {
	b := retry.NewExponential(s.base)
	b = retry.WithJitterPercent(10, b)
	return retry.WithCappedDuration(s.max, b)
}

// Run loops until ctx is cancelled. A caught-up cycle waits the poll
// interval, a cycle that advanced and left events behind starts the next
// one at once, and a failed cycle backs off exponentially. Cycle errors are logged and
// never returned.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("Sync loop started",
		zap.Duration("interval", s.interval),
		zap.Duration("backoff_max", s.max))
	defer s.logger.Info("Sync loop stopped")

	backoff := s.newBackoff()
	failures := 0

	for {
		if ctx.Err() != nil {
			return nil
		}

		res, err := s.runner.RunCycle(ctx)

		var wait time.Duration
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil
			}
			failures++
			wait, _ = backoff.Next()
			s.logger.Error("Sync cycle failed",
				zap.Error(err),
				zap.Int("consecutive_failures", failures),
				zap.Duration("retry_in", wait))
		case res != nil && res.HasMore && res.Advanced:
			failures = 0
			backoff = s.newBackoff()
			continue
		default:
			if failures > 0 {
				s.logger.Info("Sync loop recovered", zap.Int("after_failures", failures))
			}
			failures = 0
			backoff = s.newBackoff()
			wait = s.interval
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}
