package scheduler

import (
	"context"
	"log/slog"
	"time"

	"awc_tracker/internal/domain"
)

// Refresher re-applies the user's list statuses to every challenge.
type Refresher interface {
	RefreshAll(ctx context.Context) (*domain.RefreshStats, error)
}

type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

func NewScheduler(refresher Refresher, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		timeout:   5 * time.Minute,
		logger:    logger.With("component", "scheduler"),
	}
}

// Start refreshes immediately and then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runRefresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runRefresh(ctx)
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.refresher.RefreshAll(refreshCtx); err != nil {
		s.logger.Error("refresh failed", "error", err)
	}
}
