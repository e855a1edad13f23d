// Package scheduler drives the optional auto-refresh: it re-invokes the
// coordinator's refresh on the interval from the user settings. Each tick
// is an ordinary consumer-driven refresh; the core itself never retries.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/go-pkgz/lgr"
)

const defaultIntervalMinutes = 15

// Refresher re-fetches weather and news
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler periodically refreshes session data
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	interval  time.Duration
	timeout   time.Duration
}

// New creates a scheduler refreshing at the given interval
func New(refresher Refresher, interval, timeout time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		refresher: refresher,
		interval:  interval,
		timeout:   timeout,
	}
}

// Start schedules the periodic refresh and starts the underlying scheduler
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = defaultIntervalMinutes
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		lgr.Printf("[DEBUG] auto refresh tick")
		if err := s.refresher.Refresh(ctx); err != nil {
			lgr.Printf("[WARN] auto refresh: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	lgr.Printf("[INFO] auto refresh every %d minutes", minutes)
	return nil
}

// Stop stops the scheduler and cancels any future jobs
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
