package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-forecast-api/internal/collector"
)

// Scheduler periodically runs the forecast collector.
type Scheduler struct {
	scheduler *gocron.Scheduler
	collector *collector.Collector
	interval  time.Duration
	log       *slog.Logger
}

// New creates a new Scheduler.
func New(log *slog.Logger, c *collector.Collector, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		collector: c,
		interval:  interval,
		log:       log.With("component", "scheduler"),
	}
}

// Start schedules the periodic collection job and starts the underlying
// scheduler. The first run fires immediately so a fresh deployment has data
// before the first interval elapses.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = 6 * time.Hour
	}

	_, err := s.scheduler.Every(interval).StartImmediately().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := s.collector.Run(ctx); err != nil {
			s.log.Error("collection run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
