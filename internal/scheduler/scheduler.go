// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"eventSignup/internal/lib/logger/sl"
)

type Job struct {
	Name       string
	Interval   time.Duration
	RunOnStart bool
	Run        func(ctx context.Context) error
}

// Scheduler runs every job on its own ticker. Runs of one job are sequential, so a
// slow run delays the next tick instead of overlapping it.
type Scheduler struct {
	log  *slog.Logger
	jobs []Job
	wg   sync.WaitGroup
}

func New(log *slog.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{
		log:  log.With(slog.String("component", "scheduler")),
		jobs: jobs,
	}
}

// Start launches the job loops and returns immediately. They stop when ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	for _, job := range s.jobs {
		if job.Interval <= 0 {
			s.log.Warn("job disabled", slog.String("job", job.Name))
			continue
		}

		s.wg.Add(1)
		go func(job Job) {
			defer s.wg.Done()
			s.loop(ctx, job)
		}(job)
	}
}

// Wait blocks until every job loop has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	log := s.log.With(slog.String("job", job.Name))

	log.Info("job scheduled", slog.String("interval", job.Interval.String()))

	if job.RunOnStart {
		s.run(ctx, log, job)
	}

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.run(ctx, log, job)
		case <-ctx.Done():
			log.Info("job stopped")
			return
		}
	}
}

func (s *Scheduler) run(ctx context.Context, log *slog.Logger, job Job) {
	if ctx.Err() != nil {
		return
	}

	start := time.Now()

	if err := job.Run(ctx); err != nil {
		log.Error("job failed", sl.Err(err))
		return
	}

	log.Info("job finished", slog.String("duration", time.Since(start).String()))
}
