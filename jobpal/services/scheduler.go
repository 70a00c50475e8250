package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
)

const (
	schedulerTick  = 30 * time.Second
	schedulerGrace = 5 * time.Minute
)

// Job runs once per day at At ("HH:MM" in the scheduler's timezone).
type Job struct {
	Name string
	At   string
	Run  func(ctx context.Context) error
}

type scheduledJob struct {
	Job
	hour, minute int
}

// Scheduler is a daily wall-clock scheduler. A job that was missed by more
// than the grace window (bot offline) waits for the next day.
type Scheduler struct {
	clock dates.Clock
	jobs  []scheduledJob

	mu      sync.Mutex
	lastRun map[string]string
	running sync.WaitGroup
}

func NewScheduler(clock dates.Clock, jobs ...Job) (*Scheduler, error) {
	s := &Scheduler{clock: clock, lastRun: make(map[string]string)}
	for _, job := range jobs {
		var hour, minute int
		if _, err := fmt.Sscanf(job.At, "%d:%d", &hour, &minute); err != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			return nil, fmt.Errorf("invalid time %q for job %s, expected HH:MM", job.At, job.Name)
		}
		s.jobs = append(s.jobs, scheduledJob{Job: job, hour: hour, minute: minute})
	}
	return s, nil
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(schedulerTick)
	defer ticker.Stop()

	s.tick(ctx, s.clock.LocalNow())
	for {
		select {
		case <-ctx.Done():
			s.running.Wait()
			return
		case <-ticker.C:
			s.tick(ctx, s.clock.LocalNow())
		}
	}
}

// tick starts every job that is due at now and returns their names.
func (s *Scheduler) tick(ctx context.Context, now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var started []string
	for _, job := range s.jobs {
		day := dates.Key(now)
		if !job.due(now) || s.lastRun[job.Name] == day {
			continue
		}
		s.lastRun[job.Name] = day
		started = append(started, job.Name)

		s.running.Add(1)
		go func(job scheduledJob) {
			defer s.running.Done()
			defer func() {
				if r := recover(); r != nil {
					slog.Error("Scheduled job panic",
						slog.String("type", "sys"),
						slog.String("job", job.Name),
						slog.Any("panic", r))
				}
			}()

			start := time.Now()
			if err := job.Run(ctx); err != nil {
				slog.Error("Scheduled job failed",
					slog.String("type", "sys"),
					slog.String("job", job.Name),
					slog.Duration("took", time.Since(start)),
					slog.Any("error", err))
				return
			}
			slog.Info("Scheduled job finished",
				slog.String("type", "sys"),
				slog.String("job", job.Name),
				slog.Duration("took", time.Since(start)))
		}(job)
	}
	return started
}

func (j scheduledJob) due(now time.Time) bool {
	at := time.Date(now.Year(), now.Month(), now.Day(), j.hour, j.minute, 0, 0, now.Location())
	return !now.Before(at) && now.Before(at.Add(schedulerGrace))
}

// Wait blocks until started jobs return.
func (s *Scheduler) Wait() {
	s.running.Wait()
}
