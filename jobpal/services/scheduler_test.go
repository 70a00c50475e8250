package services

import (
	"context"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
)

func TestNewScheduler_RejectsBadTimes(t *testing.T) {
	for _, at := range []string{"", "9", "25:00", "09:60", "noon"} {
		t.Run(at, func(t *testing.T) {
			_, err := NewScheduler(dates.Clock{Location: time.UTC}, Job{Name: "x", At: at, Run: func(context.Context) error { return nil }})
			if err == nil {
				t.Errorf("NewScheduler(%q) error = nil", at)
			}
		})
	}
}

func TestScheduler_Tick(t *testing.T) {
	var morning, wrapUp atomic.Int32
	s, err := NewScheduler(dates.Clock{Location: time.UTC},
		Job{Name: "morning", At: "09:00", Run: func(context.Context) error { morning.Add(1); return nil }},
		Job{Name: "wrapup", At: "22:00", Run: func(context.Context) error { wrapUp.Add(1); return nil }},
	)
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}

	at := func(day, hour, minute int) time.Time {
		return time.Date(2024, 3, day, hour, minute, 0, 0, time.UTC)
	}
	steps := []struct {
		now  time.Time
		want []string
	}{
		{at(6, 8, 59), nil},
		{at(6, 9, 0), []string{"morning"}},
		{at(6, 9, 2), nil},
		{at(6, 22, 4), []string{"wrapup"}},
		{at(7, 9, 5), nil},
		{at(7, 9, 4), []string{"morning"}},
	}
	for _, step := range steps {
		got := s.tick(context.Background(), step.now)
		if !reflect.DeepEqual(got, step.want) {
			t.Errorf("tick(%s) = %v, want %v", step.now.Format(time.RFC3339), got, step.want)
		}
	}
	s.Wait()

	if morning.Load() != 2 || wrapUp.Load() != 1 {
		t.Errorf("runs: morning=%d wrapup=%d, want 2 and 1", morning.Load(), wrapUp.Load())
	}
}

func TestScheduler_JobPanicIsContained(t *testing.T) {
	s, _ := NewScheduler(dates.Clock{Location: time.UTC},
		Job{Name: "boom", At: "10:00", Run: func(context.Context) error { panic("boom") }})

	s.tick(context.Background(), time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC))
	s.Wait()
}
