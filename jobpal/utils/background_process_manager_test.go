package utils

import (
	"context"
	"testing"
	"time"
)

func TestBackgroundProcessManager_Lifecycle(t *testing.T) {
	bpm := NewBackgroundProcessManager()
	started := make(chan struct{}, 2)

	bpm.StartProcess("scheduler", "runs jobs", func(ctx context.Context) {
		started <- struct{}{}
		<-ctx.Done()
	})
	bpm.StartProcess("notifier", "sends DMs", func(ctx context.Context) {
		started <- struct{}{}
		<-ctx.Done()
	})
	<-started
	<-started

	list := bpm.ListProcesses()
	if len(list) != 2 || list[0].Name != "notifier" || list[1].Name != "scheduler" {
		t.Fatalf("ListProcesses() = %+v", list)
	}

	if err := bpm.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if n := bpm.GetProcessCount(); n != 0 {
		t.Errorf("GetProcessCount() after shutdown = %d", n)
	}
}

func TestBackgroundProcessManager_PanicAndTimeout(t *testing.T) {
	bpm := NewBackgroundProcessManager()
	bpm.StartProcess("boom", "panics", func(ctx context.Context) { panic("boom") })
	bpm.StartProcess("stubborn", "ignores cancel", func(ctx context.Context) { time.Sleep(300 * time.Millisecond) })

	if err := bpm.Shutdown(20 * time.Millisecond); err != context.DeadlineExceeded {
		t.Errorf("Shutdown() error = %v, want deadline exceeded", err)
	}
}

func TestBackgroundProcessManager_Restart(t *testing.T) {
	bpm := NewBackgroundProcessManager()
	firstStopped := make(chan struct{})
	bpm.StartProcess("job", "first", func(ctx context.Context) {
		<-ctx.Done()
		close(firstStopped)
	})
	bpm.StartProcess("job", "second", func(ctx context.Context) { <-ctx.Done() })

	select {
	case <-firstStopped:
	case <-time.After(time.Second):
		t.Fatal("starting a duplicate name did not cancel the first process")
	}
	_ = bpm.Shutdown(time.Second)
}
