package logger

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/uptrace/bun"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestQueryHook_AfterQuery(t *testing.T) {
	tests := []struct {
		name  string
		event *bun.QueryEvent
		want  string
	}{
		{
			name:  "failure",
			event: &bun.QueryEvent{Query: "SELECT 1", StartTime: time.Now(), Err: errors.New("boom")},
			want:  "level=ERROR msg=\"Query failed\"",
		},
		{
			name:  "no rows is not a failure",
			event: &bun.QueryEvent{Query: "SELECT 1", StartTime: time.Now(), Err: sql.ErrNoRows},
			want:  "level=DEBUG msg=\"Query executed\"",
		},
		{
			name:  "slow",
			event: &bun.QueryEvent{Query: "SELECT 1", StartTime: time.Now().Add(-time.Second)},
			want:  "level=WARN msg=\"Slow query\"",
		},
		{
			name:  "fast",
			event: &bun.QueryEvent{Query: "SELECT 1", StartTime: time.Now()},
			want:  "level=DEBUG msg=\"Query executed\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			NewQueryHook(100 * time.Millisecond).AfterQuery(context.Background(), tt.event)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNewQueryHook_DefaultThreshold(t *testing.T) {
	if got := NewQueryHook(0).SlowThreshold; got != DefaultSlowThreshold {
		t.Errorf("SlowThreshold = %v, want %v", got, DefaultSlowThreshold)
	}
}
