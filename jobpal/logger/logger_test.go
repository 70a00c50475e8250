package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	h := NewHandlerWithWriter(buf, level)
	h.now = func() time.Time { return time.Date(2024, 3, 6, 9, 5, 7, 0, time.UTC) }
	return slog.New(h)
}

func TestCustomHandler_Format(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l *slog.Logger)
		contains []string
	}{
		{
			name: "command with user and status",
			log: func(l *slog.Logger) {
				l.Info("Command completed",
					slog.String("type", "cmd"),
					slog.String("name", "log"),
					slog.String("user_name", "pal"),
					slog.String("status", "success"))
			},
			contains: []string{"[JobPal] [09:05:07]", "INFO", "[CMD] Command completed [log by pal] [Status: success]"},
		},
		{
			name: "error details",
			log: func(l *slog.Logger) {
				l.Error("Query failed", slog.String("type", "db"), slog.Any("error", errors.New("boom")))
			},
			contains: []string{"ERROR", "[DB] Query failed", ": boom"},
		},
		{
			name:     "defaults to system",
			log:      func(l *slog.Logger) { l.Warn("Queue full") },
			contains: []string{"WARN", "[SYS] Queue full"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newTestLogger(&buf, slog.LevelDebug))
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output %q does not contain %q", buf.String(), want)
				}
			}
		})
	}
}

func TestCustomHandler_SkipsNoiseAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelInfo)

	l.Info("Sending heartbeat")
	l.Debug("too quiet")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestFanoutHandler(t *testing.T) {
	var console, file bytes.Buffer
	fan := NewFanoutHandler(
		NewHandlerWithWriter(&console, slog.LevelWarn),
		slog.NewJSONHandler(&file, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	l := slog.New(fan).With(slog.String("component", "notifier"))

	l.Info("queued")
	if console.Len() != 0 {
		t.Errorf("console got an info record: %q", console.String())
	}
	var record map[string]any
	if err := json.Unmarshal(file.Bytes(), &record); err != nil {
		t.Fatalf("file output is not JSON: %v", err)
	}
	if record["msg"] != "queued" || record["component"] != "notifier" {
		t.Errorf("file record = %v", record)
	}
	if !fan.Enabled(context.Background(), slog.LevelInfo) || fan.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled() should follow the most verbose handler")
	}
}
