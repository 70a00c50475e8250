package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
)

// Gateway and rest chatter that drowns out everything else at debug level.
var skippedMessages = []string{
	"locking buckets",
	"unlocking buckets",
	"gateway event",
	"cleaning up bucket",
	"cleaned up rate limit buckets",
	"binary message received",
	"received gateway message",
	"opening gateway connection",
	"locking gateway rate limiter",
	"unlocking gateway rate limiter",
	"sending gateway command",
	"new request",
	"new response",
	"locking rest bucket",
	"unlocking rest bucket",
	"ready message received name",
	"rate limit response headers",
	"sending heartbeat",
}

type CustomHandler struct {
	opts  *slog.HandlerOptions
	out   io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
	now   func() time.Time
}

func NewHandler(level slog.Leveler) *CustomHandler {
	return NewHandlerWithWriter(os.Stdout, level)
}

func NewHandlerWithWriter(out io.Writer, level slog.Leveler) *CustomHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &CustomHandler{
		opts:  &slog.HandlerOptions{Level: level},
		out:   out,
		mu:    &sync.Mutex{},
		attrs: make([]slog.Attr, 0),
		now:   time.Now,
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &CustomHandler{opts: h.opts, out: h.out, mu: h.mu, attrs: merged, now: h.now}
}

// WithGroup is a no-op: the console format is flat.
func (h *CustomHandler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	if shouldSkipLog(&r) {
		return nil
	}

	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor, levelText = colorRed, "ERROR"
	case r.Level >= slog.LevelWarn:
		levelColor, levelText = colorYellow, "WARN"
	case r.Level >= slog.LevelInfo:
		levelColor, levelText = colorGreen, "INFO"
	default:
		levelColor, levelText = colorPurple, "DEBUG"
	}

	fields := collectFields(&r)
	message := r.Message
	if r.Level >= slog.LevelError {
		location := fields["error_location"]
		if location == "" {
			location = sourceLocation(r.PC)
		}
		if location != "" {
			message = fmt.Sprintf("%s (%s)", message, location)
		}
		if details := fields["error"]; details != "" {
			message = fmt.Sprintf("%s: %s", message, details)
		}
	}
	if fields["name"] != "" && fields["user_name"] != "" {
		message = fmt.Sprintf("%s [%s by %s]", message, fields["name"], fields["user_name"])
	}
	if status := fields["status"]; status != "" {
		message = fmt.Sprintf("%s [Status: %s]", message, status)
	}
	if took := fields["took"]; took != "" {
		message = fmt.Sprintf("%s (took %s)", message, took)
	}

	var attrs strings.Builder
	for _, attr := range h.attrs {
		if !isInternalAttr(attr.Key) {
			fmt.Fprintf(&attrs, " %s=%v", attr.Key, attr.Value)
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[JobPal] [%s] [%s%s%s] [%s] %s%s%s\n",
		colorWhite,
		h.now().Format("15:04:05"),
		levelColor,
		levelText,
		colorWhite,
		logType(fields["type"]),
		message,
		attrs.String(),
		colorReset,
	)
	return err
}

func shouldSkipLog(r *slog.Record) bool {
	message := strings.ToLower(r.Message)
	for _, skip := range skippedMessages {
		if strings.Contains(message, skip) {
			return true
		}
	}
	return false
}

func collectFields(r *slog.Record) map[string]string {
	fields := make(map[string]string, 4)
	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "type", "status", "name", "user_name", "error", "error_location", "took":
			fields[a.Key] = a.Value.String()
		}
		return true
	})
	return fields
}

func logType(value string) LogType {
	switch value {
	case "cmd":
		return TypeCommand
	case "db":
		return TypeDB
	case "error":
		return TypeError
	}
	return TypeSystem
}

func sourceLocation(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}

func isInternalAttr(key string) bool {
	switch key {
	case "type", "name", "user_name", "status":
		return true
	}
	return false
}
