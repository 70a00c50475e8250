package logger

import (
	"context"
	"errors"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewFileHandler writes JSON records to a size-rotated file.
func NewFileHandler(cfg FileConfig, level slog.Leveler, addSource bool) (slog.Handler, func() error) {
	sink := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level, AddSource: addSource})
	return handler, sink.Close
}

// FanoutHandler forwards each record to every handler that accepts its level.
type FanoutHandler struct {
	handlers []slog.Handler
}

func NewFanoutHandler(handlers ...slog.Handler) *FanoutHandler {
	return &FanoutHandler{handlers: handlers}
}

func (f *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (f *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, 0, len(f.handlers))
	for _, h := range f.handlers {
		handlers = append(handlers, h.WithAttrs(attrs))
	}
	return &FanoutHandler{handlers: handlers}
}

func (f *FanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, 0, len(f.handlers))
	for _, h := range f.handlers {
		handlers = append(handlers, h.WithGroup(name))
	}
	return &FanoutHandler{handlers: handlers}
}

// Setup installs the console handler, plus the file sink when a path is set,
// as the default logger. The returned func closes the file.
func Setup(level slog.Leveler, addSource bool, file FileConfig) func() error {
	console := NewHandler(level)
	if file.Path == "" {
		slog.SetDefault(slog.New(console))
		return func() error { return nil }
	}
	fileHandler, closeFile := NewFileHandler(file, level, addSource)
	slog.SetDefault(slog.New(NewFanoutHandler(console, fileHandler)))
	return closeFile
}
