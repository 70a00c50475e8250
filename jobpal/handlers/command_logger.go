package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/jobpal/jobpal-bot/jobpal/config"
)

var (
	handlerTimeout = config.CommandExecutionTimeout
	slowThreshold  = config.SlowCommandThreshold
)

// WrapWithLogging wraps a command handler with logging functionality
func WrapWithLogging(name string, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return watch("cmd", "Command", name, e.User(), func() error { return h(e) })
	}
}

// WrapComponentWithLogging wraps a component handler with logging functionality
func WrapComponentWithLogging(name string, h handler.ComponentHandler) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		return watch("component", "Component interaction", name, e.User(), func() error { return h(e) })
	}
}

func WrapModalWithLogging(name string, h handler.ModalHandler) handler.ModalHandler {
	return func(e *handler.ModalEvent) error {
		return watch("component", "Modal submission", name, e.User(), func() error { return h(e) })
	}
}

// watch runs fn with a timeout watchdog and logs its outcome. A handler that
// outlives the watchdog keeps running; only the caller stops waiting.
func watch(kind, label, name string, user discord.User, fn func() error) error {
	start := time.Now()
	attrs := []any{
		slog.String("type", kind),
		slog.String("name", name),
		slog.String("user_id", user.ID.String()),
		slog.String("user_name", user.Username),
	}
	slog.Debug(label+" started", attrs...)

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("%s %s panicked: %v", kind, name, r)
			}
		}()
		done <- fn()
	}()

	select {
	case err := <-done:
		attrs = append(attrs, slog.Duration("took", time.Since(start)))
		switch {
		case err != nil:
			slog.Error(label+" failed", append(attrs,
				slog.Any("error", err),
				slog.String("status", "failed"),
			)...)
		case time.Since(start) > slowThreshold:
			slog.Warn(label+" executed slowly", append(attrs,
				slog.String("status", "slow"),
			)...)
		default:
			slog.Info(label+" completed", append(attrs,
				slog.String("status", "success"),
			)...)
		}
		return err

	case <-time.After(handlerTimeout):
		slog.Error(label+" timed out", append(attrs,
			slog.String("status", "timeout"),
			slog.Duration("timeout", handlerTimeout),
		)...)
		return fmt.Errorf("%s timed out after %s", name, handlerTimeout)
	}
}
