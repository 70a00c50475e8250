package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

func NewApp(handler *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "jobpal-api",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
	})
	app.Use(requestLogger)
	RegisterRoutes(app, handler)
	return app
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	level := slog.LevelDebug
	if c.Response().StatusCode() >= fiber.StatusInternalServerError || err != nil {
		level = slog.LevelWarn
	}
	slog.Log(c.UserContext(), level, "API request",
		slog.String("type", "sys"),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.Int("status", c.Response().StatusCode()),
		slog.Duration("duration", time.Since(start)))
	return err
}

// Serve listens on addr until ctx is cancelled.
func Serve(ctx context.Context, app *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	}
}
