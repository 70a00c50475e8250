package logger

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
)

const DefaultSlowThreshold = 200 * time.Millisecond

// QueryHook logs bun queries: failures at error, slow ones at warn and the
// rest at debug. sql.ErrNoRows is a normal miss and is not treated as failure.
type QueryHook struct {
	SlowThreshold time.Duration
}

var _ bun.QueryHook = (*QueryHook)(nil)

func NewQueryHook(slowThreshold time.Duration) *QueryHook {
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowThreshold
	}
	return &QueryHook{SlowThreshold: slowThreshold}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	took := time.Since(event.StartTime)
	attrs := []any{
		slog.String("type", "db"),
		slog.String("operation", event.Operation()),
		slog.String("query", event.Query),
		slog.Duration("took", took),
	}

	switch {
	case event.Err != nil && !errors.Is(event.Err, sql.ErrNoRows):
		slog.ErrorContext(ctx, "Query failed", append(attrs, slog.Any("error", event.Err))...)
	case took >= h.SlowThreshold:
		slog.WarnContext(ctx, "Slow query", attrs...)
	default:
		if event.Result != nil {
			if affected, err := event.Result.RowsAffected(); err == nil {
				attrs = append(attrs, slog.Int64("affected_rows", affected))
			}
		}
		slog.DebugContext(ctx, "Query executed", attrs...)
	}
}
