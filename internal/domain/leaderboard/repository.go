package leaderboard

import (
	"context"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
)

type Repository interface {
	// WindowTotals sums done per user over the inclusive day range.
	WindowTotals(ctx context.Context, from, to string) ([]*models.UserTotal, error)
}

// Names resolves chosen display names. Users without one are absent from the result.
type Names interface {
	DisplayNames(ctx context.Context, userIDs []int64) (map[int64]string, error)
}
