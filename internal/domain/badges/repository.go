package badges

import (
	"context"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
)

type Repository interface {
	ListAwards(ctx context.Context, userID int64) ([]*models.BadgeAward, error)
	// Award inserts the award unless (user_id, badge) already exists and
	// reports whether this call created the row.
	Award(ctx context.Context, award *models.BadgeAward) (bool, error)
}

// History exposes the per-user aggregates badge predicates read.
type History interface {
	TotalDone(ctx context.Context, userID int64) (int, error)
	Streak(ctx context.Context, userID int64, lookback int) (int, error)
	WeekdaysMet(ctx context.Context, userID int64) (int, error)
}
