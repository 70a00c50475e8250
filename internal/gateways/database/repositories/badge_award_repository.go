package repositories

import (
	"context"
	"log/slog"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type BadgeAwardRepository interface {
	ListAwards(ctx context.Context, userID int64) ([]*models.BadgeAward, error)
	Award(ctx context.Context, award *models.BadgeAward) (bool, error)
}

type badgeAwardRepository struct {
	BaseRepository
}

func NewBadgeAwardRepository(db *bun.DB) BadgeAwardRepository {
	return &badgeAwardRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *badgeAwardRepository) ListAwards(ctx context.Context, userID int64) ([]*models.BadgeAward, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var awards []*models.BadgeAward
	err := r.db.NewSelect().
		Model(&awards).
		Where("user_id = ?", userID).
		Order("awarded_at ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_awards", "badge_award", err)
	}
	return awards, nil
}

// Award inserts once per (user_id, badge). A concurrent evaluator losing the
// race sees false.
func (r *badgeAwardRepository) Award(ctx context.Context, award *models.BadgeAward) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	result, err := r.db.NewInsert().
		Model(award).
		On("CONFLICT (user_id, badge) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return false, r.HandleError("award", "badge_award", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, r.HandleError("award", "badge_award", err)
	}
	if affected == 1 {
		slog.Info("Badge awarded",
			slog.String("type", "db"),
			slog.Int64("user_id", award.UserID),
			slog.String("badge", award.Badge))
	}
	return affected == 1, nil
}
