package badges

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
)

type Evaluator interface {
	// CheckAll awards every unearned badge that now qualifies and returns
	// the ones this call awarded, in catalogue order.
	CheckAll(ctx context.Context, userID int64) ([]Badge, error)
	Summary(ctx context.Context, userID int64) ([]Status, error)
}

// Status is a badge as seen by one user.
type Status struct {
	Badge     Badge
	Earned    bool
	AwardedAt time.Time
	// Progress is only filled for unearned badges.
	Progress string
}

type evaluator struct {
	repository Repository
	history    History
	catalogue  []Badge
	now        func() time.Time
}

func NewEvaluator(repository Repository, history History) *evaluator {
	return &evaluator{
		repository: repository,
		history:    history,
		catalogue:  Catalogue,
		now:        time.Now,
	}
}

func (e *evaluator) CheckAll(ctx context.Context, userID int64) ([]Badge, error) {
	awarded, err := e.awarded(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := NewSnapshot(userID, e.history)
	var unlocked []Badge
	for _, badge := range e.catalogue {
		if _, ok := awarded[badge.Key()]; ok {
			continue
		}

		qualifies, err := badge.Qualifies(ctx, snap)
		if err != nil {
			slog.Warn("Badge predicate failed",
				slog.String("type", "sys"),
				slog.String("badge", badge.Key()),
				slog.Int64("user_id", userID),
				slog.Any("error", err))
			continue
		}
		if !qualifies {
			continue
		}

		created, err := e.repository.Award(ctx, &models.BadgeAward{
			UserID:    userID,
			Badge:     badge.Key(),
			AwardedAt: e.now(),
		})
		if err != nil {
			slog.Warn("Failed to record badge award",
				slog.String("type", "db"),
				slog.String("badge", badge.Key()),
				slog.Int64("user_id", userID),
				slog.Any("error", err))
			continue
		}
		if created {
			slog.Info("Badge awarded",
				slog.String("type", "sys"),
				slog.String("badge", badge.Key()),
				slog.Int64("user_id", userID))
			unlocked = append(unlocked, badge)
		}
	}
	return unlocked, nil
}

func (e *evaluator) Summary(ctx context.Context, userID int64) ([]Status, error) {
	awarded, err := e.awarded(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := NewSnapshot(userID, e.history)
	statuses := make([]Status, 0, len(e.catalogue))
	for _, badge := range e.catalogue {
		if award, ok := awarded[badge.Key()]; ok {
			statuses = append(statuses, Status{Badge: badge, Earned: true, AwardedAt: award.AwardedAt})
			continue
		}

		progress, err := badge.Progress(ctx, snap)
		if err != nil {
			slog.Warn("Badge progress failed",
				slog.String("type", "sys"),
				slog.String("badge", badge.Key()),
				slog.Int64("user_id", userID),
				slog.Any("error", err))
			progress = "unavailable"
		}
		statuses = append(statuses, Status{Badge: badge, Progress: progress})
	}
	return statuses, nil
}

func (e *evaluator) awarded(ctx context.Context, userID int64) (map[string]*models.BadgeAward, error) {
	awards, err := e.repository.ListAwards(ctx, userID)
	if err != nil {
		return nil, errs.Storage("list badge awards", err)
	}

	byKey := make(map[string]*models.BadgeAward, len(awards))
	for _, award := range awards {
		byKey[award.Badge] = award
	}
	return byKey, nil
}
