package repositories

import (
	"context"
	"time"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type BuddyRepository interface {
	GetBuddy(ctx context.Context, userID int64) (*models.Buddy, error)
	// SetBuddy replaces any existing pairing for userID.
	SetBuddy(ctx context.Context, userID int64, buddyUsername string) error
	RemoveBuddy(ctx context.Context, userID int64) (bool, error)
}

type buddyRepository struct {
	BaseRepository
}

func NewBuddyRepository(db *bun.DB) BuddyRepository {
	return &buddyRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *buddyRepository) GetBuddy(ctx context.Context, userID int64) (*models.Buddy, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	buddy := new(models.Buddy)
	err := r.db.NewSelect().
		Model(buddy).
		Where("user_id = ?", userID).
		Scan(ctx)
	if found, err := r.HandleLookupError("get_buddy", "buddy", err); !found {
		return nil, err
	}
	return buddy, nil
}

func (r *buddyRepository) SetBuddy(ctx context.Context, userID int64, buddyUsername string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	buddy := &models.Buddy{UserID: userID, BuddyUsername: buddyUsername, CreatedAt: time.Now().UTC()}
	_, err := r.db.NewInsert().
		Model(buddy).
		On("CONFLICT (user_id) DO UPDATE").
		Set("buddy_username = EXCLUDED.buddy_username").
		Set("created_at = EXCLUDED.created_at").
		Exec(ctx)
	return r.HandleError("set_buddy", "buddy", err)
}

func (r *buddyRepository) RemoveBuddy(ctx context.Context, userID int64) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	result, err := r.db.NewDelete().
		Model((*models.Buddy)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return false, r.HandleError("remove_buddy", "buddy", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, r.HandleError("remove_buddy", "buddy", err)
	}
	return affected > 0, nil
}
