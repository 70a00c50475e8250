package repositories

import (
	"context"
	"time"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type UserRepository interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	GetUsers(ctx context.Context, userIDs []int64) ([]*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Touch(ctx context.Context, userID int64, username string) error
	SetDisplayName(ctx context.Context, userID int64, username, displayName string) error
	ListUserIDs(ctx context.Context) ([]int64, error)
}

type userRepository struct {
	BaseRepository
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *userRepository) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("user_id = ?", userID).
		Scan(ctx)
	if found, err := r.HandleLookupError("get_user", "user", err); !found {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetUsers(ctx context.Context, userIDs []int64) ([]*models.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		Where("user_id IN (?)", bun.In(userIDs)).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_users", "user", err)
	}
	return users, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	user := new(models.User)
	err := r.db.NewSelect().
		Model(user).
		Where("LOWER(username) = LOWER(?)", username).
		OrderExpr("updated_at DESC").
		Limit(1).
		Scan(ctx)
	if found, err := r.HandleLookupError("get_by_username", "user", err); !found {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Touch(ctx context.Context, userID int64, username string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	user := &models.User{UserID: userID, Username: username, CreatedAt: now, UpdatedAt: now}
	_, err := r.db.NewInsert().
		Model(user).
		On("CONFLICT (user_id) DO UPDATE").
		Set("username = EXCLUDED.username").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return r.HandleError("touch", "user", err)
}

func (r *userRepository) SetDisplayName(ctx context.Context, userID int64, username, displayName string) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	user := &models.User{UserID: userID, Username: username, DisplayName: displayName, CreatedAt: now, UpdatedAt: now}
	query := r.db.NewInsert().
		Model(user).
		On("CONFLICT (user_id) DO UPDATE").
		Set("display_name = EXCLUDED.display_name")
	if username != "" {
		query = query.Set("username = EXCLUDED.username")
	}
	_, err := query.
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return r.HandleError("set_display_name", "user", err)
}

func (r *userRepository) ListUserIDs(ctx context.Context) ([]int64, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var ids []int64
	err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Column("user_id").
		Order("user_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, r.HandleError("list_user_ids", "user", err)
	}
	return ids, nil
}
