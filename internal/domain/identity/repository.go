package identity

import (
	"context"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
)

// Repository is the users table. Lookups return nil, nil when the user is unknown.
type Repository interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	GetUsers(ctx context.Context, userIDs []int64) ([]*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Touch records the latest platform handle without changing the display name.
	Touch(ctx context.Context, userID int64, username string) error
	SetDisplayName(ctx context.Context, userID int64, username, displayName string) error
}
