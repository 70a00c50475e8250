package repositories

import (
	"context"
	"time"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type PreferenceRepository interface {
	RemindersEnabled(ctx context.Context, userID int64) (bool, error)
	SetRemindersEnabled(ctx context.Context, userID int64, enabled bool) error
	// ListReminderRecipients returns known users that have not opted out.
	ListReminderRecipients(ctx context.Context) ([]*models.ReminderRecipient, error)
}

type preferenceRepository struct {
	BaseRepository
}

func NewPreferenceRepository(db *bun.DB) PreferenceRepository {
	return &preferenceRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *preferenceRepository) RemindersEnabled(ctx context.Context, userID int64) (bool, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	pref := new(models.UserPreference)
	err := r.db.NewSelect().
		Model(pref).
		Where("user_id = ?", userID).
		Scan(ctx)
	found, err := r.HandleLookupError("reminders_enabled", "user_preference", err)
	if err != nil {
		return false, err
	}
	return !found || pref.RemindersEnabled, nil
}

func (r *preferenceRepository) SetRemindersEnabled(ctx context.Context, userID int64, enabled bool) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	pref := &models.UserPreference{UserID: userID, RemindersEnabled: enabled, UpdatedAt: time.Now().UTC()}
	_, err := r.db.NewInsert().
		Model(pref).
		Value("reminders_enabled", "?", enabled).
		On("CONFLICT (user_id) DO UPDATE").
		Set("reminders_enabled = EXCLUDED.reminders_enabled").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return r.HandleError("set_reminders_enabled", "user_preference", err)
}

func (r *preferenceRepository) ListReminderRecipients(ctx context.Context) ([]*models.ReminderRecipient, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var recipients []*models.ReminderRecipient
	err := r.db.NewSelect().
		TableExpr("users AS u").
		ColumnExpr("u.user_id, u.username, u.display_name").
		Join("LEFT JOIN user_preferences AS p ON p.user_id = u.user_id").
		Where("COALESCE(p.reminders_enabled, TRUE) = TRUE").
		OrderExpr("u.user_id ASC").
		Scan(ctx, &recipients)
	if err != nil {
		return nil, r.HandleError("list_reminder_recipients", "user_preference", err)
	}
	return recipients, nil
}
