package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:users"`

	UserID      int64     `bun:"user_id,pk"`
	Username    string    `bun:"username,notnull,default:''"`
	DisplayName string    `bun:"display_name,notnull,default:''"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
	UpdatedAt   time.Time `bun:"updated_at,notnull"`
}

// UserPreference rows exist only for users who changed a setting. A missing
// row means reminders are on, so RemindersEnabled carries no column default
// and every insert writes it explicitly.
type UserPreference struct {
	bun.BaseModel `bun:"table:user_preferences,alias:user_preferences"`

	UserID           int64     `bun:"user_id,pk"`
	RemindersEnabled bool      `bun:"reminders_enabled,notnull"`
	UpdatedAt        time.Time `bun:"updated_at,notnull"`
}

// ReminderRecipient is a user row joined with its preference.
type ReminderRecipient struct {
	UserID      int64  `bun:"user_id"`
	Username    string `bun:"username"`
	DisplayName string `bun:"display_name"`
}
