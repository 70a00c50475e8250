package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Buddy struct {
	bun.BaseModel `bun:"table:buddies,alias:buddies"`

	UserID        int64     `bun:"user_id,pk"`
	BuddyUsername string    `bun:"buddy_username,notnull"`
	CreatedAt     time.Time `bun:"created_at,notnull"`
}
