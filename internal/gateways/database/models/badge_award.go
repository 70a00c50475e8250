package models

import (
	"time"

	"github.com/uptrace/bun"
)

type BadgeAward struct {
	bun.BaseModel `bun:"table:badge_awards,alias:badge_awards"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull,unique:badge_awards_user_badge"`
	Badge     string    `bun:"badge,notnull,unique:badge_awards_user_badge"`
	AwardedAt time.Time `bun:"awarded_at,notnull"`
}
