package models

import (
	"time"

	"github.com/uptrace/bun"
)

type WeekdayGoal struct {
	bun.BaseModel `bun:"table:weekday_goals,alias:weekday_goals"`

	UserID    int64     `bun:"user_id,pk"`
	Weekday   string    `bun:"weekday,pk"`
	GoalCount int       `bun:"goal_count,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
