package migration

import (
	"time"

	"github.com/uptrace/bun"
)

// Legacy SQLite rows. Every table was created lazily by the old bot, so any
// of them may be missing.

type LegacyProgress struct {
	bun.BaseModel `bun:"table:user_progress"`

	UserID       int64  `bun:"user_id"`
	Date         string `bun:"date"`
	CountApplied int    `bun:"count_applied"`
}

type LegacyGoal struct {
	bun.BaseModel `bun:"table:user_goals"`

	UserID    int64  `bun:"user_id"`
	Weekday   string `bun:"weekday"`
	GoalCount int    `bun:"goal_count"`
}

type LegacyBadge struct {
	bun.BaseModel `bun:"table:user_badges"`

	UserID    int64  `bun:"user_id"`
	BadgeName string `bun:"badge_name"`
	AwardedAt string `bun:"awarded_at"`
}

type LegacyBuddy struct {
	bun.BaseModel `bun:"table:buddies"`

	UserID        int64  `bun:"user_id"`
	BuddyUsername string `bun:"buddy_username"`
}

type MigrationStats struct {
	Tables         map[string]*TableStats
	StartTime      time.Time
	EndTime        time.Time
	TotalProcessed int
	TotalSkipped   int
	TotalErrors    int
}

type TableStats struct {
	TableName  string
	Processed  int
	Successful int
	Skipped    int
	Errors     int
}
