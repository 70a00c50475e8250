package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DailyRecord is one user's goal and logged count for one calendar day.
// The alias matches the table name so conflict clauses can reference
// daily_records.done on every dialect.
type DailyRecord struct {
	bun.BaseModel `bun:"table:daily_records,alias:daily_records"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull,unique:daily_records_user_day"`
	Day       string    `bun:"day,notnull,unique:daily_records_user_day"`
	Goal      int       `bun:"goal,notnull,default:0"`
	Done      int       `bun:"done,notnull,default:0"`
	CreatedAt time.Time `bun:"created_at,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// UserTotal is a per-user sum of done over a day range.
type UserTotal struct {
	UserID  int64 `bun:"user_id"`
	Total   int   `bun:"total"`
	FirstID int64 `bun:"first_id"`
}
