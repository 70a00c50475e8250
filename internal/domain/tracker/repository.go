package tracker

import (
	"context"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
)

// Repository is the progress store. Day arguments are YYYY-MM-DD keys and
// lookups return (nil, nil) when the row does not exist.
type Repository interface {
	GetRecord(ctx context.Context, userID int64, day string) (*models.DailyRecord, error)
	LatestRecordBefore(ctx context.Context, userID int64, day string) (*models.DailyRecord, error)
	ListRecords(ctx context.Context, userID int64, from, to string) ([]*models.DailyRecord, error)
	TotalDone(ctx context.Context, userID int64) (int, error)

	// InsertRecordIfAbsent stores record unless (user_id, day) exists and
	// returns whichever row is stored afterwards.
	InsertRecordIfAbsent(ctx context.Context, record *models.DailyRecord) (*models.DailyRecord, error)
	// UpsertGoal sets goal for the day and leaves done untouched.
	UpsertGoal(ctx context.Context, userID int64, day string, goal int) (*models.DailyRecord, error)
	// IncrementDone adds delta to done in a single statement, flooring at zero.
	// defaultGoal is only used when the row has to be created.
	IncrementDone(ctx context.Context, userID int64, day string, defaultGoal, delta int) (*models.DailyRecord, error)
	// SetDone overwrites done in a single statement.
	SetDone(ctx context.Context, userID int64, day string, defaultGoal, total int) (*models.DailyRecord, error)

	GetWeekdayGoal(ctx context.Context, userID int64, weekday string) (*models.WeekdayGoal, error)
	ListWeekdayGoals(ctx context.Context, userID int64) ([]*models.WeekdayGoal, error)
	UpsertWeekdayGoals(ctx context.Context, userID int64, goal int, weekdays []string) error
}
