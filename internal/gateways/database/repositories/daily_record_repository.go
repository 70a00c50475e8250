package repositories

import (
	"context"
	"log/slog"
	"time"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type DailyRecordRepository interface {
	GetRecord(ctx context.Context, userID int64, day string) (*models.DailyRecord, error)
	LatestRecordBefore(ctx context.Context, userID int64, day string) (*models.DailyRecord, error)
	ListRecords(ctx context.Context, userID int64, from, to string) ([]*models.DailyRecord, error)
	TotalDone(ctx context.Context, userID int64) (int, error)
	InsertRecordIfAbsent(ctx context.Context, record *models.DailyRecord) (*models.DailyRecord, error)
	UpsertGoal(ctx context.Context, userID int64, day string, goal int) (*models.DailyRecord, error)
	IncrementDone(ctx context.Context, userID int64, day string, defaultGoal, delta int) (*models.DailyRecord, error)
	SetDone(ctx context.Context, userID int64, day string, defaultGoal, total int) (*models.DailyRecord, error)
	// UpsertRecord overwrites both goal and done. Used by imports and seeding.
	UpsertRecord(ctx context.Context, record *models.DailyRecord) error

	GetWeekdayGoal(ctx context.Context, userID int64, weekday string) (*models.WeekdayGoal, error)
	ListWeekdayGoals(ctx context.Context, userID int64) ([]*models.WeekdayGoal, error)
	UpsertWeekdayGoals(ctx context.Context, userID int64, goal int, weekdays []string) error

	WindowTotals(ctx context.Context, from, to string) ([]*models.UserTotal, error)
}

type dailyRecordRepository struct {
	BaseRepository
	now func() time.Time
}

func NewDailyRecordRepository(db *bun.DB) DailyRecordRepository {
	return &dailyRecordRepository{
		BaseRepository: NewBaseRepository(db),
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (r *dailyRecordRepository) GetRecord(ctx context.Context, userID int64, day string) (*models.DailyRecord, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	record := new(models.DailyRecord)
	err := r.db.NewSelect().
		Model(record).
		Where("user_id = ?", userID).
		Where("day = ?", day).
		Limit(1).
		Scan(ctx)
	if found, err := r.HandleLookupError("get_record", "daily_record", err); !found {
		return nil, err
	}
	return record, nil
}

func (r *dailyRecordRepository) LatestRecordBefore(ctx context.Context, userID int64, day string) (*models.DailyRecord, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	record := new(models.DailyRecord)
	err := r.db.NewSelect().
		Model(record).
		Where("user_id = ?", userID).
		Where("day < ?", day).
		Order("day DESC").
		Limit(1).
		Scan(ctx)
	if found, err := r.HandleLookupError("latest_record_before", "daily_record", err); !found {
		return nil, err
	}
	return record, nil
}

func (r *dailyRecordRepository) ListRecords(ctx context.Context, userID int64, from, to string) ([]*models.DailyRecord, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var records []*models.DailyRecord
	err := r.db.NewSelect().
		Model(&records).
		Where("user_id = ?", userID).
		Where("day BETWEEN ? AND ?", from, to).
		Order("day ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_records", "daily_record", err)
	}
	return records, nil
}

func (r *dailyRecordRepository) TotalDone(ctx context.Context, userID int64) (int, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var total int
	err := r.db.NewSelect().
		Model((*models.DailyRecord)(nil)).
		ColumnExpr("CAST(COALESCE(SUM(done), 0) AS BIGINT)").
		Where("user_id = ?", userID).
		Scan(ctx, &total)
	if err != nil {
		return 0, r.HandleError("total_done", "daily_record", err)
	}
	return total, nil
}

func (r *dailyRecordRepository) InsertRecordIfAbsent(ctx context.Context, record *models.DailyRecord) (*models.DailyRecord, error) {
	insertCtx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := r.now()
	record.CreatedAt = now
	record.UpdatedAt = now
	_, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT (user_id, day) DO NOTHING").
		Returning("NULL").
		Exec(insertCtx)
	if err != nil {
		return nil, r.HandleError("insert_record", "daily_record", err)
	}
	return r.GetRecord(ctx, record.UserID, record.Day)
}

// upsert inserts record or applies sets to the existing row, returning the stored row.
func (r *dailyRecordRepository) upsert(ctx context.Context, operation string, record *models.DailyRecord, sets ...setClause) (*models.DailyRecord, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := r.now()
	record.CreatedAt = now
	record.UpdatedAt = now
	query := r.db.NewInsert().
		Model(record).
		On("CONFLICT (user_id, day) DO UPDATE")
	for _, set := range sets {
		query = query.Set(set.query, set.args...)
	}
	err := query.
		Set("updated_at = EXCLUDED.updated_at").
		Returning("*").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError(operation, "daily_record", err)
	}

	slog.Debug("Daily record upserted",
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.Int64("user_id", record.UserID),
		slog.String("day", record.Day),
		slog.Int("goal", record.Goal),
		slog.Int("done", record.Done))
	return record, nil
}

type setClause struct {
	query string
	args  []interface{}
}

func (r *dailyRecordRepository) UpsertGoal(ctx context.Context, userID int64, day string, goal int) (*models.DailyRecord, error) {
	record := &models.DailyRecord{UserID: userID, Day: day, Goal: goal}
	return r.upsert(ctx, "upsert_goal", record, setClause{query: "goal = EXCLUDED.goal"})
}

func (r *dailyRecordRepository) IncrementDone(ctx context.Context, userID int64, day string, defaultGoal, delta int) (*models.DailyRecord, error) {
	record := &models.DailyRecord{UserID: userID, Day: day, Goal: defaultGoal, Done: max(delta, 0)}
	return r.upsert(ctx, "increment_done", record, setClause{
		query: "done = CASE WHEN daily_records.done + ? < 0 THEN 0 ELSE daily_records.done + ? END",
		args:  []interface{}{delta, delta},
	})
}

func (r *dailyRecordRepository) SetDone(ctx context.Context, userID int64, day string, defaultGoal, total int) (*models.DailyRecord, error) {
	record := &models.DailyRecord{UserID: userID, Day: day, Goal: defaultGoal, Done: total}
	return r.upsert(ctx, "set_done", record, setClause{query: "done = EXCLUDED.done"})
}

func (r *dailyRecordRepository) UpsertRecord(ctx context.Context, record *models.DailyRecord) error {
	_, err := r.upsert(ctx, "upsert_record", record,
		setClause{query: "goal = EXCLUDED.goal"},
		setClause{query: "done = EXCLUDED.done"})
	return err
}

func (r *dailyRecordRepository) GetWeekdayGoal(ctx context.Context, userID int64, weekday string) (*models.WeekdayGoal, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	goal := new(models.WeekdayGoal)
	err := r.db.NewSelect().
		Model(goal).
		Where("user_id = ?", userID).
		Where("weekday = ?", weekday).
		Scan(ctx)
	if found, err := r.HandleLookupError("get_weekday_goal", "weekday_goal", err); !found {
		return nil, err
	}
	return goal, nil
}

func (r *dailyRecordRepository) ListWeekdayGoals(ctx context.Context, userID int64) ([]*models.WeekdayGoal, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var goals []*models.WeekdayGoal
	err := r.db.NewSelect().
		Model(&goals).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("list_weekday_goals", "weekday_goal", err)
	}
	return goals, nil
}

func (r *dailyRecordRepository) UpsertWeekdayGoals(ctx context.Context, userID int64, goal int, weekdays []string) error {
	if len(weekdays) == 0 {
		return nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := r.now()
	rows := make([]*models.WeekdayGoal, 0, len(weekdays))
	for _, weekday := range weekdays {
		rows = append(rows, &models.WeekdayGoal{
			UserID:    userID,
			Weekday:   weekday,
			GoalCount: goal,
			UpdatedAt: now,
		})
	}
	_, err := r.db.NewInsert().
		Model(&rows).
		On("CONFLICT (user_id, weekday) DO UPDATE").
		Set("goal_count = EXCLUDED.goal_count").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return r.HandleError("upsert_weekday_goals", "weekday_goal", err)
}

// WindowTotals sums done per user between from and to inclusive. Rows come
// back ordered by each user's first record id in the window.
func (r *dailyRecordRepository) WindowTotals(ctx context.Context, from, to string) ([]*models.UserTotal, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var totals []*models.UserTotal
	err := r.db.NewSelect().
		Model((*models.DailyRecord)(nil)).
		Column("user_id").
		ColumnExpr("CAST(SUM(done) AS BIGINT) AS total").
		ColumnExpr("MIN(id) AS first_id").
		Where("day BETWEEN ? AND ?", from, to).
		Group("user_id").
		OrderExpr("first_id ASC").
		Scan(ctx, &totals)
	if err != nil {
		return nil, r.HandleError("window_totals", "daily_record", err)
	}
	return totals, nil
}
