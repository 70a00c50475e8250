package tracker

import (
	"context"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
)

type Service interface {
	Today() time.Time
	GetOrCreateToday(ctx context.Context, userID int64) (Record, error)
	GetOrCreate(ctx context.Context, userID int64, day time.Time) (Record, error)
	DefaultGoalFor(ctx context.Context, userID int64, day time.Time) (int, error)
	SetGoal(ctx context.Context, userID int64, goal int) (Record, error)
	SetWeekdayGoals(ctx context.Context, userID int64, goal int, weekdays []time.Weekday) error
	WeekdayGoals(ctx context.Context, userID int64) (map[time.Weekday]int, error)
	ApplyIncrement(ctx context.Context, userID int64, day time.Time, delta int) (Record, error)
	ApplyBatch(ctx context.Context, userID int64, day time.Time, total int) (Record, error)
	WeeklySummary(ctx context.Context, userID int64, weekStart time.Time) (WeeklySummary, error)
	Streak(ctx context.Context, userID int64, lookback int) (int, error)
	TotalDone(ctx context.Context, userID int64) (int, error)
	WeekdaysMet(ctx context.Context, userID int64) (int, error)
}

type service struct {
	repository Repository
	clock      dates.Clock
}

func NewService(repository Repository, clock dates.Clock) *service {
	return &service{
		repository: repository,
		clock:      clock,
	}
}

func (s *service) Today() time.Time {
	return s.clock.Today()
}

func (s *service) GetOrCreateToday(ctx context.Context, userID int64) (Record, error) {
	return s.GetOrCreate(ctx, userID, s.clock.Today())
}

func (s *service) GetOrCreate(ctx context.Context, userID int64, day time.Time) (Record, error) {
	key := dates.Key(day)

	existing, err := s.repository.GetRecord(ctx, userID, key)
	if err != nil {
		return Record{}, errs.Storage("get daily record", err)
	}
	if existing != nil {
		return toRecord(existing, day), nil
	}

	goal, err := s.DefaultGoalFor(ctx, userID, day)
	if err != nil {
		return Record{}, err
	}

	now := time.Now()
	stored, err := s.repository.InsertRecordIfAbsent(ctx, &models.DailyRecord{
		UserID:    userID,
		Day:       key,
		Goal:      goal,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return Record{}, errs.Storage("create daily record", err)
	}
	return toRecord(stored, day), nil
}

// DefaultGoalFor resolves the goal a fresh record for day starts with: the
// weekday goal if one is stored (0 included), else the goal of the latest
// earlier record, else 0.
func (s *service) DefaultGoalFor(ctx context.Context, userID int64, day time.Time) (int, error) {
	weekdayGoal, err := s.repository.GetWeekdayGoal(ctx, userID, day.Weekday().String())
	if err != nil {
		return 0, errs.Storage("get weekday goal", err)
	}
	if weekdayGoal != nil {
		return weekdayGoal.GoalCount, nil
	}

	previous, err := s.repository.LatestRecordBefore(ctx, userID, dates.Key(day))
	if err != nil {
		return 0, errs.Storage("get previous record", err)
	}
	if previous != nil {
		return previous.Goal, nil
	}
	return 0, nil
}

func (s *service) SetGoal(ctx context.Context, userID int64, goal int) (Record, error) {
	if goal < 0 {
		return Record{}, errs.Invalid("goal must not be negative, got %d", goal)
	}

	today := s.clock.Today()
	stored, err := s.repository.UpsertGoal(ctx, userID, dates.Key(today), goal)
	if err != nil {
		return Record{}, errs.Storage("set goal", err)
	}
	return toRecord(stored, today), nil
}

func (s *service) SetWeekdayGoals(ctx context.Context, userID int64, goal int, weekdays []time.Weekday) error {
	if goal < 0 {
		return errs.Invalid("goal must not be negative, got %d", goal)
	}
	if len(weekdays) == 0 {
		return errs.Invalid("at least one weekday is required")
	}

	names := make([]string, 0, len(weekdays))
	seen := make(map[time.Weekday]bool, len(weekdays))
	for _, weekday := range weekdays {
		if weekday < time.Sunday || weekday > time.Saturday {
			return errs.Invalid("unknown weekday %d", weekday)
		}
		if seen[weekday] {
			continue
		}
		seen[weekday] = true
		names = append(names, weekday.String())
	}

	if err := s.repository.UpsertWeekdayGoals(ctx, userID, goal, names); err != nil {
		return errs.Storage("set weekday goals", err)
	}
	return nil
}

func (s *service) WeekdayGoals(ctx context.Context, userID int64) (map[time.Weekday]int, error) {
	rows, err := s.repository.ListWeekdayGoals(ctx, userID)
	if err != nil {
		return nil, errs.Storage("list weekday goals", err)
	}

	goals := make(map[time.Weekday]int, len(rows))
	for _, row := range rows {
		if weekday, ok := weekdayByName[row.Weekday]; ok {
			goals[weekday] = row.GoalCount
		}
	}
	return goals, nil
}

func (s *service) ApplyIncrement(ctx context.Context, userID int64, day time.Time, delta int) (Record, error) {
	if err := s.checkEditable(day); err != nil {
		return Record{}, err
	}

	goal, err := s.DefaultGoalFor(ctx, userID, day)
	if err != nil {
		return Record{}, err
	}

	stored, err := s.repository.IncrementDone(ctx, userID, dates.Key(day), goal, delta)
	if err != nil {
		return Record{}, errs.Storage("increment done", err)
	}
	return toRecord(stored, day), nil
}

func (s *service) ApplyBatch(ctx context.Context, userID int64, day time.Time, total int) (Record, error) {
	if total < 0 {
		return Record{}, errs.Invalid("total must not be negative, got %d", total)
	}
	if err := s.checkEditable(day); err != nil {
		return Record{}, err
	}

	goal, err := s.DefaultGoalFor(ctx, userID, day)
	if err != nil {
		return Record{}, err
	}

	stored, err := s.repository.SetDone(ctx, userID, dates.Key(day), goal, total)
	if err != nil {
		return Record{}, errs.Storage("set done", err)
	}
	return toRecord(stored, day), nil
}

func (s *service) WeeklySummary(ctx context.Context, userID int64, weekStart time.Time) (WeeklySummary, error) {
	weekStart = dates.WeekStart(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)

	byDay, err := s.recordsByDay(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return WeeklySummary{}, err
	}

	summary := WeeklySummary{UserID: userID, WeekStart: weekStart}
	for i := range summary.Days {
		day := weekStart.AddDate(0, 0, i)
		record, ok := byDay[dates.Key(day)]
		if !ok {
			record = Record{UserID: userID, Date: day}
		}
		summary.Days[i] = record
		summary.TotalGoal += record.Goal
		summary.TotalDone += record.Done
	}

	last := weekEnd
	if today := s.clock.Today(); today.Before(last) {
		last = today
	}
	if !last.Before(weekStart) {
		summary.Streak = countStreak(byDay, last, int(last.Sub(weekStart).Hours()/24)+1)
	}
	return summary, nil
}

// Streak counts met days backward from today, looking at most lookback days.
func (s *service) Streak(ctx context.Context, userID int64, lookback int) (int, error) {
	if lookback <= 0 {
		return 0, nil
	}

	today := s.clock.Today()
	byDay, err := s.recordsByDay(ctx, userID, today.AddDate(0, 0, -(lookback-1)), today)
	if err != nil {
		return 0, err
	}
	return countStreak(byDay, today, lookback), nil
}

func (s *service) TotalDone(ctx context.Context, userID int64) (int, error) {
	total, err := s.repository.TotalDone(ctx, userID)
	if err != nil {
		return 0, errs.Storage("sum done", err)
	}
	return total, nil
}

// WeekdaysMet counts Monday to Friday of the current week with the goal met.
func (s *service) WeekdaysMet(ctx context.Context, userID int64) (int, error) {
	monday := dates.WeekStart(s.clock.Today())
	friday := monday.AddDate(0, 0, 4)

	byDay, err := s.recordsByDay(ctx, userID, monday, friday)
	if err != nil {
		return 0, err
	}

	met := 0
	for day := monday; !day.After(friday); day = day.AddDate(0, 0, 1) {
		if byDay[dates.Key(day)].Met() {
			met++
		}
	}
	return met, nil
}

func (s *service) checkEditable(day time.Time) error {
	return CheckEditable(day, s.clock.Today())
}

// CheckEditable rejects days after today and days before the current week's
// Monday.
func CheckEditable(day, today time.Time) error {
	if day.After(today) {
		return errs.Invalid("cannot log progress for a future date (%s)", dates.Key(day))
	}
	if day.Before(dates.WeekStart(today)) {
		return errs.Invalid("only dates in the current week can be edited (%s)", dates.Key(day))
	}
	return nil
}

func (s *service) recordsByDay(ctx context.Context, userID int64, from, to time.Time) (map[string]Record, error) {
	rows, err := s.repository.ListRecords(ctx, userID, dates.Key(from), dates.Key(to))
	if err != nil {
		return nil, errs.Storage("list daily records", err)
	}

	byDay := make(map[string]Record, len(rows))
	for _, row := range rows {
		day, err := dates.Parse(row.Day)
		if err != nil {
			continue
		}
		byDay[row.Day] = toRecord(row, day)
	}
	return byDay, nil
}

// countStreak walks backward from last for at most span days and stops at
// the first day that is missing or not met.
func countStreak(byDay map[string]Record, last time.Time, span int) int {
	streak := 0
	for i := 0; i < span; i++ {
		if !byDay[dates.Key(last.AddDate(0, 0, -i))].Met() {
			break
		}
		streak++
	}
	return streak
}

func toRecord(row *models.DailyRecord, day time.Time) Record {
	return Record{
		UserID: row.UserID,
		Date:   day,
		Goal:   row.Goal,
		Done:   row.Done,
	}
}
