package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"

	"github.com/jobpal/jobpal-bot/internal/domain/badges"
	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/identity"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/repositories"
)

var legacyTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	dates.Layout,
}

// OpenLegacy opens the old bot's SQLite file through bun.
func OpenLegacy(path string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy database %s: %w", path, err)
	}
	sqldb.SetMaxOpenConns(1)
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// Migrator copies the legacy SQLite tables into the current schema using the
// same upserts the bot uses, so running it twice is harmless.
type Migrator struct {
	legacy  *bun.DB
	target  *bun.DB
	records repositories.DailyRecordRepository
	awards  repositories.BadgeAwardRepository
	buddies repositories.BuddyRepository
	stats   MigrationStats

	// goals[user][weekday] is filled by the goals step and read by the progress step.
	goals map[int64]map[string]int
	users map[int64]bool
}

func NewMigrator(legacy, target *bun.DB) *Migrator {
	return &Migrator{
		legacy:  legacy,
		target:  target,
		records: repositories.NewDailyRecordRepository(target),
		awards:  repositories.NewBadgeAwardRepository(target),
		buddies: repositories.NewBuddyRepository(target),
		goals:   make(map[int64]map[string]int),
		users:   make(map[int64]bool),
	}
}

func (m *Migrator) MigrateAll(ctx context.Context) error {
	logProgress("Starting legacy SQLite import")
	m.stats = MigrationStats{Tables: make(map[string]*TableStats), StartTime: time.Now()}

	// Goals first: progress rows take their goal from the weekday goal of their date.
	steps := []struct {
		name    string
		table   string
		migrate func(context.Context) error
	}{
		{"weekday_goals", "user_goals", m.MigrateGoals},
		{"daily_records", "user_progress", m.MigrateProgress},
		{"badge_awards", "user_badges", m.MigrateBadges},
		{"buddies", "buddies", m.MigrateBuddies},
		{"users", "", m.MigrateUsers},
	}

	for _, step := range steps {
		if step.table != "" {
			exists, err := m.legacyTableExists(ctx, step.table)
			if err != nil {
				return fmt.Errorf("migration failed at step %s: %w", step.name, err)
			}
			if !exists {
				logProgress(fmt.Sprintf("Legacy table %s not found, skipping", step.table))
				continue
			}
		}

		logProgress(fmt.Sprintf("Starting migration step: %s", step.name))
		if err := step.migrate(ctx); err != nil {
			return fmt.Errorf("migration failed at step %s: %w", step.name, err)
		}
		logProgress(fmt.Sprintf("Completed migration step: %s", step.name))
	}

	m.stats.EndTime = time.Now()
	m.logFinalStats()
	return nil
}

func (m *Migrator) Stats() MigrationStats {
	return m.stats
}

func (m *Migrator) MigrateGoals(ctx context.Context) error {
	var rows []LegacyGoal
	if err := m.legacy.NewSelect().Model(&rows).OrderExpr("user_id ASC").Scan(ctx); err != nil {
		return fmt.Errorf("failed to read user_goals: %w", err)
	}

	m.initTableStats("weekday_goals")
	for _, row := range rows {
		weekday, ok := normalizeWeekday(row.Weekday)
		if !ok || row.GoalCount < 0 {
			m.recordSkip("weekday_goals")
			continue
		}
		if err := m.records.UpsertWeekdayGoals(ctx, row.UserID, row.GoalCount, []string{weekday}); err != nil {
			m.recordError("weekday_goals", err)
			continue
		}
		if m.goals[row.UserID] == nil {
			m.goals[row.UserID] = make(map[string]int)
		}
		m.goals[row.UserID][weekday] = row.GoalCount
		m.users[row.UserID] = true
		m.recordSuccess("weekday_goals")
	}
	return nil
}

func (m *Migrator) MigrateProgress(ctx context.Context) error {
	var rows []LegacyProgress
	if err := m.legacy.NewSelect().Model(&rows).OrderExpr("user_id ASC, date ASC").Scan(ctx); err != nil {
		return fmt.Errorf("failed to read user_progress: %w", err)
	}

	m.initTableStats("daily_records")
	for _, row := range rows {
		day, err := dates.Parse(strings.TrimSpace(row.Date))
		if err != nil || row.CountApplied < 0 {
			m.recordSkip("daily_records")
			continue
		}
		record := &models.DailyRecord{
			UserID: row.UserID,
			Day:    dates.Key(day),
			Goal:   m.goals[row.UserID][day.Weekday().String()],
			Done:   row.CountApplied,
		}
		if err := m.records.UpsertRecord(ctx, record); err != nil {
			m.recordError("daily_records", err)
			continue
		}
		m.users[row.UserID] = true
		m.recordSuccess("daily_records")
	}
	return nil
}

func (m *Migrator) MigrateBadges(ctx context.Context) error {
	var rows []LegacyBadge
	if err := m.legacy.NewSelect().Model(&rows).OrderExpr("user_id ASC").Scan(ctx); err != nil {
		return fmt.Errorf("failed to read user_badges: %w", err)
	}

	m.initTableStats("badge_awards")
	for _, row := range rows {
		badge, ok := badges.ByName(strings.TrimSpace(row.BadgeName))
		if !ok {
			m.recordSkip("badge_awards")
			continue
		}
		awardedAt, ok := parseLegacyTime(row.AwardedAt)
		if !ok {
			awardedAt = time.Now().UTC()
		}
		if _, err := m.awards.Award(ctx, &models.BadgeAward{UserID: row.UserID, Badge: badge.Key(), AwardedAt: awardedAt}); err != nil {
			m.recordError("badge_awards", err)
			continue
		}
		m.users[row.UserID] = true
		m.recordSuccess("badge_awards")
	}
	return nil
}

func (m *Migrator) MigrateBuddies(ctx context.Context) error {
	var rows []LegacyBuddy
	if err := m.legacy.NewSelect().Model(&rows).OrderExpr("user_id ASC").Scan(ctx); err != nil {
		return fmt.Errorf("failed to read buddies: %w", err)
	}

	m.initTableStats("buddies")
	for _, row := range rows {
		username := identity.NormalizeUsername(row.BuddyUsername)
		if username == "" {
			m.recordSkip("buddies")
			continue
		}
		if err := m.buddies.SetBuddy(ctx, row.UserID, username); err != nil {
			m.recordError("buddies", err)
			continue
		}
		m.users[row.UserID] = true
		m.recordSuccess("buddies")
	}
	return nil
}

// MigrateUsers creates a bare user row for every imported id so scheduled
// reminders reach them before they next talk to the bot. Existing rows are
// left alone.
func (m *Migrator) MigrateUsers(ctx context.Context) error {
	m.initTableStats("users")
	now := time.Now().UTC()
	for userID := range m.users {
		_, err := m.target.NewInsert().
			Model(&models.User{UserID: userID, CreatedAt: now, UpdatedAt: now}).
			On("CONFLICT (user_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			m.recordError("users", err)
			continue
		}
		m.recordSuccess("users")
	}
	return nil
}

func (m *Migrator) legacyTableExists(ctx context.Context, table string) (bool, error) {
	var count int
	err := m.legacy.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to inspect legacy schema: %w", err)
	}
	return count > 0, nil
}

func normalizeWeekday(value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, weekday := range dates.Weekdays() {
		if strings.EqualFold(weekday.String(), value) {
			return weekday.String(), true
		}
	}
	return "", false
}

func parseLegacyTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range legacyTimeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

func logProgress(message string) {
	slog.Info(message, slog.String("type", "db"), slog.String("service", "JobPal Migration"))
}

func (m *Migrator) logFinalStats() {
	slog.Info("Migration completed",
		slog.String("type", "db"),
		slog.Duration("duration", m.stats.EndTime.Sub(m.stats.StartTime)),
		slog.Int("total_processed", m.stats.TotalProcessed),
		slog.Int("total_skipped", m.stats.TotalSkipped),
		slog.Int("total_errors", m.stats.TotalErrors))

	for tableName, stats := range m.stats.Tables {
		slog.Info("Table migration stats",
			slog.String("type", "db"),
			slog.String("table", tableName),
			slog.Int("processed", stats.Processed),
			slog.Int("successful", stats.Successful),
			slog.Int("skipped", stats.Skipped),
			slog.Int("errors", stats.Errors))
	}
}

func (m *Migrator) initTableStats(tableName string) {
	if m.stats.Tables == nil {
		m.stats.Tables = make(map[string]*TableStats)
	}
	if _, ok := m.stats.Tables[tableName]; !ok {
		m.stats.Tables[tableName] = &TableStats{TableName: tableName}
	}
}

func (m *Migrator) recordSuccess(tableName string) {
	stats := m.stats.Tables[tableName]
	stats.Processed++
	stats.Successful++
	m.stats.TotalProcessed++
}

func (m *Migrator) recordSkip(tableName string) {
	stats := m.stats.Tables[tableName]
	stats.Processed++
	stats.Skipped++
	m.stats.TotalProcessed++
	m.stats.TotalSkipped++
}

func (m *Migrator) recordError(tableName string, err error) {
	stats := m.stats.Tables[tableName]
	stats.Processed++
	stats.Errors++
	m.stats.TotalProcessed++
	m.stats.TotalErrors++
	slog.Warn("Row import failed",
		slog.String("type", "db"),
		slog.String("table", tableName),
		slog.Any("error", err))
}
