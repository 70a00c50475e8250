package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/repositories"
	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/database"
	"github.com/jobpal/jobpal-bot/jobpal/migration"
)

const operationTimeout = 30 * time.Minute

type Context struct {
	ConfigPath string
}

// open loads the config and connects with the schema in place.
func (c *Context) open(ctx context.Context) (*jobpal.Config, *database.DB, error) {
	cfg, err := jobpal.LoadStorageConfig(c.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := database.New(ctx, cfg.DB.Connection())
	if err != nil {
		return nil, nil, err
	}
	if err := db.InitializeSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return cfg, db, nil
}

type SchemaCmd struct{}

func (cmd *SchemaCmd) Run(c *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	_, db, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := db.Stats(ctx)
	if err != nil {
		return err
	}
	slog.Info("Schema is up to date",
		slog.String("type", "sys"),
		slog.Int64("users", stats["users"]),
		slog.Int64("daily_records", stats["daily_records"]),
		slog.Int64("badge_awards", stats["badge_awards"]))
	return nil
}

type SeedCmd struct {
	Users   int   `help:"Number of fake users." default:"23"`
	Days    int   `help:"Days of history ending today." default:"30"`
	FirstID int64 `name:"first-id" help:"User id of the first fake user." default:"1001"`
	Goal    int   `help:"Daily goal for every fake record." default:"5"`
}

func (cmd *SeedCmd) Run(c *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	cfg, db, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	clock, err := dates.NewClock(cfg.Schedule.Timezone)
	if err != nil {
		return err
	}

	seeder := migration.NewSeeder(
		repositories.NewUserRepository(db.BunDB()),
		repositories.NewDailyRecordRepository(db.BunDB()),
		clock,
		nil,
	)
	written, err := seeder.Seed(ctx, migration.SeedOptions{
		Users:   cmd.Users,
		Days:    cmd.Days,
		FirstID: cmd.FirstID,
		Goal:    cmd.Goal,
	})
	if err != nil {
		return err
	}
	fmt.Printf("✅ Seeded %d users, %d daily records\n", cmd.Users, written)
	return nil
}

type ImportLegacyCmd struct {
	SQLite string `name:"sqlite" help:"Path to the legacy SQLite database." type:"existingfile" required:""`
}

func (cmd *ImportLegacyCmd) Run(c *Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	_, db, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	legacy, err := migration.OpenLegacy(cmd.SQLite)
	if err != nil {
		return err
	}
	defer legacy.Close()

	migrator := migration.NewMigrator(legacy, db.BunDB())
	if err := migrator.MigrateAll(ctx); err != nil {
		return err
	}

	stats := migrator.Stats()
	fmt.Printf("✅ Imported %d rows (%d skipped, %d failed)\n",
		stats.TotalProcessed-stats.TotalSkipped-stats.TotalErrors, stats.TotalSkipped, stats.TotalErrors)
	return nil
}
