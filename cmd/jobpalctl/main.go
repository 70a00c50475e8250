package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/jobpal/jobpal-bot/jobpal/logger"
)

var CLI struct {
	Config string `help:"Config file path." type:"path" default:"config.toml"`
	Debug  bool   `help:"Log at debug level."`

	Schema       SchemaCmd       `cmd:"" help:"Create any missing tables and indexes."`
	Seed         SeedCmd         `cmd:"" help:"Fill the database with fake users and history."`
	ImportLegacy ImportLegacyCmd `cmd:"" name:"import-legacy" help:"Copy the old bot's SQLite data into Postgres."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("jobpalctl"),
		kong.Description("Operator tools for the JobPal bot database"),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if CLI.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(logger.NewHandler(level)))

	if err := ctx.Run(&Context{ConfigPath: CLI.Config}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
