package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/commands"
	"github.com/jobpal/jobpal-bot/jobpal/commands/coach"
	"github.com/jobpal/jobpal-bot/jobpal/commands/social"
	"github.com/jobpal/jobpal-bot/jobpal/commands/system"
	"github.com/jobpal/jobpal-bot/jobpal/commands/tracking"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/database"
	"github.com/jobpal/jobpal-bot/jobpal/handlers"
	"github.com/jobpal/jobpal-bot/jobpal/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := jobpal.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	closeLog := logger.Setup(cfg.Log.Level, cfg.Log.AddSource, cfg.Log.FileSink())
	defer closeLog()

	slog.Info("Starting JobPal Discord Bot",
		slog.String("type", "sys"),
		slog.String("version", version),
		slog.String("commit", commit))

	slog.Info("Initializing database connection...", slog.String("type", "db"))
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB.Connection())
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("type", "db"),
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("type", "db"),
			slog.Any("error", err),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	if stats, err := db.Stats(ctx); err == nil {
		slog.Info("Database ready",
			slog.String("type", "db"),
			slog.String("database", cfg.DB.Database),
			slog.Int64("users", stats["users"]),
			slog.Int64("daily_records", stats["daily_records"]),
			slog.Duration("took", time.Since(dbStartTime)))
	}

	b := jobpal.New(*cfg, version, commit)
	b.DB = db

	h := handler.New()

	// Tracking
	h.Command("/setgoal", handlers.WrapWithLogging("setgoal", tracking.SetGoalHandler(b)))
	h.Component("/setgoal/{owner}/{goal}", handlers.WrapComponentWithLogging("setgoal-button", tracking.SetGoalButtonHandler(b)))
	h.Command("/weekgoals", handlers.WrapWithLogging("weekgoals", tracking.WeekGoalsHandler(b)))
	h.Command("/log", handlers.WrapWithLogging("log", tracking.LogHandler(b)))
	h.Component("/log/{action}/{owner}/{day}", handlers.WrapComponentWithLogging("log-button", tracking.LogButtonHandler(b)))
	h.Modal("/log-batch/{owner}/{day}", handlers.WrapModalWithLogging("log-batch", tracking.LogBatchModalHandler(b)))
	h.Command("/progress", handlers.WrapWithLogging("progress", tracking.ProgressHandler(b)))
	h.Command("/history", handlers.WrapWithLogging("history", tracking.HistoryHandler(b)))

	// Social
	h.Command("/leaderboard", handlers.WrapWithLogging("leaderboard", social.LeaderboardHandler(b)))
	h.Command("/badges", handlers.WrapWithLogging("badges", social.BadgesHandler(b)))
	h.Command("/setname", handlers.WrapWithLogging("setname", social.SetNameHandler(b)))
	h.Command("/buddy/invite", handlers.WrapWithLogging("buddy-invite", social.BuddyInviteHandler(b)))
	h.Command("/buddy/show", handlers.WrapWithLogging("buddy-show", social.BuddyShowHandler(b)))
	h.Command("/buddy/remove", handlers.WrapWithLogging("buddy-remove", social.BuddyRemoveHandler(b)))
	h.Command("/reminders", handlers.WrapWithLogging("reminders", social.RemindersHandler(b)))

	// Coach
	h.Command("/ask", handlers.WrapWithLogging("ask", coach.AskHandler(b)))
	h.Command("/coachsummary", handlers.WrapWithLogging("coachsummary", coach.CoachSummaryHandler(b)))
	h.Command("/dailyreminder", handlers.WrapWithLogging("dailyreminder", coach.DailyReminderHandler(b)))

	// System
	h.Command("/help", handlers.WrapWithLogging("help", system.HelpHandler))
	h.Component("/help/category", handlers.WrapComponentWithLogging("help-category", system.HelpCategoryHandler))
	h.Command("/version", system.VersionHandler(b))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("component", "bot_setup"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	if err = b.InitServices(ctx); err != nil {
		slog.Error("Failed to initialize services",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("component", "services"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		b.Close(ctx)
	}()

	if err = b.StartBackground(); err != nil {
		slog.Error("Failed to start background jobs",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("component", "scheduler"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}
	b.StartAPI()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
				slog.String("error_details", fmt.Sprintf("%+v", err)),
				slog.String("component", "command_sync"),
				slog.String("status", "failed"),
			)
		}
	}

	gatewayCtx, gatewayCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer gatewayCancel()
	if err = b.Client.OpenGateway(gatewayCtx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("component", "gateway"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.", slog.String("type", "sys"))
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...", slog.String("type", "sys"))
}
