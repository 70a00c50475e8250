package jobpal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"

	"github.com/jobpal/jobpal-bot/internal/api"
	"github.com/jobpal/jobpal-bot/internal/domain/badges"
	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/identity"
	"github.com/jobpal/jobpal-bot/internal/domain/leaderboard"
	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/repositories"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/database"
	"github.com/jobpal/jobpal-bot/jobpal/services"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
		Processes: utils.NewBackgroundProcessManager(),
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	DB        *database.DB
	Clock     dates.Clock

	Records     repositories.DailyRecordRepository
	Users       repositories.UserRepository
	Preferences repositories.PreferenceRepository
	Buddies     repositories.BuddyRepository
	Questions   repositories.QuestionRepository
	Awards      repositories.BadgeAwardRepository

	Tracker  tracker.Service
	Badges   badges.Evaluator
	Ranker   leaderboard.Ranker
	Identity identity.Resolver

	Notifier  *services.Notifier
	Hooks     *services.ProgressHooks
	Coach     *services.CoachService
	WrapUp    *services.WrapUpService
	Reminders *services.ReminderService
	Images    *services.LeaderboardImageService
	// Uploads is nil when Spaces is not configured; images are attached instead.
	Uploads   services.ImageUploader
	Processes *utils.BackgroundProcessManager
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds, gateway.IntentDirectMessages)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

// InitServices builds the repositories and services on top of b.DB. It must
// run after SetupBot because notifications are delivered through the client.
func (b *Bot) InitServices(ctx context.Context) error {
	clock, err := dates.NewClock(b.Cfg.Schedule.Timezone)
	if err != nil {
		return err
	}
	b.Clock = clock

	db := b.DB.BunDB()
	b.Records = repositories.NewDailyRecordRepository(db)
	b.Users = repositories.NewUserRepository(db)
	b.Preferences = repositories.NewPreferenceRepository(db)
	b.Buddies = repositories.NewBuddyRepository(db)
	b.Questions = repositories.NewQuestionRepository(db)
	b.Awards = repositories.NewBadgeAwardRepository(db)

	trackerService := tracker.NewService(b.Records, clock)
	b.Tracker = trackerService
	b.Badges = badges.NewEvaluator(b.Awards, trackerService)
	b.Identity = identity.NewResolver(b.Users)
	b.Ranker = leaderboard.NewRanker(b.Records, b.Identity, clock)

	sender := services.NewDiscordSender(b.Client)
	b.Notifier = services.NewNotifier(sender, config.NotifierQueueSize, config.NotifierWorkers, config.NotifierSendLimit)
	b.Hooks = services.NewProgressHooks(b.Badges, b.Buddies, b.Identity, b.Notifier)
	b.Reminders = services.NewReminderService(b.Preferences, b.Tracker, b.Notifier, b.Cfg.Schedule.ReminderLimit)

	llm := services.NewLLMClient(services.LLMSettings{
		BaseURL:       b.Cfg.LLM.BaseURL,
		APIKey:        b.Cfg.LLM.APIKey,
		Model:         b.Cfg.LLM.Model,
		FallbackURL:   b.Cfg.LLM.FallbackURL,
		FallbackModel: b.Cfg.LLM.FallbackLLM,
		Timeout:       config.LLMTimeout,
		MaxTokens:     300,
	})
	gifs := services.NewGiphyClient(services.GiphySettings{
		BaseURL:  b.Cfg.Giphy.BaseURL,
		APIKey:   b.Cfg.Giphy.APIKey,
		Tag:      b.Cfg.Giphy.Tag,
		Rating:   b.Cfg.Giphy.Rating,
		Timeout:  config.GiphyTimeout,
		Fallback: config.FallbackGIF,
	})
	b.Coach = services.NewCoachService(llm, b.Questions, b.Tracker, b.Cfg.LLM.QuestionsPD)
	b.WrapUp = services.NewWrapUpService(b.Ranker, b.Tracker, llm, gifs, sender, b.Cfg.Bot.WrapUpChannels)
	b.Images = services.NewLeaderboardImageService(config.RenderTimeout)

	if b.Cfg.Spaces.Enabled() {
		spaces, err := services.NewSpacesService(ctx, services.SpacesSettings{
			Key:      b.Cfg.Spaces.Key,
			Secret:   b.Cfg.Spaces.Secret,
			Region:   b.Cfg.Spaces.Region,
			Bucket:   b.Cfg.Spaces.Bucket,
			Endpoint: b.Cfg.Spaces.Endpoint,
			Prefix:   b.Cfg.Spaces.Prefix,
		})
		if err != nil {
			return err
		}
		b.Uploads = spaces
	}

	slog.Info("Services initialized",
		slog.String("type", "sys"),
		slog.String("timezone", b.Cfg.Schedule.Timezone),
		slog.Bool("spaces", b.Uploads != nil),
		slog.Int("wrapup_channels", len(b.Cfg.Bot.WrapUpChannels)))
	return nil
}

// StartBackground starts the notifier and the daily scheduler.
func (b *Bot) StartBackground() error {
	b.Notifier.Start(context.Background())

	remind := func(slot services.ReminderSlot) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, config.ReminderFanoutTimeout)
			defer cancel()
			_, err := b.Reminders.Send(ctx, slot)
			return err
		}
	}
	scheduler, err := services.NewScheduler(b.Clock,
		services.Job{Name: "morning-reminder", At: b.Cfg.Schedule.MorningAt, Run: remind(services.MorningReminder)},
		services.Job{Name: "afternoon-reminder", At: b.Cfg.Schedule.AfternoonAt, Run: remind(services.AfternoonReminder)},
		services.Job{Name: "evening-reminder", At: b.Cfg.Schedule.EveningAt, Run: remind(services.EveningReminder)},
		services.Job{Name: "daily-wrapup", At: b.Cfg.Schedule.WrapUpAt, Run: b.WrapUp.Post},
	)
	if err != nil {
		return fmt.Errorf("failed to build scheduler: %w", err)
	}
	b.Processes.StartProcess("scheduler", "Daily reminders and wrap-up", scheduler.Run)
	return nil
}

// StartAPI serves the read-only status API when it is enabled in config.
func (b *Bot) StartAPI() {
	if !b.Cfg.API.Enabled {
		return
	}
	app := api.NewApp(api.NewHandler(api.Deps{
		DB:      b.DB,
		Ranker:  b.Ranker,
		Tracker: b.Tracker,
		Badges:  b.Badges,
		Names:   b.Identity,
		Limit:   config.LeaderboardLimit,
	}))
	addr := b.Cfg.API.Addr
	b.Processes.StartProcess("api", "Read-only status API", func(ctx context.Context) {
		slog.Info("Status API listening", slog.String("type", "sys"), slog.String("addr", addr))
		if err := api.Serve(ctx, app, addr); err != nil {
			slog.Error("Status API stopped", slog.String("type", "sys"), slog.Any("error", err))
		}
	})
}

// Close stops background work first so queued notifications can still drain
// through the open gateway.
func (b *Bot) Close(ctx context.Context) {
	if err := b.Processes.Shutdown(config.ShutdownTimeout); err != nil {
		slog.Warn("Background processes did not stop in time", slog.String("type", "sys"), slog.Any("error", err))
	}
	if b.Notifier != nil {
		if err := b.Notifier.Shutdown(config.ShutdownTimeout); err != nil {
			slog.Warn("Notifier did not drain in time", slog.String("type", "sys"), slog.Any("error", err))
		}
	}
	if b.Client != nil {
		b.Client.Close(ctx)
	}
}

// Remember records the caller's handle so buddies can find them by name.
func (b *Bot) Remember(user discord.User) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := b.Identity.Remember(ctx, int64(user.ID), user.Username); err != nil {
		slog.Warn("Failed to remember user",
			slog.String("type", "db"),
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err))
	}
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("JobPal is now ready",
		slog.String("type", "sys"),
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithWatchingActivity("your job hunt"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.String("type", "sys"), slog.Any("error", err))
	}
}
