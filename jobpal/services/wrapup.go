package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jobpal/jobpal-bot/internal/domain/leaderboard"
	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
	"github.com/jobpal/jobpal-bot/jobpal/config"
)

type Performer struct {
	UserID int64
	Name   string
	Goal   int
	Done   int
}

type WrapUpMessage struct {
	Text   string
	GIFURL string
	Board  leaderboard.Board
}

// WrapUpService builds the nightly recap of today's leaderboard.
type WrapUpService struct {
	ranker   leaderboard.Ranker
	tracker  tracker.Service
	llm      Completer
	gifs     GIFSource
	poster   ChannelPoster
	channels []snowflake.ID
}

func NewWrapUpService(ranker leaderboard.Ranker, tracker tracker.Service, llm Completer, gifs GIFSource, poster ChannelPoster, channels []snowflake.ID) *WrapUpService {
	return &WrapUpService{
		ranker:   ranker,
		tracker:  tracker,
		llm:      llm,
		gifs:     gifs,
		poster:   poster,
		channels: channels,
	}
}

// Compose ranks today's board, then asks the LLM for the recap and Giphy for
// a GIF at the same time. Both fall back to static content.
func (w *WrapUpService) Compose(ctx context.Context) (WrapUpMessage, error) {
	board, err := w.ranker.Rank(ctx, leaderboard.Today, 0)
	if err != nil {
		return WrapUpMessage{}, err
	}

	msg := WrapUpMessage{Board: board}
	if len(board.Entries) == 0 {
		msg.Text = emptyWrapUp
		msg.GIFURL = w.gif(ctx)
		return msg, nil
	}

	top := w.performer(ctx, board.Entries[0])
	least := w.performer(ctx, board.Entries[len(board.Entries)-1])

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		msg.Text = CompleteOr(gctx, w.llm, wrapUpPersona, wrapUpPrompt(top, least), staticWrapUp(top, least))
		return nil
	})
	g.Go(func() error {
		msg.GIFURL = w.gif(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return WrapUpMessage{}, err
	}
	return msg, nil
}

func (w *WrapUpService) gif(ctx context.Context) string {
	if w.gifs == nil {
		return config.FallbackGIF
	}
	return w.gifs.Random(ctx)
}

func (w *WrapUpService) performer(ctx context.Context, entry leaderboard.Entry) Performer {
	p := Performer{UserID: entry.UserID, Name: entry.DisplayName, Done: entry.Total}
	if p.Name == "" {
		p.Name = strconv.FormatInt(entry.UserID, 10)
	}
	record, err := w.tracker.GetOrCreateToday(ctx, entry.UserID)
	if err != nil {
		slog.Warn("Failed to load goal for wrap-up",
			slog.String("type", "db"),
			slog.Int64("user_id", entry.UserID),
			slog.Any("error", err))
		return p
	}
	p.Goal = record.Goal
	return p
}

// Post composes the recap and sends it to every configured channel. A failed
// channel does not stop the others.
func (w *WrapUpService) Post(ctx context.Context) error {
	if len(w.channels) == 0 {
		slog.Info("No wrap-up channels configured, skipping", slog.String("type", "sys"))
		return nil
	}
	start := time.Now()

	msg, err := w.Compose(ctx)
	if err != nil {
		return fmt.Errorf("failed to compose wrap-up: %w", err)
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("🌙 Daily Wrap-Up").
		SetDescription(msg.Text).
		SetColor(config.LeaderboardColor).
		SetImage(msg.GIFURL).
		SetFooterText(fmt.Sprintf("🎯 Total apps logged today: %d", msg.Board.GrandTotal)).
		Build()

	var failed int
	for _, channelID := range w.channels {
		if err := w.poster.Post(ctx, channelID, discord.MessageCreate{Embeds: []discord.Embed{embed}}); err != nil {
			failed++
			slog.Error("Failed to post wrap-up",
				slog.String("type", "sys"),
				slog.String("channel_id", channelID.String()),
				slog.Any("error", err))
		}
	}

	slog.Info("Wrap-up posted",
		slog.String("type", "sys"),
		slog.Int("channels", len(w.channels)),
		slog.Int("failed", failed),
		slog.Int("entries", len(msg.Board.Entries)),
		slog.Duration("took", time.Since(start)))
	if failed == len(w.channels) {
		return fmt.Errorf("wrap-up could not be posted to any channel")
	}
	return nil
}
