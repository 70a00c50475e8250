package social

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/leaderboard"
	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var Leaderboard = discord.SlashCommandCreate{
	Name:        "leaderboard",
	Description: "🏆 See who's sending the most applications",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "window",
			Description: "Time window",
			Required:    false,
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "Today", Value: "today"},
				{Name: "This week", Value: "week"},
			},
		},
		discord.ApplicationCommandOptionBool{
			Name:        "image",
			Description: "Render the leaderboard as an image",
			Required:    false,
		},
	},
}

func LeaderboardHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())
		data := e.SlashCommandInteractionData()

		window, err := leaderboard.ParseWindow(data.String("window"))
		if err != nil {
			return utils.EH.HandleDomainError(e, err)
		}
		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.RenderTimeout)
		defer cancel()

		board, err := b.Ranker.Rank(ctx, window, config.LeaderboardLimit)
		if err != nil {
			errorType, message := utils.ClassifyError(err)
			return utils.EH.UpdateInteractionResponse(e, errorType, message)
		}

		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("🏆 Leaderboard · %s", board.Window.Label())).
			SetDescription(BoardText(board)).
			SetColor(config.LeaderboardColor).
			SetFooter(fmt.Sprintf("🎯 Total apps logged: %d", board.GrandTotal), "")

		update := discord.MessageUpdate{}
		if data.Bool("image") && len(board.Entries) > 0 {
			if files := attachImage(ctx, b, board, embed); files != nil {
				update.Files = files
			}
		}
		update.Embeds = &[]discord.Embed{embed.Build()}

		_, err = e.UpdateInteractionResponse(update)
		return err
	}
}

// attachImage renders board and either links the uploaded copy or returns it
// as an attachment. Rendering failures fall back to the text board.
func attachImage(ctx context.Context, b *jobpal.Bot, board leaderboard.Board, embed *discord.EmbedBuilder) []*discord.File {
	image, err := b.Images.Render(ctx, board)
	if err != nil {
		slog.Warn("Leaderboard image unavailable, sending text only",
			slog.String("type", "cmd"),
			slog.Any("error", err))
		return nil
	}

	if b.Uploads != nil {
		name := fmt.Sprintf("leaderboard-%s-%s.png", board.Window, dates.Key(board.To))
		url, err := b.Uploads.Upload(ctx, name, image)
		if err == nil {
			embed.SetImage(url)
			return nil
		}
		slog.Warn("Leaderboard upload failed, attaching instead",
			slog.String("type", "cmd"),
			slog.Any("error", err))
	}

	embed.SetImage("attachment://leaderboard.png")
	return []*discord.File{discord.NewFile("leaderboard.png", "JobPal leaderboard", bytes.NewReader(image))}
}

// BoardText renders one medal line per entry.
func BoardText(board leaderboard.Board) string {
	if len(board.Entries) == 0 {
		return "No applications logged yet. Be the first! 🚀"
	}
	var b strings.Builder
	for _, entry := range board.Entries {
		name := entry.DisplayName
		if entry.Anonymous {
			name = "_" + name + "_"
		}
		fmt.Fprintf(&b, "%s %s · **%d**\n", entry.Medal(), name, entry.Total)
	}
	return b.String()
}
