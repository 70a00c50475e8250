package tracking

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var Progress = discord.SlashCommandCreate{
	Name:        "progress",
	Description: "📊 Show this week's progress",
}

var History = discord.SlashCommandCreate{
	Name:        "history",
	Description: "🗓️ Browse your past weeks",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "weeks",
			Description: "How many weeks to look back (1-12)",
			Required:    false,
			MinValue:    utils.Ptr(1),
			MaxValue:    utils.Ptr(config.HistoryMaxWeeks),
		},
	},
}

func weekEmbed(embed *discord.EmbedBuilder, summary tracker.WeeklySummary, today time.Time) *discord.EmbedBuilder {
	return embed.
		SetTitle(fmt.Sprintf("📊 Week of %s", summary.WeekStart.Format("Jan 02, 2006"))).
		SetDescription(utils.WeekLines(summary, today) + "\n" + utils.WeekTotals(summary)).
		SetColor(config.InfoColor)
}

func ProgressHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		today := b.Tracker.Today()
		summary, err := b.Tracker.WeeklySummary(ctx, int64(e.User().ID), dates.WeekStart(today))
		if err != nil {
			return utils.EH.HandleDomainError(e, err)
		}
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{weekEmbed(discord.NewEmbedBuilder(), summary, today).Build()},
		})
	}
}

// HistoryHandler pages back one week at a time, newest first.
func HistoryHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())

		weeks, ok := e.SlashCommandInteractionData().OptInt("weeks")
		if !ok {
			weeks = 4
		}
		weeks = min(max(weeks, 1), config.HistoryMaxWeeks)

		userID := int64(e.User().ID)
		today := b.Tracker.Today()
		thisWeek := dates.WeekStart(today)

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
				defer cancel()

				summary, err := b.Tracker.WeeklySummary(ctx, userID, thisWeek.AddDate(0, 0, -7*page))
				if err != nil {
					_, message := utils.ClassifyError(err)
					embed.SetTitle("🗓️ History").SetDescription("🔧 " + message).SetColor(config.ErrorColor)
					return
				}
				weekEmbed(embed, summary, today).
					SetFooter(fmt.Sprintf("Week %d/%d", page+1, weeks), "")
			},
			Pages:      weeks,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
