package social

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/internal/domain/badges"
	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var Badges = discord.SlashCommandCreate{
	Name:        "badges",
	Description: "🏅 Show the badges you've earned and how close you are to the rest",
}

func BadgesHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		statuses, err := b.Badges.Summary(ctx, int64(e.User().ID))
		if err != nil {
			return utils.EH.HandleDomainError(e, err)
		}

		earned := 0
		for _, status := range statuses {
			if status.Earned {
				earned++
			}
		}
		embed := discord.NewEmbedBuilder().
			SetTitle("🏅 Your Badges").
			SetDescription(BadgeLines(statuses)).
			SetColor(config.LeaderboardColor).
			SetFooter(fmt.Sprintf("%d/%d earned", earned, len(statuses)), "")
		return e.CreateMessage(discord.MessageCreate{Embeds: []discord.Embed{embed.Build()}})
	}
}

func BadgeLines(statuses []badges.Status) string {
	lines := make([]string, 0, len(statuses))
	for _, status := range statuses {
		if status.Earned {
			lines = append(lines, fmt.Sprintf("✅ %s — _%s_\n🗓️ Earned on %s",
				status.Badge.Name(), status.Badge.Description(), status.AwardedAt.Format("Jan 02, 2006")))
			continue
		}
		lines = append(lines, fmt.Sprintf("🔒 %s — _%s_\n📈 Progress: %s",
			status.Badge.Name(), status.Badge.Description(), status.Progress))
	}
	return strings.Join(lines, "\n\n")
}
