package coach

import (
	"context"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var CoachSummary = discord.SlashCommandCreate{
	Name:        "coachsummary",
	Description: "⚠️ Get the coach's take on your week",
}

func CoachSummaryHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.LLMTimeout+config.CommandExecutionTimeout)
		defer cancel()

		today := b.Tracker.Today()
		summary, err := b.Tracker.WeeklySummary(ctx, int64(e.User().ID), today)
		if err != nil {
			errorType, message := utils.ClassifyError(err)
			return utils.EH.UpdateInteractionResponse(e, errorType, message)
		}

		embed := discord.NewEmbedBuilder().
			SetTitle("⚠️ Coach Mode Activated").
			SetDescription(utils.WeekTotals(summary)).
			AddField("🎖️ Coach", b.Coach.WeeklyCommentary(ctx, summary), false).
			SetColor(config.WarningColor).
			Build()
		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{Embeds: &[]discord.Embed{embed}})
		return err
	}
}
