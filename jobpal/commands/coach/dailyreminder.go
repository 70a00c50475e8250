package coach

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var DailyReminder = discord.SlashCommandCreate{
	Name:        "dailyreminder",
	Description: "📋 Where you stand today, with a nudge from the coach",
}

func DailyReminderHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())
		userID := int64(e.User().ID)

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.LLMTimeout+config.CommandExecutionTimeout)
		defer cancel()

		record, err := b.Tracker.GetOrCreateToday(ctx, userID)
		if err != nil {
			errorType, message := utils.ClassifyError(err)
			return utils.EH.UpdateInteractionResponse(e, errorType, message)
		}

		name := b.Identity.GreetingName(ctx, userID, e.User().Username)
		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("📋 Today, %s", name)).
			SetDescription(TodayLine(record)).
			AddField("🎖️ Coach", b.Coach.DailyNudge(ctx, name, record), false).
			SetColor(config.InfoColor).
			Build()
		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{Embeds: &[]discord.Embed{embed}})
		return err
	}
}

// TodayLine is the goal-versus-done header of /dailyreminder.
func TodayLine(record tracker.Record) string {
	if record.Goal <= 0 {
		return fmt.Sprintf("🎯 No goal set yet, %s logged. Try `/setgoal`.", utils.Plural(record.Done, "application"))
	}
	return fmt.Sprintf("🎯 Goal: %s\n%s", utils.Plural(record.Goal, "application"), utils.ProgressBar(record.Done, record.Goal))
}
