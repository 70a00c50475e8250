package social

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var Reminders = discord.SlashCommandCreate{
	Name:        "reminders",
	Description: "🔔 Turn the scheduled reminder DMs on or off",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionBool{
			Name:        "enabled",
			Description: "Leave empty to see the current setting",
			Required:    false,
		},
	},
}

func RemindersHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())
		userID := int64(e.User().ID)

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		enabled, ok := e.SlashCommandInteractionData().OptBool("enabled")
		if !ok {
			current, err := b.Preferences.RemindersEnabled(ctx, userID)
			if err != nil {
				return utils.EH.HandleDomainError(e, errs.Storage("get reminder preference", err))
			}
			return utils.EH.CreateInfoEmbed(e, ReminderStatus(current, b.Cfg.Schedule))
		}

		if err := b.Preferences.SetRemindersEnabled(ctx, userID, enabled); err != nil {
			return utils.EH.HandleDomainError(e, errs.Storage("set reminder preference", err))
		}
		return utils.EH.CreateSuccessEmbed(e, ReminderStatus(enabled, b.Cfg.Schedule))
	}
}

func ReminderStatus(enabled bool, schedule jobpal.ScheduleConfig) string {
	if !enabled {
		return "🔕 Reminders are **off**."
	}
	return fmt.Sprintf("🔔 Reminders are **on**. You'll get a DM at %s, %s and %s (%s).",
		schedule.MorningAt, schedule.AfternoonAt, schedule.EveningAt, schedule.Timezone)
}
