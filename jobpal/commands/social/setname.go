package social

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/internal/domain/identity"
	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var SetName = discord.SlashCommandCreate{
	Name:        "setname",
	Description: "🪪 Choose the name shown on the leaderboard",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "Display name (1-32 characters)",
			Required:    true,
			MaxLength:   utils.Ptr(identity.MaxDisplayLength),
		},
	},
}

func SetNameHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		name := e.SlashCommandInteractionData().String("name")
		if err := b.Identity.SetDisplayName(ctx, int64(e.User().ID), e.User().Username, name); err != nil {
			return utils.EH.HandleDomainError(e, err)
		}
		display, _, err := b.Identity.DisplayName(ctx, int64(e.User().ID))
		if err != nil || display == "" {
			display = name
		}
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("✅ You'll appear as **%s** on the leaderboard.", display))
	}
}
