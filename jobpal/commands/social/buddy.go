package social

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/internal/domain/identity"
	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var Buddy = discord.SlashCommandCreate{
	Name:        "buddy",
	Description: "👯 Pair up with an accountability buddy",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "invite",
			Description: "Set your buddy by their username",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "username",
					Description: "Your buddy's Discord username",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "show",
			Description: "Show your current buddy",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "remove",
			Description: "Stop being buddies",
		},
	},
}

// BuddyInviteHandler handles /buddy/invite.
func BuddyInviteHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())

		username := identity.NormalizeUsername(e.SlashCommandInteractionData().String("username"))
		if username == "" {
			return utils.EH.HandleDomainError(e, errs.Invalid("a username is required"))
		}
		if username == identity.NormalizeUsername(e.User().Username) {
			return utils.EH.HandleDomainError(e, errs.Invalid("you can't be your own buddy"))
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		if err := b.Buddies.SetBuddy(ctx, int64(e.User().ID), username); err != nil {
			return utils.EH.HandleDomainError(e, errs.Storage("set buddy", err))
		}

		message := fmt.Sprintf("🤝 **%s** is now your buddy! They'll get a ping whenever you log progress.", username)
		if _, found, err := b.Identity.ResolveUsername(ctx, username); err == nil && !found {
			message += "\n_They haven't used JobPal yet, so nudges start once they do._"
		}
		return utils.EH.CreateSuccessEmbed(e, message)
	}
}

// BuddyShowHandler handles /buddy/show.
func BuddyShowHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		buddy, err := b.Buddies.GetBuddy(ctx, int64(e.User().ID))
		if err != nil {
			return utils.EH.HandleDomainError(e, errs.Storage("get buddy", err))
		}
		if buddy == nil {
			return utils.EH.CreateInfoEmbed(e, "You don't have a buddy yet. Try `/buddy invite`.")
		}
		return utils.EH.CreateInfoEmbed(e, fmt.Sprintf("👯 Your buddy is **%s** (since %s).",
			buddy.BuddyUsername, buddy.CreatedAt.Format("Jan 02, 2006")))
	}
}

// BuddyRemoveHandler handles /buddy/remove.
func BuddyRemoveHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		removed, err := b.Buddies.RemoveBuddy(ctx, int64(e.User().ID))
		if err != nil {
			return utils.EH.HandleDomainError(e, errs.Storage("remove buddy", err))
		}
		if !removed {
			return utils.EH.CreateInfoEmbed(e, "You don't have a buddy to remove.")
		}
		return utils.EH.CreateSuccessEmbed(e, "👋 Buddy removed.")
	}
}
