package coach

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var Ask = discord.SlashCommandCreate{
	Name:        "ask",
	Description: "🎖️ Ask the job-hunt coach a question",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "question",
			Description: "What do you want to know?",
			Required:    true,
			MaxLength:   utils.Ptr(1000),
		},
	},
}

func AskHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())
		question := e.SlashCommandInteractionData().String("question")

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.LLMTimeout+config.CommandExecutionTimeout)
		defer cancel()

		answer, err := b.Coach.Ask(ctx, int64(e.User().ID), question)
		if err != nil {
			errorType, message := utils.ClassifyError(err)
			return utils.EH.UpdateInteractionResponse(e, errorType, message)
		}

		embed := discord.NewEmbedBuilder().
			SetTitle("🎖️ Coach says").
			SetDescription(answer.Text).
			SetColor(config.InfoColor).
			SetFooter(fmt.Sprintf("%s left today", utils.Plural(answer.Remaining, "question")), "").
			Build()
		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{Embeds: &[]discord.Embed{embed}})
		return err
	}
}
