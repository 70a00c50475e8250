package tracking

import (
	"context"
	"fmt"
	"strconv"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var quickGoals = []int{5, 10, 15}

var SetGoal = discord.SlashCommandCreate{
	Name:        "setgoal",
	Description: "🎯 Set today's job application goal",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "goal",
			Description: "Number of applications (leave empty for quick picks)",
			Required:    false,
			MinValue:    utils.Ptr(0),
			MaxValue:    utils.Ptr(500),
		},
	},
}

func goalSetMessage(goal int) string {
	return fmt.Sprintf("🎯 Goal set to %d applications for today!", goal)
}

func SetGoalHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())

		goal, ok := e.SlashCommandInteractionData().OptInt("goal")
		if !ok {
			buttons := make([]discord.InteractiveComponent, 0, len(quickGoals))
			for _, value := range quickGoals {
				buttons = append(buttons, discord.NewPrimaryButton(strconv.Itoa(value), fmt.Sprintf("/setgoal/%s/%d", e.User().ID, value)))
			}
			return e.CreateMessage(discord.MessageCreate{
				Content:    "How many applications are you aiming for today?",
				Components: []discord.ContainerComponent{discord.NewActionRow(buttons...)},
				Flags:      discord.MessageFlagEphemeral,
			})
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		record, err := b.Tracker.SetGoal(ctx, int64(e.User().ID), goal)
		if err != nil {
			return utils.EH.HandleDomainError(e, err)
		}
		return utils.EH.CreateSuccessEmbed(e, goalSetMessage(record.Goal))
	}
}

// SetGoalButtonHandler handles /setgoal/{owner}/{goal}.
func SetGoalButtonHandler(b *jobpal.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		if e.Vars["owner"] != e.User().ID.String() {
			return utils.EH.CreateEphemeralError(e, "These buttons belong to someone else. Run /setgoal yourself!")
		}
		goal, err := strconv.Atoi(e.Vars["goal"])
		if err != nil {
			return utils.EH.HandleDomainError(e, errs.Invalid("unknown goal %q", e.Vars["goal"]))
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		record, err := b.Tracker.SetGoal(ctx, int64(e.User().ID), goal)
		if err != nil {
			return utils.EH.HandleDomainError(e, err)
		}
		return e.UpdateMessage(discord.MessageUpdate{
			Content:    utils.Ptr(goalSetMessage(record.Goal)),
			Components: &[]discord.ContainerComponent{},
		})
	}
}
