package tracking

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var WeekGoals = discord.SlashCommandCreate{
	Name:        "weekgoals",
	Description: "📅 Set a recurring goal for weekdays (run without options to view)",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "goal",
			Description: "Applications per day (0 removes the goal)",
			Required:    false,
			MinValue:    utils.Ptr(0),
			MaxValue:    utils.Ptr(500),
		},
		discord.ApplicationCommandOptionString{
			Name:        "days",
			Description: "e.g. \"mon wed fri\", \"weekdays\", \"weekend\" or \"all\"",
			Required:    false,
		},
	},
}

func WeekGoalsHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())
		data := e.SlashCommandInteractionData()
		userID := int64(e.User().ID)

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		goal, hasGoal := data.OptInt("goal")
		days, hasDays := data.OptString("days")
		if !hasGoal && !hasDays {
			goals, err := b.Tracker.WeekdayGoals(ctx, userID)
			if err != nil {
				return utils.EH.HandleDomainError(e, err)
			}
			return utils.EH.CreateInfoEmbed(e, describeWeekdayGoals(goals))
		}
		if !hasGoal || !hasDays {
			return utils.EH.HandleDomainError(e, errs.Invalid("provide both a goal and the days it applies to"))
		}

		weekdays, err := tracker.ParseWeekdays(days)
		if err != nil {
			return utils.EH.HandleDomainError(e, err)
		}
		if err := b.Tracker.SetWeekdayGoals(ctx, userID, goal, weekdays); err != nil {
			return utils.EH.HandleDomainError(e, err)
		}

		// Today's record already exists, so it does not pick up the new
		// weekday goal by itself.
		if slices.Contains(weekdays, b.Tracker.Today().Weekday()) {
			if _, err := b.Tracker.SetGoal(ctx, userID, goal); err != nil {
				return utils.EH.HandleDomainError(e, err)
			}
		}

		names := weekdayNames(weekdays)
		if goal == 0 {
			return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("🗑️ Removed your goal for %s.", names))
		}
		return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("📅 Goal of %d applications set for %s.", goal, names))
	}
}

func weekdayNames(weekdays []time.Weekday) string {
	names := make([]string, 0, len(weekdays))
	for _, weekday := range weekdays {
		names = append(names, weekday.String())
	}
	return strings.Join(names, ", ")
}

func describeWeekdayGoals(goals map[time.Weekday]int) string {
	if len(goals) == 0 {
		return "You have no weekday goals yet. Try `/weekgoals goal:5 days:weekdays`."
	}
	var b strings.Builder
	b.WriteString("**Your weekday goals**\n")
	for _, weekday := range dates.Weekdays() {
		goal, ok := goals[weekday]
		switch {
		case !ok:
			fmt.Fprintf(&b, "%s: _not set_\n", weekday)
		case goal == 0:
			fmt.Fprintf(&b, "%s: removed\n", weekday)
		default:
			fmt.Fprintf(&b, "%s: %d\n", weekday, goal)
		}
	}
	return b.String()
}
