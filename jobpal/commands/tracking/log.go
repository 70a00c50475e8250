package tracking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
	"github.com/jobpal/jobpal-bot/jobpal"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

const batchInputID = "total"

var Log = discord.SlashCommandCreate{
	Name:        "log",
	Description: "📝 Log your job applications",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "date",
			Description: "Day to log for (YYYY-MM-DD, this week only). Defaults to today",
			Required:    false,
		},
	},
}

func LogHandler(b *jobpal.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		b.Remember(e.User())

		day := b.Tracker.Today()
		if value, ok := e.SlashCommandInteractionData().OptString("date"); ok {
			parsed, err := dates.Parse(strings.TrimSpace(value))
			if err != nil {
				return utils.EH.HandleDomainError(e, errs.Invalid("%s", err.Error()))
			}
			day = parsed
		}
		if err := tracker.CheckEditable(day, b.Tracker.Today()); err != nil {
			return utils.EH.HandleDomainError(e, err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		record, err := b.Tracker.GetOrCreate(ctx, int64(e.User().ID), day)
		if err != nil {
			return utils.EH.HandleDomainError(e, err)
		}
		embed, components := logPanel(e.User().ID, record, false)
		return e.CreateMessage(discord.MessageCreate{
			Embeds:     []discord.Embed{embed},
			Components: components,
		})
	}
}

// LogButtonHandler handles /log/{action}/{owner}/{day} for the panel buttons.
func LogButtonHandler(b *jobpal.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		if e.Vars["owner"] != e.User().ID.String() {
			return utils.EH.CreateEphemeralError(e, "This panel belongs to someone else. Run /log to open your own!")
		}
		day, err := dates.Parse(e.Vars["day"])
		if err != nil {
			return utils.EH.HandleDomainError(e, errs.Invalid("%s", err.Error()))
		}
		userID := int64(e.User().ID)

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		var record tracker.Record
		switch e.Vars["action"] {
		case "inc":
			record, err = b.Tracker.ApplyIncrement(ctx, userID, day, 1)
		case "dec":
			record, err = b.Tracker.ApplyIncrement(ctx, userID, day, -1)
		case "batch":
			return e.Modal(batchModal(e.User().ID, day))
		case "done":
			record, err = b.Tracker.GetOrCreate(ctx, userID, day)
			if err != nil {
				return utils.EH.HandleDomainError(e, err)
			}
			embed, components := logPanel(e.User().ID, record, true)
			return e.UpdateMessage(discord.MessageUpdate{Embeds: &[]discord.Embed{embed}, Components: &components})
		default:
			return utils.EH.CreateEphemeralError(e, "Unknown action.")
		}
		if err != nil {
			return utils.EH.HandleDomainError(e, err)
		}

		embed, components := logPanel(e.User().ID, record, false)
		if err := e.UpdateMessage(discord.MessageUpdate{Embeds: &[]discord.Embed{embed}, Components: &components}); err != nil {
			return err
		}
		b.Hooks.AfterProgress(ctx, userID, e.User().Username, record)
		return nil
	}
}

// LogBatchModalHandler handles /log-batch/{owner}/{day}.
func LogBatchModalHandler(b *jobpal.Bot) handler.ModalHandler {
	return func(e *handler.ModalEvent) error {
		if e.Vars["owner"] != e.User().ID.String() {
			return utils.EH.HandleDomainError(e, errs.Invalid("this panel belongs to someone else"))
		}
		day, err := dates.Parse(e.Vars["day"])
		if err != nil {
			return utils.EH.HandleDomainError(e, errs.Invalid("%s", err.Error()))
		}
		total, err := strconv.Atoi(strings.TrimSpace(e.Data.Text(batchInputID)))
		if err != nil {
			return utils.EH.HandleDomainError(e, errs.Invalid("the total must be a whole number"))
		}
		userID := int64(e.User().ID)

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		record, err := b.Tracker.ApplyBatch(ctx, userID, day, total)
		if err != nil {
			return utils.EH.HandleDomainError(e, err)
		}

		embed, components := logPanel(e.User().ID, record, false)
		if err := e.UpdateMessage(discord.MessageUpdate{Embeds: &[]discord.Embed{embed}, Components: &components}); err != nil {
			return err
		}
		b.Hooks.AfterProgress(ctx, userID, e.User().Username, record)
		return nil
	}
}

func batchModal(owner snowflake.ID, day time.Time) discord.ModalCreate {
	return discord.ModalCreate{
		CustomID: fmt.Sprintf("/log-batch/%s/%s", owner, dates.Key(day)),
		Title:    "Batch log for " + day.Format("Mon, Jan 02"),
		Components: []discord.ContainerComponent{
			discord.NewActionRow(
				discord.NewShortTextInput(batchInputID, "Total applications sent that day").
					WithPlaceholder("e.g. 7").
					WithRequired(true),
			),
		},
	}
}

func logPanel(owner snowflake.ID, record tracker.Record, closed bool) (discord.Embed, []discord.ContainerComponent) {
	var description strings.Builder
	if record.Goal > 0 {
		description.WriteString(utils.CheckBar(record.Done, record.Goal))
		fmt.Fprintf(&description, "\n**%d/%d** applications logged", record.Done, record.Goal)
	} else {
		fmt.Fprintf(&description, "**%d** applications logged\n_No goal set. Use /setgoal to add one._", record.Done)
	}

	color := config.InfoColor
	if record.Met() {
		color = config.SuccessColor
	}

	embed := discord.NewEmbedBuilder().
		SetTitle("📝 Applications for " + record.Date.Format("Mon, Jan 02")).
		SetDescription(description.String()).
		SetColor(color)

	if closed {
		if record.Met() {
			embed.SetFooter("Goal smashed. Nice work today! 💪", "")
		} else {
			embed.SetFooter("Saved. Come back when you've sent more!", "")
		}
		return embed.Build(), []discord.ContainerComponent{}
	}

	id := func(action string) string {
		return fmt.Sprintf("/log/%s/%s/%s", action, owner, dates.Key(record.Date))
	}
	return embed.Build(), []discord.ContainerComponent{
		discord.NewActionRow(
			discord.NewSecondaryButton("➖", id("dec")),
			discord.NewPrimaryButton("➕", id("inc")),
			discord.NewSecondaryButton("🔢 Batch", id("batch")),
			discord.NewSuccessButton("✅ Done", id("done")),
		),
	}
}
