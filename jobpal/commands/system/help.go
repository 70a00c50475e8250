package system

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/jobpal/jobpal-bot/jobpal/commands/coach"
	"github.com/jobpal/jobpal-bot/jobpal/commands/social"
	"github.com/jobpal/jobpal-bot/jobpal/commands/tracking"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

const helpCategoryID = "/help/category"

var Help = discord.SlashCommandCreate{
	Name:        "help",
	Description: "📖 Display all available commands and their descriptions",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "category",
			Description: "Filter commands by category",
			Required:    false,
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "Tracking", Value: "tracking"},
				{Name: "Social", Value: "social"},
				{Name: "Coach", Value: "coach"},
				{Name: "System", Value: "system"},
			},
		},
	},
}

type CommandInfo struct {
	Name        string
	Description string
	Subcommands []string
}

type CategoryInfo struct {
	Key         string
	Name        string
	Description string
	Emoji       string
	Commands    []CommandInfo
}

// Categories lists every command group in display order. Command details are
// read from the registered definitions so help never drifts from them.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{Key: "tracking", Name: "Tracking", Emoji: "📝", Description: "Set goals and log your applications", Commands: describe(tracking.Commands)},
		{Key: "social", Name: "Social", Emoji: "🏆", Description: "Leaderboards, badges and buddies", Commands: describe(social.Commands)},
		{Key: "coach", Name: "Coach", Emoji: "🎖️", Description: "Advice and nudges from the AI coach", Commands: describe(coach.Commands)},
		{Key: "system", Name: "System", Emoji: "⚙️", Description: "Bot utilities and information", Commands: describe([]discord.ApplicationCommandCreate{Help, Version})},
	}
}

func describe(commands []discord.ApplicationCommandCreate) []CommandInfo {
	infos := make([]CommandInfo, 0, len(commands))
	for _, command := range commands {
		slash, ok := command.(discord.SlashCommandCreate)
		if !ok {
			continue
		}
		info := CommandInfo{Name: slash.Name, Description: slash.Description}
		for _, option := range slash.Options {
			if sub, ok := option.(discord.ApplicationCommandOptionSubCommand); ok {
				info.Subcommands = append(info.Subcommands, sub.Name)
			}
		}
		infos = append(infos, info)
	}
	return infos
}

func findCategory(key string) (CategoryInfo, bool) {
	for _, category := range Categories() {
		if category.Key == key {
			return category, true
		}
	}
	return CategoryInfo{}, false
}

func HelpHandler(e *handler.CommandEvent) error {
	key, ok := e.SlashCommandInteractionData().OptString("category")
	if !ok {
		return e.CreateMessage(discord.MessageCreate{
			Embeds:     []discord.Embed{overviewEmbed()},
			Components: categoryMenu(),
		})
	}

	category, found := findCategory(key)
	if !found {
		return utils.EH.CreateErrorEmbed(e, fmt.Sprintf("Category '%s' not found.", key))
	}
	return e.CreateMessage(discord.MessageCreate{
		Embeds:     []discord.Embed{categoryEmbed(category)},
		Components: categoryMenu(),
	})
}

// HelpCategoryHandler handles the category select menu under a help message.
func HelpCategoryHandler(e *handler.ComponentEvent) error {
	data, ok := e.Data.(discord.StringSelectMenuInteractionData)
	if !ok || len(data.Values) == 0 {
		return nil
	}
	category, found := findCategory(data.Values[0])
	if !found {
		return utils.EH.CreateEphemeralError(e, fmt.Sprintf("Category '%s' not found.", data.Values[0]))
	}
	return e.UpdateMessage(discord.MessageUpdate{
		Embeds: &[]discord.Embed{categoryEmbed(category)},
	})
}

func overviewEmbed() discord.Embed {
	embed := discord.NewEmbedBuilder().
		SetTitle("📖 JobPal - Command Help").
		SetDescription("**JobPal** keeps your job hunt on track: set a daily goal, log every application, and climb the leaderboard.").
		SetColor(config.InfoColor)

	total := 0
	for _, category := range Categories() {
		names := make([]string, 0, len(category.Commands))
		for _, command := range category.Commands {
			names = append(names, fmt.Sprintf("`/%s`", command.Name))
		}
		total += len(category.Commands)
		embed.AddField(category.Name, fmt.Sprintf("%s **%d commands**\n%s",
			category.Emoji, len(category.Commands), strings.Join(names, " • ")), false)
	}
	embed.SetFooter(fmt.Sprintf("Total: %d commands • Use /help category:<name> for details", total), "")
	return embed.Build()
}

func categoryEmbed(category CategoryInfo) discord.Embed {
	embed := discord.NewEmbedBuilder().
		SetTitle(fmt.Sprintf("%s %s Commands", category.Emoji, category.Name)).
		SetDescription(category.Description).
		SetColor(config.InfoColor)

	for _, command := range category.Commands {
		value := command.Description
		if len(command.Subcommands) > 0 {
			value += fmt.Sprintf("\n**Subcommands:** %s", strings.Join(command.Subcommands, ", "))
		}
		embed.AddField("/"+command.Name, value, false)
	}
	embed.SetFooter(fmt.Sprintf("%d commands in %s • Use /help to see all categories", len(category.Commands), category.Name), "")
	return embed.Build()
}

func categoryMenu() []discord.ContainerComponent {
	options := make([]discord.StringSelectMenuOption, 0, 4)
	for _, category := range Categories() {
		options = append(options, discord.StringSelectMenuOption{
			Label:       fmt.Sprintf("%s %s Commands", category.Emoji, category.Name),
			Value:       category.Key,
			Description: category.Description,
		})
	}
	return []discord.ContainerComponent{
		discord.NewActionRow(discord.NewStringSelectMenu(helpCategoryID, "Select a category for detailed help...", options...)),
	}
}
