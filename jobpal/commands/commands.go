package commands

import (
	"github.com/disgoorg/disgo/discord"

	"github.com/jobpal/jobpal-bot/jobpal/commands/coach"
	"github.com/jobpal/jobpal-bot/jobpal/commands/social"
	"github.com/jobpal/jobpal-bot/jobpal/commands/system"
	"github.com/jobpal/jobpal-bot/jobpal/commands/tracking"
)

var Commands = []discord.ApplicationCommandCreate{}

func init() {
	Commands = append(Commands, tracking.Commands...)
	Commands = append(Commands, social.Commands...)
	Commands = append(Commands, coach.Commands...)
	Commands = append(Commands, system.Commands...)
}
