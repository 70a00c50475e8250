package tracking

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	SetGoal,
	WeekGoals,
	Log,
	Progress,
	History,
}
