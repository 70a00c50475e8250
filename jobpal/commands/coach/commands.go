package coach

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	Ask,
	CoachSummary,
	DailyReminder,
}
