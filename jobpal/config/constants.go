package config

import "time"

// UI and Display Constants
const (
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	EmbedDefaultColor = 0x2B2D31
	LeaderboardColor  = 0xF1C40F

	LeaderboardLimit = 10
	HistoryMaxWeeks  = 12
)

// Timeouts
const (
	CommandExecutionTimeout = 10 * time.Second
	SlowCommandThreshold    = 2 * time.Second
	NetworkDialTimeout      = 5 * time.Second
	NetworkKeepAlive        = 30 * time.Second
	LLMTimeout              = 10 * time.Second
	GiphyTimeout            = 5 * time.Second
	RenderTimeout           = 30 * time.Second
	UploadTimeout           = 15 * time.Second
	ShutdownTimeout         = 10 * time.Second
)

// Notifier
const (
	NotifierQueueSize = 256
	NotifierWorkers   = 3
	NotifierSendLimit = 5 * time.Second
)

// ReminderFanoutTimeout bounds one reminder slot, queue waits included.
const ReminderFanoutTimeout = 30 * time.Minute

const (
	FallbackGIF     = "https://media.giphy.com/media/JIX9t2j0ZTN9S/giphy.gif"
	FallbackCoach   = "Keep going! Every application is a step closer to your next role. 💪"
	FallbackWrapUp  = "Another day of applications in the books! Rest up and come back swinging tomorrow. 🌙"
	DefaultTimezone = "America/Toronto"
)
