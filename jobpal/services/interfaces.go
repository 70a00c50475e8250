package services

import (
	"context"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
)

// Sender delivers one direct message.
type Sender interface {
	Send(ctx context.Context, targetID int64, text string) error
}

type Enqueuer interface {
	Enqueue(targetID int64, kind, text string) bool
}

// WaitEnqueuer queues a message, blocking until there is room or ctx ends.
type WaitEnqueuer interface {
	EnqueueWait(ctx context.Context, targetID int64, kind, text string) error
}

// Completer produces one chat completion.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type GIFSource interface {
	Random(ctx context.Context) string
}

type QuotaStore interface {
	// Consume takes one question from the user's allowance for day and
	// reports the new count, or ok=false when the allowance is spent.
	Consume(ctx context.Context, userID int64, day string, limit int) (int, bool, error)
}

type ChannelPoster interface {
	Post(ctx context.Context, channelID snowflake.ID, message discord.MessageCreate) error
}

type RecipientSource interface {
	ListReminderRecipients(ctx context.Context) ([]*models.ReminderRecipient, error)
}

type BuddyStore interface {
	GetBuddy(ctx context.Context, userID int64) (*models.Buddy, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, name string, image []byte) (string, error)
}
