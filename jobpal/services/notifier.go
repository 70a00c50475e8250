package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/google/uuid"
)

// Notification is a direct message waiting to be delivered.
type Notification struct {
	ID       string
	TargetID int64
	Kind     string
	Text     string
}

// Notifier is a DM queue drained by a fixed worker pool. Enqueue never blocks
// the caller, EnqueueWait waits for room, and delivery failures are logged and
// dropped.
type Notifier struct {
	queue       chan Notification
	sender      Sender
	workers     int
	sendTimeout time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewNotifier(sender Sender, queueSize, workers int, sendTimeout time.Duration) *Notifier {
	if workers < 1 {
		workers = 1
	}
	return &Notifier{
		queue:       make(chan Notification, queueSize),
		sender:      sender,
		workers:     workers,
		sendTimeout: sendTimeout,
		done:        make(chan struct{}),
	}
}

// Enqueue queues a message and reports false when the queue was full.
func (n *Notifier) Enqueue(targetID int64, kind, text string) bool {
	note := Notification{ID: uuid.New().String(), TargetID: targetID, Kind: kind, Text: text}
	select {
	case n.queue <- note:
		slog.Debug("Notification queued",
			slog.String("type", "sys"),
			slog.String("notification_id", note.ID),
			slog.String("kind", kind),
			slog.Int64("target_id", targetID))
		return true
	default:
		slog.Warn("Notification queue full, dropping message",
			slog.String("type", "sys"),
			slog.String("notification_id", note.ID),
			slog.String("kind", kind),
			slog.Int64("target_id", targetID))
		return false
	}
}

// EnqueueWait queues a message, waiting for room until ctx is done. Bulk
// senders use it so a burst larger than the queue is paced by the workers
// instead of dropped.
func (n *Notifier) EnqueueWait(ctx context.Context, targetID int64, kind, text string) error {
	note := Notification{ID: uuid.New().String(), TargetID: targetID, Kind: kind, Text: text}
	select {
	case n.queue <- note:
		slog.Debug("Notification queued",
			slog.String("type", "sys"),
			slog.String("notification_id", note.ID),
			slog.String("kind", kind),
			slog.Int64("target_id", targetID))
		return nil
	case <-ctx.Done():
		slog.Warn("Gave up waiting for notification queue",
			slog.String("type", "sys"),
			slog.String("notification_id", note.ID),
			slog.String("kind", kind),
			slog.Int64("target_id", targetID),
			slog.Any("error", ctx.Err()))
		return ctx.Err()
	}
}

// Start runs the workers in the background until Shutdown or until parent is
// cancelled.
func (n *Notifier) Start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	n.cancel = cancel
	go func() {
		defer close(n.done)
		n.Run(ctx)
	}()
}

// Shutdown stops the workers and waits up to timeout for the queue to drain.
func (n *Notifier) Shutdown(timeout time.Duration) error {
	if n.cancel == nil {
		return nil
	}
	n.cancel()
	select {
	case <-n.done:
		return nil
	case <-time.After(timeout):
		slog.Warn("Notifier shutdown timed out",
			slog.String("type", "sys"),
			slog.Int("pending", n.Pending()))
		return context.DeadlineExceeded
	}
}

// Run delivers queued messages until ctx is cancelled, then drains whatever
// is still queued before returning.
func (n *Notifier) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < n.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n.work(ctx)
		}()
	}
	wg.Wait()
}

func (n *Notifier) work(ctx context.Context) {
	for {
		select {
		case note := <-n.queue:
			n.deliver(note)
		case <-ctx.Done():
			for {
				select {
				case note := <-n.queue:
					n.deliver(note)
				default:
					return
				}
			}
		}
	}
}

// deliver uses its own deadline so a draining shutdown can still send.
func (n *Notifier) deliver(note Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), n.sendTimeout)
	defer cancel()

	start := time.Now()
	if err := n.sender.Send(ctx, note.TargetID, note.Text); err != nil {
		slog.Warn("Failed to deliver notification",
			slog.String("type", "sys"),
			slog.String("notification_id", note.ID),
			slog.String("kind", note.Kind),
			slog.Int64("target_id", note.TargetID),
			slog.Any("error", err))
		return
	}
	slog.Debug("Notification delivered",
		slog.String("type", "sys"),
		slog.String("notification_id", note.ID),
		slog.String("kind", note.Kind),
		slog.Duration("took", time.Since(start)))
}

// Pending is the number of queued, undelivered messages.
func (n *Notifier) Pending() int {
	return len(n.queue)
}

// DiscordSender opens a DM channel and posts the text.
type DiscordSender struct {
	client bot.Client
}

func NewDiscordSender(client bot.Client) *DiscordSender {
	return &DiscordSender{client: client}
}

func (s *DiscordSender) Send(ctx context.Context, targetID int64, text string) error {
	channel, err := s.client.Rest().CreateDMChannel(snowflake.ID(targetID), rest.WithCtx(ctx))
	if err != nil {
		return err
	}
	_, err = s.client.Rest().CreateMessage(channel.ID(), discord.MessageCreate{Content: text}, rest.WithCtx(ctx))
	return err
}

// Post sends a message to a guild channel.
func (s *DiscordSender) Post(ctx context.Context, channelID snowflake.ID, message discord.MessageCreate) error {
	_, err := s.client.Rest().CreateMessage(channelID, message, rest.WithCtx(ctx))
	return err
}
