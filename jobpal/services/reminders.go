package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
)

type ReminderSlot int

const (
	MorningReminder ReminderSlot = iota
	AfternoonReminder
	EveningReminder
)

func (s ReminderSlot) String() string {
	switch s {
	case MorningReminder:
		return "morning"
	case AfternoonReminder:
		return "afternoon"
	default:
		return "evening"
	}
}

// Text renders the reminder for one recipient.
func (s ReminderSlot) Text(name string, record tracker.Record) string {
	switch s {
	case MorningReminder:
		return fmt.Sprintf("😺 Good morning, %s! You have a goal of %d applications today.", name, record.Goal)
	case AfternoonReminder:
		return fmt.Sprintf("🐱 How’s the hunt, %s? %d logged out of %d so far—keep going!", name, record.Done, record.Goal)
	default:
		return fmt.Sprintf("🌠 Final call, %s! You've logged %d/%d. Last chance before leaderboard!", name, record.Done, record.Goal)
	}
}

type ReminderService struct {
	recipients RecipientSource
	tracker    tracker.Service
	notifier   WaitEnqueuer
	limit      int64
}

func NewReminderService(recipients RecipientSource, tracker tracker.Service, notifier WaitEnqueuer, limit int64) *ReminderService {
	if limit < 1 {
		limit = 1
	}
	return &ReminderService{
		recipients: recipients,
		tracker:    tracker,
		notifier:   notifier,
		limit:      limit,
	}
}

// Send queues the slot's reminder for every opted-in user with a goal today
// and returns how many were queued. Queueing waits for the notifier to make
// room, so ctx bounds the whole fan-out.
func (r *ReminderService) Send(ctx context.Context, slot ReminderSlot) (int, error) {
	start := time.Now()
	recipients, err := r.recipients.ListReminderRecipients(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list reminder recipients: %w", err)
	}

	sem := semaphore.NewWeighted(r.limit)
	var queued atomic.Int32

	for _, recipient := range recipients {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		go func(recipient *models.ReminderRecipient) {
			defer sem.Release(1)
			if r.remind(ctx, slot, recipient) {
				queued.Add(1)
			}
		}(recipient)
	}
	// Wait for the in-flight lookups.
	if err := sem.Acquire(context.WithoutCancel(ctx), r.limit); err == nil {
		sem.Release(r.limit)
	}

	slog.Info("Reminders queued",
		slog.String("type", "sys"),
		slog.String("slot", slot.String()),
		slog.Int("recipients", len(recipients)),
		slog.Int("queued", int(queued.Load())),
		slog.Duration("took", time.Since(start)))
	return int(queued.Load()), ctx.Err()
}

func (r *ReminderService) remind(ctx context.Context, slot ReminderSlot, recipient *models.ReminderRecipient) bool {
	record, err := r.tracker.GetOrCreateToday(ctx, recipient.UserID)
	if err != nil {
		slog.Warn("Failed to load today's record for reminder",
			slog.String("type", "db"),
			slog.Int64("user_id", recipient.UserID),
			slog.Any("error", err))
		return false
	}
	if record.Goal <= 0 {
		return false
	}
	return r.notifier.EnqueueWait(ctx, recipient.UserID, "reminder:"+slot.String(), slot.Text(recipientName(recipient), record)) == nil
}

func recipientName(recipient *models.ReminderRecipient) string {
	switch {
	case recipient.DisplayName != "":
		return recipient.DisplayName
	case recipient.Username != "":
		return recipient.Username
	default:
		return "friend"
	}
}
