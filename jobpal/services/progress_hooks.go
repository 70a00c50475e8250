package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jobpal/jobpal-bot/internal/domain/badges"
	"github.com/jobpal/jobpal-bot/internal/domain/identity"
	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
)

// ProgressHooks runs after a progress write has committed: it awards badges
// and queues the unlock and buddy DMs. Nothing here fails the write.
type ProgressHooks struct {
	badges   badges.Evaluator
	buddies  BuddyStore
	identity identity.Resolver
	notifier Enqueuer
}

func NewProgressHooks(evaluator badges.Evaluator, buddies BuddyStore, resolver identity.Resolver, notifier Enqueuer) *ProgressHooks {
	return &ProgressHooks{
		badges:   evaluator,
		buddies:  buddies,
		identity: resolver,
		notifier: notifier,
	}
}

// AfterProgress returns the badges unlocked by this write.
func (h *ProgressHooks) AfterProgress(ctx context.Context, userID int64, username string, record tracker.Record) []badges.Badge {
	unlocked, err := h.badges.CheckAll(ctx, userID)
	if err != nil {
		slog.Error("Badge evaluation failed",
			slog.String("type", "sys"),
			slog.Int64("user_id", userID),
			slog.Any("error", err))
	}
	for _, badge := range unlocked {
		h.notifier.Enqueue(userID, "badge", BadgeUnlockedText(badge))
	}

	h.nudgeBuddy(ctx, userID, username, record)
	return unlocked
}

func BadgeUnlockedText(badge badges.Badge) string {
	return fmt.Sprintf("🏅 Badge unlocked: %s\n_%s_", badge.Name(), badge.Description())
}

func (h *ProgressHooks) nudgeBuddy(ctx context.Context, userID int64, username string, record tracker.Record) {
	buddy, err := h.buddies.GetBuddy(ctx, userID)
	if err != nil {
		slog.Warn("Failed to load buddy",
			slog.String("type", "db"),
			slog.Int64("user_id", userID),
			slog.Any("error", err))
		return
	}
	if buddy == nil {
		return
	}

	buddyID, ok, err := h.identity.ResolveUsername(ctx, buddy.BuddyUsername)
	if err != nil || !ok {
		slog.Info("Buddy handle not resolved, skipping nudge",
			slog.String("type", "sys"),
			slog.Int64("user_id", userID),
			slog.String("buddy", buddy.BuddyUsername),
			slog.Any("error", err))
		return
	}
	if buddyID == userID {
		return
	}

	name := h.identity.GreetingName(ctx, userID, username)
	h.notifier.Enqueue(buddyID, "buddy",
		fmt.Sprintf("👀 Your buddy %s just logged progress: %d/%d! Keep up!", name, record.Done, record.Goal))
}
