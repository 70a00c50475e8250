package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
	"github.com/jobpal/jobpal-bot/jobpal/services/mock"
)

func TestReminderSlot_Text(t *testing.T) {
	record := tracker.Record{Goal: 5, Done: 2}
	tests := []struct {
		slot ReminderSlot
		want string
	}{
		{MorningReminder, "😺 Good morning, Ann! You have a goal of 5 applications today."},
		{AfternoonReminder, "🐱 How’s the hunt, Ann? 2 logged out of 5 so far—keep going!"},
		{EveningReminder, "🌠 Final call, Ann! You've logged 2/5. Last chance before leaderboard!"},
	}
	for _, tt := range tests {
		t.Run(tt.slot.String(), func(t *testing.T) {
			if got := tt.slot.Text("Ann", record); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReminderService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	recipients := mock.NewMockRecipientSource(ctrl)
	trk := mock.NewMockService(ctrl)
	notifier := mock.NewMockWaitEnqueuer(ctrl)

	recipients.EXPECT().ListReminderRecipients(gomock.Any()).Return([]*models.ReminderRecipient{
		{UserID: 1, Username: "ann_h", DisplayName: "Ann"},
		{UserID: 2, Username: "bob"},
		{UserID: 3},
		{UserID: 4, Username: "idle"},
		{UserID: 5, Username: "broken"},
	}, nil)

	trk.EXPECT().GetOrCreateToday(gomock.Any(), int64(1)).Return(tracker.Record{Goal: 5, Done: 2}, nil)
	trk.EXPECT().GetOrCreateToday(gomock.Any(), int64(2)).Return(tracker.Record{Goal: 3, Done: 3}, nil)
	trk.EXPECT().GetOrCreateToday(gomock.Any(), int64(3)).Return(tracker.Record{Goal: 1}, nil)
	trk.EXPECT().GetOrCreateToday(gomock.Any(), int64(4)).Return(tracker.Record{Goal: 0}, nil)
	trk.EXPECT().GetOrCreateToday(gomock.Any(), int64(5)).Return(tracker.Record{}, errors.New("db down"))

	notifier.EXPECT().EnqueueWait(gomock.Any(), int64(1), "reminder:evening", "🌠 Final call, Ann! You've logged 2/5. Last chance before leaderboard!").Return(nil)
	notifier.EXPECT().EnqueueWait(gomock.Any(), int64(2), "reminder:evening", "🌠 Final call, bob! You've logged 3/3. Last chance before leaderboard!").Return(nil)
	notifier.EXPECT().EnqueueWait(gomock.Any(), int64(3), "reminder:evening", "🌠 Final call, friend! You've logged 0/1. Last chance before leaderboard!").Return(context.DeadlineExceeded)

	queued, err := NewReminderService(recipients, trk, notifier, 2).Send(context.Background(), EveningReminder)
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if queued != 2 {
		t.Errorf("Send() queued = %d, want 2", queued)
	}
}

func TestReminderService_SendListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	recipients := mock.NewMockRecipientSource(ctrl)
	recipients.EXPECT().ListReminderRecipients(gomock.Any()).Return(nil, errors.New("db down"))

	if _, err := NewReminderService(recipients, nil, nil, 4).Send(context.Background(), MorningReminder); err == nil {
		t.Error("Send() error = nil, want error")
	}
}

func TestReminderService_SendMoreRecipientsThanQueue(t *testing.T) {
	const total = 40

	ctrl := gomock.NewController(t)
	recipients := mock.NewMockRecipientSource(ctrl)
	trk := mock.NewMockService(ctrl)

	list := make([]*models.ReminderRecipient, 0, total)
	for i := 1; i <= total; i++ {
		list = append(list, &models.ReminderRecipient{UserID: int64(i), Username: "user"})
	}
	recipients.EXPECT().ListReminderRecipients(gomock.Any()).Return(list, nil)
	trk.EXPECT().GetOrCreateToday(gomock.Any(), gomock.Any()).Return(tracker.Record{Goal: 2}, nil).Times(total)

	sender := newRecordingSender()
	notifier := NewNotifier(sender, 4, 1, time.Second)
	notifier.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	queued, err := NewReminderService(recipients, trk, notifier, 8).Send(ctx, MorningReminder)
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if queued != total {
		t.Errorf("Send() queued = %d, want %d", queued, total)
	}

	if err := notifier.Shutdown(2 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	for i := 1; i <= total; i++ {
		if got := len(sender.texts(int64(i))); got != 1 {
			t.Errorf("user %d got %d reminders, want 1", i, got)
		}
	}
}
