package social

import (
	"strings"
	"testing"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/badges"
	"github.com/jobpal/jobpal-bot/internal/domain/leaderboard"
	"github.com/jobpal/jobpal-bot/jobpal"
)

func TestBoardText(t *testing.T) {
	tests := []struct {
		name  string
		board leaderboard.Board
		want  string
	}{
		{
			name:  "empty board",
			board: leaderboard.Board{},
			want:  "No applications logged yet. Be the first! 🚀",
		},
		{
			name: "medals and anonymous names",
			board: leaderboard.Board{Entries: []leaderboard.Entry{
				{Rank: 1, DisplayName: "Ada", Total: 9},
				{Rank: 2, DisplayName: "Quiet Otter", Anonymous: true, Total: 4},
				{Rank: 4, DisplayName: "Linus", Total: 1},
			}},
			want: "🥇 Ada · **9**\n🥈 _Quiet Otter_ · **4**\n4. Linus · **1**\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoardText(tt.board); got != tt.want {
				t.Errorf("BoardText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBadgeLines(t *testing.T) {
	first, second := badges.Catalogue[0], badges.Catalogue[1]
	statuses := []badges.Status{
		{Badge: first, Earned: true, AwardedAt: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)},
		{Badge: second, Progress: "7/20"},
	}

	got := BadgeLines(statuses)
	parts := strings.Split(got, "\n\n")
	if len(parts) != 2 {
		t.Fatalf("BadgeLines() produced %d blocks, want 2: %q", len(parts), got)
	}

	wantEarned := "✅ " + first.Name() + " — _" + first.Description() + "_\n🗓️ Earned on Mar 04, 2024"
	if parts[0] != wantEarned {
		t.Errorf("earned line = %q, want %q", parts[0], wantEarned)
	}
	wantLocked := "🔒 " + second.Name() + " — _" + second.Description() + "_\n📈 Progress: 7/20"
	if parts[1] != wantLocked {
		t.Errorf("locked line = %q, want %q", parts[1], wantLocked)
	}
}

func TestReminderStatus(t *testing.T) {
	schedule := jobpal.ScheduleConfig{
		Timezone:    "America/New_York",
		MorningAt:   "09:00",
		AfternoonAt: "15:00",
		EveningAt:   "21:00",
	}

	if got := ReminderStatus(false, schedule); got != "🔕 Reminders are **off**." {
		t.Errorf("ReminderStatus(false) = %q", got)
	}
	want := "🔔 Reminders are **on**. You'll get a DM at 09:00, 15:00 and 21:00 (America/New_York)."
	if got := ReminderStatus(true, schedule); got != want {
		t.Errorf("ReminderStatus(true) = %q, want %q", got, want)
	}
}
