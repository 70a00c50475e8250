package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
)

func TestWeekLines(t *testing.T) {
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	summary := tracker.WeeklySummary{WeekStart: monday, TotalGoal: 10, TotalDone: 7, Streak: 1}
	for i := range summary.Days {
		summary.Days[i] = tracker.Record{Date: monday.AddDate(0, 0, i)}
	}
	summary.Days[0].Goal, summary.Days[0].Done = 5, 5
	summary.Days[1].Goal, summary.Days[1].Done = 5, 2

	lines := strings.Split(strings.TrimSpace(WeekLines(summary, monday.AddDate(0, 0, 2))), "\n")
	want := []string{
		"`Mon 03/04` ✅ 🔘🔘🔘🔘🔘 (5/5)",
		"`Tue 03/05` 🟡 🔘🔘⚪⚪⚪ (2/5)",
		"`Wed 03/06` ▫️ 0 (no goal set)",
		"`Thu 03/07` ▫️ upcoming",
	}
	if len(lines) != 7 {
		t.Fatalf("WeekLines() produced %d lines, want 7", len(lines))
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}

	if got := WeekTotals(summary); got != "📊 Total: 7/10 (70.0%)\n🔥 Streak: 1 day" {
		t.Errorf("WeekTotals() = %q", got)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 days"},
		{1, "1 day"},
		{3, "3 days"},
	}
	for _, tt := range tests {
		if got := Plural(tt.n, "day"); got != tt.want {
			t.Errorf("Plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
