package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
)

// WeekLines renders one line per day of summary. Days after today are shown
// as upcoming.
func WeekLines(summary tracker.WeeklySummary, today time.Time) string {
	var b strings.Builder
	for _, day := range summary.Days {
		label := day.Date.Format("Mon 01/02")
		if day.Date.After(today) {
			fmt.Fprintf(&b, "`%s` ▫️ upcoming\n", label)
			continue
		}
		fmt.Fprintf(&b, "`%s` %s %s\n", label, StatusIcon(day.Done, day.Goal), ProgressBar(day.Done, day.Goal))
	}
	return b.String()
}

// WeekTotals is the "📊 Total" line with completion and streak.
func WeekTotals(summary tracker.WeeklySummary) string {
	return fmt.Sprintf("📊 Total: %d/%d (%.1f%%)\n🔥 Streak: %s",
		summary.TotalDone, summary.TotalGoal, summary.Percent(), Plural(summary.Streak, "day"))
}

func Plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func Ptr[T any](v T) *T {
	return &v
}
