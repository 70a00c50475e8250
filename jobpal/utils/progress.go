package utils

import (
	"fmt"
	"strings"
)

// Bars longer than this are scaled down to fit an embed line.
const maxBarCells = 20

// barCells returns how many filled and empty cells to draw for done/goal.
func barCells(done, goal int) (int, int) {
	filled := min(done, goal)
	empty := max(0, goal-done)
	if goal > maxBarCells {
		filled = filled * maxBarCells / goal
		empty = maxBarCells - filled
	}
	return filled, empty
}

// ProgressBar renders "🔘🔘⚪⚪ (2/4)", with " +N" once done passes goal.
func ProgressBar(done, goal int) string {
	if goal <= 0 {
		return fmt.Sprintf("%d (no goal set)", done)
	}
	filled, empty := barCells(done, goal)
	bar := strings.Repeat("🔘", filled) + strings.Repeat("⚪", empty)
	if overflow := done - goal; overflow > 0 {
		return fmt.Sprintf("%s (%d/%d) +%d", bar, done, goal, overflow)
	}
	return fmt.Sprintf("%s (%d/%d)", bar, done, goal)
}

// CheckBar is the log panel variant: "✅✅⬜️" with " +N ✨" on overflow.
func CheckBar(done, goal int) string {
	filled, empty := barCells(done, goal)
	bar := strings.Repeat("✅", filled) + strings.Repeat("⬜️", empty)
	if done > goal {
		bar += fmt.Sprintf(" +%d ✨", done-goal)
	}
	return bar
}

// StatusIcon is the per-day marker used by the weekly summary.
func StatusIcon(done, goal int) string {
	switch {
	case goal > 0 && done >= goal:
		return "✅"
	case done > 0:
		return "🟡"
	case goal > 0:
		return "❌"
	default:
		return "▫️"
	}
}
