package leaderboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/errs"
)

type Window int

const (
	Today Window = iota
	WeekToDate
)

func ParseWindow(value string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "today", "day":
		return Today, nil
	case "week", "weekly", "week-to-date":
		return WeekToDate, nil
	}
	return Today, errs.Invalid("unknown leaderboard window %q", value)
}

func (w Window) String() string {
	if w == WeekToDate {
		return "week"
	}
	return "today"
}

func (w Window) Label() string {
	if w == WeekToDate {
		return "This Week"
	}
	return "Today"
}

// Range is the inclusive day range the window covers when today is today.
func (w Window) Range(today time.Time) (time.Time, time.Time) {
	if w == WeekToDate {
		return dates.WeekStart(today), today
	}
	return today, today
}

type Entry struct {
	Rank        int
	UserID      int64
	DisplayName string
	Anonymous   bool
	Total       int
}

// Medal is 🥇🥈🥉 for the podium and "N." below it.
func (e Entry) Medal() string {
	return Medal(e.Rank)
}

func Medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return fmt.Sprintf("%d.", rank)
}

type Board struct {
	Window  Window
	From    time.Time
	To      time.Time
	Entries []Entry
	// GrandTotal sums every user in the window, including those cut by the limit.
	GrandTotal int
}
