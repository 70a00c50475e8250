package tracker

import "time"

// Record is the goal/done pair for one user on one calendar day.
type Record struct {
	UserID int64
	Date   time.Time
	Goal   int
	Done   int
}

// Met reports whether the day counts toward a streak.
func (r Record) Met() bool {
	return r.Goal > 0 && r.Done >= r.Goal
}

func (r Record) Overflow() int {
	return max(0, r.Done-r.Goal)
}

type WeeklySummary struct {
	UserID    int64
	WeekStart time.Time
	Days      [7]Record
	TotalGoal int
	TotalDone int
	// Streak counts consecutive met days backward from the last elapsed day of the week.
	Streak int
}

// Percent is TotalDone/TotalGoal rounded to one decimal place.
func (w WeeklySummary) Percent() float64 {
	if w.TotalGoal == 0 {
		return 0
	}
	return float64(int(float64(w.TotalDone)/float64(w.TotalGoal)*1000+0.5)) / 10
}
