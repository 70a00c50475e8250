// Package dates normalises wall-clock instants into calendar days.
//
// A calendar day is represented as a time.Time at midnight UTC carrying the
// year/month/day of the user's local date, so AddDate never crosses a DST
// boundary and two days compare with Equal.
package dates

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

var weekdayOrder = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// DateAtLocation returns the calendar day of value as observed in location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	year, month, day := value.In(location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the week containing day.
func WeekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func Key(day time.Time) string {
	return day.Format(Layout)
}

func Parse(value string) (time.Time, error) {
	day, err := time.ParseInLocation(Layout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return day, nil
}

// Weekdays returns a fresh Monday..Sunday slice in calendar order.
func Weekdays() []time.Weekday {
	weekdays := weekdayOrder
	return weekdays[:]
}

// Clock yields "today" for a fixed timezone. Now defaults to time.Now.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

func NewClock(timezone string) (Clock, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return Clock{}, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return Clock{Location: location, Now: time.Now}, nil
}

func (c Clock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c Clock) Today() time.Time {
	return DateAtLocation(c.now(), c.Location)
}

// LocalNow is the current instant in the clock's timezone.
func (c Clock) LocalNow() time.Time {
	if c.Location == nil {
		return c.now()
	}
	return c.now().In(c.Location)
}
