package dates

import (
	"reflect"
	"testing"
	"time"
)

func TestDateAtLocation(t *testing.T) {
	toronto, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name  string
		value time.Time
		loc   *time.Location
		want  string
	}{
		{"utc midday", time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC), time.UTC, "2024-03-04"},
		{"late evening toronto is still same local day", time.Date(2024, 3, 5, 2, 30, 0, 0, time.UTC), toronto, "2024-03-04"},
		{"nil location falls back to utc", time.Date(2024, 3, 5, 2, 30, 0, 0, time.UTC), nil, "2024-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(DateAtLocation(tt.value, tt.loc)); got != tt.want {
				t.Errorf("DateAtLocation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		day  string
		want string
	}{
		{"2024-03-04", "2024-03-04"}, // Monday
		{"2024-03-06", "2024-03-04"},
		{"2024-03-10", "2024-03-04"}, // Sunday
		{"2024-03-11", "2024-03-11"},
	}

	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			day, err := Parse(tt.day)
			if err != nil {
				t.Fatal(err)
			}
			if got := Key(WeekStart(day)); got != tt.want {
				t.Errorf("WeekStart(%s) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("04/03/2024"); err == nil {
		t.Error("Parse() expected error for non ISO date")
	}
}

func TestWeekdays_ReturnsCopy(t *testing.T) {
	want := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
	}

	first := Weekdays()
	first[0] = time.Sunday

	if got := Weekdays(); !reflect.DeepEqual(got, want) {
		t.Errorf("Weekdays() = %v after a caller wrote to an earlier result, want %v", got, want)
	}
}
