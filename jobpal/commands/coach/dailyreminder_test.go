package coach

import (
	"testing"

	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
)

func TestTodayLine(t *testing.T) {
	tests := []struct {
		name   string
		record tracker.Record
		want   string
	}{
		{
			name:   "no goal",
			record: tracker.Record{Done: 1},
			want:   "🎯 No goal set yet, 1 application logged. Try `/setgoal`.",
		},
		{
			name:   "partway",
			record: tracker.Record{Goal: 4, Done: 2},
			want:   "🎯 Goal: 4 applications\n🔘🔘⚪⚪ (2/4)",
		},
		{
			name:   "overflow",
			record: tracker.Record{Goal: 1, Done: 3},
			want:   "🎯 Goal: 1 application\n🔘 (3/1) +2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TodayLine(tt.record); got != tt.want {
				t.Errorf("TodayLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
