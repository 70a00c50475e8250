package utils

import "testing"

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, goal int
		want       string
	}{
		{2, 4, "🔘🔘⚪⚪ (2/4)"},
		{0, 3, "⚪⚪⚪ (0/3)"},
		{5, 3, "🔘🔘🔘 (5/3) +2"},
		{3, 0, "3 (no goal set)"},
		{0, -1, "0 (no goal set)"},
		{20, 40, "🔘🔘🔘🔘🔘🔘🔘🔘🔘🔘⚪⚪⚪⚪⚪⚪⚪⚪⚪⚪ (20/40)"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.goal); got != tt.want {
			t.Errorf("ProgressBar(%d, %d) = %q, want %q", tt.done, tt.goal, got, tt.want)
		}
	}
}

func TestCheckBar(t *testing.T) {
	tests := []struct {
		done, goal int
		want       string
	}{
		{1, 3, "✅⬜️⬜️"},
		{3, 3, "✅✅✅"},
		{4, 2, "✅✅ +2 ✨"},
		{2, 0, " +2 ✨"},
		{0, 0, ""},
	}
	for _, tt := range tests {
		if got := CheckBar(tt.done, tt.goal); got != tt.want {
			t.Errorf("CheckBar(%d, %d) = %q, want %q", tt.done, tt.goal, got, tt.want)
		}
	}
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		done, goal int
		want       string
	}{
		{5, 5, "✅"},
		{2, 5, "🟡"},
		{0, 5, "❌"},
		{0, 0, "▫️"},
		{1, 0, "🟡"},
	}
	for _, tt := range tests {
		if got := StatusIcon(tt.done, tt.goal); got != tt.want {
			t.Errorf("StatusIcon(%d, %d) = %q, want %q", tt.done, tt.goal, got, tt.want)
		}
	}
}
