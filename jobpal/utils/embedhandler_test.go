package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jobpal/jobpal-bot/internal/domain/errs"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantMsg  string
	}{
		{
			name:     "invalid argument keeps the reason",
			err:      fmt.Errorf("set goal: %w", errs.Invalid("goal must not be negative, got %d", -1)),
			wantType: UserError,
			wantMsg:  "Goal must not be negative, got -1",
		},
		{
			name:     "storage hides the cause",
			err:      errs.Storage("increment done", errors.New("pq: connection reset")),
			wantType: SystemError,
			wantMsg:  retryMessage,
		},
		{
			name:     "quota",
			err:      fmt.Errorf("%w: you've used your 2 questions for today", ErrQuotaExceeded),
			wantType: QuotaError,
			wantMsg:  "You've used your 2 questions for today",
		},
		{
			name:     "unknown",
			err:      errors.New("weird"),
			wantType: SystemError,
			wantMsg:  "Something unexpected happened. Please try again.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotMsg := ClassifyError(tt.err)
			if gotType != tt.wantType || gotMsg != tt.wantMsg {
				t.Errorf("ClassifyError() = %v, %q, want %v, %q", gotType, gotMsg, tt.wantType, tt.wantMsg)
			}
		})
	}
}
