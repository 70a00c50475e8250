package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
	"github.com/jobpal/jobpal-bot/jobpal/services/mock"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

var coachDay = time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

func TestCoachService_Ask(t *testing.T) {
	tests := []struct {
		name      string
		question  string
		setup     func(quota *mock.MockQuotaStore, llm *mock.MockCompleter)
		want      Answer
		wantCheck func(error) bool
	}{
		{
			name:      "blank question is rejected before the quota",
			question:  "   ",
			setup:     func(*mock.MockQuotaStore, *mock.MockCompleter) {},
			wantCheck: errs.IsInvalid,
		},
		{
			name:     "spent quota never reaches the LLM",
			question: "How do I follow up?",
			setup: func(quota *mock.MockQuotaStore, _ *mock.MockCompleter) {
				quota.EXPECT().Consume(gomock.Any(), int64(7), "2024-03-06", 2).Return(2, false, nil)
			},
			wantCheck: func(err error) bool { return errors.Is(err, utils.ErrQuotaExceeded) },
		},
		{
			name:     "storage failure",
			question: "How do I follow up?",
			setup: func(quota *mock.MockQuotaStore, _ *mock.MockCompleter) {
				quota.EXPECT().Consume(gomock.Any(), int64(7), "2024-03-06", 2).Return(0, false, errors.New("db down"))
			},
			wantCheck: errs.IsStorage,
		},
		{
			name:     "answer with remaining allowance",
			question: " How do I follow up? ",
			setup: func(quota *mock.MockQuotaStore, llm *mock.MockCompleter) {
				quota.EXPECT().Consume(gomock.Any(), int64(7), "2024-03-06", 2).Return(1, true, nil)
				llm.EXPECT().Complete(gomock.Any(), askPersona, "How do I follow up?").Return("Send it today, recruit.", nil)
			},
			want: Answer{Text: "Send it today, recruit.", Remaining: 1},
		},
		{
			name:     "LLM failure still answers",
			question: "Help",
			setup: func(quota *mock.MockQuotaStore, llm *mock.MockCompleter) {
				quota.EXPECT().Consume(gomock.Any(), int64(7), "2024-03-06", 2).Return(2, true, nil)
				llm.EXPECT().Complete(gomock.Any(), askPersona, "Help").Return("", errors.New("timeout"))
			},
			want: Answer{Text: askFailureReply, Remaining: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			quota := mock.NewMockQuotaStore(ctrl)
			llm := mock.NewMockCompleter(ctrl)
			trk := mock.NewMockService(ctrl)
			trk.EXPECT().Today().Return(coachDay).AnyTimes()
			tt.setup(quota, llm)

			got, err := NewCoachService(llm, quota, trk, 2).Ask(context.Background(), 7, tt.question)
			if tt.wantCheck != nil {
				if err == nil || !tt.wantCheck(err) {
					t.Fatalf("Ask() error = %v, want a matching error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Ask() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Ask() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCoachService_WeeklyCommentary(t *testing.T) {
	ctrl := gomock.NewController(t)
	llm := mock.NewMockCompleter(ctrl)

	summary := tracker.WeeklySummary{UserID: 7, WeekStart: coachDay.AddDate(0, 0, -2), TotalGoal: 10, TotalDone: 5}
	for i := range summary.Days {
		summary.Days[i] = tracker.Record{UserID: 7, Date: summary.WeekStart.AddDate(0, 0, i)}
	}

	var prompt string
	llm.EXPECT().Complete(gomock.Any(), coachPersona, gomock.Any()).DoAndReturn(
		func(_ context.Context, _, p string) (string, error) {
			prompt = p
			return "", errors.New("offline")
		})

	got := NewCoachService(llm, nil, nil, 2).WeeklyCommentary(context.Background(), summary)
	if got != coachFeedbackFallback {
		t.Errorf("WeeklyCommentary() = %q, want fallback", got)
	}
	for _, want := range []string{"Total Goal: 10", "Total Applied: 5", "Completion Rate: 50.0%", "Monday: Goal 0 | Applied 0"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt is missing %q:\n%s", want, prompt)
		}
	}
}
