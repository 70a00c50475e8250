package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
	"github.com/jobpal/jobpal-bot/jobpal/config"
	"github.com/jobpal/jobpal-bot/jobpal/utils"
)

const maxQuestionLength = 1000

type Answer struct {
	Text      string
	Remaining int
}

// CoachService produces LLM commentary for /ask, /coachsummary and
// /dailyreminder.
type CoachService struct {
	llm     Completer
	quota   QuotaStore
	tracker tracker.Service
	limit   int
}

func NewCoachService(llm Completer, quota QuotaStore, tracker tracker.Service, questionsPerDay int) *CoachService {
	return &CoachService{
		llm:     llm,
		quota:   quota,
		tracker: tracker,
		limit:   questionsPerDay,
	}
}

// Ask answers a career question. The question counts against the daily quota
// even if the LLM call then fails.
func (c *CoachService) Ask(ctx context.Context, userID int64, question string) (Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Answer{}, errs.Invalid("ask me an actual question, recruit")
	}
	if len(question) > maxQuestionLength {
		return Answer{}, errs.Invalid("keep your question under %d characters", maxQuestionLength)
	}

	day := dates.Key(c.tracker.Today())
	count, ok, err := c.quota.Consume(ctx, userID, day, c.limit)
	if err != nil {
		return Answer{}, errs.Storage("consume question quota", err)
	}
	if !ok {
		return Answer{}, fmt.Errorf("%w: hold up, soldier! You've used all %d questions for today. Try again tomorrow", utils.ErrQuotaExceeded, c.limit)
	}

	text, err := c.llm.Complete(ctx, askPersona, question)
	if err != nil {
		slog.Error("Coach answer failed",
			slog.String("type", "sys"),
			slog.Int64("user_id", userID),
			slog.Any("error", err))
		text = askFailureReply
	}
	return Answer{Text: text, Remaining: max(c.limit-count, 0)}, nil
}

// WeeklyCommentary is blunt feedback on the current week.
func (c *CoachService) WeeklyCommentary(ctx context.Context, summary tracker.WeeklySummary) string {
	return CompleteOr(ctx, c.llm, coachPersona, weeklyCoachPrompt(summary), coachFeedbackFallback)
}

func (c *CoachService) DailyNudge(ctx context.Context, name string, record tracker.Record) string {
	return CompleteOr(ctx, c.llm, coachPersona, dailyNudgePrompt(name, record), config.FallbackCoach)
}
