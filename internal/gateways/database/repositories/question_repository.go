package repositories

import (
	"context"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type QuestionRepository interface {
	// Consume takes one question from the user's quota for day. It returns the
	// count after consuming and false when the quota was already used up.
	Consume(ctx context.Context, userID int64, day string, limit int) (int, bool, error)
}

type questionRepository struct {
	BaseRepository
}

func NewQuestionRepository(db *bun.DB) QuestionRepository {
	return &questionRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *questionRepository) Consume(ctx context.Context, userID int64, day string, limit int) (int, bool, error) {
	if limit <= 0 {
		return 0, false, nil
	}
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	quota := &models.QuestionQuota{UserID: userID, Day: day, Count: 1}
	var counts []int
	err := r.db.NewInsert().
		Model(quota).
		On("CONFLICT (user_id, day) DO UPDATE").
		Set("count = user_questions.count + 1").
		Where("user_questions.count < ?", limit).
		Returning("count").
		Scan(ctx, &counts)
	if err != nil {
		return 0, false, r.HandleError("consume", "question_quota", err)
	}
	if len(counts) == 0 {
		return limit, false, nil
	}
	return counts[0], true, nil
}
