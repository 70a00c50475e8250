package badges

import (
	"context"
	"sync"
)

// Snapshot loads each aggregate of a user's history at most once, so every
// predicate in one evaluation sees the same numbers.
type Snapshot struct {
	userID  int64
	history History

	mu          sync.Mutex
	total       *int
	streak      *int
	weekdaysMet *int
}

func NewSnapshot(userID int64, history History) *Snapshot {
	return &Snapshot{userID: userID, history: history}
}

func (s *Snapshot) TotalDone(ctx context.Context) (int, error) {
	return s.load(&s.total, func() (int, error) {
		return s.history.TotalDone(ctx, s.userID)
	})
}

func (s *Snapshot) Streak(ctx context.Context) (int, error) {
	return s.load(&s.streak, func() (int, error) {
		return s.history.Streak(ctx, s.userID, streakLookback)
	})
}

func (s *Snapshot) WeekdaysMet(ctx context.Context) (int, error) {
	return s.load(&s.weekdaysMet, func() (int, error) {
		return s.history.WeekdaysMet(ctx, s.userID)
	})
}

// load memoises successful reads only; a failed read is retried by the next caller.
func (s *Snapshot) load(slot **int, fetch func() (int, error)) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if *slot != nil {
		return **slot, nil
	}
	value, err := fetch()
	if err != nil {
		return 0, err
	}
	*slot = &value
	return value, nil
}
