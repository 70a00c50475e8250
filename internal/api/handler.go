// Package api serves a read-only JSON view of JobPal's data for dashboards
// and uptime checks.
package api

import (
	"context"

	"github.com/jobpal/jobpal-bot/internal/domain/badges"
	"github.com/jobpal/jobpal-bot/internal/domain/leaderboard"
	"github.com/jobpal/jobpal-bot/internal/domain/tracker"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// NameLookup reports a user's chosen display name and whether one is set.
type NameLookup interface {
	DisplayName(ctx context.Context, userID int64) (string, bool, error)
}

type Deps struct {
	DB      Pinger
	Ranker  leaderboard.Ranker
	Tracker tracker.Service
	Badges  badges.Evaluator
	// Names gates the per-user routes: users without a display name are
	// anonymous on the leaderboard and get 404 here too.
	Names NameLookup
	// Limit caps leaderboard entries; 0 returns everyone.
	Limit int
}

type Handler struct {
	db      Pinger
	ranker  leaderboard.Ranker
	tracker tracker.Service
	badges  badges.Evaluator
	names   NameLookup
	limit   int
}

func NewHandler(deps Deps) *Handler {
	return &Handler{
		db:      deps.DB,
		ranker:  deps.Ranker,
		tracker: deps.Tracker,
		badges:  deps.Badges,
		names:   deps.Names,
		limit:   deps.Limit,
	}
}
