package leaderboard

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/domain/errs"
)

type Ranker interface {
	Rank(ctx context.Context, window Window, limit int) (Board, error)
}

type ranker struct {
	repository Repository
	names      Names
	clock      dates.Clock
}

func NewRanker(repository Repository, names Names, clock dates.Clock) *ranker {
	return &ranker{
		repository: repository,
		names:      names,
		clock:      clock,
	}
}

// Rank orders users by their summed done in the window. Users with a zero
// total are left out, ties go to whoever logged first in the window and a
// limit <= 0 keeps every entry.
func (r *ranker) Rank(ctx context.Context, window Window, limit int) (Board, error) {
	from, to := window.Range(r.clock.Today())
	board := Board{Window: window, From: from, To: to}

	totals, err := r.repository.WindowTotals(ctx, dates.Key(from), dates.Key(to))
	if err != nil {
		return board, errs.Storage("sum leaderboard totals", err)
	}

	ranked := totals[:0:0]
	for _, total := range totals {
		board.GrandTotal += total.Total
		if total.Total > 0 {
			ranked = append(ranked, total)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].FirstID < ranked[j].FirstID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ids := make([]int64, 0, len(ranked))
	for _, total := range ranked {
		ids = append(ids, total.UserID)
	}
	names, err := r.names.DisplayNames(ctx, ids)
	if err != nil {
		slog.Warn("Falling back to placeholder names",
			slog.String("type", "sys"),
			slog.Any("error", err))
		names = nil
	}

	board.Entries = make([]Entry, 0, len(ranked))
	for i, total := range ranked {
		entry := Entry{Rank: i + 1, UserID: total.UserID, Total: total.Total}
		if name := strings.TrimSpace(names[total.UserID]); name != "" {
			entry.DisplayName = name
		} else {
			entry.DisplayName = Pseudonym(total.UserID)
			entry.Anonymous = true
		}
		board.Entries = append(board.Entries, entry)
	}
	return board, nil
}
