package badges

import (
	"context"
	"fmt"
	"strings"
)

const (
	momentumTarget  = 20
	streakTarget    = 3
	streakLookback  = 90
	weekdaysInSweep = 5
)

// Badge is one catalogue entry. Implementations are stateless; everything
// they read comes from the snapshot.
type Badge interface {
	Key() string
	Name() string
	Description() string
	Qualifies(ctx context.Context, snap *Snapshot) (bool, error)
	Progress(ctx context.Context, snap *Snapshot) (string, error)
}

type firstLog struct{}

func (firstLog) Key() string         { return "first-log" }
func (firstLog) Name() string        { return "🚀 First Log!" }
func (firstLog) Description() string { return "Logged your very first application!" }

func (firstLog) Qualifies(ctx context.Context, snap *Snapshot) (bool, error) {
	total, err := snap.TotalDone(ctx)
	return total > 0, err
}

func (firstLog) Progress(ctx context.Context, snap *Snapshot) (string, error) {
	total, err := snap.TotalDone(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d / 1 Log", min(total, 1)), nil
}

type momentum struct{}

func (momentum) Key() string         { return "momentum" }
func (momentum) Name() string        { return "💼 Momentum Maker" }
func (momentum) Description() string { return "Logged 20+ total applications." }

func (momentum) Qualifies(ctx context.Context, snap *Snapshot) (bool, error) {
	total, err := snap.TotalDone(ctx)
	return total >= momentumTarget, err
}

func (momentum) Progress(ctx context.Context, snap *Snapshot) (string, error) {
	total, err := snap.TotalDone(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d / %d Apps", total, momentumTarget), nil
}

type lilFlame struct{}

func (lilFlame) Key() string         { return "streak-3" }
func (lilFlame) Name() string        { return "🔥 Lil' Flame" }
func (lilFlame) Description() string { return "Logged 3 days in a row. 🔥" }

func (lilFlame) Qualifies(ctx context.Context, snap *Snapshot) (bool, error) {
	streak, err := snap.Streak(ctx)
	return streak >= streakTarget, err
}

func (lilFlame) Progress(ctx context.Context, snap *Snapshot) (string, error) {
	streak, err := snap.Streak(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d / %d Day Streak", streak, streakTarget), nil
}

type tigerWeek struct{}

func (tigerWeek) Key() string         { return "tiger-week" }
func (tigerWeek) Name() string        { return "🐯 Tiger Week" }
func (tigerWeek) Description() string { return "Hit all your weekday goals!" }

func (tigerWeek) Qualifies(ctx context.Context, snap *Snapshot) (bool, error) {
	met, err := snap.WeekdaysMet(ctx)
	return met == weekdaysInSweep, err
}

func (tigerWeek) Progress(ctx context.Context, snap *Snapshot) (string, error) {
	met, err := snap.WeekdaysMet(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d / %d Weekdays Goal Met", met, weekdaysInSweep), nil
}

// Catalogue is evaluated in this order. Entries never depend on each other.
var Catalogue = []Badge{
	firstLog{},
	momentum{},
	lilFlame{},
	tigerWeek{},
}

// ByKey finds a catalogue entry by its stored key.
func ByKey(key string) (Badge, bool) {
	for _, badge := range Catalogue {
		if badge.Key() == key {
			return badge, true
		}
	}
	return nil, false
}

// ByName finds a catalogue entry by display name, ignoring the emoji prefix.
func ByName(name string) (Badge, bool) {
	for _, badge := range Catalogue {
		if name != "" && strings.HasSuffix(badge.Name(), name) {
			return badge, true
		}
	}
	return nil, false
}
