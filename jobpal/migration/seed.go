package migration

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/jobpal/jobpal-bot/internal/domain/dates"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/repositories"
)

const (
	DefaultSeedUsers   = 23
	DefaultSeedDays    = 30
	DefaultSeedFirstID = 1001
	DefaultSeedGoal    = 5
)

type SeedOptions struct {
	Users   int
	Days    int
	FirstID int64
	Goal    int
}

func (o SeedOptions) withDefaults() SeedOptions {
	if o.Users <= 0 {
		o.Users = DefaultSeedUsers
	}
	if o.Days <= 0 {
		o.Days = DefaultSeedDays
	}
	if o.FirstID <= 0 {
		o.FirstID = DefaultSeedFirstID
	}
	if o.Goal <= 0 {
		o.Goal = DefaultSeedGoal
	}
	return o
}

// Seeder fills a development database with fake users and a history of
// daily records ending today.
type Seeder struct {
	users   repositories.UserRepository
	records repositories.DailyRecordRepository
	clock   dates.Clock
	rng     *rand.Rand
}

func NewSeeder(users repositories.UserRepository, records repositories.DailyRecordRepository, clock dates.Clock, rng *rand.Rand) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Seeder{users: users, records: records, clock: clock, rng: rng}
}

// Seed returns the number of daily records written.
func (s *Seeder) Seed(ctx context.Context, opts SeedOptions) (int, error) {
	opts = opts.withDefaults()
	today := s.clock.Today()

	written := 0
	for i := 0; i < opts.Users; i++ {
		userID := opts.FirstID + int64(i)
		if err := s.users.Touch(ctx, userID, fmt.Sprintf("seed_user_%d", userID)); err != nil {
			return written, fmt.Errorf("failed to seed user %d: %w", userID, err)
		}

		for offset := 0; offset < opts.Days; offset++ {
			record := &models.DailyRecord{
				UserID: userID,
				Day:    dates.Key(today.AddDate(0, 0, -offset)),
				Goal:   opts.Goal,
				Done:   s.rng.IntN(opts.Goal + 1),
			}
			if err := s.records.UpsertRecord(ctx, record); err != nil {
				return written, fmt.Errorf("failed to seed record %d/%s: %w", userID, record.Day, err)
			}
			written++
		}
	}

	logProgress(fmt.Sprintf("Seeded %d users with %d records", opts.Users, written))
	return written, nil
}
