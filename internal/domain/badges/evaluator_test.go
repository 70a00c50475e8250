package badges

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/badges/mock"
	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

const userID int64 = 7

var awardedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newEvaluator(t *testing.T) (*evaluator, *mock.MockRepository, *mock.MockHistory) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	history := mock.NewMockHistory(ctrl)
	e := NewEvaluator(repo, history)
	e.now = func() time.Time { return awardedAt }
	return e, repo, history
}

func keys(list []Badge) []string {
	out := make([]string, 0, len(list))
	for _, badge := range list {
		out = append(out, badge.Key())
	}
	return out
}

func Test_evaluator_CheckAll(t *testing.T) {
	tests := []struct {
		name    string
		awarded []*models.BadgeAward
		setup   func(repo *mock.MockRepository, history *mock.MockHistory)
		want    []string
	}{
		{
			name: "awards every qualifying badge in catalogue order",
			setup: func(repo *mock.MockRepository, history *mock.MockHistory) {
				history.EXPECT().TotalDone(gomock.Any(), userID).Return(25, nil).Times(1)
				history.EXPECT().Streak(gomock.Any(), userID, 90).Return(1, nil)
				history.EXPECT().WeekdaysMet(gomock.Any(), userID).Return(2, nil)
				repo.EXPECT().Award(gomock.Any(), &models.BadgeAward{UserID: userID, Badge: "first-log", AwardedAt: awardedAt}).Return(true, nil)
				repo.EXPECT().Award(gomock.Any(), &models.BadgeAward{UserID: userID, Badge: "momentum", AwardedAt: awardedAt}).Return(true, nil)
			},
			want: []string{"first-log", "momentum"},
		},
		{
			name:    "already awarded badges are skipped",
			awarded: []*models.BadgeAward{{UserID: userID, Badge: "first-log"}, {UserID: userID, Badge: "momentum"}},
			setup: func(repo *mock.MockRepository, history *mock.MockHistory) {
				history.EXPECT().Streak(gomock.Any(), userID, 90).Return(3, nil)
				history.EXPECT().WeekdaysMet(gomock.Any(), userID).Return(5, nil)
				repo.EXPECT().Award(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
			},
			want: []string{"streak-3", "tiger-week"},
		},
		{
			name: "concurrent award already stored is not reported",
			awarded: []*models.BadgeAward{
				{Badge: "momentum"}, {Badge: "streak-3"}, {Badge: "tiger-week"},
			},
			setup: func(repo *mock.MockRepository, history *mock.MockHistory) {
				history.EXPECT().TotalDone(gomock.Any(), userID).Return(1, nil)
				repo.EXPECT().Award(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			want: nil,
		},
		{
			name: "failing predicate does not stop the others",
			setup: func(repo *mock.MockRepository, history *mock.MockHistory) {
				history.EXPECT().TotalDone(gomock.Any(), userID).Return(0, errors.New("timeout")).Times(2)
				history.EXPECT().Streak(gomock.Any(), userID, 90).Return(4, nil)
				history.EXPECT().WeekdaysMet(gomock.Any(), userID).Return(0, nil)
				repo.EXPECT().Award(gomock.Any(), &models.BadgeAward{UserID: userID, Badge: "streak-3", AwardedAt: awardedAt}).Return(true, nil)
			},
			want: []string{"streak-3"},
		},
		{
			name: "failed award write is skipped",
			awarded: []*models.BadgeAward{
				{Badge: "momentum"}, {Badge: "streak-3"}, {Badge: "tiger-week"},
			},
			setup: func(repo *mock.MockRepository, history *mock.MockHistory) {
				history.EXPECT().TotalDone(gomock.Any(), userID).Return(3, nil)
				repo.EXPECT().Award(gomock.Any(), gomock.Any()).Return(false, errors.New("deadlock"))
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, repo, history := newEvaluator(t)
			repo.EXPECT().ListAwards(gomock.Any(), userID).Return(tt.awarded, nil)
			tt.setup(repo, history)

			got, err := e.CheckAll(context.Background(), userID)
			if err != nil {
				t.Fatalf("CheckAll() error = %v", err)
			}
			if gotKeys := keys(got); !reflect.DeepEqual(gotKeys, tt.want) && !(len(gotKeys) == 0 && len(tt.want) == 0) {
				t.Errorf("CheckAll() = %v, want %v", gotKeys, tt.want)
			}
		})
	}
}

func Test_evaluator_CheckAll_StorageUnavailable(t *testing.T) {
	e, repo, _ := newEvaluator(t)
	repo.EXPECT().ListAwards(gomock.Any(), userID).Return(nil, errors.New("no route to host"))

	if _, err := e.CheckAll(context.Background(), userID); !errors.Is(err, errs.ErrStorageUnavailable) {
		t.Errorf("CheckAll() error = %v, want ErrStorageUnavailable", err)
	}
}

func Test_evaluator_Summary(t *testing.T) {
	e, repo, history := newEvaluator(t)
	repo.EXPECT().ListAwards(gomock.Any(), userID).Return([]*models.BadgeAward{
		{UserID: userID, Badge: "first-log", AwardedAt: awardedAt},
	}, nil)
	history.EXPECT().TotalDone(gomock.Any(), userID).Return(14, nil).Times(1)
	history.EXPECT().Streak(gomock.Any(), userID, 90).Return(2, nil)
	history.EXPECT().WeekdaysMet(gomock.Any(), userID).Return(3, nil)

	got, err := e.Summary(context.Background(), userID)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	want := []Status{
		{Badge: firstLog{}, Earned: true, AwardedAt: awardedAt},
		{Badge: momentum{}, Progress: "14 / 20 Apps"},
		{Badge: lilFlame{}, Progress: "2 / 3 Day Streak"},
		{Badge: tigerWeek{}, Progress: "3 / 5 Weekdays Goal Met"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summary() = %+v, want %+v", got, want)
	}
}

func Test_evaluator_Summary_EarnedBadgesSkipProgress(t *testing.T) {
	e, repo, _ := newEvaluator(t)
	var all []*models.BadgeAward
	for _, badge := range Catalogue {
		all = append(all, &models.BadgeAward{UserID: userID, Badge: badge.Key(), AwardedAt: awardedAt})
	}
	repo.EXPECT().ListAwards(gomock.Any(), userID).Return(all, nil)

	got, err := e.Summary(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	for _, status := range got {
		if !status.Earned || status.Progress != "" {
			t.Errorf("status %s = %+v, want earned without progress", status.Badge.Key(), status)
		}
	}
}

func TestFirstLogProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistory(ctrl)
	history.EXPECT().TotalDone(gomock.Any(), userID).Return(12, nil)

	got, err := firstLog{}.Progress(context.Background(), NewSnapshot(userID, history))
	if err != nil {
		t.Fatal(err)
	}
	if got != "1 / 1 Log" {
		t.Errorf("Progress() = %q, want %q", got, "1 / 1 Log")
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"🔥 Lil' Flame", "streak-3", true},
		{"Tiger Week", "tiger-week", true},
		{"", "", false},
		{"Unknown", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badge, ok := ByName(tt.name)
			if ok != tt.ok {
				t.Fatalf("ByName() ok = %v, want %v", ok, tt.ok)
			}
			if ok && badge.Key() != tt.want {
				t.Errorf("ByName() = %s, want %s", badge.Key(), tt.want)
			}
		})
	}
}
