package repositories

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
)

func TestBadgeAwardRepository_Award(t *testing.T) {
	repo := NewBadgeAwardRepository(newTestDB(t))
	ctx := context.Background()
	at := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

	created, err := repo.Award(ctx, &models.BadgeAward{UserID: testUser, Badge: "first-log", AwardedAt: at})
	if err != nil || !created {
		t.Fatalf("first Award() = %v, %v, want true", created, err)
	}
	created, err = repo.Award(ctx, &models.BadgeAward{UserID: testUser, Badge: "first-log", AwardedAt: at.Add(time.Hour)})
	if err != nil || created {
		t.Fatalf("second Award() = %v, %v, want false", created, err)
	}
	if _, err := repo.Award(ctx, &models.BadgeAward{UserID: testUser, Badge: "momentum", AwardedAt: at}); err != nil {
		t.Fatal(err)
	}

	awards, err := repo.ListAwards(ctx, testUser)
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	for _, award := range awards {
		keys = append(keys, award.Badge)
	}
	if !reflect.DeepEqual(keys, []string{"first-log", "momentum"}) {
		t.Errorf("ListAwards() = %v", keys)
	}
	if !awards[0].AwardedAt.Equal(at) {
		t.Errorf("first-log awarded at %v, want the original %v", awards[0].AwardedAt, at)
	}
}

func TestQuestionRepository_Consume(t *testing.T) {
	repo := NewQuestionRepository(newTestDB(t))
	ctx := context.Background()

	tests := []struct {
		day       string
		wantCount int
		wantOK    bool
	}{
		{"2024-03-06", 1, true},
		{"2024-03-06", 2, true},
		{"2024-03-06", 2, false},
		{"2024-03-07", 1, true},
	}
	for i, tt := range tests {
		count, ok, err := repo.Consume(ctx, testUser, tt.day, 2)
		if err != nil {
			t.Fatalf("Consume() #%d error = %v", i, err)
		}
		if count != tt.wantCount || ok != tt.wantOK {
			t.Errorf("Consume() #%d = %d, %v, want %d, %v", i, count, ok, tt.wantCount, tt.wantOK)
		}
	}
}

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.Touch(ctx, 1, "hunter"); err != nil {
		t.Fatal(err)
	}
	if err := repo.SetDisplayName(ctx, 1, "", "Offer Hunter"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Touch(ctx, 1, "hunter2"); err != nil {
		t.Fatal(err)
	}
	if err := repo.SetDisplayName(ctx, 2, "pal", "Pal"); err != nil {
		t.Fatal(err)
	}

	user, err := repo.GetUser(ctx, 1)
	if err != nil || user == nil {
		t.Fatalf("GetUser() = %+v, %v", user, err)
	}
	if user.Username != "hunter2" || user.DisplayName != "Offer Hunter" {
		t.Errorf("GetUser() = %+v, want renamed handle and kept display name", user)
	}

	byName, err := repo.GetByUsername(ctx, "PAL")
	if err != nil || byName == nil || byName.UserID != 2 {
		t.Errorf("GetByUsername(PAL) = %+v, %v", byName, err)
	}
	missing, err := repo.GetByUsername(ctx, "nobody")
	if err != nil || missing != nil {
		t.Errorf("GetByUsername(nobody) = %+v, %v", missing, err)
	}

	users, err := repo.GetUsers(ctx, []int64{1, 2, 3})
	if err != nil || len(users) != 2 {
		t.Errorf("GetUsers() = %d users, %v", len(users), err)
	}
	ids, err := repo.ListUserIDs(ctx)
	if err != nil || !reflect.DeepEqual(ids, []int64{1, 2}) {
		t.Errorf("ListUserIDs() = %v, %v", ids, err)
	}
}

func TestPreferenceRepository(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	prefs := NewPreferenceRepository(db)
	ctx := context.Background()

	for id, name := range map[int64]string{1: "a", 2: "b", 3: "c"} {
		if err := users.Touch(ctx, id, name); err != nil {
			t.Fatal(err)
		}
	}
	if err := prefs.SetRemindersEnabled(ctx, 2, false); err != nil {
		t.Fatal(err)
	}
	if err := prefs.SetRemindersEnabled(ctx, 3, true); err != nil {
		t.Fatal(err)
	}

	enabled, err := prefs.RemindersEnabled(ctx, 1)
	if err != nil || !enabled {
		t.Errorf("RemindersEnabled(no row) = %v, %v, want true", enabled, err)
	}
	enabled, err = prefs.RemindersEnabled(ctx, 2)
	if err != nil || enabled {
		t.Errorf("RemindersEnabled(opted out) = %v, %v, want false", enabled, err)
	}

	recipients, err := prefs.ListReminderRecipients(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var ids []int64
	for _, recipient := range recipients {
		ids = append(ids, recipient.UserID)
	}
	if !reflect.DeepEqual(ids, []int64{1, 3}) {
		t.Errorf("ListReminderRecipients() = %v, want [1 3]", ids)
	}
}

func TestPreferenceRepository_SetRemindersEnabled(t *testing.T) {
	prefs := NewPreferenceRepository(newTestDB(t))
	ctx := context.Background()

	steps := []struct {
		name    string
		enabled bool
	}{
		{name: "opt out without a row", enabled: false},
		{name: "opt back in", enabled: true},
		{name: "opt out again", enabled: false},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			if err := prefs.SetRemindersEnabled(ctx, 42, step.enabled); err != nil {
				t.Fatal(err)
			}
			got, err := prefs.RemindersEnabled(ctx, 42)
			if err != nil {
				t.Fatal(err)
			}
			if got != step.enabled {
				t.Errorf("RemindersEnabled() = %v, want %v", got, step.enabled)
			}
		})
	}
}

func TestBuddyRepository(t *testing.T) {
	repo := NewBuddyRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.SetBuddy(ctx, testUser, "first"); err != nil {
		t.Fatal(err)
	}
	if err := repo.SetBuddy(ctx, testUser, "second"); err != nil {
		t.Fatal(err)
	}
	buddy, err := repo.GetBuddy(ctx, testUser)
	if err != nil || buddy == nil || buddy.BuddyUsername != "second" {
		t.Errorf("GetBuddy() = %+v, %v, want the replacement", buddy, err)
	}

	removed, err := repo.RemoveBuddy(ctx, testUser)
	if err != nil || !removed {
		t.Errorf("RemoveBuddy() = %v, %v", removed, err)
	}
	removed, err = repo.RemoveBuddy(ctx, testUser)
	if err != nil || removed {
		t.Errorf("RemoveBuddy() again = %v, %v, want false", removed, err)
	}
	buddy, err = repo.GetBuddy(ctx, testUser)
	if err != nil || buddy != nil {
		t.Errorf("GetBuddy() after remove = %+v, %v", buddy, err)
	}
}
