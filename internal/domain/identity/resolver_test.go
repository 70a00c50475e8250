package identity

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/jobpal/jobpal-bot/internal/domain/errs"
	"github.com/jobpal/jobpal-bot/internal/domain/identity/mock"
	"github.com/jobpal/jobpal-bot/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

func newResolver(t *testing.T) (*resolver, *mock.MockRepository) {
	repo := mock.NewMockRepository(gomock.NewController(t))
	return NewResolver(repo), repo
}

func Test_resolver_DisplayName_Caches(t *testing.T) {
	r, repo := newResolver(t)
	repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{UserID: 1, DisplayName: "Offer Hunter"}, nil).Times(1)

	for i := 0; i < 3; i++ {
		name, ok, err := r.DisplayName(context.Background(), 1)
		if err != nil || !ok || name != "Offer Hunter" {
			t.Fatalf("DisplayName() = %q, %v, %v", name, ok, err)
		}
	}
}

func Test_resolver_DisplayName_Expires(t *testing.T) {
	r, repo := newResolver(t)
	now := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }
	repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(nil, nil).Times(2)

	if _, ok, _ := r.DisplayName(context.Background(), 1); ok {
		t.Fatal("DisplayName() reported a name for an unknown user")
	}
	now = now.Add(cacheExpiry + time.Second)
	if _, ok, _ := r.DisplayName(context.Background(), 1); ok {
		t.Fatal("DisplayName() reported a name for an unknown user")
	}
}

func Test_resolver_DisplayName_StorageError(t *testing.T) {
	r, repo := newResolver(t)
	// Failures are not cached, so GreetingName looks the user up again.
	repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(nil, errors.New("timeout")).Times(2)

	if _, _, err := r.DisplayName(context.Background(), 1); !errs.IsStorage(err) {
		t.Errorf("DisplayName() error = %v, want storage error", err)
	}
	if got := r.GreetingName(context.Background(), 1, "friend"); got != "friend" {
		t.Errorf("GreetingName() = %q, want fallback", got)
	}
}

func Test_resolver_DisplayNames(t *testing.T) {
	r, repo := newResolver(t)
	repo.EXPECT().GetUser(gomock.Any(), int64(1)).Return(&models.User{UserID: 1, DisplayName: "One"}, nil)
	if _, _, err := r.DisplayName(context.Background(), 1); err != nil {
		t.Fatal(err)
	}

	// Only the uncached ids reach the repository.
	repo.EXPECT().GetUsers(gomock.Any(), []int64{2, 3}).Return([]*models.User{
		{UserID: 2, DisplayName: ""},
		{UserID: 3, DisplayName: " Three "},
	}, nil)
	got, err := r.DisplayNames(context.Background(), []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("DisplayNames() error = %v", err)
	}
	want := map[int64]string{1: "One", 3: "Three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DisplayNames() = %v, want %v", got, want)
	}

	got, err = r.DisplayNames(context.Background(), []int64{2, 3})
	if err != nil {
		t.Fatalf("DisplayNames() error = %v", err)
	}
	if !reflect.DeepEqual(got, map[int64]string{3: "Three"}) {
		t.Errorf("DisplayNames() cached = %v", got)
	}
}

func Test_resolver_SetDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "  Resume Wizard  "},
		{name: "empty", input: "   ", wantErr: true},
		{name: "too long", input: strings.Repeat("a", MaxDisplayLength+1), wantErr: true},
		{name: "multibyte at limit", input: strings.Repeat("🦙", MaxDisplayLength)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, repo := newResolver(t)
			if !tt.wantErr {
				repo.EXPECT().SetDisplayName(gomock.Any(), int64(5), "pal", strings.TrimSpace(tt.input)).Return(nil)
			}
			err := r.SetDisplayName(context.Background(), 5, "@Pal", tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetDisplayName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errs.IsInvalid(err) {
				t.Errorf("SetDisplayName() error = %v, want invalid argument", err)
			}
		})
	}
}

func Test_resolver_SetDisplayName_InvalidatesCache(t *testing.T) {
	r, repo := newResolver(t)
	gomock.InOrder(
		repo.EXPECT().GetUser(gomock.Any(), int64(5)).Return(&models.User{UserID: 5}, nil),
		repo.EXPECT().SetDisplayName(gomock.Any(), int64(5), "pal", "New Name").Return(nil),
		repo.EXPECT().GetUser(gomock.Any(), int64(5)).Return(&models.User{UserID: 5, DisplayName: "New Name"}, nil),
	)

	if _, ok, _ := r.DisplayName(context.Background(), 5); ok {
		t.Fatal("unexpected name before SetDisplayName")
	}
	if err := r.SetDisplayName(context.Background(), 5, "pal", "New Name"); err != nil {
		t.Fatal(err)
	}
	if got := r.GreetingName(context.Background(), 5, "friend"); got != "New Name" {
		t.Errorf("GreetingName() = %q, want New Name", got)
	}
}

func Test_resolver_Remember(t *testing.T) {
	r, repo := newResolver(t)
	repo.EXPECT().Touch(gomock.Any(), int64(9), "job.seeker").Return(nil).Times(1)
	repo.EXPECT().Touch(gomock.Any(), int64(9), "renamed").Return(nil).Times(1)

	for _, handle := range []string{"Job.Seeker", "job.seeker", "@job.seeker", "renamed", ""} {
		if err := r.Remember(context.Background(), 9, handle); err != nil {
			t.Fatalf("Remember(%q) error = %v", handle, err)
		}
	}
}

func Test_resolver_ResolveUsername(t *testing.T) {
	r, repo := newResolver(t)
	repo.EXPECT().GetByUsername(gomock.Any(), "buddy").Return(&models.User{UserID: 77, Username: "buddy"}, nil)
	repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	id, ok, err := r.ResolveUsername(context.Background(), "@Buddy")
	if err != nil || !ok || id != 77 {
		t.Errorf("ResolveUsername(@Buddy) = %d, %v, %v", id, ok, err)
	}
	if _, ok, err := r.ResolveUsername(context.Background(), "ghost"); ok || err != nil {
		t.Errorf("ResolveUsername(ghost) = %v, %v", ok, err)
	}
	if _, ok, err := r.ResolveUsername(context.Background(), " "); ok || err != nil {
		t.Errorf("ResolveUsername(blank) = %v, %v", ok, err)
	}
}
