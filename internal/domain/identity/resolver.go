// Package identity maps platform users to the names shown on boards and in DMs.
package identity

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru"
	"github.com/jobpal/jobpal-bot/internal/domain/errs"
)

const (
	cacheSize        = 1024
	cacheExpiry      = 10 * time.Minute
	MaxDisplayLength = 32
)

type cachedName struct {
	name     string
	storedAt time.Time
}

type Resolver interface {
	// DisplayName reports the chosen name and whether one is set.
	DisplayName(ctx context.Context, userID int64) (string, bool, error)
	DisplayNames(ctx context.Context, userIDs []int64) (map[int64]string, error)
	SetDisplayName(ctx context.Context, userID int64, username, name string) error
	Remember(ctx context.Context, userID int64, username string) error
	ResolveUsername(ctx context.Context, username string) (int64, bool, error)
	GreetingName(ctx context.Context, userID int64, fallback string) string
}

type resolver struct {
	repository Repository
	cache      *lru.Cache
	now        func() time.Time

	// handles skips Touch writes for handles already stored this process.
	handles sync.Map
}

func NewResolver(repository Repository) *resolver {
	cache, _ := lru.New(cacheSize)
	return &resolver{
		repository: repository,
		cache:      cache,
		now:        time.Now,
	}
}

func (r *resolver) cached(userID int64) (string, bool) {
	value, ok := r.cache.Get(userID)
	if !ok {
		return "", false
	}
	entry := value.(cachedName)
	if r.now().Sub(entry.storedAt) > cacheExpiry {
		r.cache.Remove(userID)
		return "", false
	}
	return entry.name, true
}

func (r *resolver) store(userID int64, name string) {
	r.cache.Add(userID, cachedName{name: name, storedAt: r.now()})
}

func (r *resolver) DisplayName(ctx context.Context, userID int64) (string, bool, error) {
	if name, ok := r.cached(userID); ok {
		return name, name != "", nil
	}
	user, err := r.repository.GetUser(ctx, userID)
	if err != nil {
		return "", false, errs.Storage("get user", err)
	}
	name := ""
	if user != nil {
		name = strings.TrimSpace(user.DisplayName)
	}
	r.store(userID, name)
	return name, name != "", nil
}

// DisplayNames returns chosen names for the given users. Users without one
// are absent from the map.
func (r *resolver) DisplayNames(ctx context.Context, userIDs []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(userIDs))
	var missing []int64
	for _, id := range userIDs {
		name, ok := r.cached(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		if name != "" {
			names[id] = name
		}
	}
	if len(missing) == 0 {
		return names, nil
	}

	users, err := r.repository.GetUsers(ctx, missing)
	if err != nil {
		return nil, errs.Storage("get users", err)
	}
	found := make(map[int64]string, len(users))
	for _, user := range users {
		found[user.UserID] = strings.TrimSpace(user.DisplayName)
	}
	for _, id := range missing {
		name := found[id]
		r.store(id, name)
		if name != "" {
			names[id] = name
		}
	}
	return names, nil
}

func (r *resolver) SetDisplayName(ctx context.Context, userID int64, username, name string) error {
	name = strings.TrimSpace(name)
	if length := utf8.RuneCountInString(name); length == 0 || length > MaxDisplayLength {
		return errs.Invalid("display name must be 1-%d characters", MaxDisplayLength)
	}
	if err := r.repository.SetDisplayName(ctx, userID, NormalizeUsername(username), name); err != nil {
		return errs.Storage("set display name", err)
	}
	r.cache.Remove(userID)
	return nil
}

// Remember stores the user's current handle so buddies can find them by it.
func (r *resolver) Remember(ctx context.Context, userID int64, username string) error {
	username = NormalizeUsername(username)
	if username == "" {
		return nil
	}
	if previous, ok := r.handles.Load(userID); ok && previous.(string) == username {
		return nil
	}
	if err := r.repository.Touch(ctx, userID, username); err != nil {
		return errs.Storage("touch user", err)
	}
	r.handles.Store(userID, username)
	return nil
}

func (r *resolver) ResolveUsername(ctx context.Context, username string) (int64, bool, error) {
	username = NormalizeUsername(username)
	if username == "" {
		return 0, false, nil
	}
	user, err := r.repository.GetByUsername(ctx, username)
	if err != nil {
		return 0, false, errs.Storage("get user by username", err)
	}
	if user == nil {
		return 0, false, nil
	}
	return user.UserID, true, nil
}

// GreetingName is the chosen name, or fallback when none is set or the lookup fails.
func (r *resolver) GreetingName(ctx context.Context, userID int64, fallback string) string {
	name, ok, err := r.DisplayName(ctx, userID)
	if err != nil || !ok {
		return fallback
	}
	return name
}

// NormalizeUsername lowercases a handle and strips a leading @.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
}
