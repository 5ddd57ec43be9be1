package state

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/verygoodsoftwarenotvirus/todo/internal/admin/storage"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

// StatusFetcher fetches the caller's authentication standing from the
// service.
type StatusFetcher interface {
	Status(ctx context.Context) (*types.UserStatus, error)
}

// UserStatusStore tracks the session's view of who the server says we are.
// The cached copy makes the console usable immediately on startup; Refresh
// re-validates against the service and demotes to unauthenticated when the
// session has lapsed.
type UserStatusStore struct {
	cell    *Cell[types.UserStatus]
	cache   *storage.Cache
	fetcher StatusFetcher
	logger  *slog.Logger
}

// NewUserStatusStore creates a store seeded with an unauthenticated status.
func NewUserStatusStore(cache *storage.Cache, fetcher StatusFetcher, logger *slog.Logger) *UserStatusStore {
	return &UserStatusStore{
		cell:    NewCell(types.UserStatus{}),
		cache:   cache,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Load seeds the store from the local cache. A missing or unreadable cache
// entry leaves the store unauthenticated rather than failing startup.
func (s *UserStatusStore) Load(ctx context.Context) {
	raw, err := s.cache.Get(ctx, storage.KeyUserStatus)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to read cached user status", "error", err)
		}
		return
	}

	var status types.UserStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		s.logger.Warn("discarding corrupt cached user status", "error", err)
		return
	}

	s.cell.Set(status)
}

// Refresh re-validates the status against the service and writes the result
// through to the cache. Any failure demotes the session to unauthenticated:
// a stale admin view is worse than a login prompt.
func (s *UserStatusStore) Refresh(ctx context.Context) types.UserStatus {
	status := types.UserStatus{}

	fetched, err := s.fetcher.Status(ctx)
	if err != nil {
		s.logger.Warn("status refresh failed, treating session as unauthenticated", "error", err)
	} else {
		status = *fetched
	}

	s.cell.Set(status)
	s.persist(ctx, status)

	return status
}

// Clear resets the store to unauthenticated and drops the cached copy.
// Called on logout.
func (s *UserStatusStore) Clear(ctx context.Context) {
	s.cell.Set(types.UserStatus{})

	if err := s.cache.Delete(ctx, storage.KeyUserStatus); err != nil {
		s.logger.Warn("failed to drop cached user status", "error", err)
	}
}

// Current returns the latest known status.
func (s *UserStatusStore) Current() types.UserStatus {
	return s.cell.Get()
}

// Subscribe registers fn to be called whenever the status changes.
func (s *UserStatusStore) Subscribe(fn func(types.UserStatus)) (unsubscribe func()) {
	return s.cell.Subscribe(fn)
}

func (s *UserStatusStore) persist(ctx context.Context, status types.UserStatus) {
	encoded, err := json.Marshal(status)
	if err != nil {
		s.logger.Warn("failed to encode user status", "error", err)
		return
	}

	if err := s.cache.Set(ctx, storage.KeyUserStatus, encoded); err != nil {
		s.logger.Warn("failed to cache user status", "error", err)
	}
}
