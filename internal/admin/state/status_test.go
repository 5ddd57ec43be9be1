package state

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verygoodsoftwarenotvirus/todo/internal/admin/storage"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

type fakeStatusFetcher struct {
	status *types.UserStatus
	err    error
}

func (f *fakeStatusFetcher) Status(context.Context) (*types.UserStatus, error) {
	return f.status, f.err
}

func newTestCache(t *testing.T) *storage.Cache {
	t.Helper()

	cache, err := storage.NewCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	require.NoError(t, cache.ApplyMigrations())

	return cache
}

func TestUserStatusStoreRefresh(t *testing.T) {
	t.Parallel()

	t.Run("success writes through to cache", func(t *testing.T) {
		t.Parallel()

		cache := newTestCache(t)
		fetcher := &fakeStatusFetcher{
			status: &types.UserStatus{
				IsAuthenticated: true,
				UserReputation:  types.GoodStandingAccountStatus,
				ActiveAccount:   3,
			},
		}

		store := NewUserStatusStore(cache, fetcher, slog.Default())

		got := store.Refresh(t.Context())
		require.True(t, got.IsAuthenticated)
		require.Equal(t, uint64(3), got.ActiveAccount)

		// A fresh store sees the persisted copy.
		reloaded := NewUserStatusStore(cache, fetcher, slog.Default())
		reloaded.Load(t.Context())
		require.True(t, reloaded.Current().IsAuthenticated)
	})

	t.Run("failure demotes to unauthenticated", func(t *testing.T) {
		t.Parallel()

		cache := newTestCache(t)
		fetcher := &fakeStatusFetcher{err: errors.New("connection refused")}

		store := NewUserStatusStore(cache, fetcher, slog.Default())
		store.cell.Set(types.UserStatus{IsAuthenticated: true})

		got := store.Refresh(t.Context())
		require.False(t, got.IsAuthenticated)
		require.False(t, store.Current().IsAuthenticated)
	})
}

func TestUserStatusStoreLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty cache stays unauthenticated", func(t *testing.T) {
		t.Parallel()

		store := NewUserStatusStore(newTestCache(t), &fakeStatusFetcher{}, slog.Default())
		store.Load(t.Context())
		require.False(t, store.Current().IsAuthenticated)
	})

	t.Run("corrupt cache entry is discarded", func(t *testing.T) {
		t.Parallel()

		cache := newTestCache(t)
		require.NoError(t, cache.Set(t.Context(), storage.KeyUserStatus, []byte("not json")))

		store := NewUserStatusStore(cache, &fakeStatusFetcher{}, slog.Default())
		store.Load(t.Context())
		require.False(t, store.Current().IsAuthenticated)
	})
}

func TestUserStatusStoreClear(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t)
	fetcher := &fakeStatusFetcher{
		status: &types.UserStatus{IsAuthenticated: true},
	}

	store := NewUserStatusStore(cache, fetcher, slog.Default())
	store.Refresh(t.Context())
	require.True(t, store.Current().IsAuthenticated)

	store.Clear(t.Context())
	require.False(t, store.Current().IsAuthenticated)

	_, err := cache.Get(t.Context(), storage.KeyUserStatus)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserStatusStoreSubscribe(t *testing.T) {
	t.Parallel()

	store := NewUserStatusStore(newTestCache(t), &fakeStatusFetcher{
		status: &types.UserStatus{IsAuthenticated: true},
	}, slog.Default())

	var notified []bool
	store.Subscribe(func(s types.UserStatus) {
		notified = append(notified, s.IsAuthenticated)
	})

	store.Refresh(t.Context())
	require.Equal(t, []bool{true}, notified)
}

func TestSettingsStore(t *testing.T) {
	t.Parallel()

	t.Run("defaults until loaded", func(t *testing.T) {
		t.Parallel()

		store := NewSettingsStore(newTestCache(t), Settings{}, slog.Default())
		require.Equal(t, DefaultLanguage, store.Current().Language)
		require.Equal(t, DefaultTheme, store.Current().Theme)
	})

	t.Run("save and reload", func(t *testing.T) {
		t.Parallel()

		cache := newTestCache(t)

		store := NewSettingsStore(cache, Settings{}, slog.Default())
		require.NoError(t, store.Save(t.Context(), Settings{Language: "en-GB", Theme: "dark"}))

		reloaded := NewSettingsStore(cache, Settings{}, slog.Default())
		reloaded.Load(t.Context())
		require.Equal(t, "en-GB", reloaded.Current().Language)
		require.Equal(t, "dark", reloaded.Current().Theme)
	})
}
