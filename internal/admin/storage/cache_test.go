package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	cache, err := NewCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	require.NoError(t, cache.ApplyMigrations())

	return cache
}

func TestCacheRoundTrip(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t)
	ctx := t.Context()

	require.NoError(t, cache.Set(ctx, KeySettings, []byte(`{"language":"en-US"}`)))

	got, err := cache.Get(ctx, KeySettings)
	require.NoError(t, err)
	require.JSONEq(t, `{"language":"en-US"}`, string(got))
}

func TestCacheGetMissingKey(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t)

	_, err := cache.Get(t.Context(), "nonexistent")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCacheSetReplacesValue(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t)
	ctx := t.Context()

	require.NoError(t, cache.Set(ctx, KeyUserStatus, []byte("first")))
	require.NoError(t, cache.Set(ctx, KeyUserStatus, []byte("second")))

	got, err := cache.Get(ctx, KeyUserStatus)
	require.NoError(t, err)
	require.Equal(t, []byte("second"), got)
}

func TestCacheDelete(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t)
	ctx := t.Context()

	require.NoError(t, cache.Set(ctx, KeySessionCookie, []byte("cookie")))
	require.NoError(t, cache.Delete(ctx, KeySessionCookie))

	_, err := cache.Get(ctx, KeySessionCookie)
	require.ErrorIs(t, err, ErrNotFound)

	// Absent keys delete cleanly.
	require.NoError(t, cache.Delete(ctx, KeySessionCookie))
}

func TestCacheSealedRoundTrip(t *testing.T) {
	t.Parallel()

	cache := newTestCache(t)
	ctx := t.Context()

	secret := []byte("JBSWY3DPEHPK3PXP")
	require.NoError(t, cache.SetSealed(ctx, KeyTOTPSecret, "passphrase", secret))

	// Raw value on disk is ciphertext.
	raw, err := cache.Get(ctx, KeyTOTPSecret)
	require.NoError(t, err)
	require.NotEqual(t, secret, raw)

	got, err := cache.GetSealed(ctx, KeyTOTPSecret, "passphrase")
	require.NoError(t, err)
	require.Equal(t, secret, got)

	_, err = cache.GetSealed(ctx, KeyTOTPSecret, "wrong")
	require.Error(t, err)
}

func TestCacheSurvivesReopen(t *testing.T) {
	t.Parallel()

	dsn := filepath.Join(t.TempDir(), "cache.db")
	ctx := t.Context()

	first, err := NewCache(dsn)
	require.NoError(t, err)
	require.NoError(t, first.ApplyMigrations())
	require.NoError(t, first.Set(ctx, KeySettings, []byte("persisted")))
	require.NoError(t, first.Close())

	second, err := NewCache(dsn)
	require.NoError(t, err)
	defer second.Close()
	require.NoError(t, second.ApplyMigrations())

	got, err := second.Get(ctx, KeySettings)
	require.NoError(t, err)
	require.Equal(t, []byte("persisted"), got)
}
