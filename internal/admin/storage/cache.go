// Package storage persists admin console state between runs: the session
// cookie, the last known user status, display settings, and the sealed
// two-factor secret. It is a small key-value cache backed by SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/cryptox"
)

// Well-known cache keys.
const (
	KeySessionCookie = "session_cookie"
	KeyUserStatus    = "user_status"
	KeySettings      = "settings"
	KeyTOTPSecret    = "totp_secret"
)

// ErrNotFound is returned when a key has no cached value.
var ErrNotFound = errors.New("storage: key not found")

// Cache is a persistent key-value store. It is safe for concurrent use.
type Cache struct {
	db  *sql.DB
	dsn string
}

// NewCache opens (or creates) the cache database at the given path.
// ApplyMigrations must be called before first use.
func NewCache(dsn string) (*Cache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single writer avoids SQLITE_BUSY on concurrent refreshes.
	db.SetMaxOpenConns(1)

	return &Cache{
		db:  db,
		dsn: dsn,
	}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

// Ping verifies the database connection is still alive.
func (c *Cache) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Get returns the value stored under key, or ErrNotFound.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	row := c.db.QueryRowContext(ctx, `SELECT value FROM cache_entries WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return value, nil
}

// Set stores a value under key, replacing any previous value.
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO cache_entries (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value,
	)
	return err
}

// Delete removes a key. Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE key = ?`, key)
	return err
}

// SetSealed encrypts plaintext with a passphrase-derived key before storing
// it. Used for the two-factor secret, which must never sit on disk in the
// clear.
func (c *Cache) SetSealed(ctx context.Context, key, passphrase string, plaintext []byte) error {
	sealed, err := cryptox.Seal(passphrase, plaintext)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, sealed)
}

// GetSealed retrieves and decrypts a value stored with SetSealed.
func (c *Cache) GetSealed(ctx context.Context, key, passphrase string) ([]byte, error) {
	sealed, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return cryptox.Open(passphrase, sealed)
}
