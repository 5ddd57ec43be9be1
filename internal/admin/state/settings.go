package state

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/verygoodsoftwarenotvirus/todo/internal/admin/storage"
)

// DefaultLanguage is used when neither the cache nor the environment names
// one.
const DefaultLanguage = "en-US"

// DefaultTheme defers the color scheme to the terminal.
const DefaultTheme = "system"

// Settings are the user-tunable display preferences.
type Settings struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// SettingsStore persists display settings across runs.
type SettingsStore struct {
	cell   *Cell[Settings]
	cache  *storage.Cache
	logger *slog.Logger
}

// NewSettingsStore creates a store holding the given defaults until Load
// finds a persisted copy.
func NewSettingsStore(cache *storage.Cache, defaults Settings, logger *slog.Logger) *SettingsStore {
	if defaults.Language == "" {
		defaults.Language = DefaultLanguage
	}
	if defaults.Theme == "" {
		defaults.Theme = DefaultTheme
	}

	return &SettingsStore{
		cell:   NewCell(defaults),
		cache:  cache,
		logger: logger,
	}
}

// Load seeds the store from the local cache, keeping the defaults when no
// copy exists.
func (s *SettingsStore) Load(ctx context.Context) {
	raw, err := s.cache.Get(ctx, storage.KeySettings)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to read cached settings", "error", err)
		}
		return
	}

	var settings Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.logger.Warn("discarding corrupt cached settings", "error", err)
		return
	}

	if settings.Language == "" {
		settings.Language = DefaultLanguage
	}
	if settings.Theme == "" {
		settings.Theme = DefaultTheme
	}

	s.cell.Set(settings)
}

// Save replaces the settings and writes them through to the cache.
func (s *SettingsStore) Save(ctx context.Context, settings Settings) error {
	if settings.Language == "" {
		settings.Language = DefaultLanguage
	}
	if settings.Theme == "" {
		settings.Theme = DefaultTheme
	}

	s.cell.Set(settings)

	encoded, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	return s.cache.Set(ctx, storage.KeySettings, encoded)
}

// Current returns the latest settings.
func (s *SettingsStore) Current() Settings {
	return s.cell.Get()
}

// Subscribe registers fn to be called whenever the settings change.
func (s *SettingsStore) Subscribe(fn func(Settings)) (unsubscribe func()) {
	return s.cell.Subscribe(fn)
}
