// Package app wires the admin console together: configuration, the service
// client, the local cache, session state, and the command surface.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/verygoodsoftwarenotvirus/todo/internal/admin/i18n"
	"github.com/verygoodsoftwarenotvirus/todo/internal/admin/state"
	"github.com/verygoodsoftwarenotvirus/todo/internal/admin/storage"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/slogx"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/todosdk"
)

const BuildVersion = "v0.1.0"

// Application is the assembled admin console.
type Application struct {
	cfg    Config
	logger *slog.Logger
	out    io.Writer

	cache  *storage.Cache
	client *todosdk.Client

	status    *state.UserStatusStore
	settings  *state.SettingsStore
	adminMode *state.Cell[bool]

	t i18n.Translations
}

// New creates an Application with all dependencies initialized. The returned
// application holds an open cache database; call Close when done.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		out: os.Stdout,
		logger: slogx.New(slogx.Config{
			Service: "todo-admin",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initCache(); err != nil {
		return nil, err
	}

	if err := app.initClient(); err != nil {
		_ = app.cache.Close()
		return nil, err
	}

	app.initState()

	return app, nil
}

// Close releases the application's resources.
func (app *Application) Close() error {
	return app.cache.Close()
}

func (app *Application) initCache() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.CacheFile)

	cache, err := storage.NewCache(dsn)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}

	if err := cache.ApplyMigrations(); err != nil {
		_ = cache.Close()
		return fmt.Errorf("failed to migrate cache: %w", err)
	}

	app.cache = cache
	return nil
}

func (app *Application) initClient() error {
	opts := []todosdk.Option{
		todosdk.WithLogger(app.logger),
		todosdk.WithRateLimit(app.cfg.RateLimitRPS, app.cfg.RateLimitBurst),
		todosdk.WithTimeout(app.cfg.RequestTimeout),
	}
	if app.cfg.BearerToken != "" {
		opts = append(opts, todosdk.WithBearerToken(app.cfg.BearerToken))
	}

	client, err := todosdk.NewClient(app.cfg.ServiceURL, opts...)
	if err != nil {
		return err
	}
	app.client = client

	app.restoreSessionCookie()
	return nil
}

func (app *Application) initState() {
	ctx := context.Background()

	app.settings = state.NewSettingsStore(app.cache, state.Settings{
		Language: app.cfg.Language,
	}, app.logger)
	app.settings.Load(ctx)

	app.t = i18n.For(app.settings.Current().Language)

	app.status = state.NewUserStatusStore(app.cache, app.client, app.logger)
	app.status.Load(ctx)

	// The advisory flag follows the toggle; the server still decides.
	app.adminMode = state.NewCell(app.cfg.AdminMode)
	app.adminMode.Subscribe(app.client.SetAdminMode)
	app.client.SetAdminMode(app.adminMode.Get())
}

// restoreSessionCookie puts a previously saved session cookie back into the
// client's jar. Absence just means a login is needed.
func (app *Application) restoreSessionCookie() {
	raw, err := app.cache.Get(context.Background(), storage.KeySessionCookie)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			app.logger.Warn("failed to read cached session cookie", "error", err)
		}
		return
	}

	var cookie http.Cookie
	if err := json.Unmarshal(raw, &cookie); err != nil {
		app.logger.Warn("discarding corrupt cached session cookie", "error", err)
		return
	}

	app.client.SetSessionCookie(&cookie)
}

// saveSessionCookie persists the session cookie for the next run.
func (app *Application) saveSessionCookie(ctx context.Context, cookie *http.Cookie) {
	encoded, err := json.Marshal(cookie)
	if err != nil {
		app.logger.Warn("failed to encode session cookie", "error", err)
		return
	}

	if err := app.cache.Set(ctx, storage.KeySessionCookie, encoded); err != nil {
		app.logger.Warn("failed to cache session cookie", "error", err)
	}
}
