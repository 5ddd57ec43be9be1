package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApplication builds an Application against a stub service, with its
// cache in a temp directory and output captured in the returned buffer.
func newTestApplication(t *testing.T, handler http.Handler) (*Application, *bytes.Buffer) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	application, err := New(Config{
		ServiceURL:     server.URL,
		CacheFile:      filepath.Join(t.TempDir(), "cache.db"),
		Language:       "en-US",
		LogLevel:       "error",
		LogFormat:      "text",
		RateLimitRPS:   100,
		RateLimitBurst: 10,
		RequestTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	out := &bytes.Buffer{}
	application.out = out

	return application, out
}

func TestRunItemsList(t *testing.T) {
	t.Parallel()

	application, out := newTestApplication(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/items", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"limit": 25,
			"filteredCount": 1,
			"totalCount": 1,
			"items": [{"id": 1, "name": "wrench", "details": "left-handed", "createdOn": 1604000000}]
		}`))
	}))

	require.NoError(t, application.Run(t.Context(), []string{"items", "list"}))

	rendered := out.String()
	assert.Contains(t, rendered, "wrench")
	assert.Contains(t, rendered, "left-handed")
	assert.Contains(t, rendered, "(1/1)")
}

func TestRunItemsListEmpty(t *testing.T) {
	t.Parallel()

	application, out := newTestApplication(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page": 1, "limit": 25, "filteredCount": 0, "totalCount": 0, "items": []}`))
	}))

	require.NoError(t, application.Run(t.Context(), []string{"items", "list"}))

	assert.Contains(t, out.String(), application.t.Console.NoResults)
}

func TestRunAdminModeToggle(t *testing.T) {
	t.Parallel()

	application, out := newTestApplication(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	require.False(t, application.client.AdminMode())

	require.NoError(t, application.Run(t.Context(), []string{"admin", "on"}))
	assert.True(t, application.client.AdminMode())
	assert.Contains(t, out.String(), "true")

	require.NoError(t, application.Run(t.Context(), []string{"admin", "off"}))
	assert.False(t, application.client.AdminMode())

	err := application.Run(t.Context(), []string{"admin", "sideways"})
	require.Error(t, err)
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	application, _ := newTestApplication(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	err := application.Run(t.Context(), []string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frobnicate")
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	application, out := newTestApplication(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	require.NoError(t, application.Run(t.Context(), nil))
	assert.Contains(t, out.String(), "Usage:")
}

func TestLanguageFromLocale(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"en_US.UTF-8": "en-US",
		"en_GB":       "en-GB",
		"de_DE.UTF-8": "de-DE",
		"C":           "en-US",
		"C.UTF-8":     "en-US",
		"POSIX":       "en-US",
		"":            "en-US",
	}

	for locale, expected := range cases {
		assert.Equal(t, expected, languageFromLocale(locale), "locale %q", locale)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TODO_SERVICE_URL", "https://todo.example.com")
	t.Setenv("TODO_API_TOKEN", "token123")
	t.Setenv("TODO_ADMIN_MODE", "true")
	t.Setenv("TODO_RATE_LIMIT_RPS", "2.5")
	t.Setenv("TODO_RATE_LIMIT_BURST", "3")
	t.Setenv("TODO_REQUEST_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "")

	cfg := LoadConfig()

	assert.Equal(t, "https://todo.example.com", cfg.ServiceURL)
	assert.Equal(t, "token123", cfg.BearerToken)
	assert.True(t, cfg.AdminMode)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 3, cfg.RateLimitBurst)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}
