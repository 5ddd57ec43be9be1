package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceURL      string        // Required: base URL of the todo service (default: http://localhost:8888)
	BearerToken     string        // Optional: API token used instead of cookie auth
	CacheFile       string        // Optional: path to the SQLite cache file (default: ./todo-admin.db)
	CachePassphrase string        // Optional: passphrase sealing the cached 2FA secret
	Language        string        // Optional: display language tag (default: derived from LANG, then en-US)
	AdminMode       bool          // Optional: start with the advisory admin flag enabled
	Env             string        // Environment (dev, prod) (default: dev)
	LogLevel        string        // Log level (debug, info, warn, error) (default: warn)
	LogFormat       string        // Log format (json, text) (default: text)
	RateLimitRPS    float64       // Optional: outgoing request rate cap (default: 10)
	RateLimitBurst  int           // Optional: rate limiter burst (default: 5)
	RequestTimeout  time.Duration // Per-request timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, after loading a .env
// file when one sits in the working directory.
func LoadConfig() Config {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	return Config{
		ServiceURL:      getEnvOrDefault("TODO_SERVICE_URL", "http://localhost:8888"),
		BearerToken:     os.Getenv("TODO_API_TOKEN"),
		CacheFile:       getEnvOrDefault("TODO_ADMIN_CACHE_FILE", "todo-admin.db"),
		CachePassphrase: os.Getenv("TODO_ADMIN_CACHE_PASSPHRASE"),
		Language:        getEnvOrDefault("TODO_ADMIN_LANGUAGE", languageFromLocale(os.Getenv("LANG"))),
		AdminMode:       getEnvBoolOrDefault("TODO_ADMIN_MODE", false),
		Env:             getEnvOrDefault("ENV", "dev"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "warn"),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", "text"),
		RateLimitRPS:    getEnvFloatOrDefault("TODO_RATE_LIMIT_RPS", 10),
		RateLimitBurst:  getEnvIntOrDefault("TODO_RATE_LIMIT_BURST", 5),
		RequestTimeout:  getEnvDurationOrDefault("TODO_REQUEST_TIMEOUT", 10*time.Second),
	}
}

// languageFromLocale maps a POSIX locale like "en_US.UTF-8" onto a language
// tag like "en-US".
func languageFromLocale(locale string) string {
	locale, _, _ = strings.Cut(locale, ".")
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || strings.EqualFold(locale, "c") || strings.EqualFold(locale, "posix") {
		return "en-US"
	}
	return locale
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
		return floatValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
