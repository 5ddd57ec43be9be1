package todosdk

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

const defaultTimeout = 10 * time.Second

// Client is a client for the todo service.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter

	mu          sync.RWMutex
	bearerToken string

	adminMode atomic.Bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The client's transport
// is still wrapped for request logging, and a cookie jar is attached if the
// provided client has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger attaches a structured logger. Requests and responses are logged
// at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit caps outgoing requests at rps requests per second with the
// given burst size.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithBearerToken sets a bearer token sent in the Authorization header of
// every request, for callers authenticating with an API token rather than a
// login cookie.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.bearerToken = token
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a client for the todo service at the given base URL.
func NewClient(rawBaseURL string, opts ...Option) (*Client, error) {
	baseURL, err := url.Parse(rawBaseURL)
	if err != nil {
		return nil, fmt.Errorf("todosdk: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger:  slog.Default(),
		limiter: rate.NewLimiter(rate.Inf, 0),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient.Jar == nil {
		jar, jarErr := cookiejar.New(nil)
		if jarErr != nil {
			return nil, fmt.Errorf("todosdk: failed to create cookie jar: %w", jarErr)
		}
		c.httpClient.Jar = jar
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.httpClient.Transport = &loggingRoundTripper{
		base:   base,
		logger: c.logger,
	}

	return c, nil
}

// SetBearerToken replaces the bearer token used for subsequent requests.
// An empty token reverts to cookie-only authentication.
func (c *Client) SetBearerToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bearerToken = token
}

// BearerToken returns the currently configured bearer token.
func (c *Client) BearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bearerToken
}

// SetSessionCookie injects a previously saved session cookie into the
// client's jar, restoring an authenticated session across process restarts.
func (c *Client) SetSessionCookie(cookie *http.Cookie) {
	c.httpClient.Jar.SetCookies(c.baseURL, []*http.Cookie{cookie})
}

// SetAdminMode toggles the advisory admin flag on list requests. It has no
// effect for callers the service does not recognize as admins.
func (c *Client) SetAdminMode(enabled bool) {
	c.adminMode.Store(enabled)
}

// AdminMode reports whether the advisory admin flag is enabled.
func (c *Client) AdminMode() bool {
	return c.adminMode.Load()
}
