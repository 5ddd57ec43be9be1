package todosdk

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BearerTokenExpiry inspects a JWT bearer token and returns its expiration
// time. The signature is deliberately not verified; the token came from the
// service and this is only used to warn before it lapses. Tokens without an
// exp claim return the zero time.
func BearerTokenExpiry(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("todosdk: failed to parse bearer token: %w", err)
	}

	expiresAt, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("todosdk: failed to read token expiry: %w", err)
	}

	if expiresAt == nil {
		return time.Time{}, nil
	}

	return expiresAt.Time, nil
}

// BearerTokenExpired reports whether a JWT bearer token has lapsed, treating
// tokens that cannot be parsed as expired. Tokens without an exp claim never
// expire.
func BearerTokenExpired(token string, now time.Time) bool {
	expiresAt, err := BearerTokenExpiry(token)
	if err != nil {
		return true
	}

	if expiresAt.IsZero() {
		return false
	}

	return now.After(expiresAt)
}
