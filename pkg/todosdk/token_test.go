package todosdk

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)

	return token
}

func TestBearerTokenExpiry(t *testing.T) {
	t.Parallel()

	t.Run("with exp claim", func(t *testing.T) {
		t.Parallel()

		expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
		token := signedTestToken(t, jwt.MapClaims{"exp": expiresAt.Unix()})

		got, err := BearerTokenExpiry(token)
		require.NoError(t, err)
		require.True(t, got.Equal(expiresAt))
	})

	t.Run("without exp claim", func(t *testing.T) {
		t.Parallel()

		token := signedTestToken(t, jwt.MapClaims{"sub": "user"})

		got, err := BearerTokenExpiry(token)
		require.NoError(t, err)
		require.True(t, got.IsZero())
	})

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()

		_, err := BearerTokenExpiry("not a token")
		require.Error(t, err)
	})
}

func TestBearerTokenExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()

	live := signedTestToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	require.False(t, BearerTokenExpired(live, now))

	lapsed := signedTestToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
	require.True(t, BearerTokenExpired(lapsed, now))

	noExpiry := signedTestToken(t, jwt.MapClaims{"sub": "user"})
	require.False(t, BearerTokenExpired(noExpiry, now))

	require.True(t, BearerTokenExpired("not a token", now))
}
