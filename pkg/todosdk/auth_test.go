package todosdk

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

func validLoginInput() *types.UserLoginInput {
	return &types.UserLoginInput{
		Username:  "username",
		Password:  "hereisareasonablylongpassword",
		TOTPToken: "123456",
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var gotInput types.UserLoginInput
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/users/login", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotInput))

			http.SetCookie(w, &http.Cookie{Name: "todocookie", Value: "session-value"})
			w.WriteHeader(http.StatusAccepted)
		}))

		cookie, err := client.Login(t.Context(), validLoginInput())
		require.NoError(t, err)
		require.Equal(t, "todocookie", cookie.Name)
		require.Equal(t, "username", gotInput.Username)
	})

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()

		client, err := NewClient("https://todo.example.com")
		require.NoError(t, err)

		_, err = client.Login(t.Context(), nil)
		require.ErrorIs(t, err, ErrNilInput)
	})

	t.Run("invalid input rejected before any request", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		_, err := client.Login(t.Context(), &types.UserLoginInput{Username: "x"})

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Contains(t, valErr.Fields, "password")
		require.Contains(t, valErr.Fields, "totpToken")
	})

	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid login","code":5}`))
		}))

		_, err := client.Login(t.Context(), validLoginInput())
		require.ErrorIs(t, err, ErrUnauthorized)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "invalid login", apiErr.Message)
	})

	t.Run("no cookie in response", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))

		_, err := client.Login(t.Context(), validLoginInput())
		require.ErrorIs(t, err, ErrNoCookieReturned)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/logout", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.Logout(t.Context()))
}

func TestStatus(t *testing.T) {
	t.Parallel()

	t.Run("authenticated admin", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/status", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{
				"isAuthenticated": true,
				"userReputation": "good",
				"serviceAdminPermissions": {"canCycleCookieSecret": true}
			}`))
		}))

		status, err := client.Status(t.Context())
		require.NoError(t, err)
		require.True(t, status.IsAuthenticated)
		require.True(t, status.IsServiceAdmin())
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"isAuthenticated": false}`))
		}))

		status, err := client.Status(t.Context())
		require.NoError(t, err)
		require.False(t, status.IsAuthenticated)
		require.False(t, status.IsServiceAdmin())
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"username":"newuser","twoFactorSecret":"JBSWY3DPEHPK3PXP"}`))
	}))

	created, err := client.Register(t.Context(), &types.UserRegistrationInput{
		Username: "newuser",
		Password: "hereisareasonablylongpassword",
	})
	require.NoError(t, err)
	require.Equal(t, "JBSWY3DPEHPK3PXP", created.TwoFactorSecret)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/users/password/new", r.URL.Path)
		w.WriteHeader(http.StatusAccepted)
	}))

	err := client.ChangePassword(t.Context(), &types.PasswordUpdateInput{
		NewPassword:     "anotherreasonablylongpassword",
		CurrentPassword: "hereisareasonablylongpassword",
		TOTPToken:       "123456",
	})
	require.NoError(t, err)
}

func TestVerifyTOTPSecret(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/totp_secret/verify", r.URL.Path)
		w.WriteHeader(http.StatusAccepted)
	}))

	err := client.VerifyTOTPSecret(t.Context(), &types.TOTPSecretVerificationInput{
		UserID:    1,
		TOTPToken: "123456",
	})
	require.NoError(t, err)
}

func TestAPIErrorUnwrap(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, &APIError{StatusCode: http.StatusUnauthorized}, ErrUnauthorized)
	require.ErrorIs(t, &APIError{StatusCode: http.StatusNotFound}, ErrNotFound)
	require.False(t, errors.Is(&APIError{StatusCode: http.StatusInternalServerError}, ErrUnauthorized))
}
