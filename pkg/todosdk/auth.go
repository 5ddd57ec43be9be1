package todosdk

import (
	"context"
	"net/http"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

const (
	usersBasePath = "users"
	authBasePath  = "auth"
)

// Register creates a new user account. The response carries the two-factor
// secret, which must be verified via VerifyTOTPSecret before the user can
// log in.
func (c *Client) Register(ctx context.Context, input *types.UserRegistrationInput) (*types.UserCreationResponse, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validationError(input.Validate()); err != nil {
		return nil, err
	}

	uri := c.buildURL(nil, usersBasePath)

	resp, err := c.do(ctx, http.MethodPost, uri, input)
	if err != nil {
		return nil, err
	}

	var created types.UserCreationResponse
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// Login authenticates with username, password, and a current TOTP token. On
// success the session cookie is stored in the client's cookie jar and also
// returned for callers that persist it across runs.
func (c *Client) Login(ctx context.Context, input *types.UserLoginInput) (*http.Cookie, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validationError(input.Validate()); err != nil {
		return nil, err
	}

	uri := c.buildURL(nil, usersBasePath, "login")

	resp, err := c.do(ctx, http.MethodPost, uri, input)
	if err != nil {
		return nil, err
	}

	if err := checkStatus(resp, http.StatusAccepted); err != nil {
		return nil, err
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return nil, ErrNoCookieReturned
	}

	return cookies[0], nil
}

// Logout ends the current session. The service clears the session cookie.
func (c *Client) Logout(ctx context.Context) error {
	uri := c.buildURL(nil, usersBasePath, "logout")

	resp, err := c.do(ctx, http.MethodPost, uri, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusOK)
}

// Status fetches the caller's authentication standing: reputation, admin
// permissions, and the active account. Unauthenticated callers receive a
// status with IsAuthenticated false rather than an error.
func (c *Client) Status(ctx context.Context) (*types.UserStatus, error) {
	uri := c.buildURL(nil, authBasePath, "status")

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var status types.UserStatus
	if err := decodeJSON(resp, &status, http.StatusOK); err != nil {
		return nil, err
	}

	return &status, nil
}

// ChangePassword updates the authenticated user's password. Re-authentication
// is required afterwards.
func (c *Client) ChangePassword(ctx context.Context, input *types.PasswordUpdateInput) error {
	if input == nil {
		return ErrNilInput
	}
	if err := validationError(input.Validate()); err != nil {
		return err
	}

	uri := c.buildURL(nil, usersBasePath, "password", "new")

	resp, err := c.do(ctx, http.MethodPut, uri, input)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusAccepted)
}

// CycleTOTPSecret issues a fresh two-factor secret, invalidating the old one.
// The new secret must be verified before the next login.
func (c *Client) CycleTOTPSecret(ctx context.Context, input *types.TOTPSecretRefreshInput) (*types.TOTPSecretRefreshResponse, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validationError(input.Validate()); err != nil {
		return nil, err
	}

	uri := c.buildURL(nil, usersBasePath, "totp_secret", "new")

	resp, err := c.do(ctx, http.MethodPost, uri, input)
	if err != nil {
		return nil, err
	}

	var refreshed types.TOTPSecretRefreshResponse
	if err := decodeJSON(resp, &refreshed, http.StatusAccepted); err != nil {
		return nil, err
	}

	return &refreshed, nil
}

// VerifyTOTPSecret proves possession of a user's two-factor secret by
// submitting a token generated from it.
func (c *Client) VerifyTOTPSecret(ctx context.Context, input *types.TOTPSecretVerificationInput) error {
	if input == nil {
		return ErrNilInput
	}
	if err := validationError(input.Validate()); err != nil {
		return err
	}

	uri := c.buildURL(nil, usersBasePath, "totp_secret", "verify")

	resp, err := c.do(ctx, http.MethodPost, uri, input)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusAccepted)
}
