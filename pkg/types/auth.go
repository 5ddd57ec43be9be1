package types

import "strings"

const (
	requiredReason = "required"

	minUsernameLength = 4
	minPasswordLength = 8
	totpTokenLength   = 6
)

// UserStatus is the session's view of its own authorization: who the server
// says we are, and which elevated capabilities it granted. It is cached
// locally between runs and re-validated against /auth/status asynchronously.
type UserStatus struct {
	IsAuthenticated           bool                            `json:"isAuthenticated"`
	UserReputation            string                          `json:"userReputation"`
	UserReputationExplanation string                          `json:"userReputationExplanation"`
	ServiceAdminPermissions   *ServiceAdminPermissionsSummary `json:"serviceAdminPermissions"`
	ActiveAccount             uint64                          `json:"activeAccount"`
	AccountPermissions        map[string]uint32               `json:"accountPermissions"`
}

// IsServiceAdmin reports whether the server granted any admin capability.
func (s UserStatus) IsServiceAdmin() bool {
	return s.ServiceAdminPermissions != nil
}

// UserRegistrationInput is what a new user submits to register.
type UserRegistrationInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserLoginInput is the payload used to log a user in.
type UserLoginInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	TOTPToken string `json:"totpToken"`
}

// PasswordUpdateInput is what a user provides when changing their password.
type PasswordUpdateInput struct {
	NewPassword     string `json:"newPassword"`
	CurrentPassword string `json:"currentPassword"`
	TOTPToken       string `json:"totpToken"`
}

// TOTPSecretRefreshInput is what a user provides when rotating their 2FA secret.
type TOTPSecretRefreshInput struct {
	CurrentPassword string `json:"currentPassword"`
	TOTPToken       string `json:"totpToken"`
}

// TOTPSecretVerificationInput confirms possession of a freshly issued 2FA secret.
type TOTPSecretVerificationInput struct {
	UserID    uint64 `json:"userID"`
	TOTPToken string `json:"totpToken"`
}

// TOTPSecretRefreshResponse carries the newly issued 2FA secret.
type TOTPSecretRefreshResponse struct {
	TwoFactorQRCode string `json:"qrCode"`
	TwoFactorSecret string `json:"twoFactorSecret"`
}

// Validate checks a registration input before it is sent.
func (i UserRegistrationInput) Validate() map[string]string {
	errs := make(map[string]string)

	validateUsername(errs, i.Username)
	validatePassword(errs, "password", i.Password)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks a login input before it is sent.
func (i UserLoginInput) Validate() map[string]string {
	errs := make(map[string]string)

	validateUsername(errs, i.Username)
	validatePassword(errs, "password", i.Password)
	validateTOTPToken(errs, i.TOTPToken)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks a password change before it is sent. Malformed requests
// never leave the client.
func (i PasswordUpdateInput) Validate() map[string]string {
	errs := make(map[string]string)

	validatePassword(errs, "currentPassword", i.CurrentPassword)
	validatePassword(errs, "newPassword", i.NewPassword)
	validateTOTPToken(errs, i.TOTPToken)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks a 2FA secret refresh before it is sent.
func (i TOTPSecretRefreshInput) Validate() map[string]string {
	errs := make(map[string]string)

	validatePassword(errs, "currentPassword", i.CurrentPassword)
	validateTOTPToken(errs, i.TOTPToken)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks a 2FA secret verification before it is sent.
func (i TOTPSecretVerificationInput) Validate() map[string]string {
	errs := make(map[string]string)

	if i.UserID == 0 {
		errs["userID"] = requiredReason
	}
	validateTOTPToken(errs, i.TOTPToken)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateUsername(errs map[string]string, username string) {
	switch {
	case strings.TrimSpace(username) == "":
		errs["username"] = requiredReason
	case len(username) < minUsernameLength:
		errs["username"] = "too short (min 4)"
	}
}

func validatePassword(errs map[string]string, field, password string) {
	switch {
	case password == "":
		errs[field] = requiredReason
	case len(password) < minPasswordLength:
		errs[field] = "too short (min 8)"
	}
}

func validateTOTPToken(errs map[string]string, token string) {
	if len(token) != totpTokenLength {
		errs["totpToken"] = "must be exactly 6 digits"
		return
	}

	for _, r := range token {
		if r < '0' || r > '9' {
			errs["totpToken"] = "must be exactly 6 digits"
			return
		}
	}
}
