package types

// Valid account reputations.
const (
	GoodStandingAccountStatus = "good"
	UnverifiedAccountStatus   = "unverified"
	BannedAccountStatus       = "banned"
	TerminatedAccountStatus   = "terminated"
)

// User represents a user record as the server exposes it to clients.
// Credential material never crosses the wire.
type User struct {
	ID                      uint64                  `json:"id"`
	ExternalID              string                  `json:"externalID"`
	Username                string                  `json:"username"`
	Reputation              string                  `json:"reputation"`
	ReputationExplanation   string                  `json:"reputationExplanation"`
	ServiceAdminPermissions ServiceAdminPermissions `json:"serviceAdminPermissions"`
	RequiresPasswordChange  bool                    `json:"requiresPasswordChange"`
	PasswordLastChangedOn   *uint64                 `json:"passwordLastChangedOn"`
	CreatedOn               uint64                  `json:"createdOn"`
	LastUpdatedOn           *uint64                 `json:"lastUpdatedOn"`
	ArchivedOn              *uint64                 `json:"archivedOn"`
}

// UserList represents a page of users.
type UserList struct {
	Pagination
	Users []*User `json:"users"`
}

// UserCreationResponse is returned on registration. The two-factor secret is
// only ever disclosed here and on secret refresh; verify it promptly.
type UserCreationResponse struct {
	ID              uint64 `json:"id"`
	Username        string `json:"username"`
	TwoFactorSecret string `json:"twoFactorSecret"`
	TwoFactorQRCode string `json:"qrCode"`
	CreatedOn       uint64 `json:"createdOn"`
}

// IsBanned is a handy helper.
func (u *User) IsBanned() bool {
	return u.Reputation == BannedAccountStatus
}

// UserReputationUpdateInput is the admin action of setting a user's status.
type UserReputationUpdateInput struct {
	TargetUserID  uint64 `json:"targetUserID"`
	NewReputation string `json:"newReputation"`
	Reason        string `json:"reason"`
}
