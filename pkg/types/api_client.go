package types

// APIClient represents a machine credential owned by a user. The secret is
// only ever present in the creation response.
type APIClient struct {
	ID            uint64  `json:"id"`
	ExternalID    string  `json:"externalID"`
	Name          string  `json:"name"`
	ClientID      string  `json:"clientID"`
	ClientSecret  string  `json:"clientSecret,omitempty"`
	CreatedOn     uint64  `json:"createdOn"`
	LastUpdatedOn *uint64 `json:"lastUpdatedOn"`
	ArchivedOn    *uint64 `json:"archivedOn"`
	BelongsToUser uint64  `json:"belongsToUser"`
}

// APIClientList represents a page of API clients.
type APIClientList struct {
	Pagination
	Clients []*APIClient `json:"clients"`
}

// APIClientCreationInput is what a user provides to mint an API client.
// Like OAuth2 client registration, it re-confirms credentials.
type APIClientCreationInput struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	TOTPToken string `json:"totpToken"`
}

// APIClientCreationResponse is returned on client creation. The secret is
// only ever disclosed here.
type APIClientCreationResponse struct {
	ID           uint64 `json:"id"`
	ClientID     string `json:"clientID"`
	ClientSecret string `json:"clientSecret"`
}

// Validate checks the input before it is sent.
func (i APIClientCreationInput) Validate() map[string]string {
	errs := make(map[string]string)

	validateUsername(errs, i.Username)
	validatePassword(errs, "password", i.Password)
	validateTOTPToken(errs, i.TOTPToken)

	if len(errs) == 0 {
		return nil
	}
	return errs
}
