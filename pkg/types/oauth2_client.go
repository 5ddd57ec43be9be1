package types

// OAuth2Client represents a registered OAuth2 client application.
type OAuth2Client struct {
	ID              uint64   `json:"id"`
	ExternalID      string   `json:"externalID"`
	Name            string   `json:"name"`
	ClientID        string   `json:"clientID"`
	ClientSecret    string   `json:"clientSecret"`
	RedirectURI     string   `json:"redirectURI"`
	Scopes          []string `json:"scopes"`
	ImplicitAllowed bool     `json:"implicitAllowed"`
	CreatedOn       uint64   `json:"createdOn"`
	LastUpdatedOn   *uint64  `json:"lastUpdatedOn"`
	ArchivedOn      *uint64  `json:"archivedOn"`
	BelongsToUser   uint64   `json:"belongsToUser"`
}

// OAuth2ClientList represents a page of OAuth2 clients.
type OAuth2ClientList struct {
	Pagination
	Clients []*OAuth2Client `json:"clients"`
}

// OAuth2ClientCreationInput is what a user provides to register a client.
// Credentials are re-confirmed because client registration mints secrets.
type OAuth2ClientCreationInput struct {
	Name        string   `json:"name"`
	RedirectURI string   `json:"redirectURI"`
	Scopes      []string `json:"scopes"`
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	TOTPToken   string   `json:"totpToken"`
}

// Validate checks the input before it is sent.
func (i OAuth2ClientCreationInput) Validate() map[string]string {
	errs := make(map[string]string)

	validateUsername(errs, i.Username)
	validatePassword(errs, "password", i.Password)
	validateTOTPToken(errs, i.TOTPToken)

	if len(errs) == 0 {
		return nil
	}
	return errs
}
