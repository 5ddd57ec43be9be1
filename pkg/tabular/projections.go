package tabular

import (
	"time"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

// Label sets are provided by the i18n catalog. Each projection takes the
// label set for its entity rather than reaching into a global catalog.

// ItemLabels holds the column labels for item tables.
type ItemLabels struct {
	ID               string
	ExternalID       string
	Name             string
	Details          string
	CreatedOn        string
	LastUpdatedOn    string
	BelongsToAccount string
	ArchivedOn       string
}

// ItemHeaders produces the item table's column headers.
func ItemHeaders(l ItemLabels) []Header {
	return []Header{
		{Label: l.ID},
		{Label: l.ExternalID, AdminOnly: true},
		{Label: l.Name},
		{Label: l.Details},
		{Label: l.CreatedOn},
		{Label: l.LastUpdatedOn},
		{Label: l.BelongsToAccount, AdminOnly: true},
		{Label: l.ArchivedOn, AdminOnly: true},
	}
}

// ItemRow projects one item into cells, positionally matching ItemHeaders.
func ItemRow(x *types.Item, loc *time.Location) []Cell {
	return []Cell{
		{FieldName: "id", Content: renderID(x.ID)},
		{FieldName: "externalID", Content: x.ExternalID, AdminOnly: true},
		{FieldName: "name", Content: x.Name},
		{FieldName: "details", Content: x.Details},
		{FieldName: "createdOn", Content: FormatTime(x.CreatedOn, loc)},
		{FieldName: "lastUpdatedOn", Content: FormatTimePtr(x.LastUpdatedOn, loc)},
		{FieldName: "belongsToAccount", Content: renderID(x.BelongsToAccount), AdminOnly: true},
		{FieldName: "archivedOn", Content: FormatTimePtr(x.ArchivedOn, loc), AdminOnly: true},
	}
}

// UserLabels holds the column labels for user tables.
type UserLabels struct {
	ID                      string
	ExternalID              string
	Username                string
	Reputation              string
	ReputationExplanation   string
	ServiceAdminPermissions string
	RequiresPasswordChange  string
	PasswordLastChangedOn   string
	CreatedOn               string
	LastUpdatedOn           string
	ArchivedOn              string
}

// UserHeaders produces the user table's column headers.
func UserHeaders(l UserLabels) []Header {
	return []Header{
		{Label: l.ID},
		{Label: l.ExternalID, AdminOnly: true},
		{Label: l.Username},
		{Label: l.Reputation},
		{Label: l.ReputationExplanation, AdminOnly: true},
		{Label: l.ServiceAdminPermissions, AdminOnly: true},
		{Label: l.RequiresPasswordChange, AdminOnly: true},
		{Label: l.PasswordLastChangedOn},
		{Label: l.CreatedOn},
		{Label: l.LastUpdatedOn},
		{Label: l.ArchivedOn, AdminOnly: true},
	}
}

// UserRow projects one user into cells, positionally matching UserHeaders.
// The permissions summary renders as JSON so the view can pretty-print it.
func UserRow(x *types.User, loc *time.Location) []Cell {
	return []Cell{
		{FieldName: "id", Content: renderID(x.ID)},
		{FieldName: "externalID", Content: x.ExternalID, AdminOnly: true},
		{FieldName: "username", Content: x.Username},
		{FieldName: "reputation", Content: x.Reputation},
		{FieldName: "reputationExplanation", Content: x.ReputationExplanation, AdminOnly: true},
		{FieldName: "serviceAdminPermissions", Content: renderJSON(x.ServiceAdminPermissions.Summary()), AdminOnly: true, IsJSON: true},
		{FieldName: "requiresPasswordChange", Content: renderBool(x.RequiresPasswordChange), AdminOnly: true},
		{FieldName: "passwordLastChangedOn", Content: FormatTimePtr(x.PasswordLastChangedOn, loc)},
		{FieldName: "createdOn", Content: FormatTime(x.CreatedOn, loc)},
		{FieldName: "lastUpdatedOn", Content: FormatTimePtr(x.LastUpdatedOn, loc)},
		{FieldName: "archivedOn", Content: FormatTimePtr(x.ArchivedOn, loc), AdminOnly: true},
	}
}

// WebhookLabels holds the column labels for webhook tables.
type WebhookLabels struct {
	ID               string
	ExternalID       string
	Name             string
	ContentType      string
	URL              string
	Method           string
	Events           string
	DataTypes        string
	Topics           string
	CreatedOn        string
	LastUpdatedOn    string
	BelongsToAccount string
	ArchivedOn       string
}

// WebhookHeaders produces the webhook table's column headers.
func WebhookHeaders(l WebhookLabels) []Header {
	return []Header{
		{Label: l.ID},
		{Label: l.ExternalID, AdminOnly: true},
		{Label: l.Name},
		{Label: l.ContentType},
		{Label: l.URL},
		{Label: l.Method},
		{Label: l.Events},
		{Label: l.DataTypes},
		{Label: l.Topics},
		{Label: l.CreatedOn},
		{Label: l.LastUpdatedOn},
		{Label: l.BelongsToAccount, AdminOnly: true},
		{Label: l.ArchivedOn, AdminOnly: true},
	}
}

// WebhookRow projects one webhook into cells, positionally matching WebhookHeaders.
func WebhookRow(x *types.Webhook, loc *time.Location) []Cell {
	return []Cell{
		{FieldName: "id", Content: renderID(x.ID)},
		{FieldName: "externalID", Content: x.ExternalID, AdminOnly: true},
		{FieldName: "name", Content: x.Name},
		{FieldName: "contentType", Content: x.ContentType},
		{FieldName: "url", Content: x.URL},
		{FieldName: "method", Content: x.Method},
		{FieldName: "events", Content: renderList(x.Events)},
		{FieldName: "dataTypes", Content: renderList(x.DataTypes)},
		{FieldName: "topics", Content: renderList(x.Topics)},
		{FieldName: "createdOn", Content: FormatTime(x.CreatedOn, loc)},
		{FieldName: "lastUpdatedOn", Content: FormatTimePtr(x.LastUpdatedOn, loc)},
		{FieldName: "belongsToAccount", Content: renderID(x.BelongsToAccount), AdminOnly: true},
		{FieldName: "archivedOn", Content: FormatTimePtr(x.ArchivedOn, loc), AdminOnly: true},
	}
}

// OAuth2ClientLabels holds the column labels for OAuth2 client tables.
type OAuth2ClientLabels struct {
	ID            string
	ExternalID    string
	Name          string
	ClientID      string
	Scopes        string
	RedirectURI   string
	CreatedOn     string
	LastUpdatedOn string
	BelongsToUser string
	ArchivedOn    string
}

// OAuth2ClientHeaders produces the OAuth2 client table's column headers.
func OAuth2ClientHeaders(l OAuth2ClientLabels) []Header {
	return []Header{
		{Label: l.ID},
		{Label: l.ExternalID, AdminOnly: true},
		{Label: l.Name},
		{Label: l.ClientID},
		{Label: l.Scopes},
		{Label: l.RedirectURI},
		{Label: l.CreatedOn},
		{Label: l.LastUpdatedOn},
		{Label: l.BelongsToUser, AdminOnly: true},
		{Label: l.ArchivedOn, AdminOnly: true},
	}
}

// OAuth2ClientRow projects one OAuth2 client into cells.
func OAuth2ClientRow(x *types.OAuth2Client, loc *time.Location) []Cell {
	return []Cell{
		{FieldName: "id", Content: renderID(x.ID)},
		{FieldName: "externalID", Content: x.ExternalID, AdminOnly: true},
		{FieldName: "name", Content: x.Name},
		{FieldName: "clientID", Content: x.ClientID},
		{FieldName: "scopes", Content: renderList(x.Scopes)},
		{FieldName: "redirectURI", Content: x.RedirectURI},
		{FieldName: "createdOn", Content: FormatTime(x.CreatedOn, loc)},
		{FieldName: "lastUpdatedOn", Content: FormatTimePtr(x.LastUpdatedOn, loc)},
		{FieldName: "belongsToUser", Content: renderID(x.BelongsToUser), AdminOnly: true},
		{FieldName: "archivedOn", Content: FormatTimePtr(x.ArchivedOn, loc), AdminOnly: true},
	}
}

// APIClientLabels holds the column labels for API client tables.
type APIClientLabels struct {
	ID            string
	ExternalID    string
	Name          string
	ClientID      string
	CreatedOn     string
	LastUpdatedOn string
	BelongsToUser string
	ArchivedOn    string
}

// APIClientHeaders produces the API client table's column headers.
func APIClientHeaders(l APIClientLabels) []Header {
	return []Header{
		{Label: l.ID},
		{Label: l.ExternalID, AdminOnly: true},
		{Label: l.Name},
		{Label: l.ClientID},
		{Label: l.CreatedOn},
		{Label: l.LastUpdatedOn},
		{Label: l.BelongsToUser, AdminOnly: true},
		{Label: l.ArchivedOn, AdminOnly: true},
	}
}

// APIClientRow projects one API client into cells.
func APIClientRow(x *types.APIClient, loc *time.Location) []Cell {
	return []Cell{
		{FieldName: "id", Content: renderID(x.ID)},
		{FieldName: "externalID", Content: x.ExternalID, AdminOnly: true},
		{FieldName: "name", Content: x.Name},
		{FieldName: "clientID", Content: x.ClientID},
		{FieldName: "createdOn", Content: FormatTime(x.CreatedOn, loc)},
		{FieldName: "lastUpdatedOn", Content: FormatTimePtr(x.LastUpdatedOn, loc)},
		{FieldName: "belongsToUser", Content: renderID(x.BelongsToUser), AdminOnly: true},
		{FieldName: "archivedOn", Content: FormatTimePtr(x.ArchivedOn, loc), AdminOnly: true},
	}
}

// AccountLabels holds the column labels for account tables.
type AccountLabels struct {
	ID                          string
	ExternalID                  string
	Name                        string
	PlanID                      string
	DefaultNewMemberPermissions string
	CreatedOn                   string
	LastUpdatedOn               string
	BelongsToUser               string
	ArchivedOn                  string
}

// AccountHeaders produces the account table's column headers.
func AccountHeaders(l AccountLabels) []Header {
	return []Header{
		{Label: l.ID},
		{Label: l.ExternalID, AdminOnly: true},
		{Label: l.Name},
		{Label: l.PlanID},
		{Label: l.DefaultNewMemberPermissions, AdminOnly: true},
		{Label: l.CreatedOn},
		{Label: l.LastUpdatedOn},
		{Label: l.BelongsToUser, AdminOnly: true},
		{Label: l.ArchivedOn, AdminOnly: true},
	}
}

// AccountRow projects one account into cells.
func AccountRow(x *types.Account, loc *time.Location) []Cell {
	planID := neverRendered
	if x.PlanID != nil {
		planID = renderID(*x.PlanID)
	}

	return []Cell{
		{FieldName: "id", Content: renderID(x.ID)},
		{FieldName: "externalID", Content: x.ExternalID, AdminOnly: true},
		{FieldName: "name", Content: x.Name},
		{FieldName: "planID", Content: planID},
		{FieldName: "defaultNewMemberPermissions", Content: renderID(uint64(x.DefaultNewMemberPermissions)), AdminOnly: true},
		{FieldName: "createdOn", Content: FormatTime(x.CreatedOn, loc)},
		{FieldName: "lastUpdatedOn", Content: FormatTimePtr(x.LastUpdatedOn, loc)},
		{FieldName: "belongsToUser", Content: renderID(x.BelongsToUser), AdminOnly: true},
		{FieldName: "archivedOn", Content: FormatTimePtr(x.ArchivedOn, loc), AdminOnly: true},
	}
}

// AuditLogEntryLabels holds the column labels for audit log tables.
type AuditLogEntryLabels struct {
	ID        string
	EventType string
	Context   string
	CreatedOn string
}

// AuditLogEntryHeaders produces the audit log table's column headers.
func AuditLogEntryHeaders(l AuditLogEntryLabels) []Header {
	return []Header{
		{Label: l.ID},
		{Label: l.EventType},
		{Label: l.Context},
		{Label: l.CreatedOn},
	}
}

// AuditLogEntryRow projects one audit log entry into cells.
func AuditLogEntryRow(x *types.AuditLogEntry, loc *time.Location) []Cell {
	return []Cell{
		{FieldName: "id", Content: renderID(x.ID)},
		{FieldName: "eventType", Content: x.EventType},
		{FieldName: "context", Content: renderJSON(x.Context), IsJSON: true},
		{FieldName: "createdOn", Content: FormatTime(x.CreatedOn, loc)},
	}
}
