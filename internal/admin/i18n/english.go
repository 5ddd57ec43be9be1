package i18n

import "github.com/verygoodsoftwarenotvirus/todo/pkg/tabular"

var english = Translations{
	Console: ConsoleStrings{
		ServiceName: "Todo",

		Username:      "Username",
		Password:      "Password",
		TwoFactorCode: "2FA Code",

		AdminMode:    "Admin Mode",
		Settings:     "Settings",
		Logout:       "Log Out",
		LoginSuccess: "logged in",
		LoggedOut:    "logged out",

		Page:             "Page",
		PerPage:          "per page",
		NoResults:        "no results",
		NotAuthenticated: "not authenticated, please log in",

		Items:         "Items",
		Users:         "Users",
		Webhooks:      "Webhooks",
		OAuth2Clients: "OAuth2 Clients",
		APIClients:    "API Clients",
		Accounts:      "Accounts",
		AuditLog:      "Audit Log",
	},

	Items: tabular.ItemLabels{
		ID:               "ID",
		ExternalID:       "External ID",
		Name:             "Name",
		Details:          "Details",
		CreatedOn:        "Created On",
		LastUpdatedOn:    "Last Updated On",
		BelongsToAccount: "Belongs to Account",
		ArchivedOn:       "Archived On",
	},

	Users: tabular.UserLabels{
		ID:                      "ID",
		ExternalID:              "External ID",
		Username:                "Username",
		Reputation:              "Reputation",
		ReputationExplanation:   "Reputation Explanation",
		ServiceAdminPermissions: "Admin Permissions",
		RequiresPasswordChange:  "Requires Password Change",
		PasswordLastChangedOn:   "Password Last Changed On",
		CreatedOn:               "Created On",
		LastUpdatedOn:           "Last Updated On",
		ArchivedOn:              "Archived On",
	},

	Webhooks: tabular.WebhookLabels{
		ID:               "ID",
		ExternalID:       "External ID",
		Name:             "Name",
		ContentType:      "Content-Type",
		URL:              "URL",
		Method:           "Method",
		Events:           "Events",
		DataTypes:        "Data Types",
		Topics:           "Topics",
		CreatedOn:        "Created On",
		LastUpdatedOn:    "Last Updated On",
		BelongsToAccount: "Belongs to Account",
		ArchivedOn:       "Archived On",
	},

	OAuth2Clients: tabular.OAuth2ClientLabels{
		ID:            "ID",
		ExternalID:    "External ID",
		Name:          "Name",
		ClientID:      "Client ID",
		Scopes:        "Scopes",
		RedirectURI:   "Redirect URI",
		CreatedOn:     "Created On",
		LastUpdatedOn: "Last Updated On",
		BelongsToUser: "Belongs to User",
		ArchivedOn:    "Archived On",
	},

	APIClients: tabular.APIClientLabels{
		ID:            "ID",
		ExternalID:    "External ID",
		Name:          "Name",
		ClientID:      "Client ID",
		CreatedOn:     "Created On",
		LastUpdatedOn: "Last Updated On",
		BelongsToUser: "Belongs to User",
		ArchivedOn:    "Archived On",
	},

	Accounts: tabular.AccountLabels{
		ID:                          "ID",
		ExternalID:                  "External ID",
		Name:                        "Name",
		PlanID:                      "Plan ID",
		DefaultNewMemberPermissions: "Default Member Permissions",
		CreatedOn:                   "Created On",
		LastUpdatedOn:               "Last Updated On",
		BelongsToUser:               "Belongs to User",
		ArchivedOn:                  "Archived On",
	},

	AuditLogEntries: tabular.AuditLogEntryLabels{
		ID:        "ID",
		EventType: "Event Type",
		Context:   "Context",
		CreatedOn: "Created On",
	},
}
