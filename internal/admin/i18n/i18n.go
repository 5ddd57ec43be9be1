// Package i18n holds the admin console's translation catalog. Each language
// provides the column label sets consumed by the tabular projections plus the
// console's own strings.
package i18n

import (
	"strings"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/tabular"
)

// ConsoleStrings are the console's own labels and messages.
type ConsoleStrings struct {
	ServiceName string

	Username      string
	Password      string
	TwoFactorCode string

	AdminMode    string
	Settings     string
	Logout       string
	LoginSuccess string
	LoggedOut    string

	Page             string
	PerPage          string
	NoResults        string
	NotAuthenticated string

	Items         string
	Users         string
	Webhooks      string
	OAuth2Clients string
	APIClients    string
	Accounts      string
	AuditLog      string
}

// Translations bundles everything the console renders in a single language.
type Translations struct {
	Console ConsoleStrings

	Items           tabular.ItemLabels
	Users           tabular.UserLabels
	Webhooks        tabular.WebhookLabels
	OAuth2Clients   tabular.OAuth2ClientLabels
	APIClients      tabular.APIClientLabels
	Accounts        tabular.AccountLabels
	AuditLogEntries tabular.AuditLogEntryLabels
}

// catalog maps base language codes to their translations.
var catalog = map[string]Translations{
	"en": english,
}

// For resolves a BCP 47-ish language tag to its translations. Regional tags
// fall back to their base language ("en-US" resolves to "en"); unknown tags
// fall back to English.
func For(tag string) Translations {
	normalized := strings.ToLower(strings.TrimSpace(tag))

	if t, ok := catalog[normalized]; ok {
		return t
	}

	if base, _, found := strings.Cut(normalized, "-"); found {
		if t, ok := catalog[base]; ok {
			return t
		}
	}

	return english
}

// Supported returns the base language codes with a catalog entry.
func Supported() []string {
	langs := make([]string, 0, len(catalog))
	for lang := range catalog {
		langs = append(langs, lang)
	}
	return langs
}
