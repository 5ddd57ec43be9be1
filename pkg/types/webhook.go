package types

import "strings"

// Webhook represents a webhook listener: an endpoint the server sends an HTTP
// request to when a matching event occurs within the owning account.
type Webhook struct {
	ID               uint64   `json:"id"`
	ExternalID       string   `json:"externalID"`
	Name             string   `json:"name"`
	ContentType      string   `json:"contentType"`
	URL              string   `json:"url"`
	Method           string   `json:"method"`
	Events           []string `json:"events"`
	DataTypes        []string `json:"dataTypes"`
	Topics           []string `json:"topics"`
	CreatedOn        uint64   `json:"createdOn"`
	LastUpdatedOn    *uint64  `json:"lastUpdatedOn"`
	ArchivedOn       *uint64  `json:"archivedOn"`
	BelongsToAccount uint64   `json:"belongsToAccount"`
}

// WebhookList represents a page of webhooks.
type WebhookList struct {
	Pagination
	Webhooks []*Webhook `json:"webhooks"`
}

// WebhookCreationInput is what a user provides to create a webhook.
type WebhookCreationInput struct {
	Name        string   `json:"name"`
	ContentType string   `json:"contentType"`
	URL         string   `json:"url"`
	Method      string   `json:"method"`
	Events      []string `json:"events"`
	DataTypes   []string `json:"dataTypes"`
	Topics      []string `json:"topics"`
}

// WebhookUpdateInput is what a user provides to update a webhook.
type WebhookUpdateInput struct {
	Name        string   `json:"name"`
	ContentType string   `json:"contentType"`
	URL         string   `json:"url"`
	Method      string   `json:"method"`
	Events      []string `json:"events"`
	DataTypes   []string `json:"dataTypes"`
	Topics      []string `json:"topics"`
}

// Validate checks the input before it is sent.
func (i WebhookCreationInput) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(i.Name) == "" {
		errs["name"] = requiredReason
	}
	if strings.TrimSpace(i.URL) == "" {
		errs["url"] = requiredReason
	}
	if strings.TrimSpace(i.Method) == "" {
		errs["method"] = requiredReason
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
