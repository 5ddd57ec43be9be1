package todosdk

import (
	"context"
	"net/http"
	"strconv"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/queryfilter"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

const webhooksBasePath = "webhooks"

// GetWebhook fetches a single webhook.
func (c *Client) GetWebhook(ctx context.Context, webhookID uint64) (*types.Webhook, error) {
	uri := c.buildAPIURL(nil, webhooksBasePath, strconv.FormatUint(webhookID, 10))

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var webhook types.Webhook
	if err := decodeJSON(resp, &webhook, http.StatusOK); err != nil {
		return nil, err
	}

	return &webhook, nil
}

// GetWebhooks fetches a page of webhooks belonging to the active account.
func (c *Client) GetWebhooks(ctx context.Context, filter *queryfilter.QueryFilter) (*types.WebhookList, error) {
	uri := c.buildAPIURL(c.listValues(filter), webhooksBasePath)

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var list types.WebhookList
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// CreateWebhook registers a new webhook on the active account.
func (c *Client) CreateWebhook(ctx context.Context, input *types.WebhookCreationInput) (*types.Webhook, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validationError(input.Validate()); err != nil {
		return nil, err
	}

	uri := c.buildAPIURL(nil, webhooksBasePath)

	resp, err := c.do(ctx, http.MethodPost, uri, input)
	if err != nil {
		return nil, err
	}

	var created types.Webhook
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateWebhook saves changes to a webhook.
func (c *Client) UpdateWebhook(ctx context.Context, webhook *types.Webhook) error {
	if webhook == nil {
		return ErrNilInput
	}

	uri := c.buildAPIURL(nil, webhooksBasePath, strconv.FormatUint(webhook.ID, 10))

	resp, err := c.do(ctx, http.MethodPut, uri, webhook)
	if err != nil {
		return err
	}

	return decodeJSON(resp, webhook, http.StatusOK)
}

// ArchiveWebhook soft-deletes a webhook.
func (c *Client) ArchiveWebhook(ctx context.Context, webhookID uint64) error {
	uri := c.buildAPIURL(nil, webhooksBasePath, strconv.FormatUint(webhookID, 10))

	resp, err := c.do(ctx, http.MethodDelete, uri, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusNoContent)
}

// GetAuditLogForWebhook fetches the audit trail of a single webhook. Requires
// admin permissions.
func (c *Client) GetAuditLogForWebhook(ctx context.Context, webhookID uint64) ([]*types.AuditLogEntry, error) {
	uri := c.buildAPIURL(nil, webhooksBasePath, strconv.FormatUint(webhookID, 10), "audit")

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var entries []*types.AuditLogEntry
	if err := decodeJSON(resp, &entries, http.StatusOK); err != nil {
		return nil, err
	}

	return entries, nil
}
