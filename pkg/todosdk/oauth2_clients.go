package todosdk

import (
	"context"
	"net/http"
	"strconv"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/queryfilter"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

const oauth2ClientsBasePath = "oauth2/clients"

// GetOAuth2Client fetches a single OAuth2 client.
func (c *Client) GetOAuth2Client(ctx context.Context, clientID uint64) (*types.OAuth2Client, error) {
	uri := c.buildAPIURL(nil, oauth2ClientsBasePath, strconv.FormatUint(clientID, 10))

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var client types.OAuth2Client
	if err := decodeJSON(resp, &client, http.StatusOK); err != nil {
		return nil, err
	}

	return &client, nil
}

// GetOAuth2Clients fetches a page of the caller's OAuth2 clients.
func (c *Client) GetOAuth2Clients(ctx context.Context, filter *queryfilter.QueryFilter) (*types.OAuth2ClientList, error) {
	uri := c.buildAPIURL(c.listValues(filter), oauth2ClientsBasePath)

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var list types.OAuth2ClientList
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// CreateOAuth2Client registers a new OAuth2 client. Registration re-confirms
// the caller's credentials.
func (c *Client) CreateOAuth2Client(ctx context.Context, input *types.OAuth2ClientCreationInput) (*types.OAuth2Client, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validationError(input.Validate()); err != nil {
		return nil, err
	}

	uri := c.buildAPIURL(nil, oauth2ClientsBasePath)

	resp, err := c.do(ctx, http.MethodPost, uri, input)
	if err != nil {
		return nil, err
	}

	var created types.OAuth2Client
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// ArchiveOAuth2Client soft-deletes an OAuth2 client.
func (c *Client) ArchiveOAuth2Client(ctx context.Context, clientID uint64) error {
	uri := c.buildAPIURL(nil, oauth2ClientsBasePath, strconv.FormatUint(clientID, 10))

	resp, err := c.do(ctx, http.MethodDelete, uri, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusNoContent)
}

// GetAuditLogForOAuth2Client fetches the audit trail of a single OAuth2
// client. Requires admin permissions.
func (c *Client) GetAuditLogForOAuth2Client(ctx context.Context, clientID uint64) ([]*types.AuditLogEntry, error) {
	uri := c.buildAPIURL(nil, oauth2ClientsBasePath, strconv.FormatUint(clientID, 10), "audit")

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
