package todosdk

import (
	"context"
	"net/http"
	"strconv"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/queryfilter"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

const apiClientsBasePath = "api_clients"

// GetAPIClient fetches a single API client.
func (c *Client) GetAPIClient(ctx context.Context, clientID uint64) (*types.APIClient, error) {
	uri := c.buildAPIURL(nil, apiClientsBasePath, strconv.FormatUint(clientID, 10))

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var client types.APIClient
	if err := decodeJSON(resp, &client, http.StatusOK); err != nil {
		return nil, err
	}

	return &client, nil
}

// GetAPIClients fetches a page of the caller's API clients.
func (c *Client) GetAPIClients(ctx context.Context, filter *queryfilter.QueryFilter) (*types.APIClientList, error) {
	uri := c.buildAPIURL(c.listValues(filter), apiClientsBasePath)

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var list types.APIClientList
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// CreateAPIClient mints a new API client. Creation re-confirms the caller's
// credentials, and the returned secret is only ever disclosed in this
// response.
func (c *Client) CreateAPIClient(ctx context.Context, input *types.APIClientCreationInput) (*types.APIClientCreationResponse, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validationError(input.Validate()); err != nil {
		return nil, err
	}

	uri := c.buildAPIURL(nil, apiClientsBasePath)

	resp, err := c.do(ctx, http.MethodPost, uri, input)
	if err != nil {
		return nil, err
	}

	var created types.APIClientCreationResponse
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// ArchiveAPIClient soft-deletes an API client.
func (c *Client) ArchiveAPIClient(ctx context.Context, clientID uint64) error {
	uri := c.buildAPIURL(nil, apiClientsBasePath, strconv.FormatUint(clientID, 10))

	resp, err := c.do(ctx, http.MethodDelete, uri, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusNoContent)
}

// GetAuditLogForAPIClient fetches the audit trail of a single API client.
// Requires admin permissions.
func (c *Client) GetAuditLogForAPIClient(ctx context.Context, clientID uint64) ([]*types.AuditLogEntry, error) {
	uri := c.buildAPIURL(nil, apiClientsBasePath, strconv.FormatUint(clientID, 10), "audit")

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
