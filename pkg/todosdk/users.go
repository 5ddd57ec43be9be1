package todosdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/queryfilter"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

// GetUser fetches a single user. Requires admin permissions.
func (c *Client) GetUser(ctx context.Context, userID uint64) (*types.User, error) {
	uri := c.buildAPIURL(nil, usersBasePath, strconv.FormatUint(userID, 10))

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var user types.User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetSelf fetches the authenticated user's own record.
func (c *Client) GetSelf(ctx context.Context) (*types.User, error) {
	uri := c.buildAPIURL(nil, usersBasePath, "self")

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var user types.User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUsers fetches a page of users. Requires admin permissions.
func (c *Client) GetUsers(ctx context.Context, filter *queryfilter.QueryFilter) (*types.UserList, error) {
	uri := c.buildAPIURL(c.listValues(filter), usersBasePath)

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var list types.UserList
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// SearchForUsersByUsername finds users whose username matches the query.
// Requires admin permissions.
func (c *Client) SearchForUsersByUsername(ctx context.Context, username string) ([]*types.User, error) {
	qp := url.Values{queryfilter.SearchQueryKey: []string{username}}
	uri := c.buildAPIURL(qp, usersBasePath, "search")

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var users []*types.User
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}

	return users, nil
}

// ArchiveUser soft-deletes a user account.
func (c *Client) ArchiveUser(ctx context.Context, userID uint64) error {
	uri := c.buildAPIURL(nil, usersBasePath, strconv.FormatUint(userID, 10))

	resp, err := c.do(ctx, http.MethodDelete, uri, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusNoContent)
}

// GetAuditLogForUser fetches the audit trail of a single user. Requires admin
// permissions.
func (c *Client) GetAuditLogForUser(ctx context.Context, userID uint64) ([]*types.AuditLogEntry, error) {
	uri := c.buildAPIURL(nil, usersBasePath, strconv.FormatUint(userID, 10), "audit")

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
