package todosdk

import (
	"context"
	"net/http"
	"strconv"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/queryfilter"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

const adminBasePath = "_admin_"

// CycleCookieSecret rotates the secret used to sign session cookies,
// invalidating every outstanding session including the caller's own. Requires
// the cycle-cookie-secret admin permission.
func (c *Client) CycleCookieSecret(ctx context.Context) error {
	uri := c.buildAPIURL(nil, adminBasePath, "cycle_cookie_secret")

	resp, err := c.do(ctx, http.MethodPost, uri, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusAccepted)
}

// UpdateUserReputation changes a user's standing, e.g. banning them. Requires
// the ban-user admin permission.
func (c *Client) UpdateUserReputation(ctx context.Context, input *types.UserReputationUpdateInput) error {
	if input == nil {
		return ErrNilInput
	}

	uri := c.buildAPIURL(nil, adminBasePath, "users", "status")

	resp, err := c.do(ctx, http.MethodPost, uri, input)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusAccepted)
}

// GetAuditLogEntries fetches a page of the service-wide audit log. Requires
// admin permissions.
func (c *Client) GetAuditLogEntries(ctx context.Context, filter *queryfilter.QueryFilter) (*types.AuditLogEntryList, error) {
	uri := c.buildAPIURL(c.listValues(filter), adminBasePath, "audit_log")

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var list types.AuditLogEntryList
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// GetAuditLogEntry fetches a single audit log entry. Requires admin
// permissions.
func (c *Client) GetAuditLogEntry(ctx context.Context, entryID uint64) (*types.AuditLogEntry, error) {
	uri := c.buildAPIURL(nil, adminBasePath, "audit_log", strconv.FormatUint(entryID, 10))

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var entry types.AuditLogEntry
	if err := decodeJSON(resp, &entry, http.StatusOK); err != nil {
		return nil, err
	}

	return &entry, nil
}
