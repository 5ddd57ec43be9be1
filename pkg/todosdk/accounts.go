package todosdk

import (
	"context"
	"net/http"
	"strconv"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/queryfilter"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

const accountsBasePath = "accounts"

// GetAccount fetches a single account.
func (c *Client) GetAccount(ctx context.Context, accountID uint64) (*types.Account, error) {
	uri := c.buildAPIURL(nil, accountsBasePath, strconv.FormatUint(accountID, 10))

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var account types.Account
	if err := decodeJSON(resp, &account, http.StatusOK); err != nil {
		return nil, err
	}

	return &account, nil
}

// GetAccounts fetches a page of the caller's accounts.
func (c *Client) GetAccounts(ctx context.Context, filter *queryfilter.QueryFilter) (*types.AccountList, error) {
	uri := c.buildAPIURL(c.listValues(filter), accountsBasePath)

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var list types.AccountList
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// CreateAccount creates a new account owned by the caller.
func (c *Client) CreateAccount(ctx context.Context, input *types.AccountCreationInput) (*types.Account, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validationError(input.Validate()); err != nil {
		return nil, err
	}

	uri := c.buildAPIURL(nil, accountsBasePath)

	resp, err := c.do(ctx, http.MethodPost, uri, input)
	if err != nil {
		return nil, err
	}

	var created types.Account
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateAccount saves changes to an account.
func (c *Client) UpdateAccount(ctx context.Context, account *types.Account) error {
	if account == nil {
		return ErrNilInput
	}

	uri := c.buildAPIURL(nil, accountsBasePath, strconv.FormatUint(account.ID, 10))

	resp, err := c.do(ctx, http.MethodPut, uri, account)
	if err != nil {
		return err
	}

	return decodeJSON(resp, account, http.StatusOK)
}

// ArchiveAccount soft-deletes an account.
func (c *Client) ArchiveAccount(ctx context.Context, accountID uint64) error {
	uri := c.buildAPIURL(nil, accountsBasePath, strconv.FormatUint(accountID, 10))

	resp, err := c.do(ctx, http.MethodDelete, uri, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusNoContent)
}

// MarkAccountAsDefault makes the given account the caller's default.
func (c *Client) MarkAccountAsDefault(ctx context.Context, accountID uint64) error {
	uri := c.buildAPIURL(nil, accountsBasePath, strconv.FormatUint(accountID, 10), "default")

	resp, err := c.do(ctx, http.MethodPost, uri, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusAccepted)
}

// GetAuditLogForAccount fetches the audit trail of a single account. Requires
// admin permissions.
func (c *Client) GetAuditLogForAccount(ctx context.Context, accountID uint64) ([]*types.AuditLogEntry, error) {
	uri := c.buildAPIURL(nil, accountsBasePath, strconv.FormatUint(accountID, 10), "audit")

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
