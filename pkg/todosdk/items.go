package todosdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/queryfilter"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

const itemsBasePath = "items"

// ItemExists checks whether an item is reachable for the authenticated user.
func (c *Client) ItemExists(ctx context.Context, itemID uint64) (bool, error) {
	uri := c.buildAPIURL(nil, itemsBasePath, strconv.FormatUint(itemID, 10))

	resp, err := c.do(ctx, http.MethodHead, uri, nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}

// GetItem fetches a single item.
func (c *Client) GetItem(ctx context.Context, itemID uint64) (*types.Item, error) {
	uri := c.buildAPIURL(nil, itemsBasePath, strconv.FormatUint(itemID, 10))

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var item types.Item
	if err := decodeJSON(resp, &item, http.StatusOK); err != nil {
		return nil, err
	}

	return &item, nil
}

// GetItems fetches a page of items. A nil filter requests the first page with
// default settings.
func (c *Client) GetItems(ctx context.Context, filter *queryfilter.QueryFilter) (*types.ItemList, error) {
	uri := c.buildAPIURL(c.listValues(filter), itemsBasePath)

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var list types.ItemList
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// SearchItems performs a full-text search over the caller's items.
func (c *Client) SearchItems(ctx context.Context, query string, limit uint64) ([]*types.Item, error) {
	if limit == 0 {
		limit = queryfilter.DefaultLimit
	}

	qp := url.Values{
		queryfilter.SearchQueryKey: []string{query},
		"limit":                    []string{strconv.FormatUint(limit, 10)},
	}
	uri := c.buildAPIURL(qp, itemsBasePath, "search")

	resp, err := c.do(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	var items []*types.Item
	if err := decodeJSON(resp, &items, http.StatusOK); err != nil {
		return nil, err
	}

	return items, nil
}

// CreateItem creates a new item in the caller's active account.
func (c *Client) CreateItem(ctx context.Context, input *types.ItemCreationInput) (*types.Item, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if err := validationError(input.Validate()); err != nil {
		return nil, err
	}

	uri := c.buildAPIURL(nil, itemsBasePath)

	resp, err := c.do(ctx, http.MethodPost, uri, input)
	if err != nil {
		return nil, err
	}

	var created types.Item
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateItem saves changes to an item. The stored representation is decoded
// back into the provided struct.
func (c *Client) UpdateItem(ctx context.Context, item *types.Item) error {
	if item == nil {
		return ErrNilInput
	}

	uri := c.buildAPIURL(nil, itemsBasePath, strconv.FormatUint(item.ID, 10))

	resp, err := c.do(ctx, http.MethodPut, uri, item)
	if err != nil {
		return err
	}

	return decodeJSON(resp, item, http.StatusOK)
}

// ArchiveItem soft-deletes an item.
func (c *Client) ArchiveItem(ctx context.Context, itemID uint64) error {
	uri := c.buildAPIURL(nil, itemsBasePath, strconv.FormatUint(itemID, 10))

	resp, err := c.do(ctx, http.MethodDelete, uri, nil)
	if err != nil {
		return err
	}

	return checkStatus(resp, http.StatusNoContent)
}

// GetAuditLogForItem fetches the audit trail of a single item. Requires admin
// permissions.
func (c *Client) GetAuditLogForItem(ctx context.Context, itemID uint64) ([]*types.AuditLogEntry, error) {
	uri := c.buildAPIURL(nil, itemsBasePath, strconv.FormatUint(itemID, 10), "audit")

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
