package todosdk

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/queryfilter"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

func TestGetItem(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/api/v1/items/123", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":123,"name":"thing","belongsToAccount":4}`))
		}))

		item, err := client.GetItem(t.Context(), 123)
		require.NoError(t, err)
		require.Equal(t, uint64(123), item.ID)
		require.Equal(t, uint64(4), item.BelongsToAccount)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"no such item","code":4}`))
		}))

		_, err := client.GetItem(t.Context(), 123)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetItems(t *testing.T) {
	t.Parallel()

	t.Run("default filter", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v1/items", r.URL.Path)
			require.Equal(t, "includeArchived=false&sortBy=asc", r.URL.RawQuery)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"page":1,"limit":25,"items":[{"id":1,"name":"thing"}]}`))
		}))

		list, err := client.GetItems(t.Context(), nil)
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		require.Equal(t, uint64(25), list.Limit)
	})

	t.Run("explicit filter keeps canonical key order", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "page=3&limit=50&createdAfter=100&includeArchived=true&sortBy=desc", r.URL.RawQuery)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"items":[]}`))
		}))

		filter := &queryfilter.QueryFilter{
			Page:            3,
			Limit:           50,
			CreatedAfter:    100,
			IncludeArchived: true,
			SortBy:          queryfilter.SortDescending,
		}

		_, err := client.GetItems(t.Context(), filter)
		require.NoError(t, err)
	})

	t.Run("admin mode appends advisory flag", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "includeArchived=false&sortBy=asc&admin=true", r.URL.RawQuery)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"items":[]}`))
		}))
		client.SetAdminMode(true)

		_, err := client.GetItems(t.Context(), nil)
		require.NoError(t, err)
	})

	t.Run("context cancellation abandons the request", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := client.GetItems(ctx, nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSearchItems(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/items/search", r.URL.Path)
		require.Equal(t, "whatever", r.URL.Query().Get("q"))
		require.Equal(t, "5", r.URL.Query().Get("limit"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":1,"name":"whatever it takes"}]`))
	}))

	items, err := client.SearchItems(t.Context(), "whatever", 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestCreateItem(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/v1/items", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":42,"name":"new thing"}`))
		}))

		created, err := client.CreateItem(t.Context(), &types.ItemCreationInput{Name: "new thing"})
		require.NoError(t, err)
		require.Equal(t, uint64(42), created.ID)
	})

	t.Run("missing name rejected before any request", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))

		_, err := client.CreateItem(t.Context(), &types.ItemCreationInput{})

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		require.Contains(t, valErr.Fields, "name")
	})
}

func TestUpdateItem(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/v1/items/7", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":7,"name":"renamed","lastUpdatedOn":1234567890}`))
	}))

	item := &types.Item{ID: 7, Name: "renamed"}
	require.NoError(t, client.UpdateItem(t.Context(), item))
	require.NotNil(t, item.LastUpdatedOn)
}

func TestArchiveItem(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/v1/items/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.ArchiveItem(t.Context(), 7))
}

func TestGetAuditLogForItem(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/items/7/audit", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":1,"eventType":"item_created","context":{"item_id":7}}]`))
	}))

	entries, err := client.GetAuditLogForItem(t.Context(), 7)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "item_created", entries[0].EventType)
}
