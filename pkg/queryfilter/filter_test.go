package queryfilter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryFilterRoundTripOverDefaults(t *testing.T) {
	t.Parallel()

	original := Default()
	parsed := FromValues(original.ToValues(false))

	require.Equal(t, original, parsed)
}

func TestQueryFilterToValues(t *testing.T) {
	t.Parallel()

	t.Run("defaults emit only the always-on keys", func(t *testing.T) {
		v := Default().ToValues(false)

		require.Equal(t, "false", v.Get("includeArchived"))
		require.Equal(t, "asc", v.Get("sortBy"))
		require.Len(t, v, 2)
	})

	t.Run("zero timestamps are treated as unset", func(t *testing.T) {
		f := QueryFilter{
			Page:            12345,
			CreatedBefore:   0,
			IncludeArchived: true,
			SortBy:          SortAscending,
		}

		require.Equal(t, "page=12345&includeArchived=true&sortBy=asc", f.ToQueryString(false))
	})

	t.Run("admin mode appends the advisory flag", func(t *testing.T) {
		v := Default().ToValues(true)
		require.Equal(t, "true", v.Get("admin"))
	})

	t.Run("non-default values all serialize", func(t *testing.T) {
		f := QueryFilter{
			Page:            3,
			Limit:           50,
			CreatedBefore:   1234567890,
			CreatedAfter:    1234560000,
			UpdatedBefore:   1234567891,
			UpdatedAfter:    1234560001,
			IncludeArchived: true,
			SortBy:          SortDescending,
		}

		require.Equal(t,
			"page=3&limit=50&createdBefore=1234567890&createdAfter=1234560000&updatedBefore=1234567891&updatedAfter=1234560001&includeArchived=true&sortBy=desc",
			f.ToQueryString(false),
		)
	})
}

func TestQueryFilterFromValues(t *testing.T) {
	t.Parallel()

	t.Run("happy path", func(t *testing.T) {
		f := FromValues(url.Values{
			"page":            {"7"},
			"limit":           {"100"},
			"createdAfter":    {"1600000000"},
			"includeArchived": {"true"},
			"sortBy":          {"desc"},
		})

		require.Equal(t, uint64(7), f.Page)
		require.Equal(t, uint64(100), f.Limit)
		require.Equal(t, uint64(1600000000), f.CreatedAfter)
		require.True(t, f.IncludeArchived)
		require.Equal(t, SortDescending, f.SortBy)
	})

	t.Run("non-numeric values keep defaults", func(t *testing.T) {
		f := FromValues(url.Values{
			"page":          {"lol"},
			"createdBefore": {"yesterday"},
		})

		require.Equal(t, Default(), f)
	})

	t.Run("ambiguous booleans keep defaults", func(t *testing.T) {
		f := FromValues(url.Values{"includeArchived": {"maybe"}})
		require.False(t, f.IncludeArchived)
	})

	t.Run("sortBy is case-insensitive", func(t *testing.T) {
		f := FromValues(url.Values{"sortBy": {"DESC"}})
		require.Equal(t, SortDescending, f.SortBy)
	})

	t.Run("unknown sort direction keeps default", func(t *testing.T) {
		f := FromValues(url.Values{"sortBy": {"sideways"}})
		require.Equal(t, SortAscending, f.SortBy)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		f := FromValues(url.Values{"banana": {"true"}, "page": {"2"}})
		require.Equal(t, uint64(2), f.Page)
	})

	t.Run("zero page keeps default", func(t *testing.T) {
		f := FromValues(url.Values{"page": {"0"}})
		require.Equal(t, DefaultPage, f.Page)
	})
}

func TestInherit(t *testing.T) {
	t.Parallel()

	t.Run("drops invalid and foreign keys", func(t *testing.T) {
		in, err := url.ParseQuery("page=12345&createdBefore=lol&includeArchived=true&sortBy=asc")
		require.NoError(t, err)

		out := Inherit(in)
		require.Equal(t, "page=12345&includeArchived=true&sortBy=asc", Encode(out))
	})

	t.Run("output order follows the whitelist, not the input", func(t *testing.T) {
		in, err := url.ParseQuery("sortBy=desc&page=2&updatedAfter=5&limit=10")
		require.NoError(t, err)

		require.Equal(t, "page=2&limit=10&updatedAfter=5&sortBy=desc", Encode(Inherit(in)))
	})

	t.Run("cross-page pollution is filtered", func(t *testing.T) {
		in := url.Values{
			"page":     {"1"},
			"redirect": {"https://example.com"},
			"token":    {"abc"},
		}

		out := Inherit(in)
		require.Len(t, out, 1)
		require.Equal(t, "1", out.Get("page"))
	})

	t.Run("boolean forms are normalized", func(t *testing.T) {
		out := Inherit(url.Values{"includeArchived": {"T"}})
		require.Equal(t, "true", out.Get("includeArchived"))
	})
}
