package queryfilter

import (
	"net/url"
	"strconv"
	"strings"
)

// whitelistOrder fixes both which keys survive Inherit and the order Encode
// emits them in. Input ordering never leaks through.
var whitelistOrder = []string{
	pageKey,
	limitKey,
	createdBeforeKey,
	createdAfterKey,
	updatedBeforeKey,
	updatedAfterKey,
	includeArchivedKey,
	sortByKey,
}

// Inherit produces a new parameter set containing only the recognized
// QueryFilter keys from in, each revalidated by the same type rule as its
// field. It exists so a list-page link built from another page's query string
// cannot carry foreign parameters across.
func Inherit(in url.Values) url.Values {
	out := url.Values{}

	for _, key := range whitelistOrder {
		raw := in.Get(key)
		if raw == "" {
			continue
		}

		switch key {
		case pageKey, limitKey, createdBeforeKey, createdAfterKey, updatedBeforeKey, updatedAfterKey:
			// Non-numeric values are dropped, never coerced to zero.
			if IsNumeric(raw) {
				out.Set(key, raw)
			}
		case includeArchivedKey:
			if b, ok := ParseBool(raw); ok {
				out.Set(key, strconv.FormatBool(b))
			}
		case sortByKey:
			if dir, ok := ParseSortDirection(raw); ok {
				out.Set(key, string(dir))
			}
		}
	}

	return out
}

// Encode serializes v with recognized keys in whitelist order, followed by the
// search query and admin flag. Unrecognized keys are not emitted; url.Values'
// own Encode sorts keys alphabetically, which would scramble the canonical
// order list pages rely on.
func Encode(v url.Values) string {
	var b strings.Builder

	appendPair := func(key string) {
		val := v.Get(key)
		if val == "" {
			return
		}

		if b.Len() > 0 {
			b.WriteByte('&')
		}

		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(val))
	}

	for _, key := range whitelistOrder {
		appendPair(key)
	}

	appendPair(SearchQueryKey)
	appendPair(AdminKey)

	return b.String()
}
