// Package queryfilter implements the list-query parameter contract shared by
// every list endpoint of the todo service: pagination, time-range bounds,
// archived-record inclusion, and sort direction, together with the whitelist
// that keeps foreign query parameters from leaking between pages.
package queryfilter

import (
	"net/url"
	"strconv"
	"strings"
)

// SortDirection is the sort order requested for a list endpoint.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// Recognized query-string keys, in canonical emission order.
const (
	pageKey            = "page"
	limitKey           = "limit"
	createdBeforeKey   = "createdBefore"
	createdAfterKey    = "createdAfter"
	updatedBeforeKey   = "updatedBefore"
	updatedAfterKey    = "updatedAfter"
	includeArchivedKey = "includeArchived"
	sortByKey          = "sortBy"

	// SearchQueryKey and AdminKey ride alongside the filter keys on search
	// and elevated list requests. They are not part of the whitelist.
	SearchQueryKey = "q"
	AdminKey       = "admin"
)

const (
	// DefaultPage is the page requested when none is specified.
	DefaultPage uint64 = 1
	// DefaultLimit is the page size requested when none is specified.
	DefaultLimit uint64 = 25
)

// QueryFilter is an immutable-by-convention value object describing a list
// request. Timestamp fields hold unix seconds; zero means "unset" (0 is not a
// valid timestamp in this domain) and is omitted from the serialized form.
type QueryFilter struct {
	Page            uint64
	Limit           uint64
	CreatedBefore   uint64
	CreatedAfter    uint64
	UpdatedBefore   uint64
	UpdatedAfter    uint64
	IncludeArchived bool
	SortBy          SortDirection
}

// Default returns a QueryFilter with every field at its default value.
func Default() QueryFilter {
	return QueryFilter{
		Page:   DefaultPage,
		Limit:  DefaultLimit,
		SortBy: SortAscending,
	}
}

// ParseSortDirection validates a sortBy value. Comparison is case-insensitive;
// the source application's variants disagreed on this, and case-insensitivity
// is the safer reading.
func ParseSortDirection(s string) (SortDirection, bool) {
	switch strings.ToLower(s) {
	case string(SortAscending):
		return SortAscending, true
	case string(SortDescending):
		return SortDescending, true
	default:
		return "", false
	}
}

// FromValues builds a QueryFilter from URL query parameters. Only whitelisted
// keys are consulted; values that fail their field's type rule leave the
// default in place, and unknown keys are ignored entirely.
func FromValues(v url.Values) QueryFilter {
	f := Default()

	if raw := v.Get(pageKey); IsNumeric(raw) {
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil && n > 0 {
			f.Page = n
		}
	}

	if raw := v.Get(limitKey); IsNumeric(raw) {
		if n, err := strconv.ParseUint(raw, 10, 64); err == nil && n > 0 {
			f.Limit = n
		}
	}

	for key, dst := range map[string]*uint64{
		createdBeforeKey: &f.CreatedBefore,
		createdAfterKey:  &f.CreatedAfter,
		updatedBeforeKey: &f.UpdatedBefore,
		updatedAfterKey:  &f.UpdatedAfter,
	} {
		if raw := v.Get(key); IsNumeric(raw) {
			if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
				*dst = n
			}
		}
	}

	if b, ok := ParseBool(v.Get(includeArchivedKey)); ok {
		f.IncludeArchived = b
	}

	if dir, ok := ParseSortDirection(v.Get(sortByKey)); ok {
		f.SortBy = dir
	}

	return f
}

// ToValues serializes the filter into URL query parameters. Numeric fields at
// their defaults and zero timestamps are omitted; includeArchived and sortBy
// are always emitted, matching the asymmetry of the original contract. When
// adminMode is set, admin=true is added as well. The admin flag is advisory:
// the server re-validates elevation on every request regardless.
func (f QueryFilter) ToValues(adminMode bool) url.Values {
	v := url.Values{}

	if f.Page != DefaultPage && f.Page > 0 {
		v.Set(pageKey, strconv.FormatUint(f.Page, 10))
	}

	if f.Limit != DefaultLimit && f.Limit > 0 {
		v.Set(limitKey, strconv.FormatUint(f.Limit, 10))
	}

	for key, val := range map[string]uint64{
		createdBeforeKey: f.CreatedBefore,
		createdAfterKey:  f.CreatedAfter,
		updatedBeforeKey: f.UpdatedBefore,
		updatedAfterKey:  f.UpdatedAfter,
	} {
		if val != 0 {
			v.Set(key, strconv.FormatUint(val, 10))
		}
	}

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = SortAscending
	}

	v.Set(includeArchivedKey, strconv.FormatBool(f.IncludeArchived))
	v.Set(sortByKey, string(sortBy))

	if adminMode {
		v.Set(AdminKey, "true")
	}

	return v
}

// ToQueryString serializes the filter as a canonical query string. See Encode
// for the key ordering guarantee.
func (f QueryFilter) ToQueryString(adminMode bool) string {
	return Encode(f.ToValues(adminMode))
}
