// Package types holds the wire-format data model of the todo service as seen
// by its clients: domain records, creation/update inputs, list wrappers, and
// the session-status types. The server owns all state transitions; these types
// only reflect what it returns.
package types

// Pagination carries the page metadata every list response embeds.
type Pagination struct {
	Page          uint64 `json:"page"`
	Limit         uint64 `json:"limit"`
	FilteredCount uint64 `json:"filteredCount"`
	TotalCount    uint64 `json:"totalCount"`
}
