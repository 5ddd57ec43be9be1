package app

import (
	"flag"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/queryfilter"
)

// filterFlags binds the standard list flags onto a flag set.
type filterFlags struct {
	page            uint64
	limit           uint64
	createdBefore   uint64
	createdAfter    uint64
	updatedBefore   uint64
	updatedAfter    uint64
	includeArchived bool
	sortBy          string
}

func addFilterFlags(fs *flag.FlagSet) *filterFlags {
	f := &filterFlags{}

	fs.Uint64Var(&f.page, "page", queryfilter.DefaultPage, "page to fetch")
	fs.Uint64Var(&f.limit, "limit", queryfilter.DefaultLimit, "results per page")
	fs.Uint64Var(&f.createdBefore, "created-before", 0, "only records created before this unix timestamp")
	fs.Uint64Var(&f.createdAfter, "created-after", 0, "only records created after this unix timestamp")
	fs.Uint64Var(&f.updatedBefore, "updated-before", 0, "only records updated before this unix timestamp")
	fs.Uint64Var(&f.updatedAfter, "updated-after", 0, "only records updated after this unix timestamp")
	fs.BoolVar(&f.includeArchived, "include-archived", false, "include archived records")
	fs.StringVar(&f.sortBy, "sort", string(queryfilter.SortAscending), "sort direction (asc or desc)")

	return f
}

func (f *filterFlags) toFilter() *queryfilter.QueryFilter {
	filter := queryfilter.Default()

	if f.page > 0 {
		filter.Page = f.page
	}
	if f.limit > 0 {
		filter.Limit = f.limit
	}
	filter.CreatedBefore = f.createdBefore
	filter.CreatedAfter = f.createdAfter
	filter.UpdatedBefore = f.updatedBefore
	filter.UpdatedAfter = f.updatedAfter
	filter.IncludeArchived = f.includeArchived

	if dir, ok := queryfilter.ParseSortDirection(f.sortBy); ok {
		filter.SortBy = dir
	}

	return &filter
}
