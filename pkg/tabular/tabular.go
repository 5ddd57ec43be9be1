// Package tabular maps domain records onto the generic header/cell structures
// the admin table views consume. Projections are pure: a headers function and
// a row function per entity type, guaranteed to line up positionally so that
// filtering both by the admin-only flag preserves column alignment.
package tabular

// Header describes one table column.
type Header struct {
	// Label is the display text, already translated.
	Label string

	// AdminOnly marks columns that only render in the elevated admin view.
	AdminOnly bool
}

// Cell is one rendered field of one row.
type Cell struct {
	// FieldName is the wire-format name of the projected field.
	FieldName string

	// Content is the rendered string value.
	Content string

	// AdminOnly must match the corresponding Header's flag.
	AdminOnly bool

	// IsJSON marks structured content so views can format it differently.
	IsJSON bool
}

// VisibleHeaders filters headers for the given view. The admin view sees
// everything; the regular view drops admin-only columns.
func VisibleHeaders(headers []Header, admin bool) []Header {
	if admin {
		return headers
	}

	out := make([]Header, 0, len(headers))
	for _, h := range headers {
		if !h.AdminOnly {
			out = append(out, h)
		}
	}
	return out
}

// VisibleCells filters cells with the same predicate as VisibleHeaders, which
// is what keeps columns aligned after filtering.
func VisibleCells(cells []Cell, admin bool) []Cell {
	if admin {
		return cells
	}

	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if !c.AdminOnly {
			out = append(out, c)
		}
	}
	return out
}
