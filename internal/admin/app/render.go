package app

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/tabular"
)

// renderTable prints headers and rows through a tabwriter, dropping
// admin-only columns unless admin mode is on.
func (app *Application) renderTable(headers []tabular.Header, rows [][]tabular.Cell) {
	admin := app.adminMode.Get()

	visibleHeaders := tabular.VisibleHeaders(headers, admin)

	w := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)

	for i, h := range visibleHeaders {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h.Label)
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		for i, cell := range tabular.VisibleCells(row, admin) {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell.Content)
		}
		fmt.Fprintln(w)
	}

	_ = w.Flush()

	if len(rows) == 0 {
		fmt.Fprintln(app.out, app.t.Console.NoResults)
	}
}

// renderPagination prints the page footer for list results.
func (app *Application) renderPagination(page, limit, filteredCount, totalCount uint64) {
	fmt.Fprintf(app.out, "%s %d, %d %s (%d/%d)\n",
		app.t.Console.Page, page, limit, app.t.Console.PerPage, filteredCount, totalCount)
}

// location is the timezone list timestamps render in.
func (app *Application) location() *time.Location {
	return time.Local
}
