package app

import (
	"context"
	"flag"
	"fmt"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/tabular"
)

func (app *Application) runAuditLog(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("audit: expected a subcommand (list, get)")
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		return app.runAuditLogList(ctx, rest)
	case "get":
		id, err := parseIDArg(rest, "audit log entry")
		if err != nil {
			return err
		}
		entry, err := app.client.GetAuditLogEntry(ctx, id)
		if err != nil {
			return err
		}
		app.renderTable(
			tabular.AuditLogEntryHeaders(app.t.AuditLogEntries),
			[][]tabular.Cell{tabular.AuditLogEntryRow(entry, app.location())},
		)
		return nil
	default:
		return fmt.Errorf("audit: unknown subcommand %q", sub)
	}
}

func (app *Application) runAuditLogList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("audit list", flag.ContinueOnError)
	filter := addFilterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := app.client.GetAuditLogEntries(ctx, filter.toFilter())
	if err != nil {
		return err
	}

	rows := make([][]tabular.Cell, 0, len(list.Entries))
	for _, entry := range list.Entries {
		rows = append(rows, tabular.AuditLogEntryRow(entry, app.location()))
	}

	app.renderTable(tabular.AuditLogEntryHeaders(app.t.AuditLogEntries), rows)
	app.renderPagination(list.Page, list.Limit, list.FilteredCount, list.TotalCount)
	return nil
}
