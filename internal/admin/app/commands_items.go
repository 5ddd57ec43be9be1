package app

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/tabular"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

// parseIDArg reads the single positional ID argument a get/archive/audit
// subcommand requires.
func parseIDArg(args []string, noun string) (uint64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("expected a %s ID", noun)
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s ID %q", noun, args[0])
	}

	return id, nil
}

func (app *Application) runItems(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("items: expected a subcommand (list, get, create, update, archive, search, audit)")
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		return app.runItemsList(ctx, rest)
	case "get":
		id, err := parseIDArg(rest, "item")
		if err != nil {
			return err
		}
		item, err := app.client.GetItem(ctx, id)
		if err != nil {
			return err
		}
		app.renderTable(
			tabular.ItemHeaders(app.t.Items),
			[][]tabular.Cell{tabular.ItemRow(item, app.location())},
		)
		return nil
	case "create":
		return app.runItemsCreate(ctx, rest)
	case "update":
		return app.runItemsUpdate(ctx, rest)
	case "archive":
		id, err := parseIDArg(rest, "item")
		if err != nil {
			return err
		}
		return app.client.ArchiveItem(ctx, id)
	case "search":
		return app.runItemsSearch(ctx, rest)
	case "audit":
		id, err := parseIDArg(rest, "item")
		if err != nil {
			return err
		}
		entries, err := app.client.GetAuditLogForItem(ctx, id)
		if err != nil {
			return err
		}
		app.renderAuditLogEntries(entries)
		return nil
	default:
		return fmt.Errorf("items: unknown subcommand %q", sub)
	}
}

func (app *Application) runItemsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("items list", flag.ContinueOnError)
	filter := addFilterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := app.client.GetItems(ctx, filter.toFilter())
	if err != nil {
		return err
	}

	rows := make([][]tabular.Cell, 0, len(list.Items))
	for _, item := range list.Items {
		rows = append(rows, tabular.ItemRow(item, app.location()))
	}

	app.renderTable(tabular.ItemHeaders(app.t.Items), rows)
	app.renderPagination(list.Page, list.Limit, list.FilteredCount, list.TotalCount)
	return nil
}

func (app *Application) runItemsCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("items create", flag.ContinueOnError)
	name := fs.String("name", "", "item name")
	details := fs.String("details", "", "item details")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := app.client.CreateItem(ctx, &types.ItemCreationInput{
		Name:    *name,
		Details: *details,
	})
	if err != nil {
		return err
	}

	app.renderTable(
		tabular.ItemHeaders(app.t.Items),
		[][]tabular.Cell{tabular.ItemRow(created, app.location())},
	)
	return nil
}

func (app *Application) runItemsUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("items update", flag.ContinueOnError)
	id := fs.Uint64("id", 0, "item ID")
	name := fs.String("name", "", "new item name (unchanged when empty)")
	details := fs.String("details", "", "new item details (unchanged when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == 0 {
		return fmt.Errorf("items update: -id is required")
	}

	item, err := app.client.GetItem(ctx, *id)
	if err != nil {
		return err
	}

	if *name != "" {
		item.Name = *name
	}
	if *details != "" {
		item.Details = *details
	}

	if err := app.client.UpdateItem(ctx, item); err != nil {
		return err
	}

	app.renderTable(
		tabular.ItemHeaders(app.t.Items),
		[][]tabular.Cell{tabular.ItemRow(item, app.location())},
	)
	return nil
}

func (app *Application) runItemsSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("items search", flag.ContinueOnError)
	query := fs.String("q", "", "search query")
	limit := fs.Uint64("limit", 0, "maximum results")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, err := app.client.SearchItems(ctx, *query, *limit)
	if err != nil {
		return err
	}

	rows := make([][]tabular.Cell, 0, len(items))
	for _, item := range items {
		rows = append(rows, tabular.ItemRow(item, app.location()))
	}

	app.renderTable(tabular.ItemHeaders(app.t.Items), rows)
	return nil
}

func (app *Application) renderAuditLogEntries(entries []*types.AuditLogEntry) {
	rows := make([][]tabular.Cell, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, tabular.AuditLogEntryRow(entry, app.location()))
	}

	app.renderTable(tabular.AuditLogEntryHeaders(app.t.AuditLogEntries), rows)
}
