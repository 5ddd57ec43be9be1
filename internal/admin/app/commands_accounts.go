package app

import (
	"context"
	"flag"
	"fmt"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/tabular"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

func (app *Application) runAccounts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("accounts: expected a subcommand (list, get, create, update, archive, default, audit)")
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		return app.runAccountsList(ctx, rest)
	case "get":
		id, err := parseIDArg(rest, "account")
		if err != nil {
			return err
		}
		account, err := app.client.GetAccount(ctx, id)
		if err != nil {
			return err
		}
		app.renderTable(
			tabular.AccountHeaders(app.t.Accounts),
			[][]tabular.Cell{tabular.AccountRow(account, app.location())},
		)
		return nil
	case "create":
		return app.runAccountsCreate(ctx, rest)
	case "update":
		return app.runAccountsUpdate(ctx, rest)
	case "archive":
		id, err := parseIDArg(rest, "account")
		if err != nil {
			return err
		}
		return app.client.ArchiveAccount(ctx, id)
	case "default":
		id, err := parseIDArg(rest, "account")
		if err != nil {
			return err
		}
		return app.client.MarkAccountAsDefault(ctx, id)
	case "audit":
		id, err := parseIDArg(rest, "account")
		if err != nil {
			return err
		}
		entries, err := app.client.GetAuditLogForAccount(ctx, id)
		if err != nil {
			return err
		}
		app.renderAuditLogEntries(entries)
		return nil
	default:
		return fmt.Errorf("accounts: unknown subcommand %q", sub)
	}
}

func (app *Application) runAccountsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("accounts list", flag.ContinueOnError)
	filter := addFilterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := app.client.GetAccounts(ctx, filter.toFilter())
	if err != nil {
		return err
	}

	rows := make([][]tabular.Cell, 0, len(list.Accounts))
	for _, account := range list.Accounts {
		rows = append(rows, tabular.AccountRow(account, app.location()))
	}

	app.renderTable(tabular.AccountHeaders(app.t.Accounts), rows)
	app.renderPagination(list.Page, list.Limit, list.FilteredCount, list.TotalCount)
	return nil
}

func (app *Application) runAccountsUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("accounts update", flag.ContinueOnError)
	id := fs.Uint64("id", 0, "account ID")
	name := fs.String("name", "", "new name, unchanged when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("accounts update: -id is required")
	}

	account, err := app.client.GetAccount(ctx, *id)
	if err != nil {
		return err
	}

	if *name != "" {
		account.Name = *name
	}

	if err := app.client.UpdateAccount(ctx, account); err != nil {
		return err
	}

	app.renderTable(
		tabular.AccountHeaders(app.t.Accounts),
		[][]tabular.Cell{tabular.AccountRow(account, app.location())},
	)
	return nil
}

func (app *Application) runAccountsCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("accounts create", flag.ContinueOnError)
	name := fs.String("name", "", "account name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := app.client.CreateAccount(ctx, &types.AccountCreationInput{Name: *name})
	if err != nil {
		return err
	}

	app.renderTable(
		tabular.AccountHeaders(app.t.Accounts),
		[][]tabular.Cell{tabular.AccountRow(created, app.location())},
	)
	return nil
}
