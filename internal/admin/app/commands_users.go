package app

import (
	"context"
	"flag"
	"fmt"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/tabular"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

func (app *Application) runUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("users: expected a subcommand (list, get, search, archive, ban, audit)")
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		return app.runUsersList(ctx, rest)
	case "get":
		id, err := parseIDArg(rest, "user")
		if err != nil {
			return err
		}
		user, err := app.client.GetUser(ctx, id)
		if err != nil {
			return err
		}
		app.renderTable(
			tabular.UserHeaders(app.t.Users),
			[][]tabular.Cell{tabular.UserRow(user, app.location())},
		)
		return nil
	case "search":
		return app.runUsersSearch(ctx, rest)
	case "archive":
		id, err := parseIDArg(rest, "user")
		if err != nil {
			return err
		}
		return app.client.ArchiveUser(ctx, id)
	case "ban":
		return app.runUsersBan(ctx, rest)
	case "audit":
		id, err := parseIDArg(rest, "user")
		if err != nil {
			return err
		}
		entries, err := app.client.GetAuditLogForUser(ctx, id)
		if err != nil {
			return err
		}
		app.renderAuditLogEntries(entries)
		return nil
	default:
		return fmt.Errorf("users: unknown subcommand %q", sub)
	}
}

func (app *Application) runUsersList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users list", flag.ContinueOnError)
	filter := addFilterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := app.client.GetUsers(ctx, filter.toFilter())
	if err != nil {
		return err
	}

	rows := make([][]tabular.Cell, 0, len(list.Users))
	for _, user := range list.Users {
		rows = append(rows, tabular.UserRow(user, app.location()))
	}

	app.renderTable(tabular.UserHeaders(app.t.Users), rows)
	app.renderPagination(list.Page, list.Limit, list.FilteredCount, list.TotalCount)
	return nil
}

func (app *Application) runUsersSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users search", flag.ContinueOnError)
	query := fs.String("q", "", "username to search for")
	if err := fs.Parse(args); err != nil {
		return err
	}

	users, err := app.client.SearchForUsersByUsername(ctx, *query)
	if err != nil {
		return err
	}

	rows := make([][]tabular.Cell, 0, len(users))
	for _, user := range users {
		rows = append(rows, tabular.UserRow(user, app.location()))
	}

	app.renderTable(tabular.UserHeaders(app.t.Users), rows)
	return nil
}

func (app *Application) runUsersBan(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users ban", flag.ContinueOnError)
	id := fs.Uint64("id", 0, "user ID to ban")
	reason := fs.String("reason", "", "reason recorded in the audit log")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id == 0 {
		return fmt.Errorf("users ban: -id is required")
	}

	if err := app.client.UpdateUserReputation(ctx, &types.UserReputationUpdateInput{
		TargetUserID:  *id,
		NewReputation: types.BannedAccountStatus,
		Reason:        *reason,
	}); err != nil {
		return err
	}

	fmt.Fprintf(app.out, "user %d banned\n", *id)
	return nil
}
