package app

import (
	"context"
	"flag"
	"fmt"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/tabular"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

func (app *Application) runAPIClients(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("api-clients: expected a subcommand (list, get, create, archive, audit)")
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		return app.runAPIClientsList(ctx, rest)
	case "get":
		id, err := parseIDArg(rest, "API client")
		if err != nil {
			return err
		}
		client, err := app.client.GetAPIClient(ctx, id)
		if err != nil {
			return err
		}
		app.renderTable(
			tabular.APIClientHeaders(app.t.APIClients),
			[][]tabular.Cell{tabular.APIClientRow(client, app.location())},
		)
		return nil
	case "create":
		return app.runAPIClientsCreate(ctx, rest)
	case "archive":
		id, err := parseIDArg(rest, "API client")
		if err != nil {
			return err
		}
		return app.client.ArchiveAPIClient(ctx, id)
	case "audit":
		id, err := parseIDArg(rest, "API client")
		if err != nil {
			return err
		}
		entries, err := app.client.GetAuditLogForAPIClient(ctx, id)
		if err != nil {
			return err
		}
		app.renderAuditLogEntries(entries)
		return nil
	default:
		return fmt.Errorf("api-clients: unknown subcommand %q", sub)
	}
}

func (app *Application) runAPIClientsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("api-clients list", flag.ContinueOnError)
	filter := addFilterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := app.client.GetAPIClients(ctx, filter.toFilter())
	if err != nil {
		return err
	}

	rows := make([][]tabular.Cell, 0, len(list.Clients))
	for _, client := range list.Clients {
		rows = append(rows, tabular.APIClientRow(client, app.location()))
	}

	app.renderTable(tabular.APIClientHeaders(app.t.APIClients), rows)
	app.renderPagination(list.Page, list.Limit, list.FilteredCount, list.TotalCount)
	return nil
}

func (app *Application) runAPIClientsCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("api-clients create", flag.ContinueOnError)
	name := fs.String("name", "", "client name")
	username := fs.String("username", "", "username, credentials are re-confirmed for client creation")
	password := fs.String("password", "", "password")
	totpToken := fs.String("totp", "", "current two factor token, derived from the stored secret when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token := *totpToken
	if token == "" {
		generated, err := app.generateTOTPToken(ctx)
		if err != nil {
			return err
		}
		token = generated
	}

	created, err := app.client.CreateAPIClient(ctx, &types.APIClientCreationInput{
		Name:      *name,
		Username:  *username,
		Password:  *password,
		TOTPToken: token,
	})
	if err != nil {
		return err
	}

	// The secret is only ever disclosed in this response.
	fmt.Fprintf(app.out, "client ID: %s\n", created.ClientID)
	fmt.Fprintf(app.out, "client secret: %s\n", created.ClientSecret)
	return nil
}
