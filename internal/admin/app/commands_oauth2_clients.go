package app

import (
	"context"
	"flag"
	"fmt"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/tabular"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

func (app *Application) runOAuth2Clients(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("oauth2-clients: expected a subcommand (list, get, create, archive, audit)")
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		return app.runOAuth2ClientsList(ctx, rest)
	case "get":
		id, err := parseIDArg(rest, "OAuth2 client")
		if err != nil {
			return err
		}
		client, err := app.client.GetOAuth2Client(ctx, id)
		if err != nil {
			return err
		}
		app.renderTable(
			tabular.OAuth2ClientHeaders(app.t.OAuth2Clients),
			[][]tabular.Cell{tabular.OAuth2ClientRow(client, app.location())},
		)
		return nil
	case "create":
		return app.runOAuth2ClientsCreate(ctx, rest)
	case "archive":
		id, err := parseIDArg(rest, "OAuth2 client")
		if err != nil {
			return err
		}
		return app.client.ArchiveOAuth2Client(ctx, id)
	case "audit":
		id, err := parseIDArg(rest, "OAuth2 client")
		if err != nil {
			return err
		}
		entries, err := app.client.GetAuditLogForOAuth2Client(ctx, id)
		if err != nil {
			return err
		}
		app.renderAuditLogEntries(entries)
		return nil
	default:
		return fmt.Errorf("oauth2-clients: unknown subcommand %q", sub)
	}
}

func (app *Application) runOAuth2ClientsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("oauth2-clients list", flag.ContinueOnError)
	filter := addFilterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := app.client.GetOAuth2Clients(ctx, filter.toFilter())
	if err != nil {
		return err
	}

	rows := make([][]tabular.Cell, 0, len(list.Clients))
	for _, client := range list.Clients {
		rows = append(rows, tabular.OAuth2ClientRow(client, app.location()))
	}

	app.renderTable(tabular.OAuth2ClientHeaders(app.t.OAuth2Clients), rows)
	app.renderPagination(list.Page, list.Limit, list.FilteredCount, list.TotalCount)
	return nil
}

func (app *Application) runOAuth2ClientsCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("oauth2-clients create", flag.ContinueOnError)
	name := fs.String("name", "", "client name")
	redirectURI := fs.String("redirect-uri", "", "redirect URI")
	scopes := fs.String("scopes", "", "comma separated scopes")
	username := fs.String("username", "", "username, credentials are re-confirmed for client registration")
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

	created, err := app.client.CreateOAuth2Client(ctx, &types.OAuth2ClientCreationInput{
		Name:        *name,
		RedirectURI: *redirectURI,
		Scopes:      splitList(*scopes),
		Username:    *username,
		Password:    *password,
		TOTPToken:   token,
	})
	if err != nil {
		return err
	}

	app.renderTable(
		tabular.OAuth2ClientHeaders(app.t.OAuth2Clients),
		[][]tabular.Cell{tabular.OAuth2ClientRow(created, app.location())},
	)
	fmt.Fprintf(app.out, "client secret: %s\n", created.ClientSecret)
	return nil
}
