package app

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/verygoodsoftwarenotvirus/todo/pkg/tabular"
	"github.com/verygoodsoftwarenotvirus/todo/pkg/types"
)

func (app *Application) runWebhooks(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("webhooks: expected a subcommand (list, get, create, update, archive, audit)")
	}

	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		return app.runWebhooksList(ctx, rest)
	case "get":
		id, err := parseIDArg(rest, "webhook")
		if err != nil {
			return err
		}
		webhook, err := app.client.GetWebhook(ctx, id)
		if err != nil {
			return err
		}
		app.renderTable(
			tabular.WebhookHeaders(app.t.Webhooks),
			[][]tabular.Cell{tabular.WebhookRow(webhook, app.location())},
		)
		return nil
	case "create":
		return app.runWebhooksCreate(ctx, rest)
	case "update":
		return app.runWebhooksUpdate(ctx, rest)
	case "archive":
		id, err := parseIDArg(rest, "webhook")
		if err != nil {
			return err
		}
		return app.client.ArchiveWebhook(ctx, id)
	case "audit":
		id, err := parseIDArg(rest, "webhook")
		if err != nil {
			return err
		}
		entries, err := app.client.GetAuditLogForWebhook(ctx, id)
		if err != nil {
			return err
		}
		app.renderAuditLogEntries(entries)
		return nil
	default:
		return fmt.Errorf("webhooks: unknown subcommand %q", sub)
	}
}

func (app *Application) runWebhooksList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("webhooks list", flag.ContinueOnError)
	filter := addFilterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := app.client.GetWebhooks(ctx, filter.toFilter())
	if err != nil {
		return err
	}

	rows := make([][]tabular.Cell, 0, len(list.Webhooks))
	for _, webhook := range list.Webhooks {
		rows = append(rows, tabular.WebhookRow(webhook, app.location()))
	}

	app.renderTable(tabular.WebhookHeaders(app.t.Webhooks), rows)
	app.renderPagination(list.Page, list.Limit, list.FilteredCount, list.TotalCount)
	return nil
}

func (app *Application) runWebhooksCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("webhooks create", flag.ContinueOnError)
	name := fs.String("name", "", "webhook name")
	contentType := fs.String("content-type", "application/json", "delivery content type")
	url := fs.String("url", "", "delivery URL")
	method := fs.String("method", "POST", "delivery HTTP method")
	events := fs.String("events", "", "comma-separated event names")
	dataTypes := fs.String("data-types", "", "comma-separated data types")
	topics := fs.String("topics", "", "comma-separated topics")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := app.client.CreateWebhook(ctx, &types.WebhookCreationInput{
		Name:        *name,
		ContentType: *contentType,
		URL:         *url,
		Method:      *method,
		Events:      splitList(*events),
		DataTypes:   splitList(*dataTypes),
		Topics:      splitList(*topics),
	})
	if err != nil {
		return err
	}

	app.renderTable(
		tabular.WebhookHeaders(app.t.Webhooks),
		[][]tabular.Cell{tabular.WebhookRow(created, app.location())},
	)
	return nil
}

func (app *Application) runWebhooksUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("webhooks update", flag.ContinueOnError)
	id := fs.Uint64("id", 0, "webhook ID")
	name := fs.String("name", "", "new name, unchanged when omitted")
	url := fs.String("url", "", "new delivery URL, unchanged when omitted")
	method := fs.String("method", "", "new delivery HTTP method, unchanged when omitted")
	contentType := fs.String("content-type", "", "new delivery content type, unchanged when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("webhooks update: -id is required")
	}

	webhook, err := app.client.GetWebhook(ctx, *id)
	if err != nil {
		return err
	}

	if *name != "" {
		webhook.Name = *name
	}
	if *url != "" {
		webhook.URL = *url
	}
	if *method != "" {
		webhook.Method = *method
	}
	if *contentType != "" {
		webhook.ContentType = *contentType
	}

	if err := app.client.UpdateWebhook(ctx, webhook); err != nil {
		return err
	}

	app.renderTable(
		tabular.WebhookHeaders(app.t.Webhooks),
		[][]tabular.Cell{tabular.WebhookRow(webhook, app.location())},
	)
	return nil
}

// splitList parses a comma-separated flag value, dropping empty segments.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
