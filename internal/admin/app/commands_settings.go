package app

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/verygoodsoftwarenotvirus/todo/internal/admin/i18n"
)

func (app *Application) runSettings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	language := fs.String("language", "", "display language tag, e.g. en-US")
	theme := fs.String("theme", "", "color theme (system, light, dark)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	current := app.settings.Current()

	if *language == "" && *theme == "" {
		fmt.Fprintf(app.out, "language: %s (available: %s)\n",
			current.Language, strings.Join(i18n.Supported(), ", "))
		fmt.Fprintf(app.out, "theme: %s\n", current.Theme)
		return nil
	}

	next := current
	if *language != "" {
		next.Language = *language
	}
	if *theme != "" {
		next.Theme = *theme
	}

	if err := app.settings.Save(ctx, next); err != nil {
		return err
	}

	// Relabel immediately so the change shows in this run's output.
	app.t = i18n.For(next.Language)

	saved := app.settings.Current()
	fmt.Fprintf(app.out, "language: %s\n", saved.Language)
	fmt.Fprintf(app.out, "theme: %s\n", saved.Theme)
	return nil
}
