// Package migrations embeds the cache database migration files.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
