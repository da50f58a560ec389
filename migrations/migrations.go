// Package migrations embeds the goose SQL migrations for the typing game
// schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
