// Package migrations embeds the schema for the durable local-state store.
// The statements are portable between sqlite3 and postgres.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
