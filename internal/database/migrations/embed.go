// Package migrations embeds the bootstrap SQL executed by cmd/migrate.
package migrations

import "embed"

//go:embed schema.sql
var Files embed.FS
