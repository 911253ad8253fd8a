package migrations

import "embed"

// FS contains embedded SQLite migrations for the Level Up store.
//
//go:embed *.sql
var FS embed.FS
