// Package migrations holds the SurrealDB schema for Level Up.
package migrations

import "embed"

// FS contains the embedded SurrealDB schema files.
//
//go:embed *.surql
var FS embed.FS
