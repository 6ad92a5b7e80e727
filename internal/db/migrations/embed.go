// Package migrations holds the goose migrations for the PostgreSQL option
// store.
package migrations

import "embed"

// FS contains every migration file, at its root.
//
//go:embed *.sql
var FS embed.FS
