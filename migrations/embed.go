// Package migrations embeds the audit database schema into the binary.
package migrations

import "embed"

// FS holds the migration files at its root; pass "." as the directory.
//
//go:embed *.sql
var FS embed.FS
