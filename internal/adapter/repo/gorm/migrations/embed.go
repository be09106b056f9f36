package migrations

import "embed"

// FS holds the bundled Postgres schema migrations.
//
//go:embed *.sql
var FS embed.FS
