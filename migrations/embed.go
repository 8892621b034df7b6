// Package migrations holds the versioned SQL schema. The server applies
// pending migrations on startup; the CLI drives up/down/force explicitly.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
