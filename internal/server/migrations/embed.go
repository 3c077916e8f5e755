// Package migrations embeds the goose SQL migrations for each supported
// database dialect. Files for PostgreSQL live under postgres/, files for
// SQLite under sqlite/.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

// Directories inside Migrations, per dialect.
const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
