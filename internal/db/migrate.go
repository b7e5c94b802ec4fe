package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every open. Statements must be
// idempotent (CREATE ... IF NOT EXISTS) since there is no version table.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
		id         TEXT PRIMARY KEY,
		key        TEXT NOT NULL UNIQUE,
		version    TEXT NOT NULL,
		items      TEXT NOT NULL,
		saved_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshots_key ON snapshots(key)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
