package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrateUp brings the schema to the latest version. The scripts use
// IF NOT EXISTS, so running it on every open is safe.
func MigrateUp(db *sql.DB) error {
	return runScripts(db, ".up.sql")
}

// MigrateDown drops every table.
func MigrateDown(db *sql.DB) error {
	return runScripts(db, ".down.sql")
}

func runScripts(db *sql.DB, suffix string) error {
	names, err := fs.Glob(migrationFS, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		script, err := migrationFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
