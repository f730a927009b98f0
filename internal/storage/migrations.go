package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Migration represents a single schema migration step.
type Migration struct {
	Version     string
	Description string
	Up          string
	Down        string
}

const migrationV1Up = `
CREATE TABLE IF NOT EXISTS schema_version (
	version TEXT PRIMARY KEY,
	applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS profiles (
	user_id TEXT PRIMARY KEY,
	profile TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS placements (
	user_id TEXT PRIMARY KEY,
	placement TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS catalog_items (
	id TEXT PRIMARY KEY,
	category TEXT NOT NULL,
	item TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_catalog_items_category ON catalog_items(category);

CREATE TABLE IF NOT EXISTS snapshots (
	name TEXT PRIMARY KEY,
	data TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

const migrationV1Down = `
DROP TABLE IF EXISTS snapshots;
DROP INDEX IF EXISTS idx_catalog_items_category;
DROP TABLE IF EXISTS catalog_items;
DROP TABLE IF EXISTS placements;
DROP TABLE IF EXISTS profiles;
DROP TABLE IF EXISTS schema_version;
`

// AllMigrations lists every migration in ascending version order.
var AllMigrations = []Migration{
	{
		Version:     "1.0.0",
		Description: "Initial schema: profiles, placements, catalog items, snapshots",
		Up:          migrationV1Up,
		Down:        migrationV1Down,
	},
}

// ApplyMigrations brings the database schema up to the latest version.
// Each pending migration runs in its own transaction.
func ApplyMigrations(ctx context.Context, db *sql.DB) error {
	current, err := currentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to determine schema version: %w", err)
	}

	for _, m := range AllMigrations {
		target, err := semver.NewVersion(m.Version)
		if err != nil {
			return fmt.Errorf("invalid migration version %q: %w", m.Version, err)
		}
		if current != nil && !target.GreaterThan(current) {
			continue
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %s: %w", m.Version, err)
		}
		if _, err := tx.ExecContext(ctx, m.Up); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", m.Version, err)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", m.Version, err)
		}
		current = target
	}

	return nil
}

// RollbackMigration reverses the most recently applied migration.
func RollbackMigration(ctx context.Context, db *sql.DB) error {
	current, err := currentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to determine schema version: %w", err)
	}
	if current == nil {
		return fmt.Errorf("no migrations to roll back")
	}

	for i := len(AllMigrations) - 1; i >= 0; i-- {
		m := AllMigrations[i]
		target, err := semver.NewVersion(m.Version)
		if err != nil {
			return fmt.Errorf("invalid migration version %q: %w", m.Version, err)
		}
		if !target.Equal(current) {
			continue
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin rollback of %s: %w", m.Version, err)
		}
		if _, err := tx.ExecContext(ctx, m.Down); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("rollback of %s failed: %w", m.Version, err)
		}
		// The down script may have dropped schema_version itself.
		_, delErr := tx.ExecContext(ctx,
			"DELETE FROM schema_version WHERE version = ?", m.Version)
		if delErr != nil && !isMissingTable(delErr) {
			_ = tx.Rollback()
			return fmt.Errorf("failed to unrecord migration %s: %w", m.Version, delErr)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit rollback of %s: %w", m.Version, err)
		}
		return nil
	}

	return fmt.Errorf("no migration found for version %s", current)
}

// currentVersion returns the highest applied schema version, or nil when
// the database has never been migrated.
func currentVersion(ctx context.Context, db *sql.DB) (*semver.Version, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_version")
	if err != nil {
		if isMissingTable(err) {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	var highest *semver.Version
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		v, err := semver.NewVersion(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid recorded version %q: %w", raw, err)
		}
		if highest == nil || v.GreaterThan(highest) {
			highest = v
		}
	}
	return highest, rows.Err()
}

func isMissingTable(err error) bool {
	if err == nil {
		return false
	}
	// Both drivers report a missing table with this substring.
	return strings.Contains(strings.ToLower(err.Error()), "no such table")
}
