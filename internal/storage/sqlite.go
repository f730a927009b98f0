package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mixmentor/mixmentor/pkg/types"
)

// SQLiteStore implements Store on top of a single SQLite database file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ Store = (*SQLiteStore)(nil)

// Open creates or opens the SQLite database at path and applies any
// pending schema migrations.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := openDatabase(path)
	if err != nil {
		return nil, err
	}

	if err := ApplyMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// openDatabase opens the file with WAL journaling and foreign keys
// enabled. The pool is capped at one connection: SQLite serializes
// writers anyway, and a single connection keeps pragma state stable.
func openDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set %s: %w", pragma, err)
		}
	}

	return db, nil
}

// Close releases the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// SaveProfile upserts a personalization profile for a user.
func (s *SQLiteStore) SaveProfile(ctx context.Context, userID string, profile *types.PersonalizationProfile) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, profile, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			profile = excluded.profile,
			updated_at = excluded.updated_at
	`, userID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a user's profile.
func (s *SQLiteStore) GetProfile(ctx context.Context, userID string) (*types.PersonalizationProfile, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT profile FROM profiles WHERE user_id = ?", userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile types.PersonalizationProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// SavePlacement upserts a placement result for a user.
func (s *SQLiteStore) SavePlacement(ctx context.Context, userID string, placement *types.PlacementResult) error {
	if userID == "" {
		return fmt.Errorf("user id is required")
	}
	data, err := json.Marshal(placement)
	if err != nil {
		return fmt.Errorf("failed to marshal placement: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO placements (user_id, placement, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			placement = excluded.placement,
			created_at = excluded.created_at
	`, userID, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save placement: %w", err)
	}
	return nil
}

// GetPlacement retrieves a user's placement result.
func (s *SQLiteStore) GetPlacement(ctx context.Context, userID string) (*types.PlacementResult, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT placement FROM placements WHERE user_id = ?", userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load placement: %w", err)
	}

	var placement types.PlacementResult
	if err := json.Unmarshal([]byte(raw), &placement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal placement: %w", err)
	}
	return &placement, nil
}

// UpsertItem inserts or replaces a catalog item.
func (s *SQLiteStore) UpsertItem(ctx context.Context, item types.SearchableItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item %s: %w", item.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO catalog_items (id, category, item, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category = excluded.category,
			item = excluded.item,
			updated_at = excluded.updated_at
	`, item.ID, string(item.Category), string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert item %s: %w", item.ID, err)
	}
	return nil
}

// DeleteItem removes a catalog item by id.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM catalog_items WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete item %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return n > 0, nil
}

// LoadCatalog returns every stored catalog item in insertion order.
func (s *SQLiteStore) LoadCatalog(ctx context.Context) ([]types.SearchableItem, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT item FROM catalog_items ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	defer rows.Close()

	var items []types.SearchableItem
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		var item types.SearchableItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal catalog item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SaveSnapshot persists an opaque blob under a name.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("snapshot name is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, name, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", name, err)
	}
	return nil
}

// LoadSnapshot retrieves a named blob.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context, name string) ([]byte, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM snapshots WHERE name = ?", name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", name, err)
	}
	return []byte(raw), nil
}

// Stats reports row counts for monitoring.
func (s *SQLiteStore) Stats(ctx context.Context) (StoreStats, error) {
	var stats StoreStats
	counts := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(*) FROM profiles", &stats.Profiles},
		{"SELECT COUNT(*) FROM placements", &stats.Placements},
		{"SELECT COUNT(*) FROM catalog_items", &stats.CatalogItems},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dst); err != nil {
			return StoreStats{}, fmt.Errorf("failed to count rows: %w", err)
		}
	}
	return stats, nil
}
