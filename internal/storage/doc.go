// Package storage provides SQLite-backed persistence for profiles,
// placement results, catalog items, and search history snapshots.
//
// Two build modes are supported:
//
//   - Pure Go (default): uses modernc.org/sqlite, no cgo required
//   - CGO: built with -tags cgo_sqlite, uses mattn/go-sqlite3
//
// The store keeps a single connection open with WAL journaling and
// foreign keys enabled. Profiles, placements, and catalog items are
// stored as JSON documents keyed by id; the search history tracker
// persists its full snapshot under a named blob.
//
// Example:
//
//	store, err := storage.Open(ctx, "/var/lib/mixmentor/catalog.db")
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	items, err := store.LoadCatalog(ctx)
package storage
