package storage

import (
	"context"
	"errors"

	"github.com/mixmentor/mixmentor/pkg/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// HistorySnapshotName keys the persisted search history blob.
const HistorySnapshotName = "search_history"

// Store is the persistence interface for profiles, placements, catalog
// items, and named snapshots.
type Store interface {
	// SaveProfile upserts a personalization profile for a user.
	SaveProfile(ctx context.Context, userID string, profile *types.PersonalizationProfile) error

	// GetProfile retrieves a user's profile. Returns ErrNotFound when
	// the user has no stored profile.
	GetProfile(ctx context.Context, userID string) (*types.PersonalizationProfile, error)

	// SavePlacement upserts a placement result for a user.
	SavePlacement(ctx context.Context, userID string, placement *types.PlacementResult) error

	// GetPlacement retrieves a user's placement result. Returns
	// ErrNotFound when the user has never been placed.
	GetPlacement(ctx context.Context, userID string) (*types.PlacementResult, error)

	// UpsertItem inserts or replaces a catalog item.
	UpsertItem(ctx context.Context, item types.SearchableItem) error

	// DeleteItem removes a catalog item. Returns false when no item
	// with the given id exists.
	DeleteItem(ctx context.Context, id string) (bool, error)

	// LoadCatalog returns every stored catalog item.
	LoadCatalog(ctx context.Context) ([]types.SearchableItem, error)

	// SaveSnapshot persists an opaque blob under a name.
	SaveSnapshot(ctx context.Context, name string, data []byte) error

	// LoadSnapshot retrieves a named blob. Returns ErrNotFound when no
	// snapshot has been saved under the name.
	LoadSnapshot(ctx context.Context, name string) ([]byte, error)

	// Stats reports row counts for monitoring.
	Stats(ctx context.Context) (StoreStats, error)

	// Close releases the underlying database connection.
	Close() error
}

// StoreStats summarizes stored record counts.
type StoreStats struct {
	Profiles     int `json:"profiles"`
	Placements   int `json:"placements"`
	CatalogItems int `json:"catalog_items"`
}
