package storage

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/mixmentor/mixmentor/pkg/types"
)

// BootstrapState holds everything needed to warm the in-memory engine
// at startup.
type BootstrapState struct {
	Items   []types.SearchableItem
	History []byte
}

// Bootstrap loads the catalog and the persisted search history snapshot
// in parallel. A missing history snapshot is not an error; History is
// left nil in that case.
func Bootstrap(ctx context.Context, store Store) (*BootstrapState, error) {
	state := &BootstrapState{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := store.LoadCatalog(ctx)
		if err != nil {
			return err
		}
		state.Items = items
		return nil
	})
	g.Go(func() error {
		data, err := store.LoadSnapshot(ctx, HistorySnapshotName)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		state.History = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return state, nil
}
