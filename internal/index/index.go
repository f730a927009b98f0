package index

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mixmentor/mixmentor/internal/history"
	"github.com/mixmentor/mixmentor/pkg/types"
)

// cacheSize bounds the LRU of cached search results.
const cacheSize = 512

// Index is the in-memory searchable item index. All methods are safe for
// concurrent use; mutations purge the result cache.
type Index struct {
	mu    sync.RWMutex
	items map[string]types.SearchableItem
	order []string // insertion order, the deterministic tiebreak

	tracker *history.Tracker // optional, may be nil
	cache   *lru.Cache[[32]byte, []types.SearchableItem]
	now     func() time.Time
}

// New builds an index from a catalog snapshot. Items failing validation
// are skipped. The tracker may be nil when query history is not wanted.
func New(items []types.SearchableItem, tracker *history.Tracker) *Index {
	cache, err := lru.New[[32]byte, []types.SearchableItem](cacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(err)
	}

	ix := &Index{
		items:   make(map[string]types.SearchableItem, len(items)),
		order:   make([]string, 0, len(items)),
		tracker: tracker,
		cache:   cache,
		now:     time.Now,
	}
	for _, item := range items {
		if item.Validate() != nil {
			continue
		}
		ix.insert(item)
	}
	return ix
}

// insert assumes the write lock is held or the index is not yet shared.
func (ix *Index) insert(item types.SearchableItem) {
	if _, exists := ix.items[item.ID]; !exists {
		ix.order = append(ix.order, item.ID)
	}
	ix.items[item.ID] = item
}

// AddItem upserts an item into the index. An item with a zero
// last-updated timestamp is stamped with the current time.
func (ix *Index) AddItem(item types.SearchableItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	if item.LastUpdated.IsZero() {
		item.LastUpdated = ix.now()
	}
	ix.insert(item)
	ix.cache.Purge()
	return nil
}

// UpdateItem replaces an existing item. Returns false (a no-op) when the
// id is not indexed.
func (ix *Index) UpdateItem(item types.SearchableItem) bool {
	if item.Validate() != nil {
		return false
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	if _, exists := ix.items[item.ID]; !exists {
		return false
	}
	if item.LastUpdated.IsZero() {
		item.LastUpdated = ix.now()
	}
	ix.items[item.ID] = item
	ix.cache.Purge()
	return true
}

// RemoveItem deletes an item. Returns false (a no-op) when the id is not
// indexed.
func (ix *Index) RemoveItem(id string) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if _, exists := ix.items[id]; !exists {
		return false
	}
	delete(ix.items, id)
	for i, existing := range ix.order {
		if existing == id {
			ix.order = append(ix.order[:i], ix.order[i+1:]...)
			break
		}
	}
	ix.cache.Purge()
	return true
}

// Get returns an indexed item by id.
func (ix *Index) Get(id string) (types.SearchableItem, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	item, ok := ix.items[id]
	return item, ok
}

// Len reports the number of indexed items.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.items)
}

// Items returns a snapshot of all indexed items in insertion order.
func (ix *Index) Items() []types.SearchableItem {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.snapshotLocked()
}

// snapshotLocked assumes at least the read lock is held.
func (ix *Index) snapshotLocked() []types.SearchableItem {
	out := make([]types.SearchableItem, 0, len(ix.order))
	for _, id := range ix.order {
		out = append(out, ix.items[id])
	}
	return out
}

// Suggestions returns query suggestions for a partial input, ranked by
// the history tracker's trending data.
func (ix *Index) Suggestions(prefix string, n int) []string {
	if ix.tracker == nil {
		return nil
	}
	return ix.tracker.SuggestFor(prefix, n)
}
