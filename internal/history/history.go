// Package history records issued search queries and derives trending and
// suggestion lists consumed by the search engine for suggestion ranking.
package history

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded search query.
type Entry struct {
	ID       string    `json:"id"`
	Query    string    `json:"query"`
	IssuedAt time.Time `json:"issued_at"`
}

// Tracker records queries and answers recency/frequency questions about
// them. A Tracker is an explicit instance: callers own its lifetime and
// persistence, there is no package-level state.
type Tracker struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// Record appends a query to the history. Empty queries are ignored.
func (t *Tracker) Record(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, Entry{
		ID:       uuid.NewString(),
		Query:    query,
		IssuedAt: t.now(),
	})
}

// Recent returns up to n most recent queries, newest first, with exact
// duplicates collapsed to their latest occurrence.
func (t *Tracker) Recent(n int) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	seen := make(map[string]bool)
	out := make([]string, 0, n)
	for i := len(t.entries) - 1; i >= 0 && len(out) < n; i-- {
		q := t.entries[i].Query
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	return out
}

// Trending returns up to n queries ranked by frequency, ties broken by
// most recent occurrence.
func (t *Tracker) Trending(n int) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	counts := make(map[string]int)
	lastSeen := make(map[string]int)
	order := make([]string, 0)
	for i, entry := range t.entries {
		if counts[entry.Query] == 0 {
			order = append(order, entry.Query)
		}
		counts[entry.Query]++
		lastSeen[entry.Query] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return lastSeen[order[i]] > lastSeen[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}

// SuggestFor returns up to n trending queries that share a case-folded
// prefix with the partial input.
func (t *Tracker) SuggestFor(prefix string, n int) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return t.Trending(n)
	}

	out := make([]string, 0, n)
	for _, q := range t.Trending(t.Len()) {
		if strings.HasPrefix(strings.ToLower(q), prefix) {
			out = append(out, q)
			if len(out) == n {
				break
			}
		}
	}
	return out
}

// Len reports the number of recorded entries.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Snapshot serializes the history for the persistence collaborator.
func (t *Tracker) Snapshot() ([]byte, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return json.Marshal(t.entries)
}

// Restore replaces the history with a previously serialized snapshot.
func (t *Tracker) Restore(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = entries
	return nil
}
