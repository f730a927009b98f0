package index

import (
	"crypto/sha256"
	"encoding/json"
	"sort"
	"strings"

	"github.com/mixmentor/mixmentor/pkg/types"
)

// Result limits.
const (
	searchLimit = 50
	browseLimit = 20 // empty query, no filters
)

// Relevance scores, checked in priority order; first matching rule wins.
const (
	relevanceExactTitle  = 100
	relevanceTitlePrefix = 80
	relevanceTitleMatch  = 60
	relevanceTagMatch    = 40
	relevanceDescMatch   = 20
)

// Search executes a free-text query with optional filters and returns
// ranked items. Non-empty queries are recorded in the history tracker.
func (ix *Index) Search(query string, filters *types.FilterSpec) []types.SearchableItem {
	query = strings.TrimSpace(query)
	if query != "" && ix.tracker != nil {
		ix.tracker.Record(query)
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	// Browse mode: nothing to match or filter, surface popular items.
	if query == "" && filters.IsZero() {
		return topByPopularity(ix.snapshotLocked(), browseLimit)
	}

	// Inverted ranges match nothing by contract.
	if filters.RangesInverted() {
		return []types.SearchableItem{}
	}

	key := cacheKey(query, filters)
	if cached, ok := ix.cache.Get(key); ok {
		return append([]types.SearchableItem(nil), cached...)
	}

	loweredQuery := strings.ToLower(query)
	tokens := strings.Fields(loweredQuery)

	matched := make([]types.SearchableItem, 0, len(ix.order))
	for _, id := range ix.order {
		item := ix.items[id]
		if query != "" && !matchesTokens(item, tokens) {
			continue
		}
		if !passesFilters(item, filters) {
			continue
		}
		matched = append(matched, item)
	}

	sortResults(matched, loweredQuery, filters)

	if len(matched) > searchLimit {
		matched = matched[:searchLimit]
	}

	ix.cache.Add(key, append([]types.SearchableItem(nil), matched...))
	return matched
}

// matchesTokens applies OR semantics: any token appearing as a substring
// of the item's searchable text keeps the item.
func matchesTokens(item types.SearchableItem, tokens []string) bool {
	blob := searchBlob(item)
	for _, token := range tokens {
		if strings.Contains(blob, token) {
			return true
		}
	}
	return false
}

// searchBlob concatenates the text fields matched against, lower-cased.
func searchBlob(item types.SearchableItem) string {
	parts := []string{item.Title, item.Subtitle, item.Description}
	parts = append(parts, item.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// relevanceScore applies the priority-ordered relevance rules against
// the full lower-cased query. Rules are not summed.
func relevanceScore(item types.SearchableItem, loweredQuery string) int {
	title := strings.ToLower(item.Title)
	switch {
	case title == loweredQuery:
		return relevanceExactTitle
	case strings.HasPrefix(title, loweredQuery):
		return relevanceTitlePrefix
	case strings.Contains(title, loweredQuery):
		return relevanceTitleMatch
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), loweredQuery) {
			return relevanceTagMatch
		}
	}
	if strings.Contains(strings.ToLower(item.Description), loweredQuery) {
		return relevanceDescMatch
	}
	return 0
}

// passesFilters ANDs every enabled filter dimension.
func passesFilters(item types.SearchableItem, f *types.FilterSpec) bool {
	if f == nil {
		return true
	}

	if len(f.Categories) > 0 && !categoryIn(item.Category, f.Categories) {
		return false
	}
	if len(f.Difficulties) > 0 && !difficultyIn(item.Difficulty, f.Difficulties) {
		return false
	}

	if f.ABVMin != nil || f.ABVMax != nil {
		if item.ABV == nil {
			return false
		}
		if f.ABVMin != nil && *item.ABV < *f.ABVMin {
			return false
		}
		if f.ABVMax != nil && *item.ABV > *f.ABVMax {
			return false
		}
	}

	if f.TimeMin != nil || f.TimeMax != nil {
		if item.TimeMinutes == nil {
			return false
		}
		if f.TimeMin != nil && *item.TimeMinutes < *f.TimeMin {
			return false
		}
		if f.TimeMax != nil && *item.TimeMinutes > *f.TimeMax {
			return false
		}
	}

	recipe := item.Recipe()
	if len(f.Ingredients) > 0 {
		if recipe == nil || !allMatchAny(f.Ingredients, recipe.Ingredients) {
			return false
		}
	}
	if len(f.Equipment) > 0 {
		if recipe == nil || !allMatchAny(f.Equipment, recipe.Equipment) {
			return false
		}
	}
	if len(f.Tags) > 0 && !allMatchAny(f.Tags, item.Tags) {
		return false
	}

	if f.FavoritesOnly && !item.Favorite {
		return false
	}
	if f.CompletedOnly && !item.Completed {
		return false
	}
	return true
}

// allMatchAny requires every wanted value to substring-match at least one
// of the item's values, case-folded.
func allMatchAny(wanted, have []string) bool {
	for _, w := range wanted {
		w = strings.ToLower(w)
		found := false
		for _, h := range have {
			if strings.Contains(strings.ToLower(h), w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func categoryIn(cat types.Category, set []types.Category) bool {
	for _, c := range set {
		if c == cat {
			return true
		}
	}
	return false
}

func difficultyIn(d types.Difficulty, set []types.Difficulty) bool {
	for _, s := range set {
		if s == d {
			return true
		}
	}
	return false
}

// sortResults orders matched items by the requested sort key. Stable
// sorts preserve insertion order on full ties.
func sortResults(items []types.SearchableItem, loweredQuery string, f *types.FilterSpec) {
	key := types.SortRelevance
	if f != nil && f.SortBy != "" {
		key = f.SortBy
	}
	if key == types.SortRelevance && loweredQuery == "" {
		// Relevance is undefined without a query.
		key = types.SortPopularity
	}
	direction := defaultDirection(key)
	if f != nil && f.SortOrder != "" {
		direction = f.SortOrder
	}

	less := lessFor(items, key, loweredQuery)
	sort.SliceStable(items, func(i, j int) bool {
		if direction == types.SortDesc {
			return less(j, i)
		}
		return less(i, j)
	})
}

// defaultDirection is descending for score-like keys and ascending for
// magnitude keys.
func defaultDirection(key types.SortKey) types.SortDirection {
	switch key {
	case types.SortRelevance, types.SortPopularity, types.SortRecent:
		return types.SortDesc
	default:
		return types.SortAsc
	}
}

// lessFor returns an ascending comparator for the sort key.
func lessFor(items []types.SearchableItem, key types.SortKey, loweredQuery string) func(i, j int) bool {
	switch key {
	case types.SortPopularity:
		return func(i, j int) bool {
			return items[i].Popularity < items[j].Popularity
		}
	case types.SortRecent:
		return func(i, j int) bool {
			return items[i].LastUpdated.Before(items[j].LastUpdated)
		}
	case types.SortDifficulty:
		return func(i, j int) bool {
			return items[i].Difficulty.Ordinal() < items[j].Difficulty.Ordinal()
		}
	case types.SortTime:
		return func(i, j int) bool {
			return derefInt(items[i].TimeMinutes) < derefInt(items[j].TimeMinutes)
		}
	case types.SortABV:
		return func(i, j int) bool {
			return derefFloat(items[i].ABV) < derefFloat(items[j].ABV)
		}
	default: // relevance, popularity tiebreak
		return func(i, j int) bool {
			ri := relevanceScore(items[i], loweredQuery)
			rj := relevanceScore(items[j], loweredQuery)
			if ri != rj {
				return ri < rj
			}
			return items[i].Popularity < items[j].Popularity
		}
	}
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// topByPopularity returns the n most popular items, insertion order as
// the tiebreak.
func topByPopularity(items []types.SearchableItem, n int) []types.SearchableItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Popularity > items[j].Popularity
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// cacheKey hashes the query and filter spec into a stable cache key.
func cacheKey(query string, f *types.FilterSpec) [32]byte {
	var b strings.Builder
	b.WriteString(query)
	b.WriteString("|")
	if f != nil {
		// Struct field order is fixed, so the encoding is stable.
		if raw, err := json.Marshal(f); err == nil {
			b.Write(raw)
		}
	}
	return sha256.Sum256([]byte(b.String()))
}
