// Package index implements the in-memory search index and ranking engine
// over heterogeneous catalog items.
//
// An Index is an explicit instance: construct it from a catalog snapshot
// and pass it to callers. There is no package-level index.
//
//	ix := index.New(items, tracker)
//
//	results := ix.Search("old fashioned", &types.FilterSpec{
//	    Categories: []types.Category{types.CategoryRecipe},
//	    SortBy:     types.SortRelevance,
//	})
//
// # Matching
//
// Queries are tokenized on whitespace and lower-cased. An item is a
// candidate when any token is a substring of its concatenated title,
// subtitle, description, and tags (OR semantics). An empty query with no
// filters short-circuits to the top items by popularity.
//
// # Relevance
//
// Relevance is rule-based, first match wins:
//
//	exact title match        100
//	title starts with query   80
//	title contains query      60
//	any tag contains query    40
//	description contains      20
//
// Popularity is the tiebreak within equal relevance.
//
// # Filtering and sorting
//
// All enabled filter dimensions are ANDed. Inverted ranges (min > max)
// match nothing rather than failing. Sort keys: relevance, popularity,
// recent (last-updated timestamp), difficulty ordinal, time, abv; the
// direction flag inverts the comparator.
//
// # Caching
//
// Search results are cached in an LRU keyed by a hash of the query and
// filter spec. Any index mutation purges the cache.
package index
