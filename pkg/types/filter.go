package types

// FilterSpec narrows and orders search results. Every enabled dimension is
// ANDed with the others; zero-valued dimensions are disabled.
type FilterSpec struct {
	Categories   []Category   `json:"categories,omitempty"`
	Difficulties []Difficulty `json:"difficulties,omitempty"`

	// Inclusive ranges. Nil bounds are open. A range with min > max
	// yields an empty result set rather than an error.
	ABVMin  *float64 `json:"abv_min,omitempty"`
	ABVMax  *float64 `json:"abv_max,omitempty"`
	TimeMin *int     `json:"time_min,omitempty"`
	TimeMax *int     `json:"time_max,omitempty"`

	// Substring-match-against-any subsets.
	Ingredients []string `json:"ingredients,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	SortBy    SortKey       `json:"sort_by,omitempty"`
	SortOrder SortDirection `json:"sort_order,omitempty"`

	FavoritesOnly bool `json:"favorites_only,omitempty"`
	CompletedOnly bool `json:"completed_only,omitempty"`
}

// IsZero reports whether no filter dimension is enabled and no explicit
// sort was requested.
func (f *FilterSpec) IsZero() bool {
	if f == nil {
		return true
	}
	return len(f.Categories) == 0 && len(f.Difficulties) == 0 &&
		f.ABVMin == nil && f.ABVMax == nil &&
		f.TimeMin == nil && f.TimeMax == nil &&
		len(f.Ingredients) == 0 && len(f.Equipment) == 0 && len(f.Tags) == 0 &&
		f.SortBy == "" && !f.FavoritesOnly && !f.CompletedOnly
}

// RangesInverted reports whether any enabled range has min > max. Such a
// spec matches nothing.
func (f *FilterSpec) RangesInverted() bool {
	if f == nil {
		return false
	}
	if f.ABVMin != nil && f.ABVMax != nil && *f.ABVMin > *f.ABVMax {
		return true
	}
	if f.TimeMin != nil && f.TimeMax != nil && *f.TimeMin > *f.TimeMax {
		return true
	}
	return false
}
