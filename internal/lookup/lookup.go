// Package lookup holds the shared static scoring tables: spirit and
// flavor vocabularies, mood mappings, brand lists, and lesson sequences.
// Profile building and recommendation generation both read from here so
// the tables cannot drift apart.
package lookup

import "github.com/mixmentor/mixmentor/pkg/types"

// SchemaVersion tracks the lookup-table revision persisted alongside
// profile snapshots.
const SchemaVersion = "1.0.0"

// KnownSpirits is the full spirit vocabulary, in canonical order. Every
// profile carries a score entry for each of these.
var KnownSpirits = []string{
	"gin", "whiskey", "rum", "tequila", "vodka", "brandy", "liqueur",
}

// KnownFlavors is the full flavor vocabulary, in canonical order.
var KnownFlavors = []string{
	"citrus", "sweet", "bitter", "herbal", "smoky", "spicy", "fruity",
}

// Neutral baselines backfilled for spirits/flavors the user never picked.
const (
	NeutralSpiritScore = 30
	NeutralFlavorScore = 40
)

// MoodCategories lists every mood category in canonical order.
var MoodCategories = []string{
	"Bright & Celebratory",
	"Bold & Serious",
	"Mystery & Depth",
	"After-Dinner Indulgence",
	"Light & Breezy",
	"Cozy & Warm",
	"Party Starter",
	"Refined & Elegant",
}

// SpiritMoods maps each spirit to the mood categories it evokes.
var SpiritMoods = map[string][]string{
	"gin":     {"Refined & Elegant", "Light & Breezy", "Bright & Celebratory"},
	"whiskey": {"Bold & Serious", "Mystery & Depth", "After-Dinner Indulgence"},
	"rum":     {"Party Starter", "Cozy & Warm", "Bright & Celebratory"},
	"tequila": {"Party Starter", "Bold & Serious", "Bright & Celebratory"},
	"vodka":   {"Light & Breezy", "Party Starter", "Refined & Elegant"},
	"brandy":  {"After-Dinner Indulgence", "Cozy & Warm", "Mystery & Depth"},
	"liqueur": {"After-Dinner Indulgence", "Cozy & Warm", "Bright & Celebratory"},
}

// FlavorMoods maps each flavor to the mood categories it reinforces.
var FlavorMoods = map[string][]string{
	"citrus": {"Bright & Celebratory", "Light & Breezy"},
	"sweet":  {"After-Dinner Indulgence", "Cozy & Warm"},
	"bitter": {"Bold & Serious", "Refined & Elegant"},
	"herbal": {"Refined & Elegant", "Mystery & Depth"},
	"smoky":  {"Mystery & Depth", "Bold & Serious"},
	"spicy":  {"Party Starter", "Bold & Serious"},
	"fruity": {"Bright & Celebratory", "Party Starter"},
}

// MoodExamples maps mood categories to example content ids surfaced in
// mood rankings.
var MoodExamples = map[string][]string{
	"Bright & Celebratory":    {"french-75", "aperol-spritz"},
	"Bold & Serious":          {"old-fashioned", "sazerac"},
	"Mystery & Depth":         {"vieux-carre", "penicillin"},
	"After-Dinner Indulgence": {"espresso-martini", "brandy-alexander"},
	"Light & Breezy":          {"gin-rickey", "tom-collins"},
	"Cozy & Warm":             {"hot-toddy", "dark-and-stormy"},
	"Party Starter":           {"margarita", "mojito"},
	"Refined & Elegant":       {"martini", "negroni"},
}

// SpiritBrands maps each spirit to its ranked brand suggestions. Spirits
// without an entry yield an empty brand list, not an error.
var SpiritBrands = map[string][]string{
	"gin":     {"Tanqueray", "Beefeater", "Hendrick's", "Plymouth"},
	"whiskey": {"Buffalo Trace", "Rittenhouse Rye", "Four Roses", "Glenfiddich 12"},
	"rum":     {"Plantation 3 Stars", "Appleton Estate", "Smith & Cross"},
	"tequila": {"Espolon Blanco", "Fortaleza Reposado", "Cimarron"},
	"vodka":   {"Ketel One", "Tito's", "Absolut"},
	"brandy":  {"Pierre Ferrand 1840", "Paul Beau VS"},
}

// ZeroProofAlternatives maps a spirit to its non-alcoholic stand-in.
var ZeroProofAlternatives = map[string]string{
	"gin": "gin-alternative",
	"rum": "rum-alternative",
}

// LessonsByTrack maps each lesson track to its ordered module sequence.
var LessonsByTrack = map[types.LessonTrack][]string{
	types.TrackFundamentals: {
		"lesson-tools-of-the-trade",
		"lesson-shaking-basics",
		"lesson-stirring-basics",
		"lesson-citrus-and-syrups",
		"lesson-balancing-sours",
		"lesson-building-highballs",
	},
	types.TrackEnthusiast: {
		"lesson-classic-canon",
		"lesson-stirred-and-strong",
		"lesson-garnish-craft",
		"lesson-bitters-deep-dive",
		"lesson-home-bar-setup",
	},
	types.TrackProfessional: {
		"lesson-speed-and-accuracy",
		"lesson-batching-and-prep",
		"lesson-menu-design",
		"lesson-advanced-techniques",
		"lesson-guest-experience",
	},
	types.TrackZeroProofPath: {
		"lesson-zero-proof-foundations",
		"lesson-acid-adjusting",
		"lesson-shrubs-and-cordials",
		"lesson-complexity-without-alcohol",
	},
}

// IsKnownSpirit reports whether the spirit is in the vocabulary.
func IsKnownSpirit(spirit string) bool {
	for _, s := range KnownSpirits {
		if s == spirit {
			return true
		}
	}
	return false
}

// IsKnownFlavor reports whether the flavor is in the vocabulary.
func IsKnownFlavor(flavor string) bool {
	for _, f := range KnownFlavors {
		if f == flavor {
			return true
		}
	}
	return false
}
