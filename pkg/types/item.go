package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ItemPayload holds category-specific item fields. Each Category has one
// payload type so consumers can switch exhaustively instead of probing
// optional fields.
type ItemPayload interface {
	PayloadCategory() Category
}

// RecipePayload carries cocktail-recipe fields
type RecipePayload struct {
	BaseSpirit  string   `json:"base_spirit,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
	Mocktail    bool     `json:"mocktail,omitempty"`
	LowAlcohol  bool     `json:"low_alcohol,omitempty"`
	Garnish     string   `json:"garnish,omitempty"`
}

func (p *RecipePayload) PayloadCategory() Category { return CategoryRecipe }

// SpiritPayload carries bottle/brand fields
type SpiritPayload struct {
	Brand   string   `json:"brand,omitempty"`
	Origin  string   `json:"origin,omitempty"`
	Notes   []string `json:"notes,omitempty"`
	Proof   float64  `json:"proof,omitempty"`
	AgedFor string   `json:"aged_for,omitempty"`
}

func (p *SpiritPayload) PayloadCategory() Category { return CategorySpirit }

// EventPayload carries event fields
type EventPayload struct {
	Venue    string    `json:"venue,omitempty"`
	City     string    `json:"city,omitempty"`
	StartsAt time.Time `json:"starts_at,omitempty"`
}

func (p *EventPayload) PayloadCategory() Category { return CategoryEvent }

// UserPayload carries public user fields
type UserPayload struct {
	Handle    string `json:"handle,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Followers int    `json:"followers,omitempty"`
}

func (p *UserPayload) PayloadCategory() Category { return CategoryUser }

// BarPayload carries bar/venue fields
type BarPayload struct {
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
}

func (p *BarPayload) PayloadCategory() Category { return CategoryBar }

// GamePayload carries party-game fields
type GamePayload struct {
	MinPlayers int `json:"min_players,omitempty"`
	MaxPlayers int `json:"max_players,omitempty"`
}

func (p *GamePayload) PayloadCategory() Category { return CategoryGame }

// SearchableItem is a unit of the heterogeneous search index. Items are
// immutable once indexed except through explicit update operations.
type SearchableItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags,omitempty"`

	// Optional graded/numeric attributes. Nil pointers mean "not set";
	// range filters skip items without the filtered attribute.
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	ABV         *float64   `json:"abv,omitempty"`
	TimeMinutes *int       `json:"time_minutes,omitempty"`
	Popularity  int        `json:"popularity,omitempty"`

	ImageRef string `json:"image_ref,omitempty"`

	// LastUpdated backs the "recent" sort key.
	LastUpdated time.Time `json:"last_updated,omitempty"`

	// Per-user toggles consumed by the favorites-only and completed-only
	// filters. Set by the caller before indexing.
	Favorite  bool `json:"favorite,omitempty"`
	Completed bool `json:"completed,omitempty"`

	Payload ItemPayload `json:"-"`
}

// Validate checks item invariants
func (it *SearchableItem) Validate() error {
	if it.ID == "" {
		return ErrMissingItemID
	}
	if it.Title == "" {
		return ErrMissingItemTitle
	}
	switch it.Category {
	case CategoryRecipe, CategorySpirit, CategoryEvent, CategoryUser, CategoryBar, CategoryGame:
	default:
		return ErrInvalidCategory
	}
	if it.Payload != nil && it.Payload.PayloadCategory() != it.Category {
		return ErrPayloadMismatch
	}
	return nil
}

// Recipe returns the recipe payload, or nil when the item is not a recipe.
func (it *SearchableItem) Recipe() *RecipePayload {
	p, _ := it.Payload.(*RecipePayload)
	return p
}

// searchableItemJSON is the wire shape: the payload is inlined under a
// category-keyed field so snapshots round-trip the tagged union.
type searchableItemJSON struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle,omitempty"`
	Description string          `json:"description,omitempty"`
	Category    Category        `json:"category"`
	Tags        []string        `json:"tags,omitempty"`
	Difficulty  Difficulty      `json:"difficulty,omitempty"`
	ABV         *float64        `json:"abv,omitempty"`
	TimeMinutes *int            `json:"time_minutes,omitempty"`
	Popularity  int             `json:"popularity,omitempty"`
	ImageRef    string          `json:"image_ref,omitempty"`
	LastUpdated time.Time       `json:"last_updated,omitempty"`
	Favorite    bool            `json:"favorite,omitempty"`
	Completed   bool            `json:"completed,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// MarshalJSON serializes the item with its category-specific payload.
func (it SearchableItem) MarshalJSON() ([]byte, error) {
	wire := searchableItemJSON{
		ID:          it.ID,
		Title:       it.Title,
		Subtitle:    it.Subtitle,
		Description: it.Description,
		Category:    it.Category,
		Tags:        it.Tags,
		Difficulty:  it.Difficulty,
		ABV:         it.ABV,
		TimeMinutes: it.TimeMinutes,
		Popularity:  it.Popularity,
		ImageRef:    it.ImageRef,
		LastUpdated: it.LastUpdated,
		Favorite:    it.Favorite,
		Completed:   it.Completed,
	}
	if it.Payload != nil {
		raw, err := json.Marshal(it.Payload)
		if err != nil {
			return nil, err
		}
		wire.Payload = raw
	}
	return json.Marshal(wire)
}

// UnmarshalJSON restores the item, decoding the payload into the variant
// matching the item category.
func (it *SearchableItem) UnmarshalJSON(data []byte) error {
	var wire searchableItemJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*it = SearchableItem{
		ID:          wire.ID,
		Title:       wire.Title,
		Subtitle:    wire.Subtitle,
		Description: wire.Description,
		Category:    wire.Category,
		Tags:        wire.Tags,
		Difficulty:  wire.Difficulty,
		ABV:         wire.ABV,
		TimeMinutes: wire.TimeMinutes,
		Popularity:  wire.Popularity,
		ImageRef:    wire.ImageRef,
		LastUpdated: wire.LastUpdated,
		Favorite:    wire.Favorite,
		Completed:   wire.Completed,
	}
	if len(wire.Payload) == 0 {
		return nil
	}
	payload, err := payloadFor(wire.Category)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Payload, payload); err != nil {
		return err
	}
	it.Payload = payload
	return nil
}

// payloadFor returns an empty payload variant for a category
func payloadFor(cat Category) (ItemPayload, error) {
	switch cat {
	case CategoryRecipe:
		return &RecipePayload{}, nil
	case CategorySpirit:
		return &SpiritPayload{}, nil
	case CategoryEvent:
		return &EventPayload{}, nil
	case CategoryUser:
		return &UserPayload{}, nil
	case CategoryBar:
		return &BarPayload{}, nil
	case CategoryGame:
		return &GamePayload{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, cat)
	}
}
