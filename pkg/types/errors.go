package types

import "errors"

// Domain errors for type validation
var (
	// Placement/profile errors
	ErrInvalidSkillLevel    = errors.New("invalid skill level")
	ErrInvalidTrack         = errors.New("invalid track")
	ErrTooManySpirits       = errors.New("too many preferred spirits")
	ErrTooManyMoods         = errors.New("mood affinities exceed top-5")
	ErrInvalidSessionLength = errors.New("session length must be 3, 5, or 8 minutes")
	ErrScoreOutOfRange      = errors.New("score must be between 0 and 100")

	// Searchable item errors
	ErrMissingItemID    = errors.New("item id is required")
	ErrMissingItemTitle = errors.New("item title is required")
	ErrInvalidCategory  = errors.New("invalid item category")
	ErrPayloadMismatch  = errors.New("payload category does not match item category")
)
