package types

// PlacementResult is the one-time classification of a new user produced
// from onboarding survey answers.
type PlacementResult struct {
	Level SkillLevel `json:"level"`
	Track Track      `json:"track"`

	// Spirits is the ordered preferred-spirit list, at most two entries.
	Spirits []string `json:"spirits"`

	// StartID is the content id the user should begin with.
	StartID string `json:"start_id"`

	// SessionMinutes is the preferred session length: 3, 5, or 8.
	SessionMinutes int `json:"session_minutes"`

	// Score is the accumulated level score the classification was
	// derived from (0-10).
	Score int `json:"score"`

	// Rationale is templated human-readable text explaining the placement.
	Rationale string `json:"rationale"`
}

// Validate checks placement invariants
func (pr *PlacementResult) Validate() error {
	switch pr.Level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
	default:
		return ErrInvalidSkillLevel
	}
	switch pr.Track {
	case TrackAlcoholic, TrackLowABV, TrackZeroProof:
	default:
		return ErrInvalidTrack
	}
	if len(pr.Spirits) > 2 {
		return ErrTooManySpirits
	}
	switch pr.SessionMinutes {
	case 3, 5, 8:
	default:
		return ErrInvalidSessionLength
	}
	return nil
}
