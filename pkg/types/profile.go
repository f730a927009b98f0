package types

// PersonalizationProfile is the longer-lived weighted representation of a
// user's preferences used for scoring. It is built once from survey
// answers and then mutated incrementally as the user interacts.
type PersonalizationProfile struct {
	// FavoriteSpirits is ordered by preference rank, at most three entries.
	FavoriteSpirits []string `json:"favorite_spirits"`

	// FlavorPreferences is the set of flavors the user selected,
	// in selection order.
	FlavorPreferences []string `json:"flavor_preferences"`

	SkillLevel   SkillLevel `json:"skill_level"`
	PreferredABV Track      `json:"preferred_abv"`

	LearningGoals  []string `json:"learning_goals"`
	AvailableTools []string `json:"available_tools"`
	SessionMinutes int      `json:"session_minutes"`

	// PreferredDifficulty is the derived easy-to-hard ladder: a strict
	// superset per level (beginner {easy}, intermediate {easy,medium},
	// advanced {easy,medium,hard}).
	PreferredDifficulty []Difficulty `json:"preferred_difficulty"`

	// MoodAffinities is the derived top-5 mood category list.
	MoodAffinities []string `json:"mood_affinities"`

	LessonTrack LessonTrack `json:"lesson_track"`

	// SpiritScores and FlavorScores cover the full known vocabulary;
	// spirits/flavors the user never mentioned hold a neutral baseline so
	// consumers never special-case absence.
	SpiritScores map[string]int `json:"spirit_scores"`
	FlavorScores map[string]int `json:"flavor_scores"`

	ComplexityScore int `json:"complexity_score"`

	// ExperienceScore accumulates without bound; read it through
	// Experience() which clamps to 100.
	ExperienceScore int `json:"experience_score"`
}

// Experience returns the experience score clamped to [0, 100].
func (p *PersonalizationProfile) Experience() int {
	if p.ExperienceScore > 100 {
		return 100
	}
	if p.ExperienceScore < 0 {
		return 0
	}
	return p.ExperienceScore
}

// Complexity returns the complexity score clamped to [0, 100].
func (p *PersonalizationProfile) Complexity() int {
	if p.ComplexityScore > 100 {
		return 100
	}
	if p.ComplexityScore < 0 {
		return 0
	}
	return p.ComplexityScore
}

// SpiritScore returns the score for a spirit, 0 for unknown spirits.
func (p *PersonalizationProfile) SpiritScore(spirit string) int {
	return p.SpiritScores[spirit]
}

// FlavorScore returns the score for a flavor, 0 for unknown flavors.
func (p *PersonalizationProfile) FlavorScore(flavor string) int {
	return p.FlavorScores[flavor]
}

// PrefersDifficulty reports whether a difficulty is inside the user's
// preferred ladder.
func (p *PersonalizationProfile) PrefersDifficulty(d Difficulty) bool {
	for _, pd := range p.PreferredDifficulty {
		if pd == d {
			return true
		}
	}
	return false
}

// Validate checks profile invariants
func (p *PersonalizationProfile) Validate() error {
	if len(p.FavoriteSpirits) > 3 {
		return ErrTooManySpirits
	}
	if len(p.MoodAffinities) > 5 {
		return ErrTooManyMoods
	}
	for _, score := range p.SpiritScores {
		if score < 0 || score > 100 {
			return ErrScoreOutOfRange
		}
	}
	for _, score := range p.FlavorScores {
		if score < 0 || score > 100 {
			return ErrScoreOutOfRange
		}
	}
	return nil
}

// ProfileUpdate describes an incremental mutation applied to a profile as
// the user interacts with content.
type ProfileUpdate struct {
	// AddFavoriteSpirit promotes a spirit into the favorites list.
	AddFavoriteSpirit string `json:"add_favorite_spirit,omitempty"`

	// RemoveFavoriteSpirit drops a spirit from the favorites list.
	RemoveFavoriteSpirit string `json:"remove_favorite_spirit,omitempty"`

	// ReinforceFlavor bumps a flavor score by a small fixed step.
	ReinforceFlavor string `json:"reinforce_flavor,omitempty"`

	// AddExperience accumulates onto the raw experience score.
	AddExperience int `json:"add_experience,omitempty"`

	// SessionMinutes overrides the preferred session length when non-zero.
	SessionMinutes int `json:"session_minutes,omitempty"`
}
