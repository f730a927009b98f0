package types

// ScoredCocktail is one ranked cocktail recommendation with the factors
// that produced its score, in encounter order.
type ScoredCocktail struct {
	Item    SearchableItem `json:"item"`
	Score   float64        `json:"score"`
	Reasons []string       `json:"reasons"`
}

// BrandRecommendation is a ranked brand list for one favorite spirit
type BrandRecommendation struct {
	Spirit   string   `json:"spirit"`
	Priority int      `json:"priority"`
	Brands   []string `json:"brands"`
}

// LearningPath describes where a user is and what comes next
type LearningPath struct {
	CurrentLevel SkillLevel  `json:"current_level"`
	Track        LessonTrack `json:"track"`
	NextLessons  []string    `json:"next_lessons"`
	Modules      []string    `json:"modules"`
}

// MoodAffinity is a 0-100 score expressing how strongly a mood category
// matches a user's profile.
type MoodAffinity struct {
	Mood       string   `json:"mood"`
	Score      int      `json:"score"`
	ExampleIDs []string `json:"example_ids,omitempty"`
}

// RecommendationSet bundles every ranked recommendation surface produced
// from one profile + catalog snapshot.
type RecommendationSet struct {
	FeaturedCocktails []ScoredCocktail      `json:"featured_cocktails"`
	BrandPicks        []BrandRecommendation `json:"brand_picks"`
	LearningPath      LearningPath          `json:"learning_path"`
	MoodRanking       []MoodAffinity        `json:"mood_ranking"`
}
