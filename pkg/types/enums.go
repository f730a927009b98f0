package types

// SkillLevel classifies a user's mixing ability
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// Track is the alcohol-content content path a user follows
type Track string

const (
	TrackAlcoholic Track = "alcoholic"
	TrackLowABV    Track = "low-abv"
	TrackZeroProof Track = "zero-proof"
)

// Difficulty grades a recipe or lesson
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Ordinal returns the sort ordinal for a difficulty (easy < medium < hard).
// Unknown difficulties sort before easy.
func (d Difficulty) Ordinal() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// Category identifies the kind of a searchable item
type Category string

const (
	CategoryRecipe Category = "recipe"
	CategorySpirit Category = "spirit"
	CategoryEvent  Category = "event"
	CategoryUser   Category = "user"
	CategoryBar    Category = "bar"
	CategoryGame   Category = "game"
)

// SortKey selects the primary ordering of search results
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortPopularity SortKey = "popularity"
	SortRecent     SortKey = "recent"
	SortDifficulty SortKey = "difficulty"
	SortTime       SortKey = "time"
	SortABV        SortKey = "abv"
)

// SortDirection controls ascending or descending result order
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// LessonTrack selects which lesson sequence a user follows
type LessonTrack string

const (
	TrackFundamentals  LessonTrack = "fundamentals"
	TrackProfessional  LessonTrack = "professional"
	TrackEnthusiast    LessonTrack = "enthusiast"
	TrackZeroProofPath LessonTrack = "zero-proof"
)

// AnswerType describes how a survey question is answered
type AnswerType string

const (
	AnswerSingleChoice AnswerType = "single-choice"
	AnswerMultiChoice  AnswerType = "multi-choice"
	AnswerImageChoice  AnswerType = "image-choice"
	AnswerOrdering     AnswerType = "ordering"
)
