// Package survey defines the static onboarding survey catalog: ordered
// questions, sections, and option sets. The catalog is process-wide
// immutable data consumed by the placement and profile packages.
package survey

import "github.com/mixmentor/mixmentor/pkg/types"

// Question ids referenced by the scoring rule tables.
const (
	QFrequency  = "q1"  // how often the user drinks cocktails
	QConfidence = "q2"  // technique confidence
	QKnowledge  = "q3"  // classic-cocktail knowledge check
	QGlassware  = "q4"  // glassware recognition
	QSpirits    = "q5"  // favorite spirits
	QFlavors    = "q6"  // flavor preferences
	QAvoidAlc   = "q7"  // avoid alcohol entirely?
	QABV        = "q8"  // explicit ABV preference
	QGoals      = "q9"  // learning goals
	QSession    = "q10" // session length
	QAdventure  = "q11" // how adventurous with new drinks
	QHomeBar    = "q12" // which home bar looks like yours
	QTools      = "q13" // tools on hand
	QBuildOrder = "q14" // order the steps of a stirred cocktail build
)

// Correct answers and canonical sequences used by placement scoring.
var (
	// KnowledgeAnswer is the correct option for the knowledge check.
	KnowledgeAnswer = "margarita"

	// GlasswareAnswer is the correct option for glassware recognition.
	GlasswareAnswer = "coupe"

	// CanonicalBuildOrder is the six-step stirred-cocktail build sequence
	// the ordering question is scored against.
	CanonicalBuildOrder = []string{
		"chill-glass", "add-ingredients", "add-ice", "stir", "strain", "garnish",
	}
)

// catalog is the ordered question list. Defined once, never mutated.
var catalog = []types.SurveyQuestion{
	{
		ID: QFrequency, Section: "background", Type: types.AnswerSingleChoice,
		Text: "How often do you drink or make cocktails?",
		Options: []types.Option{
			{Value: "never", Label: "Almost never"},
			{Value: "occasionally", Label: "A few times a month"},
			{Value: "weekly", Label: "Most weeks"},
			{Value: "daily", Label: "Most days"},
		},
	},
	{
		ID: QConfidence, Section: "background", Type: types.AnswerSingleChoice,
		Text: "How confident are you with shaking, stirring, and straining?",
		Options: []types.Option{
			{Value: "not-confident", Label: "I'm brand new"},
			{Value: "somewhat-confident", Label: "I can follow a recipe"},
			{Value: "very-confident", Label: "I freestyle comfortably"},
		},
	},
	{
		ID: QKnowledge, Section: "background", Type: types.AnswerSingleChoice,
		Text: "Which classic combines tequila, lime, and orange liqueur?",
		Options: []types.Option{
			{Value: "margarita", Label: "Margarita"},
			{Value: "mojito", Label: "Mojito"},
			{Value: "negroni", Label: "Negroni"},
			{Value: "daiquiri", Label: "Daiquiri"},
		},
	},
	{
		ID: QGlassware, Section: "background", Type: types.AnswerImageChoice,
		Text: "Which of these is a coupe?",
		Options: []types.Option{
			{Value: "coupe", Label: "Coupe", ImageRef: "glass/coupe.png"},
			{Value: "highball", Label: "Highball", ImageRef: "glass/highball.png"},
			{Value: "rocks", Label: "Rocks", ImageRef: "glass/rocks.png"},
			{Value: "flute", Label: "Flute", ImageRef: "glass/flute.png"},
		},
	},
	{
		ID: QSpirits, Section: "taste", Type: types.AnswerMultiChoice,
		Text: "Which spirits do you reach for? Pick up to three, favorites first.",
		Options: []types.Option{
			{Value: "gin", Label: "Gin"},
			{Value: "whiskey", Label: "Whiskey"},
			{Value: "rum", Label: "Rum"},
			{Value: "tequila", Label: "Tequila"},
			{Value: "vodka", Label: "Vodka"},
			{Value: "brandy", Label: "Brandy"},
			{Value: "liqueur", Label: "Liqueurs"},
			{Value: "none", Label: "None of these"},
		},
	},
	{
		ID: QFlavors, Section: "taste", Type: types.AnswerMultiChoice,
		Text: "Which flavors make you happy? Favorites first.",
		Options: []types.Option{
			{Value: "citrus", Label: "Citrus & tart"},
			{Value: "sweet", Label: "Sweet & rich"},
			{Value: "bitter", Label: "Bitter & bracing"},
			{Value: "herbal", Label: "Herbal & botanical"},
			{Value: "smoky", Label: "Smoky & deep"},
			{Value: "spicy", Label: "Spicy & bold"},
			{Value: "fruity", Label: "Fruity & bright"},
		},
	},
	{
		ID: QAvoidAlc, Section: "taste", Type: types.AnswerSingleChoice,
		Text: "Do you avoid alcohol entirely?",
		Options: []types.Option{
			{Value: "yes", Label: "Yes, zero-proof only"},
			{Value: "no", Label: "No"},
		},
	},
	{
		ID: QABV, Section: "taste", Type: types.AnswerSingleChoice,
		Text: "How strong do you like your drinks?",
		Options: []types.Option{
			{Value: "alcoholic", Label: "Full strength"},
			{Value: "low-abv", Label: "On the lighter side"},
			{Value: "zero-proof", Label: "No alcohol"},
		},
	},
	{
		ID: QGoals, Section: "goals", Type: types.AnswerMultiChoice,
		Text: "What do you want to get out of this?",
		Options: []types.Option{
			{Value: "classics", Label: "Master the classics"},
			{Value: "originals", Label: "Invent my own drinks"},
			{Value: "professional", Label: "Work behind a bar"},
			{Value: "impress-guests", Label: "Impress my guests"},
			{Value: "home-bar", Label: "Build a great home bar"},
		},
	},
	{
		ID: QSession, Section: "goals", Type: types.AnswerSingleChoice,
		Text: "How long should a lesson be?",
		Options: []types.Option{
			{Value: "short", Label: "3 minutes"},
			{Value: "medium", Label: "5 minutes"},
			{Value: "long", Label: "8 minutes"},
		},
	},
	{
		ID: QAdventure, Section: "goals", Type: types.AnswerSingleChoice,
		Text: "How adventurous are you with unfamiliar drinks?",
		Options: []types.Option{
			{Value: "stick-to-known", Label: "I stick to what I know"},
			{Value: "sometimes", Label: "I'll try a bartender's pick"},
			{Value: "always", Label: "Surprise me every time"},
		},
	},
	{
		ID: QHomeBar, Section: "setup", Type: types.AnswerImageChoice,
		Text: "Which of these looks most like your home bar?",
		Options: []types.Option{
			{Value: "bare", Label: "A bottle or two", ImageRef: "bar/bare.png"},
			{Value: "starter", Label: "The starter shelf", ImageRef: "bar/starter.png"},
			{Value: "stocked", Label: "Fully stocked", ImageRef: "bar/stocked.png"},
		},
	},
	{
		ID: QTools, Section: "setup", Type: types.AnswerMultiChoice,
		Text: "Which tools do you have on hand?",
		Options: []types.Option{
			{Value: "jigger", Label: "Jigger"},
			{Value: "shaker", Label: "Shaker"},
			{Value: "barspoon", Label: "Barspoon"},
			{Value: "strainer", Label: "Strainer"},
			{Value: "muddler", Label: "Muddler"},
			{Value: "fine-strainer", Label: "Fine strainer"},
		},
	},
	{
		ID: QBuildOrder, Section: "setup", Type: types.AnswerOrdering,
		Text: "Put the steps of a stirred cocktail in order.",
		Options: []types.Option{
			{Value: "chill-glass", Label: "Chill the glass"},
			{Value: "add-ingredients", Label: "Add ingredients to mixing glass"},
			{Value: "add-ice", Label: "Add ice"},
			{Value: "stir", Label: "Stir"},
			{Value: "strain", Label: "Strain into the glass"},
			{Value: "garnish", Label: "Garnish"},
		},
	},
}

// Questions returns the ordered survey catalog. The returned slice is a
// copy; the catalog itself is never mutated.
func Questions() []types.SurveyQuestion {
	out := make([]types.SurveyQuestion, len(catalog))
	copy(out, catalog)
	return out
}

// QuestionByID looks up a question by id. The second return is false for
// unknown ids.
func QuestionByID(id string) (types.SurveyQuestion, bool) {
	for _, q := range catalog {
		if q.ID == id {
			return q, true
		}
	}
	return types.SurveyQuestion{}, false
}
