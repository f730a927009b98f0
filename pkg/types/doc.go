// Package types provides shared type definitions for the MixMentor engine.
//
// This package defines domain types used across the engine components:
// survey questions and answers, placement results, personalization
// profiles, searchable catalog items, filter specifications, and
// recommendation sets.
//
// # Core Types
//
// SurveyAnswers maps question ids to answers. Single-choice answers and
// ordered multi-value answers share one representation; accessors tolerate
// missing or malformed entries so downstream scoring never has to:
//
//	answers := types.SurveyAnswers{
//	    "q2": types.AnswerOf("very-confident"),
//	    "q5": types.AnswerList("gin", "whiskey"),
//	}
//	answers.Single("q2")  // "very-confident"
//	answers.Multi("q99")  // nil, not a panic
//
// SearchableItem is the unit of the search index. Category-specific fields
// live in a tagged payload variant so filter logic can switch exhaustively
// instead of probing optional fields:
//
//	item := types.SearchableItem{
//	    ID:       "old-fashioned",
//	    Title:    "Old Fashioned",
//	    Category: types.CategoryRecipe,
//	    Payload: &types.RecipePayload{
//	        BaseSpirit:  "whiskey",
//	        Ingredients: []string{"bourbon", "sugar", "bitters"},
//	    },
//	}
//
// # Validation
//
// Domain types carry validation methods with sentinel errors:
//
//	if err := item.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Scores
//
// Spirit, flavor, complexity, and experience scores are integers in
// [0, 100]. The experience score accumulates unbounded and is clamped to
// 100 at read time via PersonalizationProfile.Experience().
package types
