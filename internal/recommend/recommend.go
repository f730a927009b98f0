// Package recommend scores and ranks catalog content against a
// personalization profile: featured cocktails, brand picks per favorite
// spirit, the learning path, and the mood-category ranking.
//
// Generate is pure given a catalog snapshot: calling it twice with the
// same profile and catalog yields identical output. Ties between equally
// scored cocktails keep catalog iteration order.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mixmentor/mixmentor/internal/lookup"
	"github.com/mixmentor/mixmentor/pkg/types"
)

// Scoring weights. Factors are evaluated independently, not normalized;
// the summed score is clamped to 100 at output.
const (
	spiritWeight      = 0.40
	difficultyBonus   = 25.0
	trackBonus        = 20.0
	flavorMaxBonus    = 3.0
	maxScore          = 100.0
	featuredLimit     = 20
	moodBaseAffinity  = 50
	moodSpiritBoost   = 15
	moodFlavorBoost   = 10
	brandPriorityTop  = 100
	brandPriorityStep = 20
	nextLessonCount   = 3
)

// Generate produces the full recommendation set for a profile against a
// catalog snapshot.
func Generate(profile types.PersonalizationProfile, catalog []types.SearchableItem) types.RecommendationSet {
	return types.RecommendationSet{
		FeaturedCocktails: featuredCocktails(profile, catalog),
		BrandPicks:        brandPicks(profile),
		LearningPath:      learningPath(profile),
		MoodRanking:       moodRanking(profile),
	}
}

// featuredCocktails scores every recipe item, sorts descending, and
// truncates to the top twenty.
func featuredCocktails(profile types.PersonalizationProfile, catalog []types.SearchableItem) []types.ScoredCocktail {
	scored := make([]types.ScoredCocktail, 0, len(catalog))
	for _, item := range catalog {
		if item.Category != types.CategoryRecipe {
			continue
		}
		score, reasons := scoreCocktail(profile, item)
		scored = append(scored, types.ScoredCocktail{
			Item:    item,
			Score:   score,
			Reasons: reasons,
		})
	}

	// Stable sort keeps catalog order as the tiebreak.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > featuredLimit {
		scored = scored[:featuredLimit]
	}
	return scored
}

// scoreCocktail evaluates the four scoring factors against one recipe.
// Reasons are collected in encounter order, without deduplication.
func scoreCocktail(profile types.PersonalizationProfile, item types.SearchableItem) (float64, []string) {
	var score float64
	var reasons []string
	recipe := item.Recipe()

	// Spirit match: profile spirit score scaled by weight.
	if recipe != nil && recipe.BaseSpirit != "" {
		spiritScore := profile.SpiritScore(recipe.BaseSpirit)
		score += float64(spiritScore) * spiritWeight
		if spiritScore > lookup.NeutralSpiritScore {
			reasons = append(reasons, fmt.Sprintf("features %s, one of your favorite spirits", recipe.BaseSpirit))
		}
	}

	// Difficulty inside the preferred ladder earns a flat bonus.
	if item.Difficulty != "" && profile.PrefersDifficulty(item.Difficulty) {
		score += difficultyBonus
		reasons = append(reasons, fmt.Sprintf("%s difficulty fits your comfort zone", item.Difficulty))
	}

	// Track alignment: exactly one of the three pairings applies.
	if trackAligned(profile.PreferredABV, recipe) {
		score += trackBonus
		reasons = append(reasons, fmt.Sprintf("matches your %s track", profile.PreferredABV))
	}

	// Flavor hits: each preference found in the description or
	// ingredients contributes up to the per-flavor maximum.
	haystack := flavorHaystack(item, recipe)
	for _, flavor := range profile.FlavorPreferences {
		if !strings.Contains(haystack, flavor) {
			continue
		}
		score += float64(profile.FlavorScore(flavor)) / 100 * flavorMaxBonus
		reasons = append(reasons, fmt.Sprintf("%s notes match your taste", flavor))
	}

	if score > maxScore {
		score = maxScore
	}
	return score, reasons
}

// trackAligned pairs zero-proof with mocktails, low-abv with low-alcohol
// recipes, and alcoholic with everything else.
func trackAligned(track types.Track, recipe *types.RecipePayload) bool {
	mocktail := recipe != nil && recipe.Mocktail
	lowAlcohol := recipe != nil && recipe.LowAlcohol

	switch track {
	case types.TrackZeroProof:
		return mocktail
	case types.TrackLowABV:
		return lowAlcohol
	default:
		return !mocktail && !lowAlcohol
	}
}

// flavorHaystack is the lowercased text flavor preferences are matched
// against.
func flavorHaystack(item types.SearchableItem, recipe *types.RecipePayload) string {
	var b strings.Builder
	b.WriteString(item.Description)
	if recipe != nil {
		for _, ing := range recipe.Ingredients {
			b.WriteString(" ")
			b.WriteString(ing)
		}
	}
	return strings.ToLower(b.String())
}

// brandPicks attaches a static priority and a brand list to each favorite
// spirit in existing rank order. Spirits without a table entry yield an
// empty brand list.
func brandPicks(profile types.PersonalizationProfile) []types.BrandRecommendation {
	picks := make([]types.BrandRecommendation, 0, len(profile.FavoriteSpirits))
	for i, spirit := range profile.FavoriteSpirits {
		brands := lookup.SpiritBrands[spirit]
		picks = append(picks, types.BrandRecommendation{
			Spirit:   spirit,
			Priority: brandPriorityTop - brandPriorityStep*i,
			Brands:   append([]string(nil), brands...),
		})
	}
	return picks
}

// learningPath returns the lesson sequence for the profile's track: the
// first three as next lessons and the full list as suggested modules.
func learningPath(profile types.PersonalizationProfile) types.LearningPath {
	lessons := lookup.LessonsByTrack[profile.LessonTrack]
	next := lessons
	if len(next) > nextLessonCount {
		next = next[:nextLessonCount]
	}
	return types.LearningPath{
		CurrentLevel: profile.SkillLevel,
		Track:        profile.LessonTrack,
		NextLessons:  append([]string(nil), next...),
		Modules:      append([]string(nil), lessons...),
	}
}

// moodRanking starts every category at the base affinity, applies spirit
// and flavor boosts, clamps to 100, and sorts descending.
func moodRanking(profile types.PersonalizationProfile) []types.MoodAffinity {
	scores := make(map[string]int, len(lookup.MoodCategories))
	for _, mood := range lookup.MoodCategories {
		scores[mood] = moodBaseAffinity
	}

	for _, spirit := range profile.FavoriteSpirits {
		for _, mood := range lookup.SpiritMoods[spirit] {
			scores[mood] += moodSpiritBoost
		}
	}
	for _, flavor := range profile.FlavorPreferences {
		for _, mood := range lookup.FlavorMoods[flavor] {
			scores[mood] += moodFlavorBoost
		}
	}

	ranking := make([]types.MoodAffinity, 0, len(lookup.MoodCategories))
	for _, mood := range lookup.MoodCategories {
		score := scores[mood]
		if score > 100 {
			score = 100
		}
		ranking = append(ranking, types.MoodAffinity{
			Mood:       mood,
			Score:      score,
			ExampleIDs: append([]string(nil), lookup.MoodExamples[mood]...),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})
	return ranking
}
