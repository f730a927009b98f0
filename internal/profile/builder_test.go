package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixmentor/mixmentor/internal/lookup"
	"github.com/mixmentor/mixmentor/internal/survey"
	"github.com/mixmentor/mixmentor/pkg/types"
)

func richAnswers() types.SurveyAnswers {
	return types.SurveyAnswers{
		survey.QFrequency:  types.AnswerOf("weekly"),
		survey.QConfidence: types.AnswerOf("somewhat-confident"),
		survey.QKnowledge:  types.AnswerOf(survey.KnowledgeAnswer),
		survey.QSpirits:    types.AnswerList("whiskey", "gin", "rum"),
		survey.QFlavors:    types.AnswerList("bitter", "citrus", "smoky"),
		survey.QGoals:      types.AnswerList("classics"),
		survey.QTools:      types.AnswerList("jigger", "shaker"),
		survey.QSession:    types.AnswerOf("long"),
	}
}

func TestBuildProfileExperience(t *testing.T) {
	tests := []struct {
		name    string
		answers types.SurveyAnswers
		want    int
	}{
		{
			name:    "no answers",
			answers: types.SurveyAnswers{},
			want:    0,
		},
		{
			name: "frequency tiers",
			answers: types.SurveyAnswers{
				survey.QFrequency: types.AnswerOf("daily"),
			},
			want: 30,
		},
		{
			name: "confidence and knowledge stack",
			answers: types.SurveyAnswers{
				survey.QConfidence: types.AnswerOf("very-confident"),
				survey.QKnowledge:  types.AnswerOf(survey.KnowledgeAnswer),
			},
			want: 50,
		},
		{
			name: "every accumulator maxed",
			answers: types.SurveyAnswers{
				survey.QFrequency:  types.AnswerOf("daily"),
				survey.QConfidence: types.AnswerOf("very-confident"),
				survey.QKnowledge:  types.AnswerOf(survey.KnowledgeAnswer),
				survey.QGlassware:  types.AnswerOf(survey.GlasswareAnswer),
				survey.QAdventure:  types.AnswerOf("always"),
				survey.QHomeBar:    types.AnswerOf("stocked"),
			},
			want: 140,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildProfile(tt.answers)
			assert.Equal(t, tt.want, p.ExperienceScore)
		})
	}
}

func TestExperienceClampsAtRead(t *testing.T) {
	p := BuildProfile(types.SurveyAnswers{
		survey.QFrequency:  types.AnswerOf("daily"),
		survey.QConfidence: types.AnswerOf("very-confident"),
		survey.QKnowledge:  types.AnswerOf(survey.KnowledgeAnswer),
		survey.QGlassware:  types.AnswerOf(survey.GlasswareAnswer),
		survey.QAdventure:  types.AnswerOf("always"),
		survey.QHomeBar:    types.AnswerOf("stocked"),
	})

	assert.Greater(t, p.ExperienceScore, 100, "the raw accumulator is unbounded")
	assert.Equal(t, 100, p.Experience(), "reads clamp to 100")
	assert.Equal(t, types.LevelAdvanced, p.SkillLevel)
}

func TestSkillLevelThresholds(t *testing.T) {
	assert.Equal(t, types.LevelBeginner, skillFor(0))
	assert.Equal(t, types.LevelBeginner, skillFor(30))
	assert.Equal(t, types.LevelIntermediate, skillFor(31))
	assert.Equal(t, types.LevelIntermediate, skillFor(70))
	assert.Equal(t, types.LevelAdvanced, skillFor(71))
}

func TestSpiritScores(t *testing.T) {
	p := BuildProfile(richAnswers())

	assert.Equal(t, []string{"whiskey", "gin", "rum"}, p.FavoriteSpirits)
	assert.Equal(t, 90, p.SpiritScores["whiskey"])
	assert.Equal(t, 80, p.SpiritScores["gin"])
	assert.Equal(t, 70, p.SpiritScores["rum"])

	// Unpicked spirits hold the neutral baseline.
	assert.Equal(t, lookup.NeutralSpiritScore, p.SpiritScores["vodka"])

	for _, spirit := range lookup.KnownSpirits {
		score, ok := p.SpiritScores[spirit]
		require.True(t, ok, "every known spirit carries a score")
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestSpiritScoresSkipUnknownAndNone(t *testing.T) {
	p := BuildProfile(types.SurveyAnswers{
		survey.QSpirits: types.AnswerList("none", "absinthe", "tequila"),
	})

	assert.Equal(t, []string{"tequila"}, p.FavoriteSpirits)
	assert.Equal(t, 90, p.SpiritScores["tequila"], "first usable pick gets the top score")
	assert.NotContains(t, p.SpiritScores, "absinthe")
}

func TestFlavorScores(t *testing.T) {
	p := BuildProfile(types.SurveyAnswers{
		survey.QFlavors: types.AnswerList(lookup.KnownFlavors...),
	})

	// 85, 80, 75, 70, 65, 60, 55: step five per pick, floored at 55.
	want := []int{85, 80, 75, 70, 65, 60, 55}
	for i, flavor := range lookup.KnownFlavors {
		assert.Equal(t, want[i], p.FlavorScores[flavor], "flavor %s", flavor)
	}

	for _, flavor := range lookup.KnownFlavors {
		score := p.FlavorScores[flavor]
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestComplexityScore(t *testing.T) {
	p := BuildProfile(types.SurveyAnswers{
		survey.QFrequency: types.AnswerOf("weekly"),
		survey.QGoals:     types.AnswerList("professional", "classics"),
	})

	// 20 experience + 20 professional + 10 classics.
	assert.Equal(t, 50, p.ComplexityScore)
}

func TestDifficultyLadderIsSuperset(t *testing.T) {
	assert.Equal(t,
		[]types.Difficulty{types.DifficultyEasy},
		difficultyLadder(types.LevelBeginner))
	assert.Equal(t,
		[]types.Difficulty{types.DifficultyEasy, types.DifficultyMedium},
		difficultyLadder(types.LevelIntermediate))
	assert.Equal(t,
		[]types.Difficulty{types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard},
		difficultyLadder(types.LevelAdvanced))
}

func TestMoodAffinities(t *testing.T) {
	t.Run("whiskey contributes its moods", func(t *testing.T) {
		moods := moodAffinities([]string{"whiskey"})
		assert.ElementsMatch(t,
			[]string{"Bold & Serious", "Mystery & Depth", "After-Dinner Indulgence"},
			moods)
	})

	t.Run("shared moods rank first", func(t *testing.T) {
		// gin and vodka share Light & Breezy and Refined & Elegant.
		moods := moodAffinities([]string{"gin", "vodka"})
		require.NotEmpty(t, moods)
		assert.Contains(t, moods[:2], "Light & Breezy")
		assert.Contains(t, moods[:2], "Refined & Elegant")
	})

	t.Run("top five only", func(t *testing.T) {
		moods := moodAffinities([]string{"gin", "whiskey", "rum"})
		assert.LessOrEqual(t, len(moods), 5)
	})

	t.Run("no favorites means no affinities", func(t *testing.T) {
		assert.Empty(t, moodAffinities(nil))
	})
}

func TestLessonTrackSelection(t *testing.T) {
	tests := []struct {
		name    string
		answers types.SurveyAnswers
		want    types.LessonTrack
	}{
		{
			name:    "beginner lands on fundamentals",
			answers: types.SurveyAnswers{},
			want:    types.TrackFundamentals,
		},
		{
			name: "zero-proof wins over everything",
			answers: types.SurveyAnswers{
				survey.QAvoidAlc: types.AnswerOf("yes"),
				survey.QGoals:    types.AnswerList("professional"),
			},
			want: types.TrackZeroProofPath,
		},
		{
			name: "professional goal for non-beginners",
			answers: types.SurveyAnswers{
				survey.QFrequency:  types.AnswerOf("daily"),
				survey.QConfidence: types.AnswerOf("somewhat-confident"),
				survey.QGoals:      types.AnswerList("professional"),
			},
			want: types.TrackProfessional,
		},
		{
			name: "everyone else is an enthusiast",
			answers: types.SurveyAnswers{
				survey.QFrequency:  types.AnswerOf("daily"),
				survey.QConfidence: types.AnswerOf("somewhat-confident"),
			},
			want: types.TrackEnthusiast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildProfile(tt.answers)
			assert.Equal(t, tt.want, p.LessonTrack)
		})
	}
}

func TestBuildProfileValidates(t *testing.T) {
	p := BuildProfile(richAnswers())
	require.NoError(t, p.Validate())
	assert.Equal(t, 8, p.SessionMinutes)
	assert.Equal(t, types.TrackAlcoholic, p.PreferredABV)
}
