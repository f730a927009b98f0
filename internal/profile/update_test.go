package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixmentor/mixmentor/internal/lookup"
	"github.com/mixmentor/mixmentor/internal/survey"
	"github.com/mixmentor/mixmentor/pkg/types"
)

func TestApplyUpdateAddFavorite(t *testing.T) {
	t.Run("adds and promotes score", func(t *testing.T) {
		p := BuildProfile(types.SurveyAnswers{
			survey.QSpirits: types.AnswerList("whiskey"),
		})

		updated := ApplyUpdate(p, types.ProfileUpdate{AddFavoriteSpirit: "tequila"})

		assert.Equal(t, []string{"whiskey", "tequila"}, updated.FavoriteSpirits)
		assert.Equal(t, 85, updated.SpiritScores["tequila"])
	})

	t.Run("full list drops the lowest-ranked favorite", func(t *testing.T) {
		p := BuildProfile(types.SurveyAnswers{
			survey.QSpirits: types.AnswerList("whiskey", "gin", "rum"),
		})

		updated := ApplyUpdate(p, types.ProfileUpdate{AddFavoriteSpirit: "vodka"})

		assert.Equal(t, []string{"whiskey", "gin", "vodka"}, updated.FavoriteSpirits)
		assert.Equal(t, lookup.NeutralSpiritScore, updated.SpiritScores["rum"],
			"the dropped spirit resets to neutral")
		assert.Equal(t, 85, updated.SpiritScores["vodka"])
	})

	t.Run("existing favorite is a no-op", func(t *testing.T) {
		p := BuildProfile(types.SurveyAnswers{
			survey.QSpirits: types.AnswerList("whiskey"),
		})

		updated := ApplyUpdate(p, types.ProfileUpdate{AddFavoriteSpirit: "whiskey"})

		assert.Equal(t, []string{"whiskey"}, updated.FavoriteSpirits)
		assert.Equal(t, 90, updated.SpiritScores["whiskey"], "a top pick keeps its higher score")
	})

	t.Run("unknown spirit is rejected", func(t *testing.T) {
		p := BuildProfile(types.SurveyAnswers{})
		updated := ApplyUpdate(p, types.ProfileUpdate{AddFavoriteSpirit: "absinthe"})
		assert.Empty(t, updated.FavoriteSpirits)
	})
}

func TestApplyUpdateRemoveFavorite(t *testing.T) {
	p := BuildProfile(types.SurveyAnswers{
		survey.QSpirits: types.AnswerList("whiskey", "gin"),
	})

	updated := ApplyUpdate(p, types.ProfileUpdate{RemoveFavoriteSpirit: "whiskey"})

	assert.Equal(t, []string{"gin"}, updated.FavoriteSpirits)
	assert.Equal(t, lookup.NeutralSpiritScore, updated.SpiritScores["whiskey"])
	assert.Equal(t, 80, updated.SpiritScores["gin"], "remaining favorites keep their scores")
}

func TestApplyUpdateReinforceFlavor(t *testing.T) {
	t.Run("bumps by step", func(t *testing.T) {
		p := BuildProfile(types.SurveyAnswers{
			survey.QFlavors: types.AnswerList("citrus"),
		})

		updated := ApplyUpdate(p, types.ProfileUpdate{ReinforceFlavor: "citrus"})
		assert.Equal(t, 90, updated.FlavorScores["citrus"])
	})

	t.Run("clamps at 100", func(t *testing.T) {
		p := BuildProfile(types.SurveyAnswers{
			survey.QFlavors: types.AnswerList("citrus"),
		})
		for i := 0; i < 10; i++ {
			p = ApplyUpdate(p, types.ProfileUpdate{ReinforceFlavor: "citrus"})
		}
		assert.Equal(t, 100, p.FlavorScores["citrus"])
	})

	t.Run("records a new preference", func(t *testing.T) {
		p := BuildProfile(types.SurveyAnswers{})
		updated := ApplyUpdate(p, types.ProfileUpdate{ReinforceFlavor: "smoky"})
		assert.Contains(t, updated.FlavorPreferences, "smoky")
		assert.Equal(t, lookup.NeutralFlavorScore+5, updated.FlavorScores["smoky"])
	})
}

func TestApplyUpdateExperienceRederivesSkill(t *testing.T) {
	p := BuildProfile(types.SurveyAnswers{})
	require.Equal(t, types.LevelBeginner, p.SkillLevel)

	updated := ApplyUpdate(p, types.ProfileUpdate{AddExperience: 50})

	assert.Equal(t, 50, updated.ExperienceScore)
	assert.Equal(t, types.LevelIntermediate, updated.SkillLevel)
	assert.Equal(t,
		[]types.Difficulty{types.DifficultyEasy, types.DifficultyMedium},
		updated.PreferredDifficulty, "difficulty ladder follows the new level")
}

func TestApplyUpdateSessionMinutes(t *testing.T) {
	p := BuildProfile(types.SurveyAnswers{})
	require.Equal(t, 5, p.SessionMinutes)

	assert.Equal(t, 8, ApplyUpdate(p, types.ProfileUpdate{SessionMinutes: 8}).SessionMinutes)
	assert.Equal(t, 5, ApplyUpdate(p, types.ProfileUpdate{SessionMinutes: 7}).SessionMinutes,
		"only the three supported lengths are accepted")
}

func TestApplyUpdateDoesNotMutateInput(t *testing.T) {
	p := BuildProfile(types.SurveyAnswers{
		survey.QSpirits: types.AnswerList("whiskey"),
	})
	before := p.SpiritScores["whiskey"]

	_ = ApplyUpdate(p, types.ProfileUpdate{RemoveFavoriteSpirit: "whiskey"})

	assert.Equal(t, before, p.SpiritScores["whiskey"])
	assert.Equal(t, []string{"whiskey"}, p.FavoriteSpirits)
}
