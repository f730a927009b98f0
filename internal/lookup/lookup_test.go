package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixmentor/mixmentor/pkg/types"
)

func TestVocabularies(t *testing.T) {
	assert.Len(t, KnownSpirits, 7)
	assert.Len(t, KnownFlavors, 7)
	assert.Len(t, MoodCategories, 8)

	assert.True(t, IsKnownSpirit("whiskey"))
	assert.False(t, IsKnownSpirit("absinthe"))
	assert.True(t, IsKnownFlavor("smoky"))
	assert.False(t, IsKnownFlavor("umami"))
}

func TestMoodTablesReferenceKnownCategories(t *testing.T) {
	known := make(map[string]bool, len(MoodCategories))
	for _, mood := range MoodCategories {
		known[mood] = true
	}

	for spirit, moods := range SpiritMoods {
		assert.True(t, IsKnownSpirit(spirit), "mood table references unknown spirit %s", spirit)
		for _, mood := range moods {
			assert.True(t, known[mood], "spirit %s references unknown mood %q", spirit, mood)
		}
	}
	for flavor, moods := range FlavorMoods {
		assert.True(t, IsKnownFlavor(flavor), "mood table references unknown flavor %s", flavor)
		for _, mood := range moods {
			assert.True(t, known[mood], "flavor %s references unknown mood %q", flavor, mood)
		}
	}
	for mood := range MoodExamples {
		assert.True(t, known[mood], "examples reference unknown mood %q", mood)
	}
}

func TestEverySpiritAndFlavorHasMoods(t *testing.T) {
	for _, spirit := range KnownSpirits {
		assert.NotEmpty(t, SpiritMoods[spirit], "spirit %s has no moods", spirit)
	}
	for _, flavor := range KnownFlavors {
		assert.NotEmpty(t, FlavorMoods[flavor], "flavor %s has no moods", flavor)
	}
}

func TestBrandTablesReferenceKnownSpirits(t *testing.T) {
	for spirit := range SpiritBrands {
		assert.True(t, IsKnownSpirit(spirit))
	}
	for spirit := range ZeroProofAlternatives {
		assert.True(t, IsKnownSpirit(spirit))
	}
}

func TestEveryLessonTrackHasModules(t *testing.T) {
	tracks := []types.LessonTrack{
		types.TrackFundamentals,
		types.TrackEnthusiast,
		types.TrackProfessional,
		types.TrackZeroProofPath,
	}
	for _, track := range tracks {
		lessons, ok := LessonsByTrack[track]
		require.True(t, ok, "track %s has no lesson list", track)
		assert.GreaterOrEqual(t, len(lessons), 3, "track %s needs at least three lessons", track)
	}
}
