package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixmentor/mixmentor/pkg/types"
)

func TestCatalogShape(t *testing.T) {
	questions := Questions()
	require.Len(t, questions, 14)

	seen := make(map[string]bool)
	for _, q := range questions {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Text, "question %s has no text", q.ID)
		assert.NotEmpty(t, q.Section, "question %s has no section", q.ID)
		assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true

		if q.Type == types.AnswerOrdering {
			continue
		}
		assert.NotEmpty(t, q.Options, "question %s has no options", q.ID)
	}
}

func TestImageChoiceQuestionsCarryImageRefs(t *testing.T) {
	glassware, ok := QuestionByID(QGlassware)
	require.True(t, ok)
	require.Equal(t, types.AnswerImageChoice, glassware.Type)
	for _, opt := range glassware.Options {
		assert.NotEmpty(t, opt.ImageRef, "image-choice option %s needs an image", opt.Value)
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID(QSpirits)
	require.True(t, ok)
	assert.Equal(t, QSpirits, q.ID)
	assert.Equal(t, types.AnswerMultiChoice, q.Type)

	_, ok = QuestionByID("q99")
	assert.False(t, ok)
}

func TestQuestionsReturnsCopy(t *testing.T) {
	first := Questions()
	first[0].Text = "mutated"

	fresh := Questions()
	assert.NotEqual(t, "mutated", fresh[0].Text, "callers must not be able to mutate the catalog")
}

func TestCanonicalBuildOrder(t *testing.T) {
	require.Len(t, CanonicalBuildOrder, 6)
	assert.Equal(t, "chill-glass", CanonicalBuildOrder[0])
	assert.Equal(t, "garnish", CanonicalBuildOrder[5])

	ordering, ok := QuestionByID(QBuildOrder)
	require.True(t, ok)
	require.Equal(t, types.AnswerOrdering, ordering.Type)
	require.Len(t, ordering.Options, len(CanonicalBuildOrder))
	for _, step := range CanonicalBuildOrder {
		found := false
		for _, opt := range ordering.Options {
			if opt.Value == step {
				found = true
				break
			}
		}
		assert.True(t, found, "canonical step %s missing from options", step)
	}
}
