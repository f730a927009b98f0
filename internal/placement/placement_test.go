package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixmentor/mixmentor/internal/survey"
	"github.com/mixmentor/mixmentor/pkg/types"
)

// maxSignalAnswers earns every placement point.
func maxSignalAnswers() types.SurveyAnswers {
	return types.SurveyAnswers{
		survey.QConfidence: types.AnswerOf("very-confident"),
		survey.QKnowledge:  types.AnswerOf(survey.KnowledgeAnswer),
		survey.QGlassware:  types.AnswerOf(survey.GlasswareAnswer),
		survey.QTools:      types.AnswerList("jigger", "shaker", "barspoon", "strainer"),
		survey.QBuildOrder: types.AnswerList(survey.CanonicalBuildOrder...),
	}
}

func TestPlaceUserMaxSignals(t *testing.T) {
	result := PlaceUser(maxSignalAnswers())

	assert.Equal(t, 10, result.Score)
	assert.Equal(t, types.LevelAdvanced, result.Level)
	assert.Equal(t, StartAdvancedLab, result.StartID)
	require.NoError(t, result.Validate())
}

func TestLevelScore(t *testing.T) {
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
			name: "somewhat confident only",
			answers: types.SurveyAnswers{
				survey.QConfidence: types.AnswerOf("somewhat-confident"),
			},
			want: 1,
		},
		{
			name: "knowledge and glassware",
			answers: types.SurveyAnswers{
				survey.QKnowledge: types.AnswerOf(survey.KnowledgeAnswer),
				survey.QGlassware: types.AnswerOf(survey.GlasswareAnswer),
			},
			want: 4,
		},
		{
			name: "wrong knowledge answer earns nothing",
			answers: types.SurveyAnswers{
				survey.QKnowledge: types.AnswerOf("mojito"),
			},
			want: 0,
		},
		{
			name: "one tool",
			answers: types.SurveyAnswers{
				survey.QTools: types.AnswerList("shaker"),
			},
			want: 1,
		},
		{
			name: "two tools still one point",
			answers: types.SurveyAnswers{
				survey.QTools: types.AnswerList("shaker", "jigger"),
			},
			want: 1,
		},
		{
			name: "three tools two points",
			answers: types.SurveyAnswers{
				survey.QTools: types.AnswerList("shaker", "jigger", "strainer"),
			},
			want: 2,
		},
		{
			name: "wrong build order earns nothing",
			answers: types.SurveyAnswers{
				survey.QBuildOrder: types.AnswerList("stir", "chill-glass", "add-ingredients", "add-ice", "strain", "garnish"),
			},
			want: 0,
		},
		{
			name: "partial build order earns nothing",
			answers: types.SurveyAnswers{
				survey.QBuildOrder: types.AnswerList("chill-glass", "add-ingredients"),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levelScore(tt.answers))
		})
	}
}

func TestLevelThresholds(t *testing.T) {
	assert.Equal(t, types.LevelBeginner, levelFor(0))
	assert.Equal(t, types.LevelBeginner, levelFor(3))
	assert.Equal(t, types.LevelIntermediate, levelFor(4))
	assert.Equal(t, types.LevelIntermediate, levelFor(7))
	assert.Equal(t, types.LevelAdvanced, levelFor(8))
	assert.Equal(t, types.LevelAdvanced, levelFor(10))
}

func TestResolveTrack(t *testing.T) {
	tests := []struct {
		name    string
		answers types.SurveyAnswers
		want    types.Track
	}{
		{
			name:    "default is alcoholic",
			answers: types.SurveyAnswers{},
			want:    types.TrackAlcoholic,
		},
		{
			name: "explicit low-abv",
			answers: types.SurveyAnswers{
				survey.QABV: types.AnswerOf("low-abv"),
			},
			want: types.TrackLowABV,
		},
		{
			name: "avoid-alcohol overrides explicit full strength",
			answers: types.SurveyAnswers{
				survey.QAvoidAlc: types.AnswerOf("yes"),
				survey.QABV:      types.AnswerOf("alcoholic"),
			},
			want: types.TrackZeroProof,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveTrack(tt.answers))
		})
	}
}

func TestResolveSpirits(t *testing.T) {
	t.Run("takes first two picks", func(t *testing.T) {
		answers := types.SurveyAnswers{
			survey.QSpirits: types.AnswerList("whiskey", "gin", "rum"),
		}
		assert.Equal(t, []string{"whiskey", "gin"}, resolveSpirits(answers, types.TrackAlcoholic))
	})

	t.Run("skips the none sentinel", func(t *testing.T) {
		answers := types.SurveyAnswers{
			survey.QSpirits: types.AnswerList("none", "tequila"),
		}
		assert.Equal(t, []string{"tequila"}, resolveSpirits(answers, types.TrackAlcoholic))
	})

	t.Run("defaults when nothing usable", func(t *testing.T) {
		answers := types.SurveyAnswers{
			survey.QSpirits: types.AnswerList("none"),
		}
		assert.Equal(t, []string{"gin", "rum"}, resolveSpirits(answers, types.TrackAlcoholic))
	})

	t.Run("zero-proof defaults use alternatives", func(t *testing.T) {
		assert.Equal(t, []string{"gin-alternative", "rum-alternative"},
			resolveSpirits(types.SurveyAnswers{}, types.TrackZeroProof))
	})
}

func TestStartContentTable(t *testing.T) {
	tests := []struct {
		level      types.SkillLevel
		confidence string
		want       string
	}{
		{types.LevelBeginner, "", StartFirstSteps},
		{types.LevelBeginner, "not-confident", StartFirstSteps},
		{types.LevelBeginner, "somewhat-confident", StartFoundations},
		{types.LevelIntermediate, "somewhat-confident", StartTechniqueTuneUp},
		{types.LevelIntermediate, "very-confident", StartClassicCore},
		{types.LevelAdvanced, "very-confident", StartAdvancedLab},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, startContent(tt.level, tt.confidence),
			"level=%s confidence=%s", tt.level, tt.confidence)
	}
}

func TestSessionMinutes(t *testing.T) {
	assert.Equal(t, 3, sessionMinutes("short"))
	assert.Equal(t, 5, sessionMinutes("medium"))
	assert.Equal(t, 8, sessionMinutes("long"))
	assert.Equal(t, 5, sessionMinutes(""), "unanswered defaults to the middle length")
}

func TestRationaleWording(t *testing.T) {
	result := PlaceUser(types.SurveyAnswers{
		survey.QSpirits: types.AnswerList("whiskey", "gin"),
		survey.QSession: types.AnswerOf("short"),
	})

	assert.Equal(t,
		"Placed at the beginner level (0/10): we'll start with the fundamentals. "+
			"Your path focuses on full-strength classics, leaning on whiskey and gin, with 3-minute sessions.",
		result.Rationale)
}

func TestPlaceUserZeroProof(t *testing.T) {
	result := PlaceUser(types.SurveyAnswers{
		survey.QAvoidAlc: types.AnswerOf("yes"),
	})

	assert.Equal(t, types.TrackZeroProof, result.Track)
	assert.Equal(t, []string{"gin-alternative", "rum-alternative"}, result.Spirits)
	require.NoError(t, result.Validate())
}
