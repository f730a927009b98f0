package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerJSON(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   string
	}{
		{
			name:   "single value encodes as bare string",
			answer: AnswerOf("weekly"),
			want:   `"weekly"`,
		},
		{
			name:   "multiple values encode as array",
			answer: AnswerList("gin", "whiskey"),
			want:   `["gin","whiskey"]`,
		},
		{
			name:   "empty answer encodes as empty array",
			answer: Answer{},
			want:   `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestAnswerUnmarshalAcceptsBothShapes(t *testing.T) {
	var fromString Answer
	require.NoError(t, json.Unmarshal([]byte(`"coupe"`), &fromString))
	assert.Equal(t, []string{"coupe"}, fromString.Values)

	var fromArray Answer
	require.NoError(t, json.Unmarshal([]byte(`["citrus","bitter"]`), &fromArray))
	assert.Equal(t, []string{"citrus", "bitter"}, fromArray.Values)

	var bad Answer
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestSurveyAnswersAccessors(t *testing.T) {
	answers := SurveyAnswers{
		"q2": AnswerOf("very-confident"),
		"q5": AnswerList("gin", "rum", "vodka"),
		"q9": {},
	}

	assert.Equal(t, "very-confident", answers.Single("q2"))
	assert.Equal(t, "gin", answers.Single("q5"), "Single returns the first value of a list")
	assert.Equal(t, "", answers.Single("q99"), "missing question yields empty string")

	assert.Equal(t, []string{"gin", "rum", "vodka"}, answers.Multi("q5"))
	assert.Nil(t, answers.Multi("q99"))

	assert.True(t, answers.Has("q2"))
	assert.False(t, answers.Has("q9"), "empty answer does not count as answered")
	assert.False(t, answers.Has("q99"))
}

func TestSurveyAnswersRoundTrip(t *testing.T) {
	answers := SurveyAnswers{
		"q2":  AnswerOf("somewhat-confident"),
		"q14": AnswerList("chill-glass", "add-ingredients", "add-ice", "stir", "strain", "garnish"),
	}

	data, err := json.Marshal(answers)
	require.NoError(t, err)

	var decoded SurveyAnswers
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, answers, decoded)
}
