package types

import "encoding/json"

// Option is a selectable survey answer
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	ImageRef string `json:"image_ref,omitempty"` // image-choice questions only
}

// SurveyQuestion defines one onboarding survey question. Questions are
// immutable and defined once in the survey catalog; their order in the
// catalog slice is the presentation order.
type SurveyQuestion struct {
	ID      string     `json:"id"`
	Section string     `json:"section"`
	Text    string     `json:"text"`
	Type    AnswerType `json:"type"`
	Options []Option   `json:"options"`
}

// Answer holds a survey response. Single-choice answers carry one value;
// multi-choice and ordering answers carry an ordered list.
type Answer struct {
	Values []string
}

// AnswerOf builds a single-value answer
func AnswerOf(value string) Answer {
	return Answer{Values: []string{value}}
}

// AnswerList builds an ordered multi-value answer
func AnswerList(values ...string) Answer {
	return Answer{Values: values}
}

// MarshalJSON encodes single-value answers as a bare string and
// multi-value answers as an array.
func (a Answer) MarshalJSON() ([]byte, error) {
	if len(a.Values) == 1 {
		return json.Marshal(a.Values[0])
	}
	return json.Marshal(a.Values)
}

// UnmarshalJSON accepts either a bare string or an array of strings.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		a.Values = []string{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	a.Values = list
	return nil
}

// SurveyAnswers maps question ids to answers. Partial maps are valid:
// accessors return zero values for missing questions so downstream
// scoring treats absence as "no credit" rather than an error.
type SurveyAnswers map[string]Answer

// Single returns the first value for a question, or "" when the question
// was not answered.
func (sa SurveyAnswers) Single(questionID string) string {
	ans, ok := sa[questionID]
	if !ok || len(ans.Values) == 0 {
		return ""
	}
	return ans.Values[0]
}

// Multi returns the ordered value list for a question, or nil when the
// question was not answered.
func (sa SurveyAnswers) Multi(questionID string) []string {
	ans, ok := sa[questionID]
	if !ok {
		return nil
	}
	return ans.Values
}

// Has reports whether a question was answered with at least one value.
func (sa SurveyAnswers) Has(questionID string) bool {
	ans, ok := sa[questionID]
	return ok && len(ans.Values) > 0
}
