// Package placement converts onboarding survey answers into a one-time
// placement decision: skill level, content track, preferred spirits,
// starting content, and session length.
//
// PlaceUser is a pure, total function. Missing answers count as "no
// credit" for their signal rather than an error, so any partial answer
// map produces a valid placement.
package placement

import (
	"fmt"
	"strings"

	"github.com/mixmentor/mixmentor/internal/lookup"
	"github.com/mixmentor/mixmentor/internal/survey"
	"github.com/mixmentor/mixmentor/pkg/types"
)

// Level score thresholds on the 0-10 signal scale.
const (
	beginnerMax     = 3
	intermediateMax = 7
)

// Starting content ids selected by the (level, confidence) decision table.
const (
	StartFirstSteps      = "start-first-steps"
	StartFoundations     = "start-foundations"
	StartTechniqueTuneUp = "start-technique-tune-up"
	StartClassicCore     = "start-classic-core"
	StartAdvancedLab     = "start-advanced-lab"
)

// defaultSpirits is the fallback when the user picked no usable spirit.
var defaultSpirits = []string{"gin", "rum"}

// PlaceUser derives a placement decision from survey answers.
func PlaceUser(answers types.SurveyAnswers) types.PlacementResult {
	score := levelScore(answers)
	level := levelFor(score)
	track := resolveTrack(answers)
	spirits := resolveSpirits(answers, track)

	result := types.PlacementResult{
		Level:          level,
		Track:          track,
		Spirits:        spirits,
		StartID:        startContent(level, answers.Single(survey.QConfidence)),
		SessionMinutes: sessionMinutes(answers.Single(survey.QSession)),
		Score:          score,
	}
	result.Rationale = rationale(result)
	return result
}

// levelScore accumulates the five placement signals.
func levelScore(answers types.SurveyAnswers) int {
	score := confidenceSignal(answers.Single(survey.QConfidence))

	if answers.Single(survey.QKnowledge) == survey.KnowledgeAnswer {
		score += 2
	}
	if answers.Single(survey.QGlassware) == survey.GlasswareAnswer {
		score += 2
	}

	score += toolSignal(len(answers.Multi(survey.QTools)))

	if buildOrderCorrect(answers.Multi(survey.QBuildOrder)) {
		score += 2
	}
	return score
}

func confidenceSignal(confidence string) int {
	switch confidence {
	case "somewhat-confident":
		return 1
	case "very-confident":
		return 2
	default:
		return 0
	}
}

// toolSignal thresholds the count of selected tools.
func toolSignal(count int) int {
	switch {
	case count > 2:
		return 2
	case count >= 1:
		return 1
	default:
		return 0
	}
}

// buildOrderCorrect checks the answer against the canonical six-step
// stirred-cocktail build. Only an exact match earns credit.
func buildOrderCorrect(order []string) bool {
	if len(order) != len(survey.CanonicalBuildOrder) {
		return false
	}
	for i, step := range order {
		if step != survey.CanonicalBuildOrder[i] {
			return false
		}
	}
	return true
}

func levelFor(score int) types.SkillLevel {
	switch {
	case score <= beginnerMax:
		return types.LevelBeginner
	case score <= intermediateMax:
		return types.LevelIntermediate
	default:
		return types.LevelAdvanced
	}
}

// resolveTrack picks the content track. An affirmative avoid-alcohol
// answer forces zero-proof, overriding any explicit ABV selection.
func resolveTrack(answers types.SurveyAnswers) types.Track {
	if answers.Single(survey.QAvoidAlc) == "yes" {
		return types.TrackZeroProof
	}
	switch types.Track(answers.Single(survey.QABV)) {
	case types.TrackLowABV:
		return types.TrackLowABV
	case types.TrackZeroProof:
		return types.TrackZeroProof
	default:
		return types.TrackAlcoholic
	}
}

// resolveSpirits takes up to the first two picked spirits, skipping the
// "none" sentinel, and falls back to defaults matched to the track.
func resolveSpirits(answers types.SurveyAnswers, track types.Track) []string {
	spirits := make([]string, 0, 2)
	for _, pick := range answers.Multi(survey.QSpirits) {
		if pick == "none" {
			continue
		}
		spirits = append(spirits, pick)
		if len(spirits) == 2 {
			break
		}
	}
	if len(spirits) > 0 {
		return spirits
	}

	if track != types.TrackZeroProof {
		return append([]string(nil), defaultSpirits...)
	}
	alts := make([]string, 0, len(defaultSpirits))
	for _, spirit := range defaultSpirits {
		if alt, ok := lookup.ZeroProofAlternatives[spirit]; ok {
			alts = append(alts, alt)
		}
	}
	return alts
}

// startContent is a small decision table keyed on level and the
// technique-confidence answer.
func startContent(level types.SkillLevel, confidence string) string {
	switch level {
	case types.LevelBeginner:
		if confidence == "" || confidence == "not-confident" {
			return StartFirstSteps
		}
		return StartFoundations
	case types.LevelIntermediate:
		if confidence == "very-confident" {
			return StartClassicCore
		}
		return StartTechniqueTuneUp
	default:
		return StartAdvancedLab
	}
}

func sessionMinutes(session string) int {
	switch session {
	case "short":
		return 3
	case "long":
		return 8
	default:
		return 5
	}
}

// Rationale phrases pinned by tests; keep wording stable.
var levelPhrases = map[types.SkillLevel]string{
	types.LevelBeginner:     "we'll start with the fundamentals",
	types.LevelIntermediate: "you have a solid base to build on",
	types.LevelAdvanced:     "you're ready for advanced techniques",
}

var trackPhrases = map[types.Track]string{
	types.TrackAlcoholic: "full-strength classics",
	types.TrackLowABV:    "lighter low-abv drinks",
	types.TrackZeroProof: "zero-proof drinks",
}

// rationale renders the templated placement explanation.
func rationale(pr types.PlacementResult) string {
	return fmt.Sprintf("Placed at the %s level (%d/10): %s. Your path focuses on %s, leaning on %s, with %d-minute sessions.",
		pr.Level, pr.Score, levelPhrases[pr.Level],
		trackPhrases[pr.Track], strings.Join(pr.Spirits, " and "), pr.SessionMinutes)
}
