// Package profile builds and maintains the weighted personalization
// profile derived from survey answers.
//
// BuildProfile is a pure, total function: every answer is folded into the
// profile through a per-question rule table, then derived fields (skill
// level, difficulty ladder, mood affinities, lesson track) are computed
// and the full spirit/flavor vocabulary is backfilled to neutral
// baselines. ApplyUpdate folds later interactions into an existing
// profile and re-derives the same fields.
//
// The skill level computed here is intentionally independent of the
// placement analyzer's: placement is a one-shot survey-time decision
// while this score evolves with the profile. The two can disagree.
package profile

import (
	"sort"

	"github.com/mixmentor/mixmentor/internal/lookup"
	"github.com/mixmentor/mixmentor/internal/survey"
	"github.com/mixmentor/mixmentor/pkg/types"
)

// Experience thresholds on the 0-100 scale (the placement analyzer uses
// the same cut points on its 0-10 signal scale).
const (
	beginnerMaxExperience     = 30
	intermediateMaxExperience = 70
)

// Spirit scores for the user's top three picks, best first.
var spiritPickScores = []int{90, 80, 70}

// Flavor scores descend by five per pick.
const (
	flavorTopScore  = 85
	flavorScoreStep = 5
	flavorMinScore  = 55
)

// Complexity bonuses per learning goal.
var goalComplexityBonus = map[string]int{
	"professional": 20,
	"originals":    15,
	"classics":     10,
}

// BuildProfile folds survey answers into a personalization profile.
func BuildProfile(answers types.SurveyAnswers) types.PersonalizationProfile {
	p := types.PersonalizationProfile{
		SpiritScores: make(map[string]int, len(lookup.KnownSpirits)),
		FlavorScores: make(map[string]int, len(lookup.KnownFlavors)),
	}

	p.ExperienceScore = experienceFrom(answers)
	foldSpirits(&p, answers.Multi(survey.QSpirits))
	foldFlavors(&p, answers.Multi(survey.QFlavors))

	p.PreferredABV = resolveABV(answers)
	p.LearningGoals = append([]string(nil), answers.Multi(survey.QGoals)...)
	p.AvailableTools = append([]string(nil), answers.Multi(survey.QTools)...)
	p.SessionMinutes = sessionMinutes(answers.Single(survey.QSession))

	derive(&p)
	backfillScores(&p)
	return p
}

// experienceFrom runs the experience accumulator rules.
func experienceFrom(answers types.SurveyAnswers) int {
	exp := 0

	switch answers.Single(survey.QFrequency) {
	case "occasionally":
		exp += 10
	case "weekly":
		exp += 20
	case "daily":
		exp += 30
	}

	switch answers.Single(survey.QConfidence) {
	case "somewhat-confident":
		exp += 15
	case "very-confident":
		exp += 30
	}

	if answers.Single(survey.QKnowledge) == survey.KnowledgeAnswer {
		exp += 20
	}
	if answers.Single(survey.QGlassware) == survey.GlasswareAnswer {
		exp += 20
	}

	switch answers.Single(survey.QAdventure) {
	case "sometimes":
		exp += 10
	case "always":
		exp += 20
	}

	switch answers.Single(survey.QHomeBar) {
	case "starter":
		exp += 10
	case "stocked":
		exp += 20
	}

	return exp
}

// foldSpirits extracts the top-3 known spirits with descending scores.
// The "none" sentinel and unknown spirits are silently excluded.
func foldSpirits(p *types.PersonalizationProfile, picks []string) {
	for _, pick := range picks {
		if pick == "none" || !lookup.IsKnownSpirit(pick) {
			continue
		}
		if len(p.FavoriteSpirits) == len(spiritPickScores) {
			break
		}
		p.SpiritScores[pick] = spiritPickScores[len(p.FavoriteSpirits)]
		p.FavoriteSpirits = append(p.FavoriteSpirits, pick)
	}
}

// foldFlavors extracts flavor preferences with scores descending from 85.
func foldFlavors(p *types.PersonalizationProfile, picks []string) {
	score := flavorTopScore
	for _, pick := range picks {
		if !lookup.IsKnownFlavor(pick) {
			continue
		}
		p.FlavorScores[pick] = score
		p.FlavorPreferences = append(p.FlavorPreferences, pick)
		if score > flavorMinScore {
			score -= flavorScoreStep
		}
	}
}

// resolveABV mirrors placement track resolution: an affirmative
// avoid-alcohol answer forces zero-proof.
func resolveABV(answers types.SurveyAnswers) types.Track {
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

// derive recomputes every derived field from the profile's base fields.
// Called after building and after every incremental update.
func derive(p *types.PersonalizationProfile) {
	p.SkillLevel = skillFor(p.Experience())
	p.ComplexityScore = complexityFor(p)
	p.PreferredDifficulty = difficultyLadder(p.SkillLevel)
	p.MoodAffinities = moodAffinities(p.FavoriteSpirits)
	p.LessonTrack = lessonTrack(p)
}

func skillFor(experience int) types.SkillLevel {
	switch {
	case experience <= beginnerMaxExperience:
		return types.LevelBeginner
	case experience <= intermediateMaxExperience:
		return types.LevelIntermediate
	default:
		return types.LevelAdvanced
	}
}

// complexityFor is the raw experience score plus flat goal bonuses,
// unclamped until consumption.
func complexityFor(p *types.PersonalizationProfile) int {
	complexity := p.ExperienceScore
	for _, goal := range p.LearningGoals {
		complexity += goalComplexityBonus[goal]
	}
	return complexity
}

// difficultyLadder is a strict superset per level.
func difficultyLadder(level types.SkillLevel) []types.Difficulty {
	switch level {
	case types.LevelAdvanced:
		return []types.Difficulty{types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard}
	case types.LevelIntermediate:
		return []types.Difficulty{types.DifficultyEasy, types.DifficultyMedium}
	default:
		return []types.Difficulty{types.DifficultyEasy}
	}
}

// moodAffinities ranks mood categories by how many favorite spirits
// contribute them, ties broken by canonical category order, top five.
func moodAffinities(favorites []string) []string {
	counts := make(map[string]int)
	for _, spirit := range favorites {
		for _, mood := range lookup.SpiritMoods[spirit] {
			counts[mood]++
		}
	}

	moods := make([]string, 0, len(counts))
	for _, mood := range lookup.MoodCategories {
		if counts[mood] > 0 {
			moods = append(moods, mood)
		}
	}
	sort.SliceStable(moods, func(i, j int) bool {
		return counts[moods[i]] > counts[moods[j]]
	})

	if len(moods) > 5 {
		moods = moods[:5]
	}
	return moods
}

// lessonTrack selection order: zero-proof wins outright, then beginners
// get fundamentals, then the professional goal, then enthusiast.
func lessonTrack(p *types.PersonalizationProfile) types.LessonTrack {
	if p.PreferredABV == types.TrackZeroProof {
		return types.TrackZeroProofPath
	}
	if p.SkillLevel == types.LevelBeginner {
		return types.TrackFundamentals
	}
	for _, goal := range p.LearningGoals {
		if goal == "professional" {
			return types.TrackProfessional
		}
	}
	return types.TrackEnthusiast
}

// backfillScores guarantees every known spirit and flavor has a score
// entry so downstream scoring never null-checks.
func backfillScores(p *types.PersonalizationProfile) {
	for _, spirit := range lookup.KnownSpirits {
		if _, ok := p.SpiritScores[spirit]; !ok {
			p.SpiritScores[spirit] = lookup.NeutralSpiritScore
		}
	}
	for _, flavor := range lookup.KnownFlavors {
		if _, ok := p.FlavorScores[flavor]; !ok {
			p.FlavorScores[flavor] = lookup.NeutralFlavorScore
		}
	}
}
