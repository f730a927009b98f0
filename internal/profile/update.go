package profile

import (
	"github.com/mixmentor/mixmentor/internal/lookup"
	"github.com/mixmentor/mixmentor/pkg/types"
)

// Score adjustments for incremental updates.
const (
	promotedSpiritScore = 85
	flavorReinforceStep = 5
)

// ApplyUpdate folds an incremental interaction into an existing profile
// and re-derives skill level, difficulty ladder, mood affinities, and
// lesson track. The input profile is not mutated.
func ApplyUpdate(p types.PersonalizationProfile, update types.ProfileUpdate) types.PersonalizationProfile {
	p.FavoriteSpirits = append([]string(nil), p.FavoriteSpirits...)
	p.FlavorPreferences = append([]string(nil), p.FlavorPreferences...)
	p.SpiritScores = copyScores(p.SpiritScores)
	p.FlavorScores = copyScores(p.FlavorScores)

	if update.AddFavoriteSpirit != "" {
		addFavorite(&p, update.AddFavoriteSpirit)
	}
	if update.RemoveFavoriteSpirit != "" {
		removeFavorite(&p, update.RemoveFavoriteSpirit)
	}
	if update.ReinforceFlavor != "" && lookup.IsKnownFlavor(update.ReinforceFlavor) {
		reinforceFlavor(&p, update.ReinforceFlavor)
	}
	if update.AddExperience > 0 {
		p.ExperienceScore += update.AddExperience
	}
	switch update.SessionMinutes {
	case 3, 5, 8:
		p.SessionMinutes = update.SessionMinutes
	}

	derive(&p)
	backfillScores(&p)
	return p
}

// addFavorite promotes a known spirit into the favorites list. When the
// list is full the lowest-ranked favorite is dropped.
func addFavorite(p *types.PersonalizationProfile, spirit string) {
	if !lookup.IsKnownSpirit(spirit) {
		return
	}
	for _, fav := range p.FavoriteSpirits {
		if fav == spirit {
			return
		}
	}
	if len(p.FavoriteSpirits) == len(spiritPickScores) {
		dropped := p.FavoriteSpirits[len(p.FavoriteSpirits)-1]
		p.FavoriteSpirits = p.FavoriteSpirits[:len(p.FavoriteSpirits)-1]
		p.SpiritScores[dropped] = lookup.NeutralSpiritScore
	}
	p.FavoriteSpirits = append(p.FavoriteSpirits, spirit)
	if p.SpiritScores[spirit] < promotedSpiritScore {
		p.SpiritScores[spirit] = promotedSpiritScore
	}
}

// removeFavorite drops a spirit from the favorites and resets its score
// to the neutral baseline. Unknown or absent spirits are a no-op.
func removeFavorite(p *types.PersonalizationProfile, spirit string) {
	for i, fav := range p.FavoriteSpirits {
		if fav != spirit {
			continue
		}
		p.FavoriteSpirits = append(p.FavoriteSpirits[:i], p.FavoriteSpirits[i+1:]...)
		p.SpiritScores[spirit] = lookup.NeutralSpiritScore
		return
	}
}

// reinforceFlavor bumps a flavor score by a small step, clamped to 100,
// and records the preference if it was not already present.
func reinforceFlavor(p *types.PersonalizationProfile, flavor string) {
	score := p.FlavorScores[flavor] + flavorReinforceStep
	if score > 100 {
		score = 100
	}
	p.FlavorScores[flavor] = score

	for _, pref := range p.FlavorPreferences {
		if pref == flavor {
			return
		}
	}
	p.FlavorPreferences = append(p.FlavorPreferences, flavor)
}

func copyScores(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
