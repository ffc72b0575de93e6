package allocation

import (
	"strings"

	"templeseva/models"
)

// Scheme names.
const (
	SchemeWeighted = "weighted"
	SchemePriority = "priority"
)

// Factor names used as score breakdown keys.
const (
	FactorLocation        = "location"
	FactorAvailability    = "availability"
	FactorRating          = "rating"
	FactorSpecialization  = "specialization"
	FactorLanguage        = "language"
	FactorScreenTime      = "screenTime"
	FactorVerifiedBonus   = "verifiedBonus"
	FactorExperienceBonus = "experienceBonus"
)

// ScoringContext is everything a scorer may read besides the provider. All of
// it is fetched before scoring starts.
type ScoringContext struct {
	Request    models.AllocationRequest
	Date       string
	Pooja      *models.Pooja
	Temple     *models.Temple
	Conflicted map[string]bool
}

// ScoredCandidate is one provider with its total and per-factor scores.
type ScoredCandidate struct {
	Provider  models.ProviderProfile
	Score     float64
	Breakdown models.ScoreBreakdown
	// Available is false when the scorer itself decided the provider cannot take the slot.
	Available bool
}

// Scorer ranks eligible providers. Implementations are pure functions of
// (provider, context).
type Scorer interface {
	Name() string
	Score(p *models.ProviderProfile, sc *ScoringContext) ScoredCandidate
	// Alternates is how many runner-ups are returned next to the primary.
	Alternates() int
}

// ScoreAll maps every provider through s.
func ScoreAll(s Scorer, providers []models.ProviderProfile, sc *ScoringContext) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(providers))
	for i := range providers {
		scored = append(scored, s.Score(&providers[i], sc))
	}
	return scored
}

func containsFold(values []string, target string) bool {
	target = strings.TrimSpace(target)
	if target == "" {
		return false
	}
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}
