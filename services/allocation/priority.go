package allocation

import (
	"math"
	"strings"

	"templeseva/models"
)

// PriorityConfig parameterizes the multiplicative scheme.
type PriorityConfig struct {
	LocationMultiplier     float64
	AvailabilityMultiplier float64
	RatingMultiplier       float64
	VerifiedBonus          float64
	ExperiencePerYear      float64
	ExperienceCap          float64
	// DefaultRating stands in for providers without ratings.
	DefaultRating float64
	Alternates    int
}

func DefaultPriorityConfig() PriorityConfig {
	return PriorityConfig{
		LocationMultiplier:     3,
		AvailabilityMultiplier: 2,
		RatingMultiplier:       1,
		VerifiedBonus:          20,
		ExperiencePerYear:      2,
		ExperienceCap:          30,
		DefaultRating:          4.0,
		Alternates:             3,
	}
}

// PriorityScorer is the older scheme: location x3, screen time x2,
// rating x1, plus verified and experience bonuses. Its total is not
// normalized to 0-100. Deprecated: serves only the legacy endpoint.
type PriorityScorer struct {
	cfg PriorityConfig
}

func NewPriorityScorer(cfg PriorityConfig) *PriorityScorer {
	return &PriorityScorer{cfg: cfg}
}

func (s *PriorityScorer) Name() string { return SchemePriority }

func (s *PriorityScorer) Alternates() int { return s.cfg.Alternates }

func (s *PriorityScorer) Score(p *models.ProviderProfile, sc *ScoringContext) ScoredCandidate {
	location := priorityLocation(p, sc.Request)
	screenTime := math.Min(math.Max(p.ScreenTimeScore, 0), 100)
	rating := p.Rating(s.cfg.DefaultRating) / 5 * 100

	var verified float64
	if p.IsVerified {
		verified = s.cfg.VerifiedBonus
	}
	experience := math.Max(0, math.Min(float64(p.YearsOfExperience)*s.cfg.ExperiencePerYear, s.cfg.ExperienceCap))

	total := location*s.cfg.LocationMultiplier +
		screenTime*s.cfg.AvailabilityMultiplier +
		rating*s.cfg.RatingMultiplier +
		verified + experience

	return ScoredCandidate{
		Provider: *p,
		Score:    math.Round(total),
		Breakdown: models.ScoreBreakdown{
			FactorLocation:        location,
			FactorScreenTime:      screenTime,
			FactorRating:          rating,
			FactorVerifiedBonus:   verified,
			FactorExperienceBonus: experience,
		},
		Available: true,
	}
}

func priorityLocation(p *models.ProviderProfile, req models.AllocationRequest) float64 {
	switch {
	case req.ServiceMode == models.ServiceModeVirtual:
		return 100
	case req.ServiceMode == models.ServiceModeTemple && req.TempleID != "" && servesTemple(p, req.TempleID):
		return 100
	case req.UserCity != "" && strings.EqualFold(strings.TrimSpace(p.City), strings.TrimSpace(req.UserCity)):
		return 100
	case p.OutstationAvailable:
		return 50
	}
	return 0
}
