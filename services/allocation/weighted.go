package allocation

import (
	"templeseva/models"
)

// DistanceBand awards Points when the distance is at most MaxKm.
type DistanceBand struct {
	MaxKm  float64
	Points float64
}

// RatingTier awards Points when both thresholds are met.
type RatingTier struct {
	MinRating        float64
	MinConsultations int
	Points           float64
}

// WeightedConfig parameterizes the additive 0-100 scheme.
type WeightedConfig struct {
	// DistanceBands must be sorted by MaxKm ascending.
	DistanceBands         []DistanceBand
	FarPoints             float64
	UnknownLocationPoints float64
	VirtualLocationPoints float64

	// RatingTiers are tried in order; the first match wins.
	RatingTiers       []RatingTier
	RatingFloorPoints float64

	AvailabilityPoints float64

	SpecializationMatch      float64
	SpecializationOther      float64
	SpecializationUntargeted float64
	SpecializationNone       float64

	LanguageExact     float64
	LanguageFallback  float64
	LanguageNone      float64
	FallbackLanguages []string

	Alternates int
}

func DefaultWeightedConfig() WeightedConfig {
	return WeightedConfig{
		DistanceBands: []DistanceBand{
			{MaxKm: 10, Points: 30},
			{MaxKm: 25, Points: 25},
			{MaxKm: 50, Points: 20},
			{MaxKm: 100, Points: 10},
		},
		FarPoints:             5,
		UnknownLocationPoints: 15,
		VirtualLocationPoints: 30,

		RatingTiers: []RatingTier{
			{MinRating: 4.8, MinConsultations: 50, Points: 25},
			{MinRating: 4.5, MinConsultations: 30, Points: 22},
			{MinRating: 4.0, MinConsultations: 10, Points: 18},
			{MinRating: 4.0, Points: 15},
			{MinRating: 3.5, Points: 10},
		},
		RatingFloorPoints: 5,

		AvailabilityPoints: 20,

		SpecializationMatch:      15,
		SpecializationOther:      8,
		SpecializationUntargeted: 10,
		SpecializationNone:       5,

		LanguageExact:     10,
		LanguageFallback:  7,
		LanguageNone:      5,
		FallbackLanguages: []string{"hindi", "english"},

		Alternates: 4,
	}
}

// WeightedScorer is the canonical scheme: location 30, rating 25,
// availability 20, specialization 15, language 10.
type WeightedScorer struct {
	cfg      WeightedConfig
	distance DistanceFunc
}

// NewWeightedScorer builds the scorer; a nil distance uses Haversine.
func NewWeightedScorer(cfg WeightedConfig, distance DistanceFunc) *WeightedScorer {
	if distance == nil {
		distance = Haversine
	}
	return &WeightedScorer{cfg: cfg, distance: distance}
}

func (s *WeightedScorer) Name() string { return SchemeWeighted }

func (s *WeightedScorer) Alternates() int { return s.cfg.Alternates }

func (s *WeightedScorer) Score(p *models.ProviderProfile, sc *ScoringContext) ScoredCandidate {
	breakdown := models.ScoreBreakdown{
		FactorLocation:       s.locationScore(p, sc),
		FactorRating:         s.ratingScore(p),
		FactorAvailability:   s.availabilityScore(p, sc),
		FactorSpecialization: s.specializationScore(p, sc),
		FactorLanguage:       s.languageScore(p, sc.Request.PreferredLanguage),
	}
	var total float64
	for _, v := range breakdown {
		total += v
	}
	return ScoredCandidate{
		Provider:  *p,
		Score:     total,
		Breakdown: breakdown,
		Available: breakdown[FactorAvailability] > 0,
	}
}

// locationScore measures from the temple for temple visits when its
// coordinates are known, otherwise from the user.
func (s *WeightedScorer) locationScore(p *models.ProviderProfile, sc *ScoringContext) float64 {
	if sc.Request.ServiceMode == models.ServiceModeVirtual {
		return s.cfg.VirtualLocationPoints
	}
	var origin models.LatLng
	var ok bool
	if sc.Request.ServiceMode == models.ServiceModeTemple && sc.Temple != nil {
		origin, ok = sc.Temple.Location.LatLng()
	}
	if !ok && sc.Request.UserLocation != nil {
		origin, ok = *sc.Request.UserLocation, true
	}
	dest, hasDest := p.Location.LatLng()
	if !ok || !hasDest {
		return s.cfg.UnknownLocationPoints
	}

	km := s.distance(origin, dest)
	for _, band := range s.cfg.DistanceBands {
		if km <= band.MaxKm {
			return band.Points
		}
	}
	return s.cfg.FarPoints
}

func (s *WeightedScorer) ratingScore(p *models.ProviderProfile) float64 {
	rating := p.Rating(0)
	for _, tier := range s.cfg.RatingTiers {
		if rating >= tier.MinRating && p.TotalConsultations >= tier.MinConsultations {
			return tier.Points
		}
	}
	return s.cfg.RatingFloorPoints
}

func (s *WeightedScorer) availabilityScore(p *models.ProviderProfile, sc *ScoringContext) float64 {
	if sc.Conflicted[p.ID] || blackedOut(p, sc.Date) {
		return 0
	}
	return s.cfg.AvailabilityPoints
}

func (s *WeightedScorer) specializationScore(p *models.ProviderProfile, sc *ScoringContext) float64 {
	var targets []string
	if sc.Pooja != nil && sc.Pooja.Category != "" {
		targets = append(targets, sc.Pooja.Category)
	}
	if sc.Temple != nil && sc.Temple.PrimaryDeity != "" {
		targets = append(targets, sc.Temple.PrimaryDeity)
	}

	hasAny := len(p.Specializations) > 0
	if len(targets) == 0 {
		if hasAny {
			return s.cfg.SpecializationUntargeted
		}
		return s.cfg.SpecializationNone
	}
	for _, t := range targets {
		if containsFold(p.Specializations, t) {
			return s.cfg.SpecializationMatch
		}
	}
	if hasAny {
		return s.cfg.SpecializationOther
	}
	return s.cfg.SpecializationNone
}

func (s *WeightedScorer) languageScore(p *models.ProviderProfile, preferred string) float64 {
	if containsFold(p.Languages, preferred) {
		return s.cfg.LanguageExact
	}
	for _, lang := range s.cfg.FallbackLanguages {
		if containsFold(p.Languages, lang) {
			return s.cfg.LanguageFallback
		}
	}
	return s.cfg.LanguageNone
}
