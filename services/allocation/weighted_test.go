package allocation

import (
	"testing"

	"templeseva/models"

	"github.com/stretchr/testify/assert"
)

func fixedDistance(km float64) DistanceFunc {
	return func(models.LatLng, models.LatLng) float64 { return km }
}

func TestWeightedLocationBands(t *testing.T) {
	p := priest("p1")
	p.Location = point(28.61, 77.20)
	req := request(models.ServiceModeInPerson)
	req.UserLocation = &models.LatLng{Lat: 28.70, Lng: 77.10}

	tests := []struct {
		km   float64
		want float64
	}{
		{km: 0, want: 30},
		{km: 10, want: 30},
		{km: 10.1, want: 25},
		{km: 25, want: 25},
		{km: 49, want: 20},
		{km: 100, want: 10},
		{km: 1200, want: 5},
	}
	for _, tt := range tests {
		s := NewWeightedScorer(DefaultWeightedConfig(), fixedDistance(tt.km))
		got := s.Score(&p, &ScoringContext{Request: req, Date: testDate})
		assert.Equal(t, tt.want, got.Breakdown[FactorLocation], "%v km", tt.km)
	}
}

func TestWeightedLocationSpecialCases(t *testing.T) {
	s := NewWeightedScorer(DefaultWeightedConfig(), fixedDistance(80))
	located := priest("p1")
	located.Location = point(19.07, 72.87)
	unlocated := priest("p2")

	virtual := request(models.ServiceModeVirtual)
	assert.Equal(t, 30.0, s.Score(&unlocated, &ScoringContext{Request: virtual}).Breakdown[FactorLocation])

	inPerson := request(models.ServiceModeInPerson)
	assert.Equal(t, 15.0, s.Score(&located, &ScoringContext{Request: inPerson}).Breakdown[FactorLocation], "no user location")

	inPerson.UserLocation = &models.LatLng{Lat: 19.0, Lng: 72.8}
	assert.Equal(t, 15.0, s.Score(&unlocated, &ScoringContext{Request: inPerson}).Breakdown[FactorLocation], "no provider location")
	assert.Equal(t, 10.0, s.Score(&located, &ScoringContext{Request: inPerson}).Breakdown[FactorLocation])
}

func TestWeightedLocationMeasuresFromTemple(t *testing.T) {
	var origins []models.LatLng
	s := NewWeightedScorer(DefaultWeightedConfig(), func(a, _ models.LatLng) float64 {
		origins = append(origins, a)
		return 5
	})
	p := priest("p1")
	p.Location = point(12.97, 77.59)

	req := request(models.ServiceModeTemple)
	req.TempleID = "T1"
	req.UserLocation = &models.LatLng{Lat: 1, Lng: 1}

	temple := &models.Temple{ID: "T1", Location: point(13.0, 77.5)}
	s.Score(&p, &ScoringContext{Request: req, Temple: temple})
	s.Score(&p, &ScoringContext{Request: req, Temple: &models.Temple{ID: "T1"}})

	assert.Equal(t, []models.LatLng{{Lat: 13.0, Lng: 77.5}, {Lat: 1, Lng: 1}}, origins)
}

func TestWeightedRatingTiers(t *testing.T) {
	s := NewWeightedScorer(DefaultWeightedConfig(), nil)

	tests := []struct {
		rating        *float64
		consultations int
		want          float64
	}{
		{rating: ptr(4.9), consultations: 60, want: 25},
		{rating: ptr(4.9), consultations: 40, want: 22},
		{rating: ptr(4.6), consultations: 10, want: 18},
		{rating: ptr(4.6), consultations: 0, want: 15},
		{rating: ptr(3.7), consultations: 500, want: 10},
		{rating: ptr(2.0), consultations: 500, want: 5},
		{rating: nil, consultations: 0, want: 5},
	}
	for _, tt := range tests {
		p := priest("p1")
		p.RatingAverage = tt.rating
		p.TotalConsultations = tt.consultations
		got := s.Score(&p, &ScoringContext{Request: request(models.ServiceModeVirtual)})
		assert.Equal(t, tt.want, got.Breakdown[FactorRating])
	}
}

func TestWeightedAvailability(t *testing.T) {
	s := NewWeightedScorer(DefaultWeightedConfig(), nil)
	p := priest("p1")
	sc := &ScoringContext{Request: request(models.ServiceModeVirtual), Date: testDate}

	got := s.Score(&p, sc)
	assert.Equal(t, 20.0, got.Breakdown[FactorAvailability])
	assert.True(t, got.Available)

	sc.Conflicted = map[string]bool{"p1": true}
	got = s.Score(&p, sc)
	assert.Zero(t, got.Breakdown[FactorAvailability])
	assert.False(t, got.Available)
}

func TestWeightedSpecialization(t *testing.T) {
	s := NewWeightedScorer(DefaultWeightedConfig(), nil)
	shaiva := priest("p1")
	shaiva.Specializations = []string{"Shiva", "Rudrabhishek"}
	generalist := priest("p2")

	sc := &ScoringContext{Request: request(models.ServiceModeVirtual)}
	assert.Equal(t, 10.0, s.Score(&shaiva, sc).Breakdown[FactorSpecialization])
	assert.Equal(t, 5.0, s.Score(&generalist, sc).Breakdown[FactorSpecialization])

	sc.Pooja = &models.Pooja{Category: "rudrabhishek"}
	assert.Equal(t, 15.0, s.Score(&shaiva, sc).Breakdown[FactorSpecialization])
	assert.Equal(t, 5.0, s.Score(&generalist, sc).Breakdown[FactorSpecialization])

	sc.Pooja = &models.Pooja{Category: "griha_pravesh"}
	assert.Equal(t, 8.0, s.Score(&shaiva, sc).Breakdown[FactorSpecialization])

	sc.Temple = &models.Temple{PrimaryDeity: "shiva"}
	assert.Equal(t, 15.0, s.Score(&shaiva, sc).Breakdown[FactorSpecialization])
}

func TestWeightedLanguage(t *testing.T) {
	s := NewWeightedScorer(DefaultWeightedConfig(), nil)
	tamil := priest("p1")
	tamil.Languages = []string{"Tamil", "Sanskrit"}
	bilingual := priest("p2")
	bilingual.Languages = []string{"Sanskrit", "English"}

	req := request(models.ServiceModeVirtual)
	req.PreferredLanguage = "tamil"
	sc := &ScoringContext{Request: req}

	assert.Equal(t, 10.0, s.Score(&tamil, sc).Breakdown[FactorLanguage])
	assert.Equal(t, 7.0, s.Score(&bilingual, sc).Breakdown[FactorLanguage])

	sc.Request.PreferredLanguage = "marathi"
	assert.Equal(t, 5.0, s.Score(&tamil, sc).Breakdown[FactorLanguage])
}

func TestWeightedScoreBounds(t *testing.T) {
	s := NewWeightedScorer(DefaultWeightedConfig(), fixedDistance(1))

	best := priest("best")
	best.Location = point(28.6, 77.2)
	best.RatingAverage = ptr(5.0)
	best.TotalConsultations = 1000
	best.Specializations = []string{"ganesh"}
	best.Languages = []string{"hindi"}
	req := request(models.ServiceModeInPerson)
	req.UserLocation = &models.LatLng{Lat: 28.6, Lng: 77.2}
	req.PreferredLanguage = "hindi"
	sc := &ScoringContext{Request: req, Pooja: &models.Pooja{Category: "ganesh"}}

	top := s.Score(&best, sc)
	assert.Equal(t, 100.0, top.Score)

	worst := priest("worst")
	sc.Conflicted = map[string]bool{"worst": true}
	low := s.Score(&worst, sc)
	assert.GreaterOrEqual(t, low.Score, 0.0)
	assert.Less(t, low.Score, top.Score)

	var sum float64
	for _, v := range low.Breakdown {
		sum += v
	}
	assert.Equal(t, sum, low.Score)
}
