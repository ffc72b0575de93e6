package allocation

import (
	"templeseva/models"
)

// notFound is the business "nobody available" outcome, not an error.
func notFound(message string) *models.AllocationResult {
	return &models.AllocationResult{
		Success: false,
		Message: message,
	}
}

// buildResult shapes the ranked candidates for the caller. The price is
// attached to the primary only.
func buildResult(id, scheme string, primary *ScoredCandidate, alternates []ScoredCandidate, price *float64) *models.AllocationResult {
	summary := primary.Provider.Summary()
	score := primary.Score
	alts := make([]models.AlternativePriest, 0, len(alternates))
	for _, c := range alternates {
		alts = append(alts, models.AlternativePriest{
			PriestSummary:  c.Provider.Summary(),
			Score:          c.Score,
			ScoreBreakdown: c.Breakdown,
		})
	}
	return &models.AllocationResult{
		Success:            true,
		AllocationID:       id,
		Scheme:             scheme,
		AllocatedPriest:    &summary,
		AllocationScore:    &score,
		ScoreBreakdown:     primary.Breakdown,
		Price:              price,
		AlternativePriests: alts,
	}
}

// lookupPrice picks the mode-specific override from the priest's mapping,
// falling back to the pooja's base price.
func lookupPrice(mappings map[string]models.PriestPoojaMapping, pooja *models.Pooja, priestID string, mode models.ServiceMode) *float64 {
	if m, ok := mappings[priestID]; ok {
		if price := m.PriceFor(mode); price != nil {
			v := *price
			return &v
		}
	}
	if pooja != nil && pooja.BasePrice > 0 {
		v := pooja.BasePrice
		return &v
	}
	return nil
}
