package allocation

import "sort"

// Rank drops unavailable candidates, orders the rest and splits off the
// primary. Ties break on rating (desc) then provider id (asc). primary is
// nil when nothing is left.
func Rank(candidates []ScoredCandidate, alternates int) (primary *ScoredCandidate, rest []ScoredCandidate) {
	ranked := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Available {
			ranked = append(ranked, c)
		}
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		ra, rb := a.Provider.Rating(0), b.Provider.Rating(0)
		if ra != rb {
			return ra > rb
		}
		return a.Provider.ID < b.Provider.ID
	})

	primary = &ranked[0]
	end := 1 + max(alternates, 0)
	if end > len(ranked) {
		end = len(ranked)
	}
	return primary, ranked[1:end]
}
