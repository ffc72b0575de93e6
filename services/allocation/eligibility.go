package allocation

import (
	"context"
	"fmt"
	"strings"

	"templeseva/database/repository"
	"templeseva/models"
)

// Eligibility pass names, used as rejection reasons in metrics.
const (
	PassRoster     = "roster"
	PassStatusMode = "status_mode"
	PassSchedule   = "schedule"
	PassBlackout   = "blackout"
	PassConflict   = "conflict"
	PassTemple     = "temple"
	PassCapability = "capability"
)

var passMessages = map[string]string{
	PassRoster:     "No priests available",
	PassStatusMode: "No priests available for this service mode",
	PassSchedule:   "No priests available for this slot",
	PassBlackout:   "No priests available on this date",
	PassConflict:   "All priests are already booked for this slot",
	PassTemple:     "No priests available for this temple",
	PassCapability: "No priests available for this pooja",
}

// FilterByStatusAndMode keeps approved, non-deleted priests offering the requested mode.
func FilterByStatusAndMode(providers []models.ProviderProfile, mode models.ServiceMode) []models.ProviderProfile {
	return keep(providers, func(p *models.ProviderProfile) bool {
		if p.ProviderType != models.ProviderTypePriest || p.ProfileStatus != models.ProfileStatusApproved || p.IsDeleted {
			return false
		}
		if mode == models.ServiceModeVirtual {
			return p.IsAvailableOnline
		}
		return p.IsAvailableOffline
	})
}

// FilterBySchedule keeps providers whose weekly schedule has an open window
// on weekday containing hour. Windows are [start, end).
func FilterBySchedule(providers []models.ProviderProfile, weekday string, hour int) []models.ProviderProfile {
	return keep(providers, func(p *models.ProviderProfile) bool {
		return availableAt(p, weekday, hour)
	})
}

func availableAt(p *models.ProviderProfile, weekday string, hour int) bool {
	for _, day := range p.WeeklySchedule {
		if !day.IsAvailable || !strings.EqualFold(day.Day, weekday) {
			continue
		}
		for _, w := range day.TimeSlots {
			if w.StartHour <= hour && hour < w.EndHour {
				return true
			}
		}
	}
	return false
}

// FilterByBlackout drops providers that blacklisted date.
func FilterByBlackout(providers []models.ProviderProfile, date string) []models.ProviderProfile {
	return keep(providers, func(p *models.ProviderProfile) bool {
		return !blackedOut(p, date)
	})
}

func blackedOut(p *models.ProviderProfile, date string) bool {
	for _, d := range p.UnavailableDates {
		if d.Date == date {
			return true
		}
	}
	return false
}

// FilterByConflicts drops providers already booked for the slot.
func FilterByConflicts(providers []models.ProviderProfile, conflicted map[string]bool) []models.ProviderProfile {
	return keep(providers, func(p *models.ProviderProfile) bool {
		return !conflicted[p.ID]
	})
}

// FilterByTemple keeps providers affiliated with templeID that accept temple visits.
func FilterByTemple(providers []models.ProviderProfile, templeID string) []models.ProviderProfile {
	return keep(providers, func(p *models.ProviderProfile) bool {
		return servesTemple(p, templeID)
	})
}

func servesTemple(p *models.ProviderProfile, templeID string) bool {
	for _, t := range p.AssociatedTemples {
		if t.TempleID == templeID && t.AcceptsTempleVisits {
			return true
		}
	}
	return false
}

// FilterByCapability keeps providers with a mapping. When no provider in the
// set has one the pass is skipped and the input is returned unchanged.
func FilterByCapability(providers []models.ProviderProfile, mappings map[string]models.PriestPoojaMapping) []models.ProviderProfile {
	if len(mappings) == 0 {
		return providers
	}
	return keep(providers, func(p *models.ProviderProfile) bool {
		_, ok := mappings[p.ID]
		return ok
	})
}

func keep(providers []models.ProviderProfile, pred func(*models.ProviderProfile) bool) []models.ProviderProfile {
	out := make([]models.ProviderProfile, 0, len(providers))
	for i := range providers {
		if pred(&providers[i]) {
			out = append(out, providers[i])
		}
	}
	return out
}

func providerIDs(providers []models.ProviderProfile) []string {
	ids := make([]string, len(providers))
	for i := range providers {
		ids[i] = providers[i].ID
	}
	return ids
}

// Eligibility is the outcome of running every pass over a candidate set.
type Eligibility struct {
	Providers []models.ProviderProfile
	// Mappings holds the active pooja mapping per priest id, if any.
	Mappings   map[string]models.PriestPoojaMapping
	Conflicted map[string]bool
	// RejectedAt names the pass that emptied the set; empty when Providers is non-empty.
	RejectedAt string
}

// Message is the human-readable reason for an empty result.
func (e *Eligibility) Message() string {
	return passMessages[e.RejectedAt]
}

// EligibilityFilter narrows a provider set to those allowed to serve a request.
type EligibilityFilter struct {
	Bookings repository.BookingRepository
	Mappings repository.MappingRepository
}

// Run applies the passes in order and short-circuits on the first empty set.
// Only store failures are returned as errors.
func (f *EligibilityFilter) Run(ctx context.Context, providers []models.ProviderProfile, req models.AllocationRequest, s slot) (*Eligibility, error) {
	res := &Eligibility{
		Mappings:   map[string]models.PriestPoojaMapping{},
		Conflicted: map[string]bool{},
	}
	reject := func(pass string) (*Eligibility, error) {
		res.Providers = nil
		res.RejectedAt = pass
		return res, nil
	}

	if len(providers) == 0 {
		return reject(PassRoster)
	}
	candidates := FilterByStatusAndMode(providers, req.ServiceMode)
	if len(candidates) == 0 {
		return reject(PassStatusMode)
	}
	candidates = FilterBySchedule(candidates, s.weekday, s.hour)
	if len(candidates) == 0 {
		return reject(PassSchedule)
	}
	candidates = FilterByBlackout(candidates, s.date)
	if len(candidates) == 0 {
		return reject(PassBlackout)
	}

	bookings, err := f.Bookings.FindConflicts(ctx, s.date, s.timeSlot, providerIDs(candidates))
	if err != nil {
		return nil, fmt.Errorf("failed to load conflicting bookings: %w", err)
	}
	for _, b := range bookings {
		res.Conflicted[b.ProviderID] = true
	}
	candidates = FilterByConflicts(candidates, res.Conflicted)
	if len(candidates) == 0 {
		return reject(PassConflict)
	}

	if req.ServiceMode == models.ServiceModeTemple && req.TempleID != "" {
		candidates = FilterByTemple(candidates, req.TempleID)
		if len(candidates) == 0 {
			return reject(PassTemple)
		}
	}

	if req.PoojaID != "" {
		mappings, err := f.Mappings.FindActive(ctx, req.PoojaID, providerIDs(candidates))
		if err != nil {
			return nil, fmt.Errorf("failed to load pooja mappings: %w", err)
		}
		for _, m := range mappings {
			if m.IsActive && !m.IsDeleted {
				res.Mappings[m.PriestID] = m
			}
		}
		candidates = FilterByCapability(candidates, res.Mappings)
		if len(candidates) == 0 {
			return reject(PassCapability)
		}
	}

	res.Providers = candidates
	return res, nil
}
