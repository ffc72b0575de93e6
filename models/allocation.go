package models

// ServiceMode is the channel a pooja is delivered through.
type ServiceMode string

const (
	ServiceModeVirtual  ServiceMode = "virtual"
	ServiceModeInPerson ServiceMode = "in_person"
	ServiceModeTemple   ServiceMode = "temple"
)

func (m ServiceMode) Valid() bool {
	switch m {
	case ServiceModeVirtual, ServiceModeInPerson, ServiceModeTemple:
		return true
	}
	return false
}

// AllocationRequest parameterizes one allocation. It is never persisted.
type AllocationRequest struct {
	PoojaID           string      `json:"poojaId,omitempty"`
	TempleID          string      `json:"templeId,omitempty"`
	ServiceMode       ServiceMode `json:"serviceMode"`
	SelectedDate      string      `json:"selectedDate"` // "YYYY-MM-DD"
	TimeSlot          string      `json:"timeSlot"`     // "HH:MM"
	UserCity          string      `json:"userCity,omitempty"`
	UserLocation      *LatLng     `json:"userLocation,omitempty"`
	PreferredLanguage string      `json:"preferredLanguage,omitempty"`
}

// ScoreBreakdown maps a factor name to its subscore.
type ScoreBreakdown map[string]float64

type AlternativePriest struct {
	PriestSummary
	Score          float64        `json:"score"`
	ScoreBreakdown ScoreBreakdown `json:"scoreBreakdown"`
}

// AllocationResult is the response shape of an allocation. On the
// not-found path only Success=false and Message are set. AllocationScore
// is always present on success, zero included.
type AllocationResult struct {
	Success            bool                `json:"success"`
	Message            string              `json:"message,omitempty"`
	AllocationID       string              `json:"allocationId,omitempty"`
	Scheme             string              `json:"scheme,omitempty"`
	AllocatedPriest    *PriestSummary      `json:"allocatedPriest"`
	AllocationScore    *float64            `json:"allocationScore,omitempty"`
	ScoreBreakdown     ScoreBreakdown      `json:"scoreBreakdown,omitempty"`
	Price              *float64            `json:"price,omitempty"`
	AlternativePriests []AlternativePriest `json:"alternativePriests,omitempty"`
}

// RevalidationRequest re-checks a single priest against an allocation request.
type RevalidationRequest struct {
	AllocationRequest
	PriestID string `json:"priestId"`
}

type RevalidationResult struct {
	Eligible bool   `json:"eligible"`
	Message  string `json:"message,omitempty"`
}
