package allocation

import (
	"context"
	"time"

	"templeseva/models"
)

// AllocationService picks a priest for a booking request.
type AllocationService interface {
	// Allocate runs the full pipeline with the named scheme, or the default
	// scheme when scheme is empty. A result with Success=false is a valid
	// "nobody available" outcome; errors are validation or store failures.
	Allocate(ctx context.Context, userID string, req models.AllocationRequest, scheme string) (*models.AllocationResult, error)
	// Revalidate re-checks one priest against a request just before booking.
	Revalidate(ctx context.Context, req models.RevalidationRequest) (*models.RevalidationResult, error)
}

// Recorder receives the audit entry of every successful allocation.
type Recorder interface {
	RecordAllocation(ctx context.Context, entry models.AllocationLog) error
}

// Metrics receives allocation outcomes.
type Metrics interface {
	AllocationCompleted(scheme, outcome string, elapsed time.Duration)
	EligibilityRejected(pass string)
}

// Allocation outcomes reported to Metrics.
const (
	OutcomeAllocated = "allocated"
	OutcomeNoMatch   = "no_match"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

type nopMetrics struct{}

func (nopMetrics) AllocationCompleted(string, string, time.Duration) {}
func (nopMetrics) EligibilityRejected(string)                        {}
