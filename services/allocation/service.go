package allocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"templeseva/database/repository"
	"templeseva/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAllocationService implements AllocationService.
type DefaultAllocationService struct {
	Providers repository.ProviderRepository
	Catalog   repository.CatalogRepository
	Filter    *EligibilityFilter
	Scorers   map[string]Scorer
	// DefaultScheme is used when Allocate is called without a scheme.
	DefaultScheme string
	Recorder      Recorder
	Metrics       Metrics
	Logger        *zap.Logger
	// Now is overridable in tests.
	Now func() time.Time
}

// NewDefaultAllocationService wires the pipeline with both schemes registered.
func NewDefaultAllocationService(
	providers repository.ProviderRepository,
	bookings repository.BookingRepository,
	mappings repository.MappingRepository,
	catalog repository.CatalogRepository,
	weighted *WeightedScorer,
	priority *PriorityScorer,
	defaultScheme string,
	recorder Recorder,
	metrics Metrics,
	logger *zap.Logger,
) *DefaultAllocationService {
	scorers := map[string]Scorer{
		weighted.Name(): weighted,
		priority.Name(): priority,
	}
	return &DefaultAllocationService{
		Providers:     providers,
		Catalog:       catalog,
		Filter:        &EligibilityFilter{Bookings: bookings, Mappings: mappings},
		Scorers:       scorers,
		DefaultScheme: defaultScheme,
		Recorder:      recorder,
		Metrics:       metrics,
		Logger:        logger,
	}
}

func (s *DefaultAllocationService) metrics() Metrics {
	if s.Metrics == nil {
		return nopMetrics{}
	}
	return s.Metrics
}

func (s *DefaultAllocationService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultAllocationService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultAllocationService) scorer(scheme string) (Scorer, error) {
	if scheme == "" {
		scheme = s.DefaultScheme
	}
	scorer, ok := s.Scorers[scheme]
	if !ok {
		return nil, NewAllocationError("unknownScheme", fmt.Sprintf("scoring scheme %q is not registered", scheme))
	}
	return scorer, nil
}

func (s *DefaultAllocationService) Allocate(ctx context.Context, userID string, req models.AllocationRequest, scheme string) (result *models.AllocationResult, err error) {
	start := s.now()
	scorer, err := s.scorer(scheme)
	if err != nil {
		return nil, err
	}
	defer func() {
		outcome := OutcomeAllocated
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			outcome = OutcomeInvalid
		case err != nil:
			outcome = OutcomeError
		case !result.Success:
			outcome = OutcomeNoMatch
		}
		s.metrics().AllocationCompleted(scorer.Name(), outcome, s.now().Sub(start))
	}()

	sl, err := parseRequest(req)
	if err != nil {
		return nil, err
	}

	providers, err := s.Providers.ListPriests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load priests: %w", err)
	}

	eligible, err := s.Filter.Run(ctx, providers, req, sl)
	if err != nil {
		return nil, err
	}
	if len(eligible.Providers) > 0 && s.rosterMayBeStale() {
		if eligible, err = s.recheck(ctx, eligible.Providers, req, sl); err != nil {
			return nil, err
		}
	}
	if len(eligible.Providers) == 0 {
		s.metrics().EligibilityRejected(eligible.RejectedAt)
		s.logger().Info("no eligible priests",
			zap.String("pass", eligible.RejectedAt),
			zap.String("date", req.SelectedDate),
			zap.String("timeSlot", req.TimeSlot),
			zap.String("serviceMode", string(req.ServiceMode)),
		)
		return notFound(eligible.Message()), nil
	}

	sc, err := s.scoringContext(ctx, req, sl, eligible)
	if err != nil {
		return nil, err
	}

	primary, alternates := Rank(ScoreAll(scorer, eligible.Providers, sc), scorer.Alternates())
	if primary == nil {
		s.metrics().EligibilityRejected(PassConflict)
		return notFound(passMessages[PassConflict]), nil
	}

	price := lookupPrice(eligible.Mappings, sc.Pooja, primary.Provider.ID, req.ServiceMode)
	result = buildResult(uuid.NewString(), scorer.Name(), primary, alternates, price)

	s.logger().Info("priest allocated",
		zap.String("allocationId", result.AllocationID),
		zap.String("scheme", scorer.Name()),
		zap.String("priestId", primary.Provider.ID),
		zap.Float64("score", primary.Score),
		zap.Int("eligible", len(eligible.Providers)),
	)
	s.record(ctx, userID, req, result)
	return result, nil
}

func (s *DefaultAllocationService) rosterMayBeStale() bool {
	snap, ok := s.Providers.(repository.RosterSnapshot)
	return ok && snap.MayBeStale()
}

// recheck reloads the surviving candidates from the store and runs every
// pass again, so a cached roster never outlives a status, schedule or
// blackout change.
func (s *DefaultAllocationService) recheck(ctx context.Context, candidates []models.ProviderProfile, req models.AllocationRequest, sl slot) (*Eligibility, error) {
	fresh, err := s.Providers.ListByIDs(ctx, providerIDs(candidates))
	if err != nil {
		return nil, fmt.Errorf("failed to reload priests: %w", err)
	}
	return s.Filter.Run(ctx, fresh, req, sl)
}

// scoringContext resolves the pooja and temple used for specialization and price.
func (s *DefaultAllocationService) scoringContext(ctx context.Context, req models.AllocationRequest, sl slot, eligible *Eligibility) (*ScoringContext, error) {
	sc := &ScoringContext{
		Request:    req,
		Date:       sl.date,
		Conflicted: eligible.Conflicted,
	}
	if req.PoojaID != "" {
		pooja, err := s.Catalog.GetPooja(ctx, req.PoojaID)
		if err != nil {
			return nil, fmt.Errorf("failed to load pooja: %w", err)
		}
		sc.Pooja = pooja
	}
	if req.TempleID != "" {
		temple, err := s.Catalog.GetTemple(ctx, req.TempleID)
		if err != nil {
			return nil, fmt.Errorf("failed to load temple: %w", err)
		}
		sc.Temple = temple
	}
	return sc, nil
}

// record hands the audit entry to the recorder. Failures never fail the allocation.
func (s *DefaultAllocationService) record(ctx context.Context, userID string, req models.AllocationRequest, result *models.AllocationResult) {
	if s.Recorder == nil {
		return
	}
	altIDs := make([]string, 0, len(result.AlternativePriests))
	for _, a := range result.AlternativePriests {
		altIDs = append(altIDs, a.ID)
	}
	entry := models.AllocationLog{
		ID:             result.AllocationID,
		UserID:         userID,
		Scheme:         result.Scheme,
		Request:        req,
		PriestID:       result.AllocatedPriest.ID,
		Score:          *result.AllocationScore,
		ScoreBreakdown: result.ScoreBreakdown,
		AlternativeIDs: altIDs,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.Recorder.RecordAllocation(ctx, entry); err != nil {
		s.logger().Warn("failed to record allocation",
			zap.String("allocationId", entry.ID),
			zap.Error(err),
		)
	}
}

func (s *DefaultAllocationService) Revalidate(ctx context.Context, req models.RevalidationRequest) (*models.RevalidationResult, error) {
	if req.PriestID == "" {
		return nil, newValidationError("Missing required fields: priestId")
	}
	sl, err := parseRequest(req.AllocationRequest)
	if err != nil {
		return nil, err
	}

	provider, err := s.Providers.GetByID(ctx, req.PriestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load priest: %w", err)
	}
	if provider == nil {
		return &models.RevalidationResult{Eligible: false, Message: "Priest not found"}, nil
	}

	eligible, err := s.Filter.Run(ctx, []models.ProviderProfile{*provider}, req.AllocationRequest, sl)
	if err != nil {
		return nil, err
	}
	if len(eligible.Providers) == 0 {
		return &models.RevalidationResult{Eligible: false, Message: eligible.Message()}, nil
	}
	return &models.RevalidationResult{Eligible: true}, nil
}
