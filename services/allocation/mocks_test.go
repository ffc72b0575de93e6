package allocation

import (
	"context"
	"time"

	"templeseva/models"

	"github.com/stretchr/testify/mock"
)

const testDate = "2026-10-19" // a monday

type mockProviderRepo struct {
	mock.Mock
}

func (m *mockProviderRepo) ListPriests(ctx context.Context) ([]models.ProviderProfile, error) {
	args := m.Called(ctx)
	providers, _ := args.Get(0).([]models.ProviderProfile)
	return providers, args.Error(1)
}

func (m *mockProviderRepo) GetByID(ctx context.Context, id string) (*models.ProviderProfile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.ProviderProfile)
	return p, args.Error(1)
}

func (m *mockProviderRepo) ListByIDs(ctx context.Context, ids []string) ([]models.ProviderProfile, error) {
	args := m.Called(ctx, ids)
	providers, _ := args.Get(0).([]models.ProviderProfile)
	return providers, args.Error(1)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) FindConflicts(ctx context.Context, date, timeSlot string, providerIDs []string) ([]models.Booking, error) {
	args := m.Called(ctx, date, timeSlot, providerIDs)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

type mockMappingRepo struct {
	mock.Mock
}

func (m *mockMappingRepo) FindActive(ctx context.Context, poojaID string, priestIDs []string) ([]models.PriestPoojaMapping, error) {
	args := m.Called(ctx, poojaID, priestIDs)
	mappings, _ := args.Get(0).([]models.PriestPoojaMapping)
	return mappings, args.Error(1)
}

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) GetPooja(ctx context.Context, id string) (*models.Pooja, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Pooja)
	return p, args.Error(1)
}

func (m *mockCatalogRepo) GetTemple(ctx context.Context, id string) (*models.Temple, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.Temple)
	return t, args.Error(1)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) RecordAllocation(ctx context.Context, entry models.AllocationLog) error {
	return m.Called(ctx, entry).Error(0)
}

type recordingMetrics struct {
	outcomes []string
	rejected []string
}

func (r *recordingMetrics) AllocationCompleted(scheme, outcome string, _ time.Duration) {
	r.outcomes = append(r.outcomes, scheme+"/"+outcome)
}

func (r *recordingMetrics) EligibilityRejected(pass string) {
	r.rejected = append(r.rejected, pass)
}

func ptr[T any](v T) *T {
	return &v
}

func point(lat, lng float64) *models.GeoPoint {
	return &models.GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// priest returns an approved priest available both online and offline on
// mondays 09:00-12:00.
func priest(id string) models.ProviderProfile {
	return models.ProviderProfile{
		ID:                 id,
		DisplayName:        "Pandit " + id,
		ProviderType:       models.ProviderTypePriest,
		ProfileStatus:      models.ProfileStatusApproved,
		IsAvailableOnline:  true,
		IsAvailableOffline: true,
		WeeklySchedule: []models.DaySchedule{
			{Day: "monday", IsAvailable: true, TimeSlots: []models.TimeWindow{{StartHour: 9, EndHour: 12}}},
		},
	}
}

func request(mode models.ServiceMode) models.AllocationRequest {
	return models.AllocationRequest{
		ServiceMode:  mode,
		SelectedDate: testDate,
		TimeSlot:     "10:00",
	}
}
