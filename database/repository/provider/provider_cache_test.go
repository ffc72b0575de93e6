package providerRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"templeseva/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

type memoryRosterCache struct {
	providers []models.ProviderProfile
	hit       bool
	loadErr   error
	storeErr  error
	stored    int
}

func (c *memoryRosterCache) Load(context.Context) ([]models.ProviderProfile, bool, error) {
	if c.loadErr != nil {
		return nil, false, c.loadErr
	}
	return c.providers, c.hit, nil
}

func (c *memoryRosterCache) Store(_ context.Context, providers []models.ProviderProfile, _ time.Duration) error {
	c.stored++
	if c.storeErr != nil {
		return c.storeErr
	}
	c.providers = providers
	c.hit = true
	return nil
}

func TestCachedRepoMissThenHit(t *testing.T) {
	ctx := context.Background()
	roster := []models.ProviderProfile{{ID: "p1"}, {ID: "p2"}}

	inner := &mockProviderRepo{}
	inner.On("ListPriests", ctx).Return(roster, nil).Once()
	cache := &memoryRosterCache{}
	repo := NewCachedProviderRepo(inner, cache, time.Minute, zap.NewNop())

	first, err := repo.ListPriests(ctx)
	require.NoError(t, err)
	assert.Equal(t, roster, first)

	second, err := repo.ListPriests(ctx)
	require.NoError(t, err)
	assert.Equal(t, roster, second)

	assert.Equal(t, 1, cache.stored)
	inner.AssertExpectations(t)
}

func TestCachedRepoFallsBackOnCacheErrors(t *testing.T) {
	ctx := context.Background()
	roster := []models.ProviderProfile{{ID: "p1"}}

	inner := &mockProviderRepo{}
	inner.On("ListPriests", ctx).Return(roster, nil)
	cache := &memoryRosterCache{loadErr: errors.New("redis down"), storeErr: errors.New("redis down")}
	repo := NewCachedProviderRepo(inner, cache, time.Minute, zap.NewNop())

	got, err := repo.ListPriests(ctx)
	require.NoError(t, err)
	assert.Equal(t, roster, got)
}

func TestCachedRepoPropagatesStoreError(t *testing.T) {
	ctx := context.Background()

	inner := &mockProviderRepo{}
	inner.On("ListPriests", ctx).Return(nil, errors.New("connection refused"))
	cache := &memoryRosterCache{}
	repo := NewCachedProviderRepo(inner, cache, time.Minute, zap.NewNop())

	_, err := repo.ListPriests(ctx)
	assert.EqualError(t, err, "connection refused")
	assert.Zero(t, cache.stored)
}

func TestCachedRepoDisabledWithZeroTTL(t *testing.T) {
	ctx := context.Background()

	inner := &mockProviderRepo{}
	inner.On("ListPriests", ctx).Return([]models.ProviderProfile{{ID: "p1"}}, nil).Twice()
	cache := &memoryRosterCache{}
	repo := NewCachedProviderRepo(inner, cache, 0, zap.NewNop())

	_, _ = repo.ListPriests(ctx)
	_, _ = repo.ListPriests(ctx)

	assert.Zero(t, cache.stored)
	inner.AssertExpectations(t)
}

func TestCachedRepoReadsIDsFromStore(t *testing.T) {
	ctx := context.Background()
	ids := []string{"p1"}
	fresh := []models.ProviderProfile{{ID: "p1", UnavailableDates: []models.UnavailableDate{{Date: "2026-10-19"}}}}

	inner := &mockProviderRepo{}
	inner.On("ListByIDs", ctx, ids).Return(fresh, nil).Once()
	cache := &memoryRosterCache{providers: []models.ProviderProfile{{ID: "p1"}}, hit: true}
	repo := NewCachedProviderRepo(inner, cache, time.Minute, zap.NewNop())

	got, err := repo.ListByIDs(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.True(t, repo.MayBeStale())
	assert.False(t, NewCachedProviderRepo(inner, cache, 0, zap.NewNop()).MayBeStale())
	inner.AssertExpectations(t)
}

func TestPriestRosterFilter(t *testing.T) {
	f := PriestRosterFilter()
	assert.Equal(t, models.ProviderTypePriest, f["provider_type"])
	assert.Equal(t, models.ProfileStatusApproved, f["profile_status"])
	assert.NotNil(t, f["is_deleted"])
}
