package providerRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"templeseva/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const rosterCacheKey = "allocation:roster:priests"

// RosterCache stores the approved priest roster between requests.
type RosterCache interface {
	// Load returns ok=false on a cache miss.
	Load(ctx context.Context) (providers []models.ProviderProfile, ok bool, err error)
	Store(ctx context.Context, providers []models.ProviderProfile, ttl time.Duration) error
}

type RedisRosterCache struct {
	client *redis.Client
}

func NewRedisRosterCache(client *redis.Client) *RedisRosterCache {
	return &RedisRosterCache{client: client}
}

func (c *RedisRosterCache) Load(ctx context.Context) ([]models.ProviderProfile, bool, error) {
	data, err := c.client.Get(ctx, rosterCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var providers []models.ProviderProfile
	if err := json.Unmarshal(data, &providers); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached roster: %w", err)
	}
	return providers, true, nil
}

func (c *RedisRosterCache) Store(ctx context.Context, providers []models.ProviderProfile, ttl time.Duration) error {
	data, err := json.Marshal(providers)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}
	return c.client.Set(ctx, rosterCacheKey, data, ttl).Err()
}

// CachedProviderRepo serves ListPriests from a RosterCache and falls back to
// the wrapped repository on a miss or on any cache error. GetByID and
// ListByIDs always go to the wrapped repository.
type CachedProviderRepo struct {
	ProviderRepository
	Cache  RosterCache
	TTL    time.Duration
	Logger *zap.Logger
}

func NewCachedProviderRepo(inner ProviderRepository, cache RosterCache, ttl time.Duration, logger *zap.Logger) *CachedProviderRepo {
	return &CachedProviderRepo{ProviderRepository: inner, Cache: cache, TTL: ttl, Logger: logger}
}

// MayBeStale reports whether ListPriests can return a cached roster.
func (r *CachedProviderRepo) MayBeStale() bool {
	return r.TTL > 0
}

func (r *CachedProviderRepo) ListPriests(ctx context.Context) ([]models.ProviderProfile, error) {
	if r.TTL <= 0 {
		return r.ProviderRepository.ListPriests(ctx)
	}

	cached, ok, err := r.Cache.Load(ctx)
	if err != nil {
		r.Logger.Warn("roster cache read failed, using store", zap.Error(err))
	} else if ok {
		return cached, nil
	}

	providers, err := r.ProviderRepository.ListPriests(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.Cache.Store(ctx, providers, r.TTL); err != nil {
		r.Logger.Warn("roster cache write failed", zap.Error(err))
	}
	return providers, nil
}
