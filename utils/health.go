package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger checks one backing service.
type Pinger func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

func (s HealthStatus) Healthy() bool {
	return s.Mongo && s.Redis
}

// HealthMonitor keeps the latest health snapshot of the entity store and Redis.
type HealthMonitor struct {
	mongo    Pinger
	redis    Pinger
	interval time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(mongo, redis Pinger, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{mongo: mongo, redis: redis, interval: interval}
}

// Status returns latest stored health snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Check pings every service once and stores the result.
func (h *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{
		Mongo:     h.mongo(ctx) == nil,
		Redis:     h.redis(ctx) == nil,
		CheckedAt: time.Now().UTC(),
	}

	h.mu.Lock()
	h.current = status
	h.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is done.
func (h *HealthMonitor) Start(ctx context.Context) {
	h.Check(ctx)
	go func() {
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				status := h.Check(ctx)
				if !status.Healthy() {
					GetLogger().Sugar().Warnf("health check failed: mongo=%t redis=%t", status.Mongo, status.Redis)
				}
			}
		}
	}()
}
