package cache

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/coliride/backend/internal/metrics"
	"github.com/coliride/backend/internal/repository"
)

type RideSource interface {
	GetAvailable(ctx context.Context, limit int) ([]*repository.Ride, error)
}

// RideCache keeps AVAILABLE rides in memory for the dashboard feed. The
// database stays the source of truth; the cache is refreshed on every ride
// write and rebuilt at startup.
type RideCache struct {
	mu    sync.RWMutex
	rides map[string]*repository.Ride
	repo  RideSource
}

func NewRideCache(repo RideSource) *RideCache {
	return &RideCache{
		rides: make(map[string]*repository.Ride),
		repo:  repo,
	}
}

func (c *RideCache) LoadInitialData(ctx context.Context) error {
	rides, err := c.repo.GetAvailable(ctx, 0)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ride := range rides {
		copied := *ride
		c.rides[ride.ID] = &copied
	}
	metrics.RideCacheItems.Set(float64(len(c.rides)))
	zap.L().Info("ride cache warmed", zap.Int("rides", len(c.rides)))
	return nil
}

// Set stores the ride if it is AVAILABLE, otherwise evicts it.
func (c *RideCache) Set(ride *repository.Ride) {
	if ride.Status != repository.RideAvailable {
		c.Delete(ride.ID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	copied := *ride
	c.rides[ride.ID] = &copied
	metrics.RideCacheItems.Set(float64(len(c.rides)))
}

func (c *RideCache) Delete(rideID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.rides, rideID)
	metrics.RideCacheItems.Set(float64(len(c.rides)))
}

// Available returns up to limit cached rides ordered by departure time.
func (c *RideCache) Available(limit int) []*repository.Ride {
	c.mu.RLock()
	out := make([]*repository.Ride, 0, len(c.rides))
	for _, ride := range c.rides {
		copied := *ride
		out = append(out, &copied)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].DepartureTime.Before(out[j].DepartureTime)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
