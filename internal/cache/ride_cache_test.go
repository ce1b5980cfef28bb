package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coliride/backend/internal/repository"
)

type stubRideSource struct {
	rides []*repository.Ride
	err   error
}

func (s *stubRideSource) GetAvailable(_ context.Context, _ int) ([]*repository.Ride, error) {
	return s.rides, s.err
}

func ride(id string, departure time.Time, status string) *repository.Ride {
	return &repository.Ride{
		ID:            id,
		Status:        status,
		DepartureTime: departure,
	}
}

func TestRideCacheLoadInitialData(t *testing.T) {
	now := time.Now()
	source := &stubRideSource{rides: []*repository.Ride{
		ride("r-1", now.Add(2*time.Hour), repository.RideAvailable),
		ride("r-2", now.Add(time.Hour), repository.RideAvailable),
	}}

	c := NewRideCache(source)
	require.NoError(t, c.LoadInitialData(context.Background()))

	got := c.Available(0)
	require.Len(t, got, 2)
	assert.Equal(t, "r-2", got[0].ID, "departure-sorted, earliest first")
	assert.Equal(t, "r-1", got[1].ID)
}

func TestRideCacheLoadInitialDataError(t *testing.T) {
	c := NewRideCache(&stubRideSource{err: errors.New("db down")})
	assert.Error(t, c.LoadInitialData(context.Background()))
}

func TestRideCacheSetEvictsNonAvailable(t *testing.T) {
	c := NewRideCache(&stubRideSource{})
	now := time.Now()

	c.Set(ride("r-1", now, repository.RideAvailable))
	require.Len(t, c.Available(0), 1)

	// the same ride moving out of AVAILABLE drops it from the cache
	c.Set(ride("r-1", now, repository.RideFull))
	assert.Empty(t, c.Available(0))
}

func TestRideCacheDelete(t *testing.T) {
	c := NewRideCache(&stubRideSource{})
	c.Set(ride("r-1", time.Now(), repository.RideAvailable))
	c.Delete("r-1")
	assert.Empty(t, c.Available(0))
}

func TestRideCacheAvailableLimit(t *testing.T) {
	c := NewRideCache(&stubRideSource{})
	now := time.Now()
	c.Set(ride("r-1", now.Add(3*time.Hour), repository.RideAvailable))
	c.Set(ride("r-2", now.Add(time.Hour), repository.RideAvailable))
	c.Set(ride("r-3", now.Add(2*time.Hour), repository.RideAvailable))

	got := c.Available(2)
	require.Len(t, got, 2)
	assert.Equal(t, "r-2", got[0].ID)
	assert.Equal(t, "r-3", got[1].ID)
}

func TestRideCacheReturnsCopies(t *testing.T) {
	c := NewRideCache(&stubRideSource{})
	c.Set(ride("r-1", time.Now(), repository.RideAvailable))

	got := c.Available(0)
	require.Len(t, got, 1)
	got[0].Status = repository.RideCancelled

	again := c.Available(0)
	require.Len(t, again, 1)
	assert.Equal(t, repository.RideAvailable, again[0].Status)
}
