package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliride/backend/internal/metrics"
	"github.com/coliride/backend/internal/repository"
)

func (s *PostgresStorage) CreateRide(ctx context.Context, ride *repository.Ride) (*repository.Ride, error) {
	exists, err := s.users.Exists(ctx, ride.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: no user with id %s", ErrBadReference, ride.UserID)
	}

	now := time.Now().UTC()
	ride.ID = uuid.NewString()
	ride.Status = repository.RideAvailable
	ride.CreatedAt = now
	ride.UpdatedAt = now

	if err := s.rides.Create(ctx, ride); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_ride").Inc()
		return nil, err
	}
	metrics.RidesCreatedTotal.Inc()
	s.rideCache.Set(ride)
	return ride, nil
}

func (s *PostgresStorage) GetRide(ctx context.Context, id string) (*repository.Ride, error) {
	return s.rides.GetByID(ctx, id)
}

func (s *PostgresStorage) ListRides(ctx context.Context, p repository.ListParams) ([]*repository.Ride, int, error) {
	rides, err := s.rides.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.rides.Count(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return rides, total, nil
}

// DeleteRide removes the ride together with its matches and their payments
// in one transaction, so no orphaned foreign keys survive.
func (s *PostgresStorage) DeleteRide(ctx context.Context, id string) error {
	if _, err := s.rides.GetByID(ctx, id); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.payments.DeleteByRideIDTx(ctx, tx, id); err != nil {
		return err
	}
	if err := s.matches.DeleteByRideIDTx(ctx, tx, id); err != nil {
		return err
	}
	if err := s.rides.DeleteTx(ctx, tx, id); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.rideCache.Delete(id)
	return nil
}

func (s *PostgresStorage) UpdateRideStatus(ctx context.Context, id, status string) (*repository.Ride, error) {
	ride, err := s.rides.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !repository.ValidStatus(repository.EntityRide, status) {
		return nil, fmt.Errorf("%w: unknown ride status %q", repository.ErrInvalidTransition, status)
	}
	if !repository.CanTransition(repository.EntityRide, ride.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", repository.ErrInvalidTransition, ride.Status, status)
	}

	if err := s.rides.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	ride.Status = status
	s.rideCache.Set(ride)
	return ride, nil
}
