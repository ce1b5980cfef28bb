package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliride/backend/internal/metrics"
	"github.com/coliride/backend/internal/repository"
)

// CreateMatch pairs a package with a ride in PROPOSED status. Both sides of
// the pairing must exist; whether the package already has other active
// matches is deliberately not checked.
func (s *PostgresStorage) CreateMatch(ctx context.Context, match *repository.Match) (*repository.Match, error) {
	pkg, err := s.packages.GetByID(ctx, match.PackageID)
	if err != nil {
		return nil, fmt.Errorf("%w: no package with id %s", ErrBadReference, match.PackageID)
	}
	ride, err := s.rides.GetByID(ctx, match.RideID)
	if err != nil {
		return nil, fmt.Errorf("%w: no ride with id %s", ErrBadReference, match.RideID)
	}

	now := time.Now().UTC()
	match.ID = uuid.NewString()
	match.Status = repository.MatchProposed
	match.CreatedAt = now
	match.UpdatedAt = now

	if err := s.matches.Create(ctx, match); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_match").Inc()
		return nil, err
	}
	metrics.MatchesCreatedTotal.Inc()

	match.PackageTitle = &pkg.Title
	match.StartLocation = &ride.StartLocation
	match.EndLocation = &ride.EndLocation

	link := "/matches"
	s.notify(ctx, &repository.Notification{
		ID:        uuid.NewString(),
		UserID:    pkg.UserID,
		Type:      "MATCH_PROPOSED",
		Message:   fmt.Sprintf("A carrier proposed a match for %q (%s -> %s)", pkg.Title, ride.StartLocation, ride.EndLocation),
		Link:      &link,
		CreatedAt: now,
	})

	return match, nil
}

func (s *PostgresStorage) GetMatch(ctx context.Context, id string) (*repository.Match, error) {
	return s.matches.GetByID(ctx, id)
}

func (s *PostgresStorage) ListMatches(ctx context.Context, p repository.ListParams) ([]*repository.Match, int, error) {
	matches, err := s.matches.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.matches.Count(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

func (s *PostgresStorage) UpdateMatchStatus(ctx context.Context, id, status string) (*repository.Match, error) {
	match, err := s.matches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !repository.ValidStatus(repository.EntityMatch, status) {
		return nil, fmt.Errorf("%w: unknown match status %q", repository.ErrInvalidTransition, status)
	}
	if !repository.CanTransition(repository.EntityMatch, match.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", repository.ErrInvalidTransition, match.Status, status)
	}

	if err := s.matches.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	match.Status = status
	return match, nil
}

// DeleteMatch removes the match and its payment, if any, atomically.
func (s *PostgresStorage) DeleteMatch(ctx context.Context, id string) error {
	if _, err := s.matches.GetByID(ctx, id); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.payments.DeleteByMatchIDTx(ctx, tx, id); err != nil {
		return err
	}
	if err := s.matches.DeleteTx(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
