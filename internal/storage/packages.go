package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliride/backend/internal/metrics"
	"github.com/coliride/backend/internal/repository"
)

// CreatePackage persists a new package in PENDING status after checking that
// the owning user exists. The check and the insert are not one transaction;
// the window is accepted, the database FK still backstops it.
func (s *PostgresStorage) CreatePackage(ctx context.Context, pkg *repository.Package) (*repository.Package, error) {
	exists, err := s.users.Exists(ctx, pkg.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: no user with id %s", ErrBadReference, pkg.UserID)
	}

	now := time.Now().UTC()
	pkg.ID = uuid.NewString()
	pkg.Status = repository.PackagePending
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	if err := s.packages.Create(ctx, pkg); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_package").Inc()
		return nil, err
	}
	metrics.PackagesCreatedTotal.Inc()
	return pkg, nil
}

func (s *PostgresStorage) GetPackage(ctx context.Context, id string) (*repository.Package, error) {
	return s.packages.GetByID(ctx, id)
}

func (s *PostgresStorage) ListPackages(ctx context.Context, p repository.ListParams) ([]*repository.Package, int, error) {
	pkgs, err := s.packages.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.packages.Count(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return pkgs, total, nil
}

func (s *PostgresStorage) UpdatePackageStatus(ctx context.Context, id, status string) (*repository.Package, error) {
	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !repository.ValidStatus(repository.EntityPackage, status) {
		return nil, fmt.Errorf("%w: unknown package status %q", repository.ErrInvalidTransition, status)
	}
	if !repository.CanTransition(repository.EntityPackage, pkg.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", repository.ErrInvalidTransition, pkg.Status, status)
	}

	if err := s.packages.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	pkg.Status = status
	return pkg, nil
}
