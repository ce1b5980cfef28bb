package storage

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/repository"
)

// The stubs embed the repo interfaces; anything a test does not override
// panics, which keeps unexpected calls visible.

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(context.Context) error { t.rolledBack = true; return nil }
func (t *fakeTx) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return nil, nil
}
func (t *fakeTx) Get(context.Context, interface{}, string, ...interface{}) error    { return nil }
func (t *fakeTx) Select(context.Context, interface{}, string, ...interface{}) error { return nil }

type fakeDB struct {
	db.DB
	tx       *fakeTx
	beginErr error
}

func (f *fakeDB) BeginTx(context.Context) (db.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

type stubUserRepo struct {
	UserRepository
	exists bool
}

func (s *stubUserRepo) Exists(context.Context, string) (bool, error) { return s.exists, nil }

type stubPackageRepo struct {
	PackageRepository
	pkg     *repository.Package
	created *repository.Package
	updated string
}

func (s *stubPackageRepo) Create(_ context.Context, pkg *repository.Package) error {
	s.created = pkg
	return nil
}

func (s *stubPackageRepo) GetByID(_ context.Context, id string) (*repository.Package, error) {
	if s.pkg == nil || s.pkg.ID != id {
		return nil, repository.ErrObjectNotFound
	}
	return s.pkg, nil
}

func (s *stubPackageRepo) UpdateStatus(_ context.Context, _, status string) error {
	s.updated = status
	return nil
}

type stubRideRepo struct {
	RideRepository
	ride  *repository.Ride
	calls *[]string
}

func (s *stubRideRepo) GetByID(_ context.Context, id string) (*repository.Ride, error) {
	if s.ride == nil || s.ride.ID != id {
		return nil, repository.ErrObjectNotFound
	}
	return s.ride, nil
}

func (s *stubRideRepo) DeleteTx(_ context.Context, _ db.Tx, _ string) error {
	*s.calls = append(*s.calls, "ride")
	return nil
}

type stubMatchRepo struct {
	MatchRepository
	match *repository.Match
	calls *[]string
}

func (s *stubMatchRepo) GetByID(_ context.Context, id string) (*repository.Match, error) {
	if s.match == nil || s.match.ID != id {
		return nil, repository.ErrObjectNotFound
	}
	return s.match, nil
}

func (s *stubMatchRepo) DeleteTx(_ context.Context, _ db.Tx, _ string) error {
	*s.calls = append(*s.calls, "match")
	return nil
}

func (s *stubMatchRepo) DeleteByRideIDTx(_ context.Context, _ db.Tx, _ string) error {
	*s.calls = append(*s.calls, "matches")
	return nil
}

type stubPaymentRepo struct {
	PaymentRepository
	payment  *repository.Payment
	refunded bool
	calls    *[]string
}

func (s *stubPaymentRepo) GetByID(_ context.Context, id string) (*repository.Payment, error) {
	if s.payment == nil || s.payment.ID != id {
		return nil, repository.ErrObjectNotFound
	}
	return s.payment, nil
}

func (s *stubPaymentRepo) MarkRefunded(_ context.Context, _ string, _ time.Time) error {
	s.refunded = true
	return nil
}

func (s *stubPaymentRepo) DeleteByRideIDTx(_ context.Context, _ db.Tx, _ string) error {
	*s.calls = append(*s.calls, "payments")
	return nil
}

func (s *stubPaymentRepo) DeleteByMatchIDTx(_ context.Context, _ db.Tx, _ string) error {
	*s.calls = append(*s.calls, "payments")
	return nil
}

type stubNotificationRepo struct {
	NotificationRepository
	created int
}

func (s *stubNotificationRepo) CreateTx(_ context.Context, _ db.Tx, _ *repository.Notification) error {
	s.created++
	return nil
}

type stubOutboxRepo struct {
	created int
}

func (s *stubOutboxRepo) CreateTx(_ context.Context, _ db.Tx, _ *repository.OutboxTask) error {
	s.created++
	return nil
}

type stubRideCache struct {
	set     []*repository.Ride
	deleted []string
}

func (s *stubRideCache) Set(ride *repository.Ride)        { s.set = append(s.set, ride) }
func (s *stubRideCache) Delete(id string)                 { s.deleted = append(s.deleted, id) }
func (s *stubRideCache) Available(int) []*repository.Ride { return nil }

func TestCreatePackage(t *testing.T) {
	t.Run("unknown user rejected", func(t *testing.T) {
		s := &PostgresStorage{
			users:    &stubUserRepo{exists: false},
			packages: &stubPackageRepo{},
		}

		_, err := s.CreatePackage(context.Background(), &repository.Package{UserID: "ghost", Title: "Books"})
		assert.ErrorIs(t, err, ErrBadReference)
	})

	t.Run("created pending with generated id", func(t *testing.T) {
		pkgrepo := &stubPackageRepo{}
		s := &PostgresStorage{
			users:    &stubUserRepo{exists: true},
			packages: pkgrepo,
		}

		created, err := s.CreatePackage(context.Background(), &repository.Package{UserID: "u-1", Title: "Books"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, repository.PackagePending, created.Status)
		assert.Same(t, created, pkgrepo.created)
	})
}

func TestUpdatePackageStatus(t *testing.T) {
	pkg := &repository.Package{ID: "p-1", Status: repository.PackagePending}

	t.Run("legal transition applied", func(t *testing.T) {
		repo := &stubPackageRepo{pkg: pkg}
		s := &PostgresStorage{packages: repo}

		got, err := s.UpdatePackageStatus(context.Background(), "p-1", repository.PackageMatched)
		require.NoError(t, err)
		assert.Equal(t, repository.PackageMatched, got.Status)
		assert.Equal(t, repository.PackageMatched, repo.updated)
	})

	t.Run("illegal transition rejected", func(t *testing.T) {
		repo := &stubPackageRepo{pkg: &repository.Package{ID: "p-1", Status: repository.PackageDelivered}}
		s := &PostgresStorage{packages: repo}

		_, err := s.UpdatePackageStatus(context.Background(), "p-1", repository.PackagePending)
		assert.ErrorIs(t, err, repository.ErrInvalidTransition)
		assert.Empty(t, repo.updated)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := &stubPackageRepo{pkg: pkg}
		s := &PostgresStorage{packages: repo}

		_, err := s.UpdatePackageStatus(context.Background(), "p-1", "SHIPPED")
		assert.ErrorIs(t, err, repository.ErrInvalidTransition)
	})
}

func TestDeleteRideCascade(t *testing.T) {
	t.Run("payments then matches then ride in one tx", func(t *testing.T) {
		var calls []string
		tx := &fakeTx{}
		cache := &stubRideCache{}
		s := &PostgresStorage{
			db:        &fakeDB{tx: tx},
			rides:     &stubRideRepo{ride: &repository.Ride{ID: "r-1"}, calls: &calls},
			matches:   &stubMatchRepo{calls: &calls},
			payments:  &stubPaymentRepo{calls: &calls},
			rideCache: cache,
		}

		require.NoError(t, s.DeleteRide(context.Background(), "r-1"))
		assert.Equal(t, []string{"payments", "matches", "ride"}, calls)
		assert.True(t, tx.committed)
		assert.Equal(t, []string{"r-1"}, cache.deleted)
	})

	t.Run("missing ride short-circuits", func(t *testing.T) {
		var calls []string
		s := &PostgresStorage{
			db:        &fakeDB{tx: &fakeTx{}},
			rides:     &stubRideRepo{calls: &calls},
			rideCache: &stubRideCache{},
		}

		err := s.DeleteRide(context.Background(), "missing")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Empty(t, calls)
	})
}

func TestDeleteMatchCascade(t *testing.T) {
	t.Run("payment then match in one tx", func(t *testing.T) {
		var calls []string
		tx := &fakeTx{}
		s := &PostgresStorage{
			db:       &fakeDB{tx: tx},
			matches:  &stubMatchRepo{match: &repository.Match{ID: "m-1"}, calls: &calls},
			payments: &stubPaymentRepo{calls: &calls},
		}

		require.NoError(t, s.DeleteMatch(context.Background(), "m-1"))
		assert.Equal(t, []string{"payments", "match"}, calls)
		assert.True(t, tx.committed)
	})

	t.Run("missing match short-circuits", func(t *testing.T) {
		var calls []string
		s := &PostgresStorage{
			db:      &fakeDB{tx: &fakeTx{}},
			matches: &stubMatchRepo{calls: &calls},
		}

		err := s.DeleteMatch(context.Background(), "missing")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Empty(t, calls)
	})
}

func TestRefundPayment(t *testing.T) {
	newStorage := func(p *repository.Payment) (*PostgresStorage, *stubPaymentRepo, *stubNotificationRepo, *stubOutboxRepo) {
		payments := &stubPaymentRepo{payment: p}
		notifications := &stubNotificationRepo{}
		outbox := &stubOutboxRepo{}
		s := &PostgresStorage{
			db:            &fakeDB{tx: &fakeTx{}},
			payments:      payments,
			notifications: notifications,
			outbox:        outbox,
		}
		return s, payments, notifications, outbox
	}

	t.Run("completed payment refunded and notified", func(t *testing.T) {
		s, payments, notifications, outbox := newStorage(&repository.Payment{
			ID:     "pay-1",
			UserID: "u-1",
			Status: repository.PaymentCompleted,
			Amount: 42.5,
		})

		got, err := s.RefundPayment(context.Background(), "pay-1")
		require.NoError(t, err)
		assert.Equal(t, repository.PaymentRefunded, got.Status)
		assert.NotNil(t, got.RefundedAt)
		assert.True(t, payments.refunded)
		assert.Equal(t, 1, notifications.created)
		assert.Equal(t, 1, outbox.created)
	})

	t.Run("pending payment rejected", func(t *testing.T) {
		s, payments, _, _ := newStorage(&repository.Payment{
			ID:     "pay-1",
			Status: repository.PaymentPending,
		})

		_, err := s.RefundPayment(context.Background(), "pay-1")
		assert.ErrorIs(t, err, ErrRefundNotAllowed)
		assert.False(t, payments.refunded)
	})

	t.Run("refunded payment stays refunded", func(t *testing.T) {
		s, payments, _, _ := newStorage(&repository.Payment{
			ID:     "pay-1",
			Status: repository.PaymentRefunded,
		})

		_, err := s.RefundPayment(context.Background(), "pay-1")
		assert.ErrorIs(t, err, ErrRefundNotAllowed)
		assert.False(t, payments.refunded)
	})

	t.Run("unknown payment", func(t *testing.T) {
		s, _, _, _ := newStorage(nil)
		_, err := s.RefundPayment(context.Background(), "missing")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}
