//go:generate mockgen -source ./storage.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrBadReference marks a create that points at a missing row; handlers
	// map it to 400, not 404, because the body is at fault.
	ErrBadReference = errors.New("referenced entity does not exist")

	ErrRefundNotAllowed = errors.New("only completed payments can be refunded")
)

type UserRepository interface {
	Create(ctx context.Context, user *repository.User) error
	GetByID(ctx context.Context, id string) (*repository.User, error)
	GetByEmail(ctx context.Context, email string) (*repository.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, p repository.ListParams) ([]*repository.User, error)
	Count(ctx context.Context, p repository.ListParams) (int, error)
	CountAll(ctx context.Context) (int, error)
	Update(ctx context.Context, user *repository.User) error
	Delete(ctx context.Context, id string) error
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *repository.Package) error
	GetByID(ctx context.Context, id string) (*repository.Package, error)
	List(ctx context.Context, p repository.ListParams) ([]*repository.Package, error)
	Count(ctx context.Context, p repository.ListParams) (int, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStatus(ctx context.Context, status string) (int, error)
	GetRecent(ctx context.Context, limit int) ([]*repository.Package, error)
	GetRecentByStatus(ctx context.Context, status string, limit int) ([]*repository.Package, error)
}

type RideRepository interface {
	Create(ctx context.Context, ride *repository.Ride) error
	GetByID(ctx context.Context, id string) (*repository.Ride, error)
	List(ctx context.Context, p repository.ListParams) ([]*repository.Ride, error)
	Count(ctx context.Context, p repository.ListParams) (int, error)
	DeleteTx(ctx context.Context, tx db.Tx, id string) error
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStatus(ctx context.Context, status string) (int, error)
	GetRecent(ctx context.Context, limit int) ([]*repository.Ride, error)
	GetAvailable(ctx context.Context, limit int) ([]*repository.Ride, error)
}

type MatchRepository interface {
	Create(ctx context.Context, match *repository.Match) error
	GetByID(ctx context.Context, id string) (*repository.Match, error)
	List(ctx context.Context, p repository.ListParams) ([]*repository.Match, error)
	Count(ctx context.Context, p repository.ListParams) (int, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteTx(ctx context.Context, tx db.Tx, id string) error
	DeleteByRideIDTx(ctx context.Context, tx db.Tx, rideID string) error
	CountByStatus(ctx context.Context, status string) (int, error)
	GetRecent(ctx context.Context, limit int) ([]*repository.Match, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *repository.Payment) error
	GetByID(ctx context.Context, id string) (*repository.Payment, error)
	List(ctx context.Context, p repository.ListParams) ([]*repository.Payment, error)
	Count(ctx context.Context, p repository.ListParams) (int, error)
	MarkRefunded(ctx context.Context, id string, refundedAt time.Time) error
	DeleteByMatchIDTx(ctx context.Context, tx db.Tx, matchID string) error
	DeleteByRideIDTx(ctx context.Context, tx db.Tx, rideID string) error
	SumCompleted(ctx context.Context) (float64, error)
	GetRecent(ctx context.Context, limit int) ([]*repository.Payment, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *repository.Message) error
	GetByID(ctx context.Context, id string) (*repository.Message, error)
	List(ctx context.Context, p repository.ListParams) ([]*repository.Message, error)
	Count(ctx context.Context, p repository.ListParams) (int, error)
	MarkRead(ctx context.Context, id string) error
}

type NotificationRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error
	List(ctx context.Context, p repository.ListParams) ([]*repository.Notification, error)
	Count(ctx context.Context, p repository.ListParams) (int, error)
	MarkRead(ctx context.Context, id string) error
}

type OutboxRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
}

type RideCache interface {
	Set(ride *repository.Ride)
	Delete(rideID string)
	Available(limit int) []*repository.Ride
}

// PostgresStorage is the single entry point handlers go through. It owns the
// cross-repo rules: referential checks on create, status transition
// enforcement, cascade deletes, and notification fan-out via the outbox.
type PostgresStorage struct {
	db            db.DB
	users         UserRepository
	packages      PackageRepository
	rides         RideRepository
	matches       MatchRepository
	payments      PaymentRepository
	messages      MessageRepository
	notifications NotificationRepository
	outbox        OutboxRepository
	rideCache     RideCache

	notificationTopic string
}

func NewPostgresStorage(
	database db.DB,
	users UserRepository,
	packages PackageRepository,
	rides RideRepository,
	matches MatchRepository,
	payments PaymentRepository,
	messages MessageRepository,
	notifications NotificationRepository,
	outbox OutboxRepository,
	rideCache RideCache,
	notificationTopic string,
) *PostgresStorage {
	return &PostgresStorage{
		db:                database,
		users:             users,
		packages:          packages,
		rides:             rides,
		matches:           matches,
		payments:          payments,
		messages:          messages,
		notifications:     notifications,
		outbox:            outbox,
		rideCache:         rideCache,
		notificationTopic: notificationTopic,
	}
}

// notify persists a notification together with its outbox task in one
// transaction. Failures are logged, never propagated: the triggering
// operation has already succeeded.
func (s *PostgresStorage) notify(ctx context.Context, n *repository.Notification) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		zap.L().Error("notification tx begin failed", zap.Error(err))
		return
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.notifications.CreateTx(ctx, tx, n); err != nil {
		zap.L().Error("notification insert failed", zap.Error(err))
		return
	}

	link := ""
	if n.Link != nil {
		link = *n.Link
	}
	payload, err := json.Marshal(repository.NotificationEvent{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Type:           n.Type,
		Message:        n.Message,
		Link:           link,
		CreatedAt:      n.CreatedAt,
	})
	if err != nil {
		zap.L().Error("notification payload marshal failed", zap.Error(err))
		return
	}

	if err := s.outbox.CreateTx(ctx, tx, &repository.OutboxTask{
		Topic:   s.notificationTopic,
		Payload: payload,
	}); err != nil {
		zap.L().Error("outbox enqueue failed", zap.Error(err))
		return
	}

	if err := tx.Commit(ctx); err != nil {
		zap.L().Error("notification commit failed", zap.Error(err))
	}
}
