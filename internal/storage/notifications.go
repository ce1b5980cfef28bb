package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliride/backend/internal/repository"
)

// CreateNotification is the direct API-facing variant of notify: it fails
// loudly, and the notification plus its outbox task commit together.
func (s *PostgresStorage) CreateNotification(ctx context.Context, n *repository.Notification) (*repository.Notification, error) {
	exists, err := s.users.Exists(ctx, n.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: no user with id %s", ErrBadReference, n.UserID)
	}

	n.ID = uuid.NewString()
	n.Read = false
	n.CreatedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.notifications.CreateTx(ctx, tx, n); err != nil {
		return nil, err
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
		return nil, err
	}
	if err := s.outbox.CreateTx(ctx, tx, &repository.OutboxTask{
		Topic:   s.notificationTopic,
		Payload: payload,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *PostgresStorage) ListNotifications(ctx context.Context, p repository.ListParams) ([]*repository.Notification, int, error) {
	out, err := s.notifications.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.notifications.Count(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *PostgresStorage) MarkNotificationRead(ctx context.Context, id string) error {
	return s.notifications.MarkRead(ctx, id)
}
