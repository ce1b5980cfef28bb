package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliride/backend/internal/repository"
)

func (s *PostgresStorage) SendMessage(ctx context.Context, msg *repository.Message) (*repository.Message, error) {
	for _, userID := range []string{msg.SenderID, msg.RecipientID} {
		exists, err := s.users.Exists(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: no user with id %s", ErrBadReference, userID)
		}
	}

	msg.ID = uuid.NewString()
	msg.Read = false
	msg.CreatedAt = time.Now().UTC()

	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return s.messages.GetByID(ctx, msg.ID)
}

func (s *PostgresStorage) ListMessages(ctx context.Context, p repository.ListParams) ([]*repository.Message, int, error) {
	msgs, err := s.messages.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.messages.Count(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return msgs, total, nil
}

func (s *PostgresStorage) MarkMessageRead(ctx context.Context, id string) error {
	return s.messages.MarkRead(ctx, id)
}
