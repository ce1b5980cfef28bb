package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/repository"
)

const outboxMaxAttempts = 5

type OutboxTaskRepo struct{}

func NewOutboxTaskRepo() *OutboxTaskRepo {
	return &OutboxTaskRepo{}
}

func (r *OutboxTaskRepo) CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := time.Now().UTC()
	_, err := tx.Exec(ctx, `
        INSERT INTO outbox_tasks (id, status, topic, payload, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, task.ID, repository.TaskStatusCreated, task.Topic, task.Payload, now, now)
	if err != nil {
		return fmt.Errorf("insert outbox task: %w", err)
	}
	return nil
}

// GetProcessableTasks picks CREATED tasks plus FAILED ones still under the
// attempt cap, locking them so concurrent publishers skip each other.
func (r *OutboxTaskRepo) GetProcessableTasks(ctx context.Context, tx db.Tx, limit int) ([]*repository.OutboxTask, error) {
	var tasks []*repository.OutboxTask
	err := tx.Select(ctx, &tasks, `
        SELECT id, status, topic, payload, attempts, last_error,
               created_at, updated_at, completed_at
        FROM outbox_tasks
        WHERE status = $1 OR (status = $2 AND attempts < $3)
        ORDER BY updated_at ASC
        LIMIT $4
        FOR UPDATE SKIP LOCKED
    `, repository.TaskStatusCreated, repository.TaskStatusFailed, outboxMaxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("select outbox tasks: %w", err)
	}
	return tasks, nil
}

const updateTaskQuery = `
    UPDATE outbox_tasks
    SET status = $2,
        attempts = $3,
        last_error = $4,
        completed_at = $5,
        updated_at = now()
    WHERE id = $1`

func (r *OutboxTaskRepo) UpdateTaskStatus(ctx context.Context, database db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error {
	tag, err := database.Exec(ctx, updateTaskQuery, id, status, attempts, lastError, completedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OutboxTaskRepo) UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error {
	tag, err := tx.Exec(ctx, updateTaskQuery, id, status, attempts, lastError, completedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
