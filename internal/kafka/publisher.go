package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/repository"
)

type OutboxTaskRepository interface {
	GetProcessableTasks(ctx context.Context, tx db.Tx, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatus(ctx context.Context, database db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

type PublisherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// Publisher drains the outbox table: it claims a batch inside a transaction,
// marks it PROCESSING, then hands each payload to the producer.
type Publisher struct {
	db       db.DB
	repo     OutboxTaskRepository
	producer Producer
	cfg      PublisherConfig

	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewPublisher(database db.DB, repo OutboxTaskRepository, producer Producer, cfg PublisherConfig) *Publisher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &Publisher{
		db:       database,
		repo:     repo,
		producer: producer,
		cfg:      cfg,
		stopCh:   make(chan struct{}),
	}
}

func (p *Publisher) Run(ctx context.Context) {
	p.wg.Add(1)
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.processBatch(ctx); err != nil {
				zap.L().Error("outbox batch failed", zap.Error(err))
			}
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (p *Publisher) Shutdown(ctx context.Context) {
	p.stopOnce.Do(func() {
		close(p.stopCh)

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			zap.L().Warn("outbox publisher shutdown timed out")
		}

		if err := p.producer.Close(); err != nil {
			zap.L().Error("closing producer", zap.Error(err))
		}
	})
}

func (p *Publisher) processBatch(ctx context.Context) error {
	tx, err := p.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin outbox transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	tasks, err := p.repo.GetProcessableTasks(ctx, tx, p.cfg.BatchSize)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return tx.Commit(ctx)
	}

	for _, task := range tasks {
		if err := p.repo.UpdateTaskStatusTx(ctx, tx, task.ID, repository.TaskStatusProcessing, task.Attempts, nil, nil); err != nil {
			return fmt.Errorf("mark task %s processing: %w", task.ID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit claimed batch: %w", err)
	}

	for _, task := range tasks {
		select {
		case <-p.stopCh:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := p.sendTask(ctx, task); err != nil {
			zap.L().Error("outbox task failed", zap.String("task_id", task.ID.String()), zap.Error(err))
		}
	}
	return nil
}

func (p *Publisher) sendTask(ctx context.Context, task *repository.OutboxTask) error {
	err := p.producer.SendMessage(ctx, task.Topic, []byte(task.ID.String()), task.Payload)
	if err != nil {
		attempts := task.Attempts + 1
		errMsg := err.Error()
		if attempts >= p.cfg.MaxAttempts {
			zap.L().Warn("outbox task reached max attempts",
				zap.String("task_id", task.ID.String()), zap.Int("attempts", attempts))
		}
		if updateErr := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusFailed, attempts, &errMsg, nil); updateErr != nil {
			return fmt.Errorf("record failure for task %s: %w", task.ID, updateErr)
		}
		return err
	}

	now := time.Now().UTC()
	return p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusDone, task.Attempts, nil, &now)
}
