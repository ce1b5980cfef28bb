package postgresql

import (
	"context"

	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/repository"
)

type NotificationRepo struct {
	db db.DB
}

func NewNotificationRepo(db db.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

const insertNotification = `
    INSERT INTO notifications (id, user_id, type, message, link, read, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *NotificationRepo) Create(ctx context.Context, n *repository.Notification) error {
	_, err := r.db.Exec(ctx, insertNotification,
		n.ID, n.UserID, n.Type, n.Message, n.Link, n.Read, n.CreatedAt)
	return err
}

// CreateTx exists so a notification and its outbox task commit atomically.
func (r *NotificationRepo) CreateTx(ctx context.Context, tx db.Tx, n *repository.Notification) error {
	_, err := tx.Exec(ctx, insertNotification,
		n.ID, n.UserID, n.Type, n.Message, n.Link, n.Read, n.CreatedAt)
	return err
}

func notificationListClauses(p repository.ListParams) (string, []interface{}) {
	where := "WHERE TRUE"
	var args []interface{}

	if p.Search != "" {
		args = append(args, p.Search)
		where += ` AND (message ILIKE '%' || $1 || '%' OR type ILIKE '%' || $1 || '%')`
	}
	if p.Read != nil {
		args = append(args, *p.Read)
		where += " AND read = $" + itoa(len(args))
	}
	return where, args
}

func (r *NotificationRepo) List(ctx context.Context, p repository.ListParams) ([]*repository.Notification, error) {
	where, args := notificationListClauses(p)
	query := "SELECT * FROM notifications " + where + " ORDER BY created_at DESC"

	args = append(args, p.Limit)
	query += " LIMIT $" + itoa(len(args))
	args = append(args, p.Offset())
	query += " OFFSET $" + itoa(len(args))

	var out []*repository.Notification
	err := r.db.Select(ctx, &out, query, args...)
	return out, err
}

func (r *NotificationRepo) Count(ctx context.Context, p repository.ListParams) (int, error) {
	where, args := notificationListClauses(p)
	var total int
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*) FROM notifications "+where, args...).Scan(&total)
	return total, err
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "UPDATE notifications SET read = TRUE WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
