package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/repository"
)

type MessageRepo struct {
	db db.DB
}

func NewMessageRepo(db db.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

const messageColumns = `
    msg.id, msg.sender_id, msg.recipient_id, msg.match_id, msg.subject,
    msg.content, msg.read, msg.created_at,
    s.name AS sender_name, s.email AS sender_email,
    rec.name AS recipient_name, rec.email AS recipient_email`

const messageJoins = `
    FROM messages msg
    JOIN users s ON s.id = msg.sender_id
    JOIN users rec ON rec.id = msg.recipient_id`

func (r *MessageRepo) Create(ctx context.Context, msg *repository.Message) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO messages (
            id, sender_id, recipient_id, match_id, subject, content, read, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, msg.ID, msg.SenderID, msg.RecipientID, msg.MatchID, msg.Subject,
		msg.Content, msg.Read, msg.CreatedAt)
	return err
}

func (r *MessageRepo) GetByID(ctx context.Context, id string) (*repository.Message, error) {
	var msg repository.Message
	err := r.db.Get(ctx, &msg,
		"SELECT "+messageColumns+messageJoins+" WHERE msg.id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func messageListClauses(p repository.ListParams) (string, []interface{}) {
	where := "WHERE TRUE"
	var args []interface{}

	if p.Search != "" {
		args = append(args, p.Search)
		where += ` AND (msg.subject ILIKE '%' || $1 || '%'
            OR msg.content ILIKE '%' || $1 || '%'
            OR s.name ILIKE '%' || $1 || '%'
            OR s.email ILIKE '%' || $1 || '%'
            OR rec.name ILIKE '%' || $1 || '%'
            OR rec.email ILIKE '%' || $1 || '%')`
	}
	if p.Read != nil {
		args = append(args, *p.Read)
		where += " AND msg.read = $" + itoa(len(args))
	}
	return where, args
}

func (r *MessageRepo) List(ctx context.Context, p repository.ListParams) ([]*repository.Message, error) {
	where, args := messageListClauses(p)
	query := "SELECT " + messageColumns + messageJoins + " " + where + " ORDER BY msg.created_at DESC"

	args = append(args, p.Limit)
	query += " LIMIT $" + itoa(len(args))
	args = append(args, p.Offset())
	query += " OFFSET $" + itoa(len(args))

	var msgs []*repository.Message
	err := r.db.Select(ctx, &msgs, query, args...)
	return msgs, err
}

func (r *MessageRepo) Count(ctx context.Context, p repository.ListParams) (int, error) {
	where, args := messageListClauses(p)
	var total int
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*)"+messageJoins+" "+where, args...).Scan(&total)
	return total, err
}

func (r *MessageRepo) MarkRead(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, "UPDATE messages SET read = TRUE WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
