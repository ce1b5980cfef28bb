package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/coliride/backend/internal/db"
	"github.com/coliride/backend/internal/repository"
)

type PaymentRepo struct {
	db db.DB
}

func NewPaymentRepo(db db.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

const paymentColumns = `
    pay.id, pay.user_id, pay.match_id, pay.amount, pay.currency, pay.status,
    pay.payment_method, pay.transaction_id, pay.payment_intent_id,
    pay.refunded_at, pay.created_at, pay.updated_at,
    u.name AS user_name, u.email AS user_email,
    p.title AS package_title, r.start_location, r.end_location`

const paymentJoins = `
    FROM payments pay
    JOIN users u ON u.id = pay.user_id
    JOIN matches m ON m.id = pay.match_id
    JOIN packages p ON p.id = m.package_id
    JOIN rides r ON r.id = m.ride_id`

func (r *PaymentRepo) Create(ctx context.Context, payment *repository.Payment) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO payments (
            id, user_id, match_id, amount, currency, status, payment_method,
            transaction_id, payment_intent_id, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, payment.ID, payment.UserID, payment.MatchID, payment.Amount,
		payment.Currency, payment.Status, payment.PaymentMethod,
		payment.TransactionID, payment.PaymentIntentID,
		payment.CreatedAt, payment.UpdatedAt)
	return err
}

func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*repository.Payment, error) {
	var payment repository.Payment
	err := r.db.Get(ctx, &payment,
		"SELECT "+paymentColumns+paymentJoins+" WHERE pay.id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func paymentListClauses(p repository.ListParams) (string, []interface{}) {
	where := "WHERE TRUE"
	var args []interface{}

	if p.Search != "" {
		args = append(args, p.Search)
		where += ` AND (pay.transaction_id ILIKE '%' || $1 || '%'
            OR pay.payment_method ILIKE '%' || $1 || '%'
            OR u.name ILIKE '%' || $1 || '%'
            OR u.email ILIKE '%' || $1 || '%'
            OR p.title ILIKE '%' || $1 || '%')`
	}
	if p.Status != "" {
		args = append(args, p.Status)
		where += " AND pay.status = $" + itoa(len(args))
	}
	return where, args
}

func (r *PaymentRepo) List(ctx context.Context, p repository.ListParams) ([]*repository.Payment, error) {
	where, args := paymentListClauses(p)
	query := "SELECT " + paymentColumns + paymentJoins + " " + where + " ORDER BY pay.created_at DESC"

	args = append(args, p.Limit)
	query += " LIMIT $" + itoa(len(args))
	args = append(args, p.Offset())
	query += " OFFSET $" + itoa(len(args))

	var payments []*repository.Payment
	err := r.db.Select(ctx, &payments, query, args...)
	return payments, err
}

func (r *PaymentRepo) Count(ctx context.Context, p repository.ListParams) (int, error) {
	where, args := paymentListClauses(p)
	var total int
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*)"+paymentJoins+" "+where, args...).Scan(&total)
	return total, err
}

// MarkRefunded flips the row to REFUNDED and stamps refunded_at. The
// COMPLETED precondition lives in storage; this is a plain write.
func (r *PaymentRepo) MarkRefunded(ctx context.Context, id string, refundedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE payments
        SET status = $1, refunded_at = $2, updated_at = $2
        WHERE id = $3
    `, repository.PaymentRefunded, refundedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *PaymentRepo) DeleteByMatchIDTx(ctx context.Context, tx db.Tx, matchID string) error {
	_, err := tx.Exec(ctx, "DELETE FROM payments WHERE match_id = $1", matchID)
	return err
}

func (r *PaymentRepo) DeleteByRideIDTx(ctx context.Context, tx db.Tx, rideID string) error {
	_, err := tx.Exec(ctx, `
        DELETE FROM payments
        WHERE match_id IN (SELECT id FROM matches WHERE ride_id = $1)
    `, rideID)
	return err
}

// SumCompleted aggregates revenue over COMPLETED payments.
func (r *PaymentRepo) SumCompleted(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.ExecQueryRow(ctx, `
        SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1
    `, repository.PaymentCompleted).Scan(&sum)
	return sum, err
}

func (r *PaymentRepo) GetRecent(ctx context.Context, limit int) ([]*repository.Payment, error) {
	var payments []*repository.Payment
	err := r.db.Select(ctx, &payments,
		"SELECT "+paymentColumns+paymentJoins+" ORDER BY pay.created_at DESC LIMIT $1", limit)
	return payments, err
}
