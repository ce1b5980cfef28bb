package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coliride/backend/internal/metrics"
	"github.com/coliride/backend/internal/repository"
)

func (s *PostgresStorage) CreatePayment(ctx context.Context, payment *repository.Payment) (*repository.Payment, error) {
	exists, err := s.users.Exists(ctx, payment.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: no user with id %s", ErrBadReference, payment.UserID)
	}
	if _, err := s.matches.GetByID(ctx, payment.MatchID); err != nil {
		return nil, fmt.Errorf("%w: no match with id %s", ErrBadReference, payment.MatchID)
	}

	now := time.Now().UTC()
	payment.ID = uuid.NewString()
	payment.Status = repository.PaymentPending
	if payment.Currency == "" {
		payment.Currency = "EUR"
	}
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if err := s.payments.Create(ctx, payment); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_payment").Inc()
		return nil, err
	}
	return s.payments.GetByID(ctx, payment.ID)
}

func (s *PostgresStorage) ListPayments(ctx context.Context, p repository.ListParams) ([]*repository.Payment, int, error) {
	payments, err := s.payments.List(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.payments.Count(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// RefundPayment moves a payment to REFUNDED. The only legal source state is
// COMPLETED; anything else fails with ErrRefundNotAllowed and leaves the row
// untouched.
func (s *PostgresStorage) RefundPayment(ctx context.Context, id string) (*repository.Payment, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment.Status != repository.PaymentCompleted {
		return nil, fmt.Errorf("%w: payment is %s", ErrRefundNotAllowed, payment.Status)
	}

	refundedAt := time.Now().UTC()
	if err := s.payments.MarkRefunded(ctx, id, refundedAt); err != nil {
		return nil, err
	}
	metrics.PaymentsRefundedTotal.Inc()

	payment.Status = repository.PaymentRefunded
	payment.RefundedAt = &refundedAt
	payment.UpdatedAt = refundedAt

	s.notify(ctx, &repository.Notification{
		ID:        uuid.NewString(),
		UserID:    payment.UserID,
		Type:      "PAYMENT_REFUNDED",
		Message:   fmt.Sprintf("Your payment of %.2f %s was refunded", payment.Amount, payment.Currency),
		CreatedAt: refundedAt,
	})

	return payment, nil
}
