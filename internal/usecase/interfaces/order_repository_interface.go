package interfaces

import (
	"context"
	"errors"
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
)

var (
	// ErrOrderNotPending is returned by conditional writes when the order
	// already left the pending state. Callers treat it as "someone else won
	// the race", not as a failure.
	ErrOrderNotPending = errors.New("order is not pending")

	// ErrCodeAlreadyExists is returned by MarkPaid when the candidate
	// redemption code collided with an existing row.
	ErrCodeAlreadyExists = errors.New("redemption code already exists")
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// All mutations are single-item conditional writes (or one transaction in
// the MarkPaid case); the status guard inside the write is the concurrency
// control for the whole fulfillment flow.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Order, error)

	// MarkPaid atomically transitions the order pending→paid, records the
	// redemption code and paid_at on it, and inserts the RedemptionCode row.
	// Fails with ErrOrderNotPending if the order already left pending, or
	// ErrCodeAlreadyExists if the code collided; in both cases nothing is
	// written.
	MarkPaid(ctx context.Context, orderID string, code entities.RedemptionCode, paidAt time.Time) error

	// Expire transitions pending→expired and removes the presentment
	// payload. Fails with ErrOrderNotPending when the order is no longer
	// pending, leaving it untouched.
	Expire(ctx context.Context, orderID string) error

	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]entities.Order, error)
	Stats(ctx context.Context) (entities.SalesStats, error)
	ListRecent(ctx context.Context, limit int) ([]entities.Order, error)
}
