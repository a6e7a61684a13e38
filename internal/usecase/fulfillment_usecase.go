package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
	"github.com/JOJOMDS11/jojovendas/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentID        = errors.New("invalid payment id")
	ErrCodeGenerationExhausted = errors.New("could not generate a unique redemption code")
	ErrGatewayStatusLookup     = errors.New("payment status lookup failed")
)

const (
	// codeMintAttempts bounds the unique-code retry loop. Exhausting it
	// leaves the order pending; a later reconciliation may still succeed.
	codeMintAttempts = 10

	codeSuffixLength = 8

	// StaleOrderAge is how long an order may stay pending before the
	// sweeper cancels and expires it.
	StaleOrderAge = 5 * time.Minute
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ReconcileOutcome classifies a reconciliation attempt. Only "paid" means
// this call performed the pending→paid transition; the other outcomes are
// deliberate no-ops and are reported as success to webhook callers so they
// do not retry.
type ReconcileOutcome string

const (
	ReconcileOutcomePaid             ReconcileOutcome = "paid"
	ReconcileOutcomeNotApproved      ReconcileOutcome = "not_approved"
	ReconcileOutcomeAlreadyProcessed ReconcileOutcome = "already_processed"
)

type ReconcileResult struct {
	Outcome        ReconcileOutcome
	PurpleCoinCode string
}

// IFulfillmentUseCase reconciles payment events into order state and sweeps
// stale pending orders.
//
//   - ReconcileFromGateway => POST /v1/payments/webhook
//   - Reconcile => POST /v1/payments/simulate
//   - ExpireStale => POST /v1/orders/sweep, background sweeper

type IFulfillmentUseCase interface {
	Reconcile(ctx context.Context, paymentID, observedStatus string) (ReconcileResult, error)
	ReconcileFromGateway(ctx context.Context, paymentID string) (ReconcileResult, error)
	ExpireStale(ctx context.Context, olderThan time.Duration) ([]string, error)
}

type FulfillmentUseCase struct {
	orders  interfaces.IOrderRepository
	codes   interfaces.ICodeRepository
	gateway interfaces.IPaymentGateway
}

var _ IFulfillmentUseCase = (*FulfillmentUseCase)(nil)

func NewFulfillmentUseCase(orders interfaces.IOrderRepository, codes interfaces.ICodeRepository, gateway interfaces.IPaymentGateway) *FulfillmentUseCase {
	return &FulfillmentUseCase{orders: orders, codes: codes, gateway: gateway}
}

// ReconcileFromGateway resolves the real payment status from the processor
// and reconciles with it. Webhook bodies only name the payment; the claimed
// status is never trusted.
func (u *FulfillmentUseCase) ReconcileFromGateway(ctx context.Context, paymentID string) (ReconcileResult, error) {
	if paymentID == "" {
		return ReconcileResult{}, ErrInvalidPaymentID
	}

	status, err := u.gateway.GetPaymentStatus(ctx, paymentID)
	if err != nil {
		log.Printf("[fulfillment][usecase] gateway status lookup failed payment_id=%s err=%v", paymentID, err)
		return ReconcileResult{}, fmt.Errorf("%w: %v", ErrGatewayStatusLookup, err)
	}

	return u.Reconcile(ctx, paymentID, status)
}

// Reconcile applies an observed payment status to the matching order. Safe
// under at-least-once delivery: only the call that still sees the order
// pending performs the transition, every other delivery (webhook retry,
// poll, concurrent duplicate) resolves to an already-processed no-op.
func (u *FulfillmentUseCase) Reconcile(ctx context.Context, paymentID, observedStatus string) (ReconcileResult, error) {
	if paymentID == "" {
		return ReconcileResult{}, ErrInvalidPaymentID
	}
	log.Printf("[fulfillment][usecase] reconcile start payment_id=%s status=%s", paymentID, observedStatus)

	if !isApprovedStatus(observedStatus) {
		log.Printf("[fulfillment][usecase] payment not approved payment_id=%s status=%s", paymentID, observedStatus)
		return ReconcileResult{Outcome: ReconcileOutcomeNotApproved}, nil
	}

	order, err := u.orders.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if order.ID == "" || order.Status != entities.OrderStatusPending {
		log.Printf("[fulfillment][usecase] order not found or already processed payment_id=%s", paymentID)
		return ReconcileResult{Outcome: ReconcileOutcomeAlreadyProcessed}, nil
	}

	now := time.Now().UTC()
	for attempt := 1; attempt <= codeMintAttempts; attempt++ {
		candidate := fmt.Sprintf("PC%d_%s", order.PurpleCoinsAmount, randomCodeSuffix(codeSuffixLength))

		exists, err := u.codes.Exists(ctx, candidate)
		if err != nil {
			return ReconcileResult{}, err
		}
		if exists {
			log.Printf("[fulfillment][usecase] code collision payment_id=%s attempt=%d", paymentID, attempt)
			continue
		}

		code := entities.RedemptionCode{
			Code:             candidate,
			PurpleCoinsValue: order.PurpleCoinsAmount,
			CreatedBy:        entities.CodeIssuer,
			Description:      fmt.Sprintf("Compra PIX - %s (%s)", order.CustomerName, order.CustomerEmail),
			CreatedAt:        now,
			ExpiresAt:        now.Add(entities.CodeValidity),
		}

		err = u.orders.MarkPaid(ctx, order.ID, code, now)
		switch {
		case err == nil:
			log.Printf("[fulfillment][usecase] order paid order_id=%s payment_id=%s code=%s", order.ID, paymentID, candidate)
			return ReconcileResult{Outcome: ReconcileOutcomePaid, PurpleCoinCode: candidate}, nil
		case errors.Is(err, interfaces.ErrOrderNotPending):
			// Lost the race against a concurrent reconciliation.
			log.Printf("[fulfillment][usecase] concurrent reconcile won payment_id=%s", paymentID)
			return ReconcileResult{Outcome: ReconcileOutcomeAlreadyProcessed}, nil
		case errors.Is(err, interfaces.ErrCodeAlreadyExists):
			// Collision slipped past the pre-check; spend another attempt.
			log.Printf("[fulfillment][usecase] code collision on write payment_id=%s attempt=%d", paymentID, attempt)
			continue
		default:
			return ReconcileResult{}, err
		}
	}

	log.Printf("[fulfillment][usecase] code generation exhausted payment_id=%s attempts=%d", paymentID, codeMintAttempts)
	return ReconcileResult{}, ErrCodeGenerationExhausted
}

// ExpireStale cancels and expires every order still pending past the cutoff.
// Gateway cancellation and the local transition are independent best-effort
// steps: either one failing is logged per order and never aborts the batch,
// and the local expiry is never gated on the remote outcome.
func (u *FulfillmentUseCase) ExpireStale(ctx context.Context, olderThan time.Duration) ([]string, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	log.Printf("[fulfillment][usecase] sweep start cutoff=%s", cutoff.Format(time.RFC3339))

	stale, err := u.orders.ListPendingBefore(ctx, cutoff)
	if err != nil {
		log.Printf("[fulfillment][usecase] sweep listing failed err=%v", err)
		return nil, err
	}
	log.Printf("[fulfillment][usecase] sweep found=%d", len(stale))

	expired := make([]string, 0, len(stale))
	for _, o := range stale {
		if err := u.gateway.CancelPayment(ctx, o.PaymentID); err != nil {
			log.Printf("[fulfillment][usecase] gateway cancel failed order_id=%s payment_id=%s err=%v", o.ID, o.PaymentID, err)
		}

		if err := u.orders.Expire(ctx, o.ID); err != nil {
			if errors.Is(err, interfaces.ErrOrderNotPending) {
				log.Printf("[fulfillment][usecase] order left pending before expiry order_id=%s", o.ID)
			} else {
				log.Printf("[fulfillment][usecase] expire failed order_id=%s err=%v", o.ID, err)
			}
		} else {
			log.Printf("[fulfillment][usecase] order expired order_id=%s payment_id=%s", o.ID, o.PaymentID)
		}

		expired = append(expired, o.PaymentID)
	}

	return expired, nil
}

// isApprovedStatus accepts the processor's terminal success statuses.
func isApprovedStatus(status string) bool {
	return status == "approved" || status == "paid"
}

func randomCodeSuffix(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform entropy source is broken;
		// there is no sensible recovery for a token mint.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return string(buf)
}
