package interfaces

import "context"

// PixCharge is the presentment data returned by the payment processor for a
// freshly created PIX payment.
//
//   - PixCode is the "copia e cola" payload the payer scans or pastes.
//   - QRCodeBase64 is a data:image/png;base64 URI ready for an <img> tag.
type PixCharge struct {
	PaymentID    string
	PixCode      string
	QRCodeBase64 string
	Status       string
}

// IPaymentGateway abstracts the external PIX payment processor
// (Mercado Pago in production, a local mock in development).
//
// CreatePixPayment carries an idempotency key so a retried create request is
// deduplicated by the processor instead of double-charging the customer.
// CancelPayment is best-effort: the expiry sweeper logs and continues when
// it fails.
type IPaymentGateway interface {
	CreatePixPayment(ctx context.Context, amount float64, description, idempotencyKey string) (PixCharge, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (string, error)
	CancelPayment(ctx context.Context, paymentID string) error
}
