package request

import "strings"

// PaymentNotificationRequest is the body accepted by the webhook and
// simulate endpoints: just the processor's payment reference. The webhook
// never trusts a caller-claimed status; the real one is fetched from the
// gateway before reconciling.
type PaymentNotificationRequest struct {
	PaymentID string `json:"payment_id"`
}

func (r PaymentNotificationRequest) ResolvePaymentID() string {
	return strings.TrimSpace(r.PaymentID)
}
