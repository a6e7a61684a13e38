package response

import (
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
)

type PaymentStatusBody struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	PurpleCoinCode *string    `json:"purple_coin_code"`
	CreatedAt      time.Time  `json:"created_at"`
	PaidAt         *time.Time `json:"paid_at"`
	Amount         float64    `json:"amount"`
	PurpleCoins    int        `json:"purple_coins"`
}

// PaymentStatusResponse is what the storefront polls while waiting for the
// payer. purple_coin_code is explicitly null until the order is paid.
type PaymentStatusResponse struct {
	Success bool              `json:"success"`
	Payment PaymentStatusBody `json:"payment"`
}

func FromOrderPaymentStatus(o entities.Order) PaymentStatusResponse {
	var code *string
	if o.PurpleCoinCode != "" {
		code = &o.PurpleCoinCode
	}
	return PaymentStatusResponse{
		Success: true,
		Payment: PaymentStatusBody{
			ID:             o.PaymentID,
			Status:         string(o.Status),
			PurpleCoinCode: code,
			CreatedAt:      o.CreatedAt,
			PaidAt:         o.PaidAt,
			Amount:         o.PriceBRL,
			PurpleCoins:    o.PurpleCoinsAmount,
		},
	}
}

// ReconcileResponse is returned by the webhook and simulate endpoints.
// Not-approved and already-processed outcomes are reported as success so
// the processor does not retry them.
type ReconcileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// SweepResponse lists the payment references touched by an expiry sweep.
type SweepResponse struct {
	Success bool     `json:"success"`
	Expired []string `json:"expired"`
}

func FromSweep(expired []string) SweepResponse {
	if expired == nil {
		expired = []string{}
	}
	return SweepResponse{Success: true, Expired: expired}
}
