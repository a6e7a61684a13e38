package entities

import "time"

// OrderStatus represents the lifecycle of a PIX order.
//
// Domain notes:
//   - "pending" is the only initial state.
//   - "paid", "expired" and "failed" are terminal: no code path transitions
//     out of them. "failed" exists for operators/external tooling only.

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusExpired OrderStatus = "expired"
	OrderStatusFailed  OrderStatus = "failed"
)

// IsTerminal reports whether no further status transition is permitted.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusPaid || s == OrderStatusExpired || s == OrderStatusFailed
}

// Order is a Purple Coins purchase persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_id-index): payment_id
//   - GSI2 (status-created_at-index): status / created_at
//
// Invariants:
//   - PurpleCoinCode is non-empty if and only if Status == paid.
//   - PaymentID is unique per order (one gateway payment per order).
//   - PixCode holds the presentment payload while pending; it is removed
//     when the order expires.

type Order struct {
	ID                string      `json:"id"`
	PackageType       string      `json:"package_type"`
	CustomerName      string      `json:"customer_name"`
	CustomerEmail     string      `json:"customer_email"`
	PurpleCoinsAmount int         `json:"purple_coins_amount"`
	PriceBRL          float64     `json:"price_brl"`
	PaymentID         string      `json:"payment_id"`
	PixCode           string      `json:"pix_code,omitempty"`
	PurpleCoinCode    string      `json:"purple_coin_code,omitempty"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	PaidAt            *time.Time  `json:"paid_at,omitempty"`
}

// SalesStats aggregates the storefront's order history for admin reporting.
type SalesStats struct {
	TotalOrders    int     `json:"total_orders"`
	PaidOrders     int     `json:"paid_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalCoinsSold int     `json:"total_coins_sold"`
}
