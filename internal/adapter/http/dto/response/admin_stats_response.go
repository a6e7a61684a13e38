package response

import (
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
)

type AdminOrderResponse struct {
	ID                string     `json:"id"`
	PackageType       string     `json:"package_type"`
	CustomerName      string     `json:"customer_name"`
	CustomerEmail     string     `json:"customer_email"`
	PurpleCoinsAmount int        `json:"purple_coins_amount"`
	PriceBRL          float64    `json:"price_brl"`
	PaymentID         string     `json:"payment_id"`
	PurpleCoinCode    string     `json:"purple_coin_code,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
}

// AdminStatsResponse carries sales aggregates plus the most recent orders
// for the admin panel.
type AdminStatsResponse struct {
	Success      bool                 `json:"success"`
	Stats        entities.SalesStats  `json:"stats"`
	RecentOrders []AdminOrderResponse `json:"recent_orders"`
}

func FromSalesStats(stats entities.SalesStats, recent []entities.Order) AdminStatsResponse {
	orders := make([]AdminOrderResponse, 0, len(recent))
	for _, o := range recent {
		orders = append(orders, AdminOrderResponse{
			ID:                o.ID,
			PackageType:       o.PackageType,
			CustomerName:      o.CustomerName,
			CustomerEmail:     o.CustomerEmail,
			PurpleCoinsAmount: o.PurpleCoinsAmount,
			PriceBRL:          o.PriceBRL,
			PaymentID:         o.PaymentID,
			PurpleCoinCode:    o.PurpleCoinCode,
			Status:            string(o.Status),
			CreatedAt:         o.CreatedAt,
			PaidAt:            o.PaidAt,
		})
	}
	return AdminStatsResponse{Success: true, Stats: stats, RecentOrders: orders}
}
