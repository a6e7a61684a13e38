package response

import (
	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
	"github.com/JOJOMDS11/jojovendas/internal/usecase/interfaces"
)

type OrderPackageResponse struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	PurpleCoins int     `json:"purple_coins"`
	Price       float64 `json:"price"`
	Discount    int     `json:"discount"`
	Description string  `json:"description"`
}

type OrderPaymentResponse struct {
	ID      string  `json:"id"`
	QRCode  string  `json:"qr_code"`
	PixCode string  `json:"pix_code"`
	Amount  float64 `json:"amount"`
}

type CreatedOrderResponse struct {
	ID      string               `json:"id"`
	Package OrderPackageResponse `json:"package"`
	Payment OrderPaymentResponse `json:"payment"`
}

// CreateOrderResponse is the checkout envelope: the pending order plus the
// presentment data the storefront renders for the payer.
type CreateOrderResponse struct {
	Success bool                 `json:"success"`
	Order   CreatedOrderResponse `json:"order"`
}

func FromCreatedOrder(o entities.Order, pkg entities.CoinPackage, charge interfaces.PixCharge) CreateOrderResponse {
	return CreateOrderResponse{
		Success: true,
		Order: CreatedOrderResponse{
			ID: o.ID,
			Package: OrderPackageResponse{
				Type:        pkg.Type,
				Name:        pkg.Name,
				PurpleCoins: pkg.PurpleCoins,
				Price:       pkg.PriceBRL,
				Discount:    pkg.DiscountPercent,
				Description: pkg.Description,
			},
			Payment: OrderPaymentResponse{
				ID:      o.PaymentID,
				QRCode:  charge.QRCodeBase64,
				PixCode: charge.PixCode,
				Amount:  o.PriceBRL,
			},
		},
	}
}
