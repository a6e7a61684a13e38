package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
	"github.com/JOJOMDS11/jojovendas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPackage        = errors.New("invalid package type")
	ErrMissingCustomerFields = errors.New("customer name and email are required")
	ErrOrderNotFound         = errors.New("order not found")
	ErrPaymentGateway        = errors.New("payment gateway error")
)

// recentOrdersLimit caps the admin "recent orders" listing.
const recentOrdersLimit = 20

// IOrderUseCase exposes storefront order operations.
//
//   - CreateOrder => POST /v1/orders
//   - GetByPaymentID => GET /v1/payments/:payment_id
//   - GetSalesStats => GET /v1/admin/stats

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, packageType, customerName, customerEmail string) (entities.Order, interfaces.PixCharge, error)
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Order, error)
	GetSalesStats(ctx context.Context) (entities.SalesStats, []entities.Order, error)
}

type OrderUseCase struct {
	repo    interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *OrderUseCase {
	return &OrderUseCase{repo: repo, gateway: gateway}
}

// CreateOrder validates the request, asks the gateway for a PIX charge and
// persists the pending order. The order id doubles as the gateway
// idempotency key, so a retried create request cannot double-charge.
//
// Ordering matters: the gateway call happens before the insert, and a
// gateway failure means no row is ever written.
func (u *OrderUseCase) CreateOrder(ctx context.Context, packageType, customerName, customerEmail string) (entities.Order, interfaces.PixCharge, error) {
	packageType = strings.TrimSpace(packageType)
	customerName = strings.TrimSpace(customerName)
	customerEmail = strings.TrimSpace(customerEmail)

	pkg, ok := entities.PackageByType(packageType)
	if !ok {
		log.Printf("[order][usecase] invalid package package=%q", packageType)
		return entities.Order{}, interfaces.PixCharge{}, ErrInvalidPackage
	}
	if customerName == "" || customerEmail == "" {
		log.Printf("[order][usecase] missing customer fields package=%s", packageType)
		return entities.Order{}, interfaces.PixCharge{}, ErrMissingCustomerFields
	}

	orderID := uuid.NewString()
	log.Printf("[order][usecase] create start order_id=%s package=%s customer_email=%s", orderID, packageType, customerEmail)

	description := fmt.Sprintf("Purple Coins - %s", pkg.Name)
	charge, err := u.gateway.CreatePixPayment(ctx, pkg.PriceBRL, description, orderID)
	if err != nil {
		log.Printf("[order][usecase] gateway create failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, interfaces.PixCharge{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	log.Printf("[order][usecase] pix charge created order_id=%s payment_id=%s", orderID, charge.PaymentID)

	o := entities.Order{
		ID:                orderID,
		PackageType:       packageType,
		CustomerName:      customerName,
		CustomerEmail:     customerEmail,
		PurpleCoinsAmount: pkg.PurpleCoins,
		PriceBRL:          pkg.PriceBRL,
		PaymentID:         charge.PaymentID,
		PixCode:           charge.PixCode,
		Status:            entities.OrderStatusPending,
		CreatedAt:         time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] order create failed order_id=%s payment_id=%s err=%v", orderID, charge.PaymentID, err)
		return entities.Order{}, interfaces.PixCharge{}, err
	}
	log.Printf("[order][usecase] create success order_id=%s payment_id=%s price=%.2f", created.ID, created.PaymentID, created.PriceBRL)

	return created, charge, nil
}

func (u *OrderUseCase) GetByPaymentID(ctx context.Context, paymentID string) (entities.Order, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	o, err := u.repo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetSalesStats(ctx context.Context) (entities.SalesStats, []entities.Order, error) {
	stats, err := u.repo.Stats(ctx)
	if err != nil {
		log.Printf("[order][usecase] stats failed err=%v", err)
		return entities.SalesStats{}, nil, err
	}

	recent, err := u.repo.ListRecent(ctx, recentOrdersLimit)
	if err != nil {
		log.Printf("[order][usecase] recent listing failed err=%v", err)
		return entities.SalesStats{}, nil, err
	}

	return stats, recent, nil
}
