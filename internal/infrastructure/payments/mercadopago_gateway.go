package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidPaymentReference = errors.New("invalid mercado pago payment reference")

const defaultGatewayTimeout = 30 * time.Second

// MercadoPagoGateway creates, inspects and cancels PIX payments through the
// Mercado Pago SDK. The presentment payload (copia-e-cola string and QR
// image) always comes from the processor; it is never assembled locally.
type MercadoPagoGateway struct {
	client   payment.Client
	timeout  time.Duration
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	timeout := gatewayTimeoutFromEnv()

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, timeout: timeout}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), timeout: timeout}, nil
}

// CreatePixPayment asks the processor for a new PIX charge. The idempotency
// key (the order id) travels as external_reference so a retried create is
// reconcilable to the same order; the SDK handles the per-request
// X-Idempotency-Key header.
func (g *MercadoPagoGateway) CreatePixPayment(ctx context.Context, amount float64, description, idempotencyKey string) (interfaces.PixCharge, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(amount, description, idempotencyKey), nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.PixCharge{}, ErrMercadoPagoGatewayNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	log.Printf("[payment][gateway] pix create start amount=%.2f external_reference=%s", amount, idempotencyKey)

	req := payment.Request{
		TransactionAmount: amount,
		Description:       description,
		PaymentMethodID:   "pix",
		ExternalReference: idempotencyKey,
		Payer: &payment.PayerRequest{
			Email: payerEmailFromEnv(),
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.PixCharge{}, err
	}

	charge := interfaces.PixCharge{
		PaymentID:    strconv.Itoa(resp.ID),
		PixCode:      resp.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: ensureDataURI(resp.PointOfInteraction.TransactionData.QRCodeBase64),
		Status:       resp.Status,
	}
	log.Printf("[payment][gateway] pix create success payment_id=%s status=%s", charge.PaymentID, charge.Status)
	return charge, nil
}

func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, paymentID string) (string, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock status payment_id=%s status=approved", paymentID)
		return "approved", nil
	}
	if g == nil || g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	id, err := parsePaymentID(paymentID)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed payment_id=%s err=%v", paymentID, err)
		return "", err
	}
	log.Printf("[payment][gateway] status payment_id=%s status=%s", paymentID, resp.Status)
	return resp.Status, nil
}

func (g *MercadoPagoGateway) CancelPayment(ctx context.Context, paymentID string) error {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock cancel payment_id=%s", paymentID)
		return nil
	}
	if g == nil || g.client == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	id, err := parsePaymentID(paymentID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if _, err := g.client.Cancel(ctx, id); err != nil {
		log.Printf("[payment][gateway] sdk cancel failed payment_id=%s err=%v", paymentID, err)
		return err
	}
	log.Printf("[payment][gateway] cancelled payment_id=%s", paymentID)
	return nil
}

// mockCreate fabricates a local charge so the storefront can be exercised
// without processor credentials.
func (g *MercadoPagoGateway) mockCreate(amount float64, description, idempotencyKey string) interfaces.PixCharge {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	log.Printf("[payment][gateway] mock create payment_id=%s amount=%.2f ref=%s desc=%q", id, amount, idempotencyKey, description)
	return interfaces.PixCharge{
		PaymentID:    id,
		PixCode:      fmt.Sprintf("MOCKPIX-%s-%.2f", id, amount),
		QRCodeBase64: "data:image/png;base64,",
		Status:       "pending",
	}
}

func parsePaymentID(paymentID string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPaymentReference, paymentID)
	}
	return id, nil
}

// ensureDataURI keeps the base64 QR image directly usable in an <img> tag.
func ensureDataURI(qrBase64 string) string {
	if qrBase64 == "" || strings.HasPrefix(qrBase64, "data:image") {
		return qrBase64
	}
	return "data:image/png;base64," + qrBase64
}

func payerEmailFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("MERCADOPAGO_PAYER_EMAIL")); v != "" {
		return v
	}
	return "comprador@exemplo.com"
}

func gatewayTimeoutFromEnv() time.Duration {
	v := strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_TIMEOUT"))
	if v == "" {
		return defaultGatewayTimeout
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[payment][gateway] invalid PAYMENT_GATEWAY_TIMEOUT=%q, using default", v)
		return defaultGatewayTimeout
	}
	return d
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
