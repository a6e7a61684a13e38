package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/JOJOMDS11/jojovendas/internal/adapter/http/dto/request"
	response "github.com/JOJOMDS11/jojovendas/internal/adapter/http/dto/response"
	"github.com/JOJOMDS11/jojovendas/internal/usecase"
	"github.com/JOJOMDS11/jojovendas/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingPaymentID = pkg.NewDomainErrorSimple("MISSING_PAYMENT_ID", "payment_id é obrigatório", http.StatusBadRequest)

// PaymentHandler handles payment polling, webhook reconciliation, test-only
// simulation and the on-demand expiry sweep.

type PaymentHandler struct {
	orders      usecase.IOrderUseCase
	fulfillment usecase.IFulfillmentUseCase
}

func NewPaymentHandler(orders usecase.IOrderUseCase, fulfillment usecase.IFulfillmentUseCase) *PaymentHandler {
	return &PaymentHandler{orders: orders, fulfillment: fulfillment}
}

// CheckPayment returns the current order state for a payment reference.
func (h *PaymentHandler) CheckPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	order, err := h.orders.GetByPaymentID(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] check failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPaymentStatus(order))
}

// Webhook reconciles a payment notification. The real status is fetched
// from the gateway; not-approved and already-processed outcomes are 200s so
// the processor stops redelivering.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var payload request.PaymentNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] webhook invalid payload err=%v", err)
		c.JSON(errMissingPaymentID.HTTPStatus, errMissingPaymentID.ToHTTPError())
		return
	}

	paymentID := payload.ResolvePaymentID()
	log.Printf("[payment][handler] webhook received payment_id=%s", paymentID)

	result, err := h.fulfillment.ReconcileFromGateway(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] webhook failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, reconcileResponse(result))
}

// SimulatePayment injects an approved status without touching the gateway.
// Test-only endpoint kept from the original storefront.
func (h *PaymentHandler) SimulatePayment(c *gin.Context) {
	var payload request.PaymentNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingPaymentID.HTTPStatus, errMissingPaymentID.ToHTTPError())
		return
	}

	paymentID := payload.ResolvePaymentID()
	if paymentID == "" {
		c.JSON(errMissingPaymentID.HTTPStatus, errMissingPaymentID.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] simulate payment_id=%s", paymentID)

	result, err := h.fulfillment.Reconcile(c.Request.Context(), paymentID, "approved")
	if err != nil {
		log.Printf("[payment][handler] simulate failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, reconcileResponse(result))
}

// SweepExpiredOrders runs the expiry batch on demand (external cron).
func (h *PaymentHandler) SweepExpiredOrders(c *gin.Context) {
	expired, err := h.fulfillment.ExpireStale(c.Request.Context(), usecase.StaleOrderAge)
	if err != nil {
		log.Printf("[payment][handler] sweep failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSweep(expired))
}

func reconcileResponse(result usecase.ReconcileResult) response.ReconcileResponse {
	switch result.Outcome {
	case usecase.ReconcileOutcomePaid:
		return response.ReconcileResponse{Success: true, Message: "Pagamento processado", Code: result.PurpleCoinCode}
	case usecase.ReconcileOutcomeNotApproved:
		return response.ReconcileResponse{Success: true, Message: "Pagamento não aprovado"}
	default:
		return response.ReconcileResponse{Success: true, Message: "Pedido não encontrado ou já processado"}
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Pagamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return errMissingPaymentID
	case errors.Is(err, usecase.ErrGatewayStatusLookup):
		return pkg.NewDomainError("PAYMENT_STATUS_LOOKUP_FAILED", "Erro ao consultar status do pagamento", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrCodeGenerationExhausted):
		return pkg.NewDomainError("CODE_GENERATION_EXHAUSTED", "Erro interno", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno", err, http.StatusInternalServerError)
	}
}
