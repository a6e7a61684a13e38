package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/JOJOMDS11/jojovendas/internal/adapter/http/dto/request"
	response "github.com/JOJOMDS11/jojovendas/internal/adapter/http/dto/response"
	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
	"github.com/JOJOMDS11/jojovendas/internal/usecase"
	"github.com/JOJOMDS11/jojovendas/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)

// OrderHandler handles storefront checkout requests.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder creates a pending order and returns the PIX presentment data.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] invalid payload err=%v", err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	packageType := payload.ResolvePackage()
	log.Printf("[order][handler] create start package=%s customer_email=%s", packageType, payload.ResolveCustomerEmail())

	order, charge, err := h.usecase.CreateOrder(
		c.Request.Context(),
		packageType,
		payload.ResolveCustomerName(),
		payload.ResolveCustomerEmail(),
	)
	if err != nil {
		log.Printf("[order][handler] create failed package=%s err=%v", packageType, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pkgInfo, _ := entities.PackageByType(order.PackageType)
	log.Printf("[order][handler] create success order_id=%s payment_id=%s", order.ID, order.PaymentID)
	c.JSON(http.StatusOK, response.FromCreatedOrder(order, pkgInfo, charge))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPackage):
		return pkg.NewDomainErrorSimple("INVALID_PACKAGE", "Pacote inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCustomerFields):
		return pkg.NewDomainErrorSimple("MISSING_FIELDS", "Nome e email são obrigatórios", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Erro ao gerar pagamento PIX", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro interno do servidor", err, http.StatusInternalServerError)
	}
}
