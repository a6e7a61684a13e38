package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JOJOMDS11/jojovendas/internal/adapter/http/handlers/mocks"
	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
	"github.com/JOJOMDS11/jojovendas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CheckPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewPaymentHandler(orders, nil)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.CheckPayment)

		orders.EXPECT().GetByPaymentID(gomock.Any(), "999").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PAYMENT_NOT_FOUND" {
			t.Fatalf("expected PAYMENT_NOT_FOUND, got %v", body["code"])
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewPaymentHandler(orders, nil)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.CheckPayment)

		orders.EXPECT().GetByPaymentID(gomock.Any(), "999").Return(entities.Order{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("pending order has null code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewPaymentHandler(orders, nil)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.CheckPayment)

		orders.EXPECT().GetByPaymentID(gomock.Any(), "999").Return(entities.Order{
			ID:                "ord-1",
			PaymentID:         "999",
			Status:            entities.OrderStatusPending,
			PriceBRL:          5.00,
			PurpleCoinsAmount: 100,
			CreatedAt:         time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		payment, ok := body["payment"].(map[string]any)
		if !ok {
			t.Fatalf("missing payment body: %v", body)
		}
		if payment["status"] != "pending" {
			t.Fatalf("expected pending, got %v", payment["status"])
		}
		code, present := payment["purple_coin_code"]
		if !present || code != nil {
			t.Fatalf("expected explicit null purple_coin_code, got %v (present=%v)", code, present)
		}
	})

	t.Run("paid order carries code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mocks.NewMockIOrderUseCase(ctrl)
		h := NewPaymentHandler(orders, nil)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.CheckPayment)

		paidAt := time.Now().UTC()
		orders.EXPECT().GetByPaymentID(gomock.Any(), "999").Return(entities.Order{
			ID:             "ord-1",
			PaymentID:      "999",
			Status:         entities.OrderStatusPaid,
			PurpleCoinCode: "PC100_ABCD1234",
			PaidAt:         &paidAt,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		payment := body["payment"].(map[string]any)
		if payment["purple_coin_code"] != "PC100_ABCD1234" {
			t.Fatalf("expected code, got %v", payment["purple_coin_code"])
		}
	})
}

func TestPaymentHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.Webhook)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.Webhook)

		fulfillment.EXPECT().ReconcileFromGateway(gomock.Any(), "").Return(usecase.ReconcileResult{}, usecase.ErrInvalidPaymentID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "MISSING_PAYMENT_ID" {
			t.Fatalf("expected MISSING_PAYMENT_ID, got %v", body["code"])
		}
	})

	t.Run("status lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.Webhook)

		fulfillment.EXPECT().ReconcileFromGateway(gomock.Any(), "999").Return(usecase.ReconcileResult{}, usecase.ErrGatewayStatusLookup)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"payment_id":"999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PAYMENT_STATUS_LOOKUP_FAILED" {
			t.Fatalf("expected PAYMENT_STATUS_LOOKUP_FAILED, got %v", body["code"])
		}
	})

	t.Run("paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.Webhook)

		fulfillment.EXPECT().
			ReconcileFromGateway(gomock.Any(), "999").
			Return(usecase.ReconcileResult{Outcome: usecase.ReconcileOutcomePaid, PurpleCoinCode: "PC100_ABCD1234"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"payment_id":"999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true || body["code"] != "PC100_ABCD1234" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("not approved is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.Webhook)

		fulfillment.EXPECT().
			ReconcileFromGateway(gomock.Any(), "999").
			Return(usecase.ReconcileResult{Outcome: usecase.ReconcileOutcomeNotApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"payment_id":"999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("expected success=true, got %v", body)
		}
		if _, present := body["code"]; present {
			t.Fatalf("expected no code field, got %v", body)
		}
	})

	t.Run("already processed is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/payments/webhook", h.Webhook)

		fulfillment.EXPECT().
			ReconcileFromGateway(gomock.Any(), "999").
			Return(usecase.ReconcileResult{Outcome: usecase.ReconcileOutcomeAlreadyProcessed}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(`{"payment_id":"999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_SimulatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing payment id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/payments/simulate", h.SimulatePayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/simulate", bytes.NewBufferString(`{"payment_id":" "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forces approved status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/payments/simulate", h.SimulatePayment)

		fulfillment.EXPECT().
			Reconcile(gomock.Any(), "999", "approved").
			Return(usecase.ReconcileResult{Outcome: usecase.ReconcileOutcomePaid, PurpleCoinCode: "PC500_ZZZZ9999"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/simulate", bytes.NewBufferString(`{"payment_id":"999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PC500_ZZZZ9999" {
			t.Fatalf("expected minted code, got %v", body)
		}
	})

	t.Run("code generation exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/payments/simulate", h.SimulatePayment)

		fulfillment.EXPECT().
			Reconcile(gomock.Any(), "999", "approved").
			Return(usecase.ReconcileResult{}, usecase.ErrCodeGenerationExhausted)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/simulate", bytes.NewBufferString(`{"payment_id":"999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_SweepExpiredOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sweep failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/orders/sweep", h.SweepExpiredOrders)

		fulfillment.EXPECT().ExpireStale(gomock.Any(), usecase.StaleOrderAge).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/sweep", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("empty sweep returns empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/orders/sweep", h.SweepExpiredOrders)

		fulfillment.EXPECT().ExpireStale(gomock.Any(), usecase.StaleOrderAge).Return(nil, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/sweep", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		expired, ok := body["expired"].([]any)
		if !ok {
			t.Fatalf("expected expired array, got %v", body["expired"])
		}
		if len(expired) != 0 {
			t.Fatalf("expected empty array, got %v", expired)
		}
	})

	t.Run("reports expired payment ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		fulfillment := mocks.NewMockIFulfillmentUseCase(ctrl)
		h := NewPaymentHandler(nil, fulfillment)

		r := gin.New()
		r.POST("/v1/orders/sweep", h.SweepExpiredOrders)

		fulfillment.EXPECT().ExpireStale(gomock.Any(), usecase.StaleOrderAge).Return([]string{"111", "222"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/sweep", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		expired, _ := body["expired"].([]any)
		if len(expired) != 2 || expired[0] != "111" {
			t.Fatalf("unexpected expired list: %v", body["expired"])
		}
	})
}
