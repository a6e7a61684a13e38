package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JOJOMDS11/jojovendas/internal/adapter/http/handlers/mocks"
	"github.com/JOJOMDS11/jojovendas/internal/domain/entities"
	"github.com/JOJOMDS11/jojovendas/internal/usecase"
	"github.com/JOJOMDS11/jojovendas/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid package", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().
			CreateOrder(gomock.Any(), "mega", "Jojo", "jojo@exemplo.com").
			Return(entities.Order{}, interfaces.PixCharge{}, usecase.ErrInvalidPackage)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"package":"mega","customer_name":"Jojo","customer_email":"jojo@exemplo.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["code"] != "INVALID_PACKAGE" {
			t.Fatalf("expected INVALID_PACKAGE, got %v", body["code"])
		}
		if body["success"] != false {
			t.Fatalf("expected success=false, got %v", body["success"])
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().
			CreateOrder(gomock.Any(), "starter", "", "").
			Return(entities.Order{}, interfaces.PixCharge{}, usecase.ErrMissingCustomerFields)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"package":"starter"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "MISSING_FIELDS" {
			t.Fatalf("expected MISSING_FIELDS, got %v", body["code"])
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().
			CreateOrder(gomock.Any(), "starter", "Jojo", "jojo@exemplo.com").
			Return(entities.Order{}, interfaces.PixCharge{}, usecase.ErrPaymentGateway)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"package":"starter","customer_name":"Jojo","customer_email":"jojo@exemplo.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PAYMENT_GATEWAY_ERROR" {
			t.Fatalf("expected PAYMENT_GATEWAY_ERROR, got %v", body["code"])
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Order{}, interfaces.PixCharge{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"package":"starter","customer_name":"Jojo","customer_email":"jojo@exemplo.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		order := entities.Order{
			ID:                "ord-1",
			PackageType:       "starter",
			CustomerName:      "Jojo",
			CustomerEmail:     "jojo@exemplo.com",
			PurpleCoinsAmount: 100,
			PriceBRL:          5.00,
			PaymentID:         "999",
			PixCode:           "00020126pix",
			Status:            entities.OrderStatusPending,
		}
		charge := interfaces.PixCharge{
			PaymentID:    "999",
			PixCode:      "00020126pix",
			QRCodeBase64: "data:image/png;base64,abc",
			Status:       "pending",
		}
		uc.EXPECT().
			CreateOrder(gomock.Any(), "starter", "Jojo", "jojo@exemplo.com").
			Return(order, charge, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"package":"starter","customer_name":"Jojo","customer_email":"jojo@exemplo.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["success"] != true {
			t.Fatalf("expected success=true, got %v", body["success"])
		}
		orderBody, ok := body["order"].(map[string]any)
		if !ok {
			t.Fatalf("missing order body: %v", body)
		}
		if orderBody["id"] != "ord-1" {
			t.Fatalf("expected order id ord-1, got %v", orderBody["id"])
		}
		paymentBody, ok := orderBody["payment"].(map[string]any)
		if !ok {
			t.Fatalf("missing payment body: %v", orderBody)
		}
		if paymentBody["id"] != "999" || paymentBody["pix_code"] != "00020126pix" {
			t.Fatalf("unexpected payment body: %v", paymentBody)
		}
	})
}
