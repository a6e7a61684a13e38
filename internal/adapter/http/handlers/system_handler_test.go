package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSystemHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewSystemHandler()

	r := gin.New()
	r.GET("/v1/health", h.Health)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected ok, got %v", body["status"])
	}
	if body["service"] != serviceName {
		t.Fatalf("expected %s, got %v", serviceName, body["service"])
	}
}

func TestSystemHandler_SystemInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewSystemHandler()

	t.Run("default environment", func(t *testing.T) {
		t.Setenv("APP_ENV", "")

		r := gin.New()
		r.GET("/v1/system/info", h.SystemInfo)

		req := httptest.NewRequest(http.MethodGet, "/v1/system/info", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		system, ok := body["system"].(map[string]any)
		if !ok {
			t.Fatalf("missing system body: %v", body)
		}
		if system["environment"] != "development" {
			t.Fatalf("expected development, got %v", system["environment"])
		}
		packages, ok := system["packages"].([]any)
		if !ok || len(packages) != 4 {
			t.Fatalf("expected 4 packages, got %v", system["packages"])
		}
		first, _ := packages[0].(map[string]any)
		if first["type"] != "starter" {
			t.Fatalf("expected starter first, got %v", first["type"])
		}
	})

	t.Run("environment from env var", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		r := gin.New()
		r.GET("/v1/system/info", h.SystemInfo)

		req := httptest.NewRequest(http.MethodGet, "/v1/system/info", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		system, _ := body["system"].(map[string]any)
		if system["environment"] != "production" {
			t.Fatalf("expected production, got %v", system["environment"])
		}
	})
}
