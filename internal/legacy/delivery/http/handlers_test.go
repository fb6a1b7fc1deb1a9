package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	legacyHTTP "jewelry-concierge/internal/legacy/delivery/http"
	"jewelry-concierge/pkg/response"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Info(ctx context.Context, arg ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Error(ctx context.Context, arg ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	legacyHTTP.RegisterRoutes(r, legacyHTTP.New(nopLogger{}))
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("missing data: %s", w.Body.String())
	}
	return data
}

func TestRecommendJewelry(t *testing.T) {
	r := newRouter()

	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(map[string]any{"occasion": "engagement"})
	req := httptest.NewRequest(http.MethodPost, "/jewelry/recommend", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("Deprecation") != "true" {
		t.Errorf("missing deprecation header")
	}

	data := decode(t, w)
	recs := data["recommendations"].([]interface{})
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	first := recs[0].(map[string]interface{})
	if first["id"] != "BR001" || first["price"] != "$2,500 - $15,000" {
		t.Errorf("unexpected first recommendation: %v", first)
	}
}

func TestScheduleAppointment(t *testing.T) {
	r := newRouter()

	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(map[string]any{
		"customer_name":     "Jane Doe",
		"email":             "jane@example.com",
		"phone":             "+19495551234",
		"preferred_date":    "2026-09-15",
		"consultation_type": "appraisal",
	})
	req := httptest.NewRequest(http.MethodPost, "/appointment/schedule", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	data := decode(t, w)
	if data["appointment_id"] != "BRAX-JAN-001" {
		t.Errorf("unexpected appointment id: %v", data["appointment_id"])
	}
	if data["status"] != "pending_confirmation" {
		t.Errorf("unexpected status: %v", data["status"])
	}
}

func TestSearchInventory(t *testing.T) {
	t.Run("Canned Result", func(t *testing.T) {
		r := newRouter()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/inventory/search?query=bracelet&budget_min=500", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		data := decode(t, w)
		if data["budget_range"] != "$500 - $No limit" {
			t.Errorf("unexpected budget range: %v", data["budget_range"])
		}
		results := data["results"].([]interface{})
		item := results[0].(map[string]interface{})
		if item["id"] != "BR101" || item["name"] != "Diamond Bracelet Collection" {
			t.Errorf("unexpected item: %v", item)
		}
	})

	t.Run("Requires Query", func(t *testing.T) {
		r := newRouter()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/inventory/search", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
