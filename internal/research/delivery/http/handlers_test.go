package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/research"
	researchHTTP "jewelry-concierge/internal/research/delivery/http"
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

type stubUseCase struct {
	out research.SearchOutput
	err error

	lastInput    research.SearchInput
	lastCategory string
	lastQuery    string
}

func (s *stubUseCase) Search(ctx context.Context, input research.SearchInput) (research.SearchOutput, error) {
	s.lastInput = input
	return s.out, s.err
}

func (s *stubUseCase) Trends(ctx context.Context, category string) (research.SearchOutput, error) {
	s.lastCategory = category
	return s.out, s.err
}

func (s *stubUseCase) Market(ctx context.Context, query string) (research.SearchOutput, error) {
	s.lastQuery = query
	return s.out, s.err
}

func newRouter(uc research.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := researchHTTP.New(nopLogger{}, uc)
	r.POST("/search", h.Search)
	r.GET("/search/trends", h.Trends)
	r.GET("/search/market", h.Market)
	return r
}

func TestSearchHandler(t *testing.T) {
	t.Run("Routes Search Type", func(t *testing.T) {
		uc := &stubUseCase{out: research.SearchOutput{Query: "q", Formatted: "text"}}
		r := newRouter(uc)

		var buf bytes.Buffer
		json.NewEncoder(&buf).Encode(map[string]string{"query": "engagement rings", "search_type": "trends"})
		req := httptest.NewRequest(http.MethodPost, "/search", &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastInput.SearchType != "trends" || uc.lastInput.Query != "engagement rings" {
			t.Errorf("input not forwarded: %+v", uc.lastInput)
		}
	})

	t.Run("Unknown Search Type Is 400", func(t *testing.T) {
		r := newRouter(&stubUseCase{})

		var buf bytes.Buffer
		json.NewEncoder(&buf).Encode(map[string]string{"query": "x", "search_type": "astrology"})
		req := httptest.NewRequest(http.MethodPost, "/search", &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Disabled Search Is 503", func(t *testing.T) {
		r := newRouter(&stubUseCase{err: research.ErrUnavailable})

		var buf bytes.Buffer
		json.NewEncoder(&buf).Encode(map[string]string{"query": "x"})
		req := httptest.NewRequest(http.MethodPost, "/search", &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})

	t.Run("Provider Failure Hides Detail", func(t *testing.T) {
		r := newRouter(&stubUseCase{err: research.ErrSearchFailed})

		var buf bytes.Buffer
		json.NewEncoder(&buf).Encode(map[string]string{"query": "x"})
		req := httptest.NewRequest(http.MethodPost, "/search", &buf)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message == research.ErrSearchFailed.Error() {
			t.Errorf("raw provider error must not be echoed")
		}
	})
}

func TestTrendsHandler(t *testing.T) {
	uc := &stubUseCase{out: research.SearchOutput{Query: "engagement rings"}}
	r := newRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search/trends?category=necklaces", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.lastCategory != "necklaces" {
		t.Errorf("category not forwarded: %q", uc.lastCategory)
	}
}

func TestMarketHandler(t *testing.T) {
	t.Run("Requires Query", func(t *testing.T) {
		r := newRouter(&stubUseCase{})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search/market", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Forwards Query", func(t *testing.T) {
		uc := &stubUseCase{out: research.SearchOutput{}}
		r := newRouter(uc)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search/market?query=diamond+prices", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastQuery != "diamond prices" {
			t.Errorf("query not forwarded: %q", uc.lastQuery)
		}
	})
}
