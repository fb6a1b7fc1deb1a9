package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/middleware"
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

func newRouter(mw middleware.Middleware, scope string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", mw.RateLimit(scope), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doPost(r *gin.Engine, addr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.RemoteAddr = addr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("Full Budget Passes Then 429", func(t *testing.T) {
		mw := middleware.New(nopLogger{}, middleware.Config{ChatPerMin: 5})
		r := newRouter(mw, middleware.ScopeChat)

		// The whole per-minute budget must be usable in one burst.
		for i := 0; i < 5; i++ {
			if code := doPost(r, "10.0.0.1:1234"); code != http.StatusOK {
				t.Fatalf("request %d within budget must pass, got %d", i+1, code)
			}
		}
		if code := doPost(r, "10.0.0.1:1234"); code != http.StatusTooManyRequests {
			t.Errorf("budget exceeded, expected 429, got %d", code)
		}
	})

	t.Run("Addresses Are Independent", func(t *testing.T) {
		mw := middleware.New(nopLogger{}, middleware.Config{ChatPerMin: 1})
		r := newRouter(mw, middleware.ScopeChat)

		doPost(r, "10.0.0.1:1234")
		if code := doPost(r, "10.0.0.2:1234"); code != http.StatusOK {
			t.Errorf("other address must not be limited, got %d", code)
		}
	})

	t.Run("Forwarded Header Identifies Client", func(t *testing.T) {
		mw := middleware.New(nopLogger{}, middleware.Config{ChatPerMin: 1})
		r := newRouter(mw, middleware.ScopeChat)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		r.ServeHTTP(w, req)

		w2 := httptest.NewRecorder()
		req2 := httptest.NewRequest(http.MethodPost, "/x", nil)
		req2.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.2")
		r.ServeHTTP(w2, req2)

		if w2.Code != http.StatusTooManyRequests {
			t.Errorf("same forwarded client must share a bucket, got %d", w2.Code)
		}
	})

	t.Run("Unknown Scope Fails Open", func(t *testing.T) {
		mw := middleware.New(nopLogger{}, middleware.Config{})
		r := newRouter(mw, "bogus")

		for i := 0; i < 5; i++ {
			if code := doPost(r, "10.0.0.3:1234"); code != http.StatusOK {
				t.Fatalf("unknown scope must not limit, got %d", code)
			}
		}
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(nopLogger{}, middleware.Config{})

	r := gin.New()
	r.Use(mw.Recovery())
	r.GET("/boom", func(c *gin.Context) {
		panic("secret internal detail")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if body := w.Body.String(); strings.Contains(body, "secret") {
		t.Errorf("panic details leaked into response: %s", body)
	}
}
