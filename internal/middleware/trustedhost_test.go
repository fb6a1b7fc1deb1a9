package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/middleware"
)

func hostRouter(patterns []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(nopLogger{}, middleware.Config{})
	r := gin.New()
	r.GET("/x", mw.TrustedHosts(patterns), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, host string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Host = host
	r.ServeHTTP(w, req)
	return w.Code
}

func TestTrustedHosts(t *testing.T) {
	t.Run("Listed Host Passes", func(t *testing.T) {
		r := hostRouter([]string{"widget.braxjewelers.com"})
		if code := doGet(r, "widget.braxjewelers.com"); code != http.StatusOK {
			t.Errorf("listed host must pass, got %d", code)
		}
	})

	t.Run("Unlisted Host Rejected", func(t *testing.T) {
		r := hostRouter([]string{"widget.braxjewelers.com"})
		if code := doGet(r, "evil.example.com"); code != http.StatusBadRequest {
			t.Errorf("unlisted host must get 400, got %d", code)
		}
	})

	t.Run("Port And Case Are Ignored", func(t *testing.T) {
		r := hostRouter([]string{"widget.braxjewelers.com"})
		if code := doGet(r, "Widget.BraxJewelers.com:8443"); code != http.StatusOK {
			t.Errorf("port and case must not matter, got %d", code)
		}
	})

	t.Run("Wildcard Covers Subdomains", func(t *testing.T) {
		r := hostRouter([]string{"*.braxjewelers.com"})
		if code := doGet(r, "api.braxjewelers.com"); code != http.StatusOK {
			t.Errorf("subdomain must match wildcard, got %d", code)
		}
		if code := doGet(r, "braxjewelers.com.evil.net"); code != http.StatusBadRequest {
			t.Errorf("suffix spoof must be rejected, got %d", code)
		}
	})

	t.Run("Empty List Serves Any Host", func(t *testing.T) {
		r := hostRouter(nil)
		if code := doGet(r, "anything.example"); code != http.StatusOK {
			t.Errorf("empty pattern list must not filter, got %d", code)
		}
	})
}
