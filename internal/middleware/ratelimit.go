package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"jewelry-concierge/pkg/response"
)

const msgRateLimited = "Too many requests. Please slow down and try again."

// RateLimit enforces the per-address budget of the given scope.
func (m Middleware) RateLimit(scope string) gin.HandlerFunc {
	limiter, ok := m.limiters[scope]
	if !ok {
		// Unknown scope: fail open rather than blocking traffic.
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		addr := extractIP(c.Request)
		if !limiter.Allow(addr) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded: scope=%s addr=%s", scope, addr)
			response.TooManyRequests(c, msgRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractIP extracts the client address, honoring proxy headers.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}

// rateLimiter keeps one token bucket per source with auto-cleanup of
// idle sources.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	// Burst carries the whole per-minute budget so a client that sends
	// its documented quota at once is not rejected early.
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max unique sources
			nil,           // no eviction callback
			time.Minute*5, // idle TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: requestsPerMin,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
