package middleware

import (
	"errors"
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"jewelry-concierge/pkg/response"
)

var errInvalidHost = errors.New("invalid host header")

// TrustedHosts rejects requests whose Host header matches none of the
// configured patterns. A pattern is an exact hostname or a "*.domain"
// wildcard covering its subdomains. An empty pattern list accepts every
// host.
func (m Middleware) TrustedHosts(patterns []string) gin.HandlerFunc {
	if len(patterns) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	normalized := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			normalized = append(normalized, p)
		}
	}

	return func(c *gin.Context) {
		host := hostOnly(c.Request.Host)
		if !hostAllowed(host, normalized) {
			m.l.Warnf(c.Request.Context(), "untrusted host rejected: %q", c.Request.Host)
			response.Error(c, errInvalidHost)
			c.Abort()
			return
		}
		c.Next()
	}
}

func hostAllowed(host string, patterns []string) bool {
	for _, p := range patterns {
		if p == "*" || p == host {
			return true
		}
		if suffix, ok := strings.CutPrefix(p, "*."); ok {
			if host == suffix || strings.HasSuffix(host, "."+suffix) {
				return true
			}
		}
	}
	return false
}

func hostOnly(hostport string) string {
	if host, _, err := net.SplitHostPort(hostport); err == nil {
		return strings.ToLower(host)
	}
	return strings.ToLower(hostport)
}
