package middleware

import (
	"github.com/gin-gonic/gin"

	"jewelry-concierge/pkg/response"
)

// Recovery converts any panic into a generic 500 carrying only an opaque
// trace id. Internals never reach the response body.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				traceID := response.InternalError(c)
				m.l.Errorf(c.Request.Context(), "panic recovered: trace=%s err=%v", traceID, r)
				c.Abort()
			}
		}()
		c.Next()
	}
}
