package http

import (
	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. Chat and clear carry distinct
// per-address rate limits.
func RegisterRoutes(r *gin.Engine, h Handler, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(middleware.ScopeChat), h.Chat)
	r.POST("/clear_chat", mw.RateLimit(middleware.ScopeClear), h.ClearChat)
}
