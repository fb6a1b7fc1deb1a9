package http

import (
	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/middleware"
)

// RegisterRoutes maps the research endpoints under the search rate
// limit.
func RegisterRoutes(r *gin.Engine, h Handler, mw middleware.Middleware) {
	limit := mw.RateLimit(middleware.ScopeSearch)

	r.POST("/search", limit, h.Search)
	r.GET("/search/trends", limit, h.Trends)
	r.GET("/search/market", limit, h.Market)
}
