package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the widget page and the root redirect.
func RegisterRoutes(r *gin.Engine, h Handler) {
	r.GET("/widget", h.Widget)
	r.GET("/", h.Root)
}
