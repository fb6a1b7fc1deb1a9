package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelry-concierge/pkg/response"
)

// Widget godoc
// @Summary     Embeddable chat widget
// @Description Serves the self-contained widget page wired to this deployment's chat endpoint.
// @Tags        Widget
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      /widget [GET]
func (h *handler) Widget(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	if err := h.renderer.Render(c.Writer, chatURL(c.Request)); err != nil {
		h.l.Errorf(c.Request.Context(), "widget render: %v", err)
		response.InternalError(c)
	}
}

// Root godoc
// @Summary     Redirect to the widget
// @Tags        Widget
// @Success     302 {string} string "Redirect"
// @Router      / [GET]
func (h *handler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/widget")
}

// chatURL rebuilds the externally visible chat endpoint from the
// request, honoring the proxy protocol header.
func chatURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return fmt.Sprintf("%s://%s/chat", scheme, r.Host)
}
