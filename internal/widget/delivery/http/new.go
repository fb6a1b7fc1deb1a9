package http

import (
	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/widget"
	pkgLog "jewelry-concierge/pkg/log"
)

// Handler is the public interface for the widget delivery layer.
type Handler interface {
	Widget(c *gin.Context)
	Root(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	renderer *widget.Renderer
}

// New creates the widget HTTP handler.
func New(l pkgLog.Logger, renderer *widget.Renderer) *handler {
	return &handler{
		l:        l,
		renderer: renderer,
	}
}
