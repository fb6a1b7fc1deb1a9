package http

import (
	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/research"
	pkgLog "jewelry-concierge/pkg/log"
)

// Handler is the public interface for the research HTTP delivery layer.
type Handler interface {
	Search(c *gin.Context)
	Trends(c *gin.Context)
	Market(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc research.UseCase
}

// New creates a new HTTP handler for the research domain.
func New(l pkgLog.Logger, uc research.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
