package http

import (
	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/chat"
	pkgLog "jewelry-concierge/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	ClearChat(c *gin.Context)
}

type handler struct {
	l          pkgLog.Logger
	uc         chat.UseCase
	adminToken string
}

// New creates a new HTTP handler for the chat domain. adminToken guards
// the global clear operation; when empty, global clears are refused.
func New(l pkgLog.Logger, uc chat.UseCase, adminToken string) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		adminToken: adminToken,
	}
}
