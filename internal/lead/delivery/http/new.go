package http

import (
	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/lead"
	pkgLog "jewelry-concierge/pkg/log"
)

// Handler is the public interface for the lead HTTP delivery layer.
type Handler interface {
	CreateContact(c *gin.Context)
	SearchContacts(c *gin.Context)
	CreateOpportunity(c *gin.Context)
	SearchOpportunities(c *gin.Context)
	ScheduleConsultation(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc lead.UseCase
}

// New creates a new HTTP handler for the lead domain.
func New(l pkgLog.Logger, uc lead.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
