package http

import (
	"github.com/gin-gonic/gin"

	pkgLog "jewelry-concierge/pkg/log"
)

// Handler serves the retired first-generation endpoints. They return
// canned payloads and a deprecation notice; real functionality lives in
// the consultation and research endpoints.
type Handler interface {
	RecommendJewelry(c *gin.Context)
	ScheduleAppointment(c *gin.Context)
	SearchInventory(c *gin.Context)
}

type handler struct {
	l pkgLog.Logger
}

// New creates the legacy HTTP handler.
func New(l pkgLog.Logger) *handler {
	return &handler{l: l}
}
