package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/lead"
	"jewelry-concierge/pkg/response"
)

const msgCRMDisabled = "The CRM integration is not enabled on this deployment."

// respondError translates lead domain errors into the HTTP taxonomy.
// CRM rejection details are logged by the caller and never echoed.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lead.ErrUnavailable):
		response.ServiceUnavailable(c, msgCRMDisabled)
	default:
		response.InternalError(c)
	}
}
