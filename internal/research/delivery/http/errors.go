package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/research"
	"jewelry-concierge/pkg/response"
)

const (
	msgSearchDisabled = "Web search is not enabled on this deployment."
	msgSearchFailed   = "The search could not be completed. Please try again."
)

// respondError translates research domain errors into the HTTP
// taxonomy. Provider error details are logged by the caller, never
// echoed.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, research.ErrUnavailable):
		response.ServiceUnavailable(c, msgSearchDisabled)
	case errors.Is(err, research.ErrSearchFailed):
		c.JSON(http.StatusInternalServerError, response.Resp{
			ErrorCode: response.InternalServerErrorCode,
			Message:   msgSearchFailed,
		})
	default:
		response.InternalError(c)
	}
}
