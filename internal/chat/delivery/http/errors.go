package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/chat"
	"jewelry-concierge/pkg/llm"
	"jewelry-concierge/pkg/response"
)

// User-facing messages for upstream failures. Auth and rate-limit
// conditions get distinct copy; everything else stays generic, and raw
// provider errors never reach the client.
const (
	msgRateLimited = "The assistant is receiving too many requests right now. Please try again in a moment."
	msgAuthFailure = "The assistant is not configured correctly. Please contact the site owner."
)

// respondError translates domain and gateway errors into the HTTP
// taxonomy.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyInput), errors.Is(err, chat.ErrInputTooLong):
		response.Error(c, err)
	case errors.Is(err, chat.ErrSessionNotFound):
		response.NotFound(c, "session not found")
	case errors.Is(err, llm.ErrRateLimited):
		response.TooManyRequests(c, msgRateLimited)
	case errors.Is(err, llm.ErrAuth):
		c.JSON(http.StatusInternalServerError, response.Resp{
			ErrorCode: response.InternalServerErrorCode,
			Message:   msgAuthFailure,
		})
	default:
		response.InternalError(c)
	}
}
