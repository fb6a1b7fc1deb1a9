package http

import (
	"github.com/gin-gonic/gin"

	"jewelry-concierge/internal/chat"
	"jewelry-concierge/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Forwards the user message with conversation history to the model and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User input and optional session id"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Rate limited"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// ClearChat godoc
// @Summary     Clear chat history
// @Description Clears one session's history. Omitting session_id clears every session and requires the admin token.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body clearReq false "Session to clear"
// @Success     200 {object} clearResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Unknown session"
// @Router      /clear_chat [POST]
func (h *handler) ClearChat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClearReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := chat.ClearInput{SessionID: req.SessionID}
	if req.SessionID == "" {
		// Global clear wipes every visitor's history; it is an
		// administrative operation, not something any widget client
		// may trigger.
		if h.adminToken == "" || c.GetHeader("X-Admin-Token") != h.adminToken {
			response.Unauthorized(c)
			return
		}
		input.All = true
	}

	output, err := h.uc.Clear(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newClearResp(output))
}
