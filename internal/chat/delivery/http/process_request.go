package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processClearReq binds the clear-chat request body. An empty body is
// valid and means "clear everything".
func (h *handler) processClearReq(c *gin.Context) (clearReq, error) {
	var req clearReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, nil
}
