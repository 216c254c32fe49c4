package http

import (
	"github.com/gin-gonic/gin"

	"tugasku/pkg/response"
)

// processChatReq binds the chat message body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.ErrBadRequest
	}
	return req, nil
}

// processConfirmReq binds the optional form body and the session ID.
// An empty body confirms the parsed values unchanged.
func (h *handler) processConfirmReq(c *gin.Context) (confirmReq, error) {
	var req confirmReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, response.ErrBadRequest
		}
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, response.ErrBadRequest
	}
	return req, nil
}
