package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tugasku/pkg/response"
)

// processListTasksReq binds the task filter query.
func (h *handler) processListTasksReq(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, response.ErrBadRequest
	}
	return req, nil
}

// processSettingsReq binds the settings body.
func (h *handler) processSettingsReq(c *gin.Context) (settingsReq, error) {
	var req settingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.ErrBadRequest
	}
	return req, nil
}

// processCheckItemReq binds the checklist item body. The item text is required.
func (h *handler) processCheckItemReq(c *gin.Context) (checkItemReq, error) {
	var req checkItemReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Item) == "" {
		return req, response.ErrBadRequest
	}
	return req, nil
}
