package http

import (
	"github.com/gin-gonic/gin"

	"tugasku/internal/preview"
	"tugasku/pkg/response"
)

// Chat godoc
// @Summary     Parse a chat message
// @Description Classifies the message, extracts a task, schedule or note and opens a preview session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Empty or too long message"
// @Failure     422 {object} response.Resp "Message not understood"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.abort(c, "uc.Process", err)
		return
	}

	response.OK(c, h.newChatResp(out))
}

// Classify godoc
// @Summary     Dry-run a chat message
// @Description Shows the detected intent, the rule that fired and the extracted record without opening a preview.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Empty or too long message"
// @Failure     429 {object} response.Resp "Too many requests"
// @Router      /api/v1/chat/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Classify(c.Request.Context(), req.toClassifyInput())
	if err != nil {
		h.abort(c, "uc.Classify", err)
		return
	}

	response.OK(c, newClassifyResp(out))
}

// GetPreview godoc
// @Summary     Get a preview session
// @Tags        Preview
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} previewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/previews/{id} [GET]
func (h *handler) GetPreview(c *gin.Context) {
	sess, err := h.previews.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abort(c, "previews.Get", err)
		return
	}
	response.OK(c, newPreviewResp(sess))
}

// Confirm godoc
// @Summary     Confirm a preview
// @Description Non-empty form fields overwrite the parsed values; empty fields keep them.
// @Tags        Preview
// @Accept      json
// @Produce     json
// @Param       id   path string     true  "Session ID"
// @Param       body body confirmReq false "Edited form"
// @Success     200 {object} savedResp
// @Failure     400 {object} response.Resp "Invalid field"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Storage failure"
// @Router      /api/v1/previews/{id}/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConfirmReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.previews.Confirm(ctx, req.toInput())
	if err != nil {
		h.abort(c, "previews.Confirm", err)
		return
	}

	response.OK(c, h.newSavedResp(out))
}

// SaveAsNote godoc
// @Summary     Save a task or schedule preview as a note
// @Tags        Preview
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} savedResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Preview is already a note"
// @Router      /api/v1/previews/{id}/save-as-note [POST]
func (h *handler) SaveAsNote(c *gin.Context) {
	out, err := h.previews.SaveAsNote(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abort(c, "previews.SaveAsNote", err)
		return
	}
	response.OK(c, h.newSavedResp(out))
}

// Cancel godoc
// @Summary     Cancel a preview
// @Tags        Preview
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/previews/{id}/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	if err := h.previews.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.abort(c, "previews.Cancel", err)
		return
	}
	response.OK(c, gin.H{"state": preview.StateCancelled})
}

// Notification godoc
// @Summary     Current notification
// @Description Returns the most recent notification while it is still visible.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} notificationResp
// @Router      /api/v1/notification [GET]
func (h *handler) Notification(c *gin.Context) {
	response.OK(c, newNotificationResp(h.notices.Current()))
}
