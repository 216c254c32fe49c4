package http

import (
	"github.com/gin-gonic/gin"

	"tugasku/internal/chat"
	"tugasku/internal/preview"
	"tugasku/pkg/log"
	"tugasku/pkg/toast"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Classify(c *gin.Context)
	GetPreview(c *gin.Context)
	Confirm(c *gin.Context)
	SaveAsNote(c *gin.Context)
	Cancel(c *gin.Context)
	Notification(c *gin.Context)
}

// noticeBoard exposes the currently visible notification.
type noticeBoard interface {
	Current() (toast.Message, bool)
}

type handler struct {
	l        log.Logger
	uc       chat.UseCase
	previews preview.UseCase
	notices  noticeBoard
}

// New creates a new HTTP handler for the chat and preview endpoints.
func New(l log.Logger, uc chat.UseCase, previews preview.UseCase, notices noticeBoard) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		previews: previews,
		notices:  notices,
	}
}
