package http

import (
	"github.com/gin-gonic/gin"

	"tugasku/internal/tracker"
	"tugasku/pkg/log"
)

// Handler is the public interface for the tracker HTTP delivery layer.
type Handler interface {
	ListTasks(c *gin.Context)
	ToggleTask(c *gin.Context)
	DeleteTask(c *gin.Context)
	ListSchedules(c *gin.Context)
	WeeklySchedules(c *gin.Context)
	DeleteSchedule(c *gin.Context)
	ListNotes(c *gin.Context)
	DeleteNote(c *gin.Context)
	CheckNoteItem(c *gin.Context)
	Stats(c *gin.Context)
	GetSettings(c *gin.Context)
	UpdateSettings(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc tracker.UseCase
}

// New creates a new HTTP handler for the tracker collections.
func New(l log.Logger, uc tracker.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
