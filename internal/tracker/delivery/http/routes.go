package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.PATCH("/:id/toggle", h.ToggleTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	schedules := rg.Group("/schedules")
	{
		schedules.GET("", h.ListSchedules)
		schedules.GET("/weekly", h.WeeklySchedules)
		schedules.DELETE("/:id", h.DeleteSchedule)
	}

	notes := rg.Group("/notes")
	{
		notes.GET("", h.ListNotes)
		notes.DELETE("/:id", h.DeleteNote)
		notes.PATCH("/:id/items", h.CheckNoteItem)
	}

	rg.GET("/stats", h.Stats)
	rg.GET("/settings", h.GetSettings)
	rg.PUT("/settings", h.UpdateSettings)
}
