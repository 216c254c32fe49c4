package http

import (
	"github.com/gin-gonic/gin"

	"tugasku/pkg/response"
)

// ListTasks godoc
// @Summary     List tasks
// @Description Tasks sorted by priority then deadline. Date filters exclude completed tasks.
// @Tags        Tasks
// @Produce     json
// @Param       filter query string false "all|new|active|done|today|tomorrow|week|overdue"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Invalid filter"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input := req.toInput()
	tasks, err := h.uc.ListTasks(ctx, input)
	if err != nil {
		h.abort(c, "uc.ListTasks", err)
		return
	}

	response.OK(c, newListTasksResp(input.Filter, tasks))
}

// ToggleTask godoc
// @Summary     Toggle task completion
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} model.Task
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) ToggleTask(c *gin.Context) {
	task, err := h.uc.ToggleTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abort(c, "uc.ToggleTask", err)
		return
	}
	response.OK(c, task)
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	if err := h.uc.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		h.abort(c, "uc.DeleteTask", err)
		return
	}
	response.OK(c, nil)
}

// ListSchedules godoc
// @Summary     List schedules
// @Tags        Schedules
// @Produce     json
// @Param       day query string false "Indonesian day name"
// @Success     200 {object} listSchedulesResp
// @Failure     400 {object} response.Resp "Invalid day"
// @Router      /api/v1/schedules [GET]
func (h *handler) ListSchedules(c *gin.Context) {
	schedules, err := h.uc.ListSchedules(c.Request.Context(), c.Query("day"))
	if err != nil {
		h.abort(c, "uc.ListSchedules", err)
		return
	}
	response.OK(c, listSchedulesResp{Schedules: schedules, Total: len(schedules)})
}

// WeeklySchedules godoc
// @Summary     Weekly schedule grid
// @Description Schedules grouped by the six school days, Monday to Saturday.
// @Tags        Schedules
// @Produce     json
// @Success     200 {array} daySchedulesResp
// @Router      /api/v1/schedules/weekly [GET]
func (h *handler) WeeklySchedules(c *gin.Context) {
	response.OK(c, newWeeklyResp(h.uc.WeeklySchedules(c.Request.Context())))
}

// DeleteSchedule godoc
// @Summary     Delete a schedule
// @Tags        Schedules
// @Param       id path string true "Schedule ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/schedules/{id} [DELETE]
func (h *handler) DeleteSchedule(c *gin.Context) {
	if err := h.uc.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		h.abort(c, "uc.DeleteSchedule", err)
		return
	}
	response.OK(c, nil)
}

// ListNotes godoc
// @Summary     List notes
// @Tags        Notes
// @Produce     json
// @Success     200 {object} listNotesResp
// @Router      /api/v1/notes [GET]
func (h *handler) ListNotes(c *gin.Context) {
	response.OK(c, newListNotesResp(h.uc.ListNotes(c.Request.Context())))
}

// DeleteNote godoc
// @Summary     Delete a note
// @Tags        Notes
// @Param       id path string true "Note ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id} [DELETE]
func (h *handler) DeleteNote(c *gin.Context) {
	if err := h.uc.DeleteNote(c.Request.Context(), c.Param("id")); err != nil {
		h.abort(c, "uc.DeleteNote", err)
		return
	}
	response.OK(c, nil)
}

// CheckNoteItem godoc
// @Summary     Check or uncheck checklist lines of a note
// @Description Every "- [ ]" line whose text contains item (case-insensitive) is updated.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path string       true "Note ID"
// @Param       body body checkItemReq true "Item text and state"
// @Success     200 {object} noteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/notes/{id}/items [PATCH]
func (h *handler) CheckNoteItem(c *gin.Context) {
	req, err := h.processCheckItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	note, err := h.uc.CheckNoteItem(c.Request.Context(), c.Param("id"), req.Item, req.Checked)
	if err != nil {
		h.abort(c, "uc.CheckNoteItem", err)
		return
	}
	response.OK(c, newNoteResp(note))
}

// Stats godoc
// @Summary     Task and schedule statistics
// @Tags        Stats
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	response.OK(c, newStatsResp(h.uc.Stats(c.Request.Context())))
}

// GetSettings godoc
// @Summary     Get settings
// @Tags        Settings
// @Produce     json
// @Success     200 {object} model.Settings
// @Router      /api/v1/settings [GET]
func (h *handler) GetSettings(c *gin.Context) {
	response.OK(c, h.uc.Settings(c.Request.Context()))
}

// UpdateSettings godoc
// @Summary     Update settings
// @Tags        Settings
// @Accept      json
// @Produce     json
// @Param       body body settingsReq true "Settings"
// @Success     200 {object} model.Settings
// @Failure     400 {object} response.Resp "Invalid theme"
// @Router      /api/v1/settings [PUT]
func (h *handler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSettingsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.UpdateSettings(ctx, req.toSettings())
	if err != nil {
		h.abort(c, "uc.UpdateSettings", err)
		return
	}
	response.OK(c, s)
}
