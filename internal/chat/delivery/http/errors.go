package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tugasku/internal/chat"
	"tugasku/internal/parser"
	"tugasku/internal/preview"
	"tugasku/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
// It returns nil for errors that should be reported as internal.
func (h *handler) mapError(err error) *response.HTTPError {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrMessageTooLong):
		return response.NewHTTPError(http.StatusBadRequest, chat.ReplyError(err))
	case errors.Is(err, parser.ErrUnclassifiedIntent),
		errors.Is(err, parser.ErrMissingRequiredField):
		return response.NewHTTPError(http.StatusUnprocessableEntity, chat.ReplyError(err))
	case errors.Is(err, preview.ErrSessionNotFound):
		return response.NewHTTPError(http.StatusNotFound, "preview session not found")
	case errors.Is(err, preview.ErrInvalidField):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, preview.ErrSaveAsNoteNotAllowed):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	}
	return nil
}

func (h *handler) abort(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	if httpErr := h.mapError(err); httpErr != nil {
		h.l.Warnf(ctx, "%s: %v", op, err)
		response.Error(c, httpErr, nil)
		return
	}
	h.l.Errorf(ctx, "%s: %v", op, err)
	response.InternalError(c, err)
}
