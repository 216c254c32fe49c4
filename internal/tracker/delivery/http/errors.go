package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tugasku/internal/tracker"
	"tugasku/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors.
// It returns nil for errors that should be reported as internal.
func (h *handler) mapError(err error) *response.HTTPError {
	switch {
	case errors.Is(err, tracker.ErrNotFound), errors.Is(err, tracker.ErrItemNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, tracker.ErrInvalidFilter),
		errors.Is(err, tracker.ErrInvalidDay),
		errors.Is(err, tracker.ErrInvalidSettings),
		errors.Is(err, tracker.ErrInvalidStatus):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
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
