package response

import "net/http"

// HTTPError is an error that carries its own status code.
// Delivery layers map domain errors onto it.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError creates an HTTPError. The error code in the body equals status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

var (
	ErrBadRequest    = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound      = NewHTTPError(http.StatusNotFound, "not found")
	ErrUnprocessable = NewHTTPError(http.StatusUnprocessableEntity, "unprocessable entity")
)
