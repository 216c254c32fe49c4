package preview

import "errors"

var (
	ErrSessionNotFound      = errors.New("preview session not found")
	ErrInvalidField         = errors.New("invalid form field")
	ErrSaveAsNoteNotAllowed = errors.New("only tasks and schedules can be saved as a note")
	ErrNothingToConfirm     = errors.New("preview carries no record")
)
