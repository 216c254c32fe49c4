package tracker

import "errors"

// Domain-specific errors for the tracker package.
var (
	ErrNotFound        = errors.New("record not found")
	ErrStorageWrite    = errors.New("failed to persist changes")
	ErrInvalidFilter   = errors.New("invalid task filter")
	ErrInvalidDay      = errors.New("invalid day")
	ErrInvalidSettings = errors.New("invalid settings")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrItemNotFound    = errors.New("checklist item not found")
)
