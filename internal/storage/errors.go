package storage

import "errors"

var (
	ErrNotFound      = errors.New("key not found")
	ErrWriteFailed   = errors.New("storage write failed")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrSerialize     = errors.New("failed to serialize records")
)
