package storage

import "context"

// Repository is a byte-oriented key-value backend.
type Repository interface {
	// Load returns ErrNotFound when key has never been written.
	Load(ctx context.Context, key Key) ([]byte, error)
	// Save returns ErrQuotaExceeded when the write would exceed the backend quota.
	Save(ctx context.Context, key Key, value []byte) error
	Clear(ctx context.Context) error
	Close() error
}

// Facade is what the application core needs from storage.
type Facade interface {
	Get(ctx context.Context, key Key, dst any) bool
	Set(ctx context.Context, key Key, records any) error
	Clear(ctx context.Context) error
}
