package preview

import (
	"context"

	"tugasku/internal/model"
)

// UseCase drives the preview/confirm workflow for parsed chat messages.
type UseCase interface {
	// Open starts a Drafting session pre-filled from result.
	Open(ctx context.Context, result model.ParseResult) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	// Confirm merges non-empty form values into the parsed record and persists it.
	// On a storage failure the session stays Drafting so the caller may retry.
	Confirm(ctx context.Context, input ConfirmInput) (ConfirmOutput, error)
	// SaveAsNote persists a note built from the parsed title and the original message.
	SaveAsNote(ctx context.Context, id string) (ConfirmOutput, error)
	Cancel(ctx context.Context, id string) error
}
