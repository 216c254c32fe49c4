package chat

import "context"

// UseCase turns a free-text chat message into a preview session.
type UseCase interface {
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	// Classify is a dry run of Process: no thinking delay and no preview session.
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
}
