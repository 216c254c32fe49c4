package router

import (
	"context"

	"tugasku/pkg/log"
)

// Router classifies a chat message into one intent.
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
	IsHelpRequest(message string) bool
}

// KeywordRouter classifies intents with ordered keyword rules.
type KeywordRouter struct {
	l log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{l: l}
}
