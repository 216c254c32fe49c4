package usecase

import (
	"context"
	"math/rand/v2"
	"time"

	"tugasku/internal/chat"
	"tugasku/internal/model"
	"tugasku/internal/preview"
	"tugasku/internal/router"
	"tugasku/pkg/log"
)

// Builder turns text into a parse result.
type Builder interface {
	Build(ctx context.Context, text string) (model.ParseResult, error)
}

type implUseCase struct {
	l        log.Logger
	builder  Builder
	router   router.Router
	previews preview.UseCase
	cfg      chat.Config
	jitter   func(max time.Duration) time.Duration
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a chat UseCase.
func New(l log.Logger, builder Builder, r router.Router, previews preview.UseCase, cfg chat.Config) *implUseCase {
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = chat.DefaultMaxMessageLength
	}
	return &implUseCase{
		l:        l,
		builder:  builder,
		router:   r,
		previews: previews,
		cfg:      cfg,
		jitter:   randomJitter,
	}
}

func randomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return rand.N(max)
}
