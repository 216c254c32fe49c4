package chat

import (
	"time"

	"tugasku/internal/model"
	"tugasku/internal/preview"
	"tugasku/internal/router"
)

// DefaultMaxMessageLength is the rune limit applied when none is configured.
const DefaultMaxMessageLength = 2000

// Config tunes the chat pipeline.
type Config struct {
	ThinkingDelay    time.Duration
	ThinkingJitter   time.Duration
	MaxMessageLength int
}

// ProcessInput is the input for Process.
type ProcessInput struct {
	Message string
}

// ProcessOutput is the assistant's answer to one message.
// Session is nil when nothing was parsed (help or unrecognized input).
type ProcessOutput struct {
	Reply   string
	Session *preview.Session
}

// ClassifyInput is the input for Classify.
type ClassifyInput struct {
	Message string
}

// ClassifyOutput explains how a message would be read.
// Result is nil when the parser rejected the message; Reply then carries the reason.
type ClassifyOutput struct {
	Route  router.RouterOutput
	Result *model.ParseResult
	Reply  string
}
