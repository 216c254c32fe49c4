package toast

import (
	"context"
	"sync"
	"time"
)

// DefaultDuration is how long a message stays visible.
const DefaultDuration = 3 * time.Second

// Level tags a message for styling.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message is one transient notification.
type Message struct {
	Level Level     `json:"level"`
	Text  string    `json:"text"`
	At    time.Time `json:"at"`
}

// Notifier delivers transient user-visible messages.
type Notifier interface {
	Notify(ctx context.Context, level Level, text string)
}

// Toast keeps only the most recent message and clears it after a fixed duration.
type Toast struct {
	mu       sync.Mutex
	duration time.Duration
	sink     func(Message)
	current  *Message
	timer    *time.Timer
	seq      uint64
}

var _ Notifier = (*Toast)(nil)

// New creates a Toast. sink, when non-nil, is called once per message (e.g. a terminal printer).
func New(duration time.Duration, sink func(Message)) *Toast {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Toast{duration: duration, sink: sink}
}

// Notify replaces the current message with text.
func (t *Toast) Notify(ctx context.Context, level Level, text string) {
	msg := Message{Level: level, Text: text, At: time.Now()}

	t.mu.Lock()
	t.seq++
	seq := t.seq
	t.current = &msg
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.duration, func() { t.expire(seq) })
	t.mu.Unlock()

	if t.sink != nil {
		t.sink(msg)
	}
}

// Current returns the visible message, if any.
func (t *Toast) Current() (Message, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return Message{}, false
	}
	return *t.current, true
}

// Dismiss hides the current message immediately.
func (t *Toast) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.current = nil
}

func (t *Toast) expire(seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.seq == seq {
		t.current = nil
	}
}
