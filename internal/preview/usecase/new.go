package usecase

import (
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"tugasku/internal/preview"
	"tugasku/internal/tracker"
	"tugasku/pkg/datemath"
	"tugasku/pkg/log"
	"tugasku/pkg/toast"
)

// DefaultMaxSessions bounds the number of open previews kept in memory.
const DefaultMaxSessions = 128

type implUseCase struct {
	l        log.Logger
	tracker  tracker.UseCase
	notifier toast.Notifier
	dates    *datemath.Parser
	sessions *lru.Cache[string, *preview.Session]
	now      func() time.Time
	newID    func() string
}

var _ preview.UseCase = (*implUseCase)(nil)

// New creates a preview UseCase holding at most maxSessions open previews.
// The least recently used session is dropped when the bound is reached.
func New(l log.Logger, tr tracker.UseCase, notifier toast.Notifier, dates *datemath.Parser, maxSessions int) (*implUseCase, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	cache, err := lru.New[string, *preview.Session](maxSessions)
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		l:        l,
		tracker:  tr,
		notifier: notifier,
		dates:    dates,
		sessions: cache,
		now:      time.Now,
		newID:    uuid.NewString,
	}, nil
}
