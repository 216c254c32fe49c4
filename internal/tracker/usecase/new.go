package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tugasku/internal/model"
	"tugasku/internal/storage"
	"tugasku/internal/tracker"
	"tugasku/pkg/datemath"
	"tugasku/pkg/log"
)

type state struct {
	tasks     []model.Task
	schedules []model.Schedule
	notes     []model.Note
	settings  model.Settings
}

// implUseCase is the private implementation of tracker.UseCase.
type implUseCase struct {
	l     log.Logger
	store storage.Facade
	dates *datemath.Parser
	now   func() time.Time
	newID func() string

	mu sync.RWMutex
	st state

	subsMu sync.Mutex
	subs   map[model.Kind][]tracker.RefreshFunc
}

var _ tracker.UseCase = (*implUseCase)(nil)

// New creates a tracker UseCase. A nil clock means time.Now.
func New(l log.Logger, store storage.Facade, dates *datemath.Parser, clock func() time.Time) *implUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:     l,
		store: store,
		dates: dates,
		now:   clock,
		newID: uuid.NewString,
		st:    state{settings: model.DefaultSettings()},
		subs:  make(map[model.Kind][]tracker.RefreshFunc),
	}
}
