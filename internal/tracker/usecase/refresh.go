package usecase

import (
	"context"

	"tugasku/internal/model"
	"tugasku/internal/tracker"
)

func (uc *implUseCase) Subscribe(kind model.Kind, fn tracker.RefreshFunc) {
	if fn == nil {
		return
	}
	uc.subsMu.Lock()
	defer uc.subsMu.Unlock()
	uc.subs[kind] = append(uc.subs[kind], fn)
}

func (uc *implUseCase) refresh(ctx context.Context, kinds ...model.Kind) {
	for _, kind := range kinds {
		uc.subsMu.Lock()
		fns := append([]tracker.RefreshFunc(nil), uc.subs[kind]...)
		uc.subsMu.Unlock()

		for _, fn := range fns {
			uc.invoke(ctx, kind, fn)
		}
	}
}

func (uc *implUseCase) invoke(ctx context.Context, kind model.Kind, fn tracker.RefreshFunc) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "tracker.refresh %s: subscriber panic: %v", kind, r)
		}
	}()
	fn(ctx, kind)
}
