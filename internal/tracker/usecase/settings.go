package usecase

import (
	"context"
	"fmt"

	"tugasku/internal/model"
	"tugasku/internal/storage"
	"tugasku/internal/tracker"
)

func (uc *implUseCase) Settings(ctx context.Context) model.Settings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.st.settings
}

func (uc *implUseCase) UpdateSettings(ctx context.Context, s model.Settings) (model.Settings, error) {
	if s.Theme != model.ThemeLight && s.Theme != model.ThemeDark {
		return model.Settings{}, tracker.ErrInvalidSettings
	}

	uc.mu.Lock()
	if err := uc.store.Set(ctx, storage.KeySettings, s); err != nil {
		uc.mu.Unlock()
		uc.l.Errorf(ctx, "tracker.UpdateSettings: %v", err)
		return model.Settings{}, fmt.Errorf("%w: %w", tracker.ErrStorageWrite, err)
	}
	uc.st.settings = s
	uc.mu.Unlock()

	uc.refresh(ctx, tracker.KindSettings)
	return s, nil
}

// ClearAll wipes storage and resets every collection.
func (uc *implUseCase) ClearAll(ctx context.Context) error {
	uc.mu.Lock()
	if err := uc.store.Clear(ctx); err != nil {
		uc.mu.Unlock()
		uc.l.Errorf(ctx, "tracker.ClearAll: %v", err)
		return fmt.Errorf("%w: %w", tracker.ErrStorageWrite, err)
	}
	uc.st = state{settings: model.DefaultSettings()}
	uc.mu.Unlock()

	uc.l.Infof(ctx, "tracker.ClearAll: all data removed")
	uc.refresh(ctx, model.KindTask, model.KindSchedule, model.KindNote, tracker.KindSettings)
	return nil
}
