package usecase

import (
	"context"
	"errors"

	"tugasku/internal/model"
	"tugasku/internal/preview"
	"tugasku/internal/storage"
	"tugasku/pkg/toast"
)

func (uc *implUseCase) Confirm(ctx context.Context, input preview.ConfirmInput) (preview.ConfirmOutput, error) {
	sess, ok := uc.sessions.Peek(input.ID)
	if !ok {
		return preview.ConfirmOutput{}, preview.ErrSessionNotFound
	}

	rec, err := uc.applyForm(sess.Result.Record, input.Form)
	if err != nil {
		uc.l.Warnf(ctx, "preview.Confirm applyForm: %v", err)
		return preview.ConfirmOutput{}, err
	}

	return uc.commit(ctx, sess, rec, preview.StateConfirmed)
}

func (uc *implUseCase) SaveAsNote(ctx context.Context, id string) (preview.ConfirmOutput, error) {
	sess, ok := uc.sessions.Peek(id)
	if !ok {
		return preview.ConfirmOutput{}, preview.ErrSessionNotFound
	}
	if !sess.CanSaveAsNote() {
		return preview.ConfirmOutput{}, preview.ErrSaveAsNoteNotAllowed
	}

	note := model.Note{
		Title:   sess.Result.Title(),
		Content: preview.NotePrefix + sess.Result.OriginalMessage,
	}
	return uc.commit(ctx, sess, note, preview.StateSavedAsNote)
}

// commit takes the session out of the cache before persisting rec, so only one caller
// can save it. On failure the session is put back Drafting and a single failure
// message is sent to the notifier.
func (uc *implUseCase) commit(ctx context.Context, sess *preview.Session, rec model.Record, final preview.State) (preview.ConfirmOutput, error) {
	if !uc.sessions.Remove(sess.ID) {
		return preview.ConfirmOutput{}, preview.ErrSessionNotFound
	}

	saved, err := uc.tracker.Commit(ctx, rec)
	if err != nil {
		uc.l.Errorf(ctx, "preview.commit tracker.Commit: %v", err)
		uc.sessions.Add(sess.ID, sess)
		msg := preview.MsgSaveFailed
		if errors.Is(err, storage.ErrQuotaExceeded) {
			msg = preview.MsgStorageFull
		}
		uc.notifier.Notify(ctx, toast.LevelError, msg)
		return preview.ConfirmOutput{}, err
	}

	uc.notifier.Notify(ctx, toast.LevelSuccess, preview.MsgSaved)
	return preview.ConfirmOutput{State: final, Record: saved}, nil
}
