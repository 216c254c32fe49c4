package usecase

import (
	"context"

	"tugasku/internal/model"
	"tugasku/internal/preview"
)

func (uc *implUseCase) Open(ctx context.Context, result model.ParseResult) (preview.Session, error) {
	if result.Record == nil {
		return preview.Session{}, preview.ErrNothingToConfirm
	}

	sess := &preview.Session{
		ID:        uc.newID(),
		State:     preview.StateDrafting,
		Result:    result,
		Form:      formFromRecord(result.Record),
		CreatedAt: uc.now(),
	}
	uc.sessions.Add(sess.ID, sess)

	uc.l.Debugf(ctx, "preview.Open: session %s for %s", sess.ID, result.Kind())
	return *sess, nil
}

func (uc *implUseCase) Get(ctx context.Context, id string) (preview.Session, error) {
	sess, ok := uc.sessions.Peek(id)
	if !ok {
		return preview.Session{}, preview.ErrSessionNotFound
	}
	return *sess, nil
}

func (uc *implUseCase) Cancel(ctx context.Context, id string) error {
	if !uc.sessions.Remove(id) {
		return preview.ErrSessionNotFound
	}
	uc.l.Debugf(ctx, "preview.Cancel: session %s", id)
	return nil
}
