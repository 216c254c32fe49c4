package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"tugasku/internal/chat"
	"tugasku/internal/parser"
)

func (uc *implUseCase) Process(ctx context.Context, input chat.ProcessInput) (chat.ProcessOutput, error) {
	msg, err := uc.validate(input.Message)
	if err != nil {
		return chat.ProcessOutput{}, err
	}

	if err := uc.think(ctx); err != nil {
		return chat.ProcessOutput{}, err
	}

	result, err := uc.builder.Build(ctx, msg)
	if err != nil {
		if errors.Is(err, parser.ErrUnclassifiedIntent) && uc.router.IsHelpRequest(msg) {
			return chat.ProcessOutput{Reply: chat.MsgHelp}, nil
		}
		uc.l.Infof(ctx, "chat.Process Build: %v", err)
		return chat.ProcessOutput{}, err
	}

	sess, err := uc.previews.Open(ctx, result)
	if err != nil {
		uc.l.Errorf(ctx, "chat.Process previews.Open: %v", err)
		return chat.ProcessOutput{}, err
	}

	return chat.ProcessOutput{
		Reply:   chat.ReplySummary(result),
		Session: &sess,
	}, nil
}

func (uc *implUseCase) Classify(ctx context.Context, input chat.ClassifyInput) (chat.ClassifyOutput, error) {
	msg, err := uc.validate(input.Message)
	if err != nil {
		return chat.ClassifyOutput{}, err
	}

	out := chat.ClassifyOutput{Route: uc.router.Classify(ctx, msg)}
	result, err := uc.builder.Build(ctx, msg)
	switch {
	case err == nil:
		out.Result = &result
		out.Reply = chat.ReplySummary(result)
	case errors.Is(err, parser.ErrUnclassifiedIntent) && uc.router.IsHelpRequest(msg):
		out.Reply = chat.MsgHelp
	default:
		out.Reply = chat.ReplyError(err)
	}

	uc.l.Infof(ctx, "chat.Classify: intent=%s reasoning=%q keyword=%q", out.Route.Intent, out.Route.Reasoning, out.Route.Keyword)
	return out, nil
}

// validate trims msg and enforces the length limit.
func (uc *implUseCase) validate(msg string) (string, error) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return "", chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(msg) > uc.cfg.MaxMessageLength {
		return "", chat.ErrMessageTooLong
	}
	return msg, nil
}

// think waits for the configured delay plus jitter, returning early when ctx is done.
func (uc *implUseCase) think(ctx context.Context) error {
	d := uc.cfg.ThinkingDelay + uc.jitter(uc.cfg.ThinkingJitter)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
