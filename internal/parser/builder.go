package parser

import (
	"context"
	"fmt"
	"strings"

	"tugasku/internal/model"
	"tugasku/internal/router"
)

// Build classifies text and assembles the matching record. No validation happens here
// beyond defaulting, except that a schedule needs both a day and a start time.
func (p *Parser) Build(ctx context.Context, text string) (model.ParseResult, error) {
	text = strings.TrimSpace(text)
	now := p.now()

	out := p.router.Classify(ctx, text)
	result := model.ParseResult{OriginalMessage: text}

	switch out.Intent {
	case router.IntentTask:
		result.Record, result.Confidence = p.ParseTask(text, now)

	case router.IntentSchedule:
		s, conf := p.ParseSchedule(text, now)
		var missing []string
		if s.Day == "" {
			missing = append(missing, string(model.FieldDay))
		}
		if s.StartTime == "" {
			missing = append(missing, string(model.FieldTime))
		}
		if len(missing) > 0 {
			p.l.Infof(ctx, "%s: schedule missing %v", LogPrefixBuild, missing)
			return model.ParseResult{}, fmt.Errorf("%w: %s", ErrMissingRequiredField, strings.Join(missing, ", "))
		}
		result.Record, result.Confidence = s, conf

	case router.IntentNote:
		result.Record, result.Confidence = p.ParseNote(text, now)

	default:
		return model.ParseResult{}, ErrUnclassifiedIntent
	}

	p.l.Debugf(ctx, "%s: built %s record %q", LogPrefixBuild, result.Kind(), result.Title())
	return result, nil
}
