package router

import (
	"context"
	"strings"
)

// Classify returns exactly one intent. Task keywords are checked first, then a schedule
// noun together with a weekday, then note keywords. First match wins.
func (r *KeywordRouter) Classify(ctx context.Context, message string) RouterOutput {
	text := strings.ToLower(message)

	out := RouterOutput{Intent: IntentUnknown, Reasoning: ReasonNoMatch}
	switch {
	case taskKeywords.MatchString(text):
		out = RouterOutput{Intent: IntentTask, Keyword: taskKeywords.FindString(text), Reasoning: ReasonTaskKeyword}
	case scheduleKeywords.MatchString(text) && weekdayKeywords.MatchString(text):
		out = RouterOutput{Intent: IntentSchedule, Keyword: scheduleKeywords.FindString(text), Reasoning: ReasonScheduleKeyword}
	case noteKeywords.MatchString(text):
		out = RouterOutput{Intent: IntentNote, Keyword: noteKeywords.FindString(text), Reasoning: ReasonNoteKeyword}
	}

	r.l.Debugf(ctx, "%s: classified as %s (%s %q)", LogPrefixClassify, out.Intent, out.Reasoning, out.Keyword)
	return out
}

// IsHelpRequest reports whether message asks for usage help.
func (r *KeywordRouter) IsHelpRequest(message string) bool {
	return helpKeywords.MatchString(strings.ToLower(message))
}
