package router

import "tugasku/internal/model"

// Intent represents the user's intention.
type Intent = model.Kind

const (
	IntentTask     = model.KindTask
	IntentSchedule = model.KindSchedule
	IntentNote     = model.KindNote
	IntentUnknown  = model.KindUnknown
)

// RouterOutput is the result of classifying one message.
type RouterOutput struct {
	Intent    Intent `json:"intent"`
	Keyword   string `json:"keyword"`   // Keyword that triggered the intent
	Reasoning string `json:"reasoning"` // Which rule fired
}
