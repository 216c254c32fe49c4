package parser

import "errors"

var (
	ErrUnclassifiedIntent   = errors.New("message matched no intent")
	ErrMissingRequiredField = errors.New("missing required field")
)

// HintSchedule is shown when a schedule message lacks a day or a start time.
const HintSchedule = `Contoh: "Jadwal Matematika hari Senin jam 08:00"`
