package parser

import (
	"time"

	"tugasku/internal/router"
	"tugasku/pkg/datemath"
	"tugasku/pkg/log"
)

// Parser turns chat messages into ParseResults.
type Parser struct {
	l      log.Logger
	router router.Router
	dates  *datemath.Parser
	now    func() time.Time

	taskSubjectRules     []rule[subjectMatch]
	scheduleSubjectRules []rule[subjectMatch]
}

// New creates a Parser. A nil clock defaults to time.Now.
func New(l log.Logger, r router.Router, dates *datemath.Parser, clock func() time.Time) *Parser {
	if clock == nil {
		clock = time.Now
	}
	return &Parser{
		l:      l,
		router: r,
		dates:  dates,
		now:    clock,
		taskSubjectRules: []rule[subjectMatch]{
			subjectFromCapture(captureRule(reSubjectFor)),
			subjectFromVocabulary,
			subjectFromCapture(captureRule(reSubjectAfter)),
		},
		scheduleSubjectRules: []rule[subjectMatch]{
			subjectFromCapture(captureRule(reScheduleSubject)),
			subjectFromVocabulary,
		},
	}
}
