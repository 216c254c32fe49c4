package parser

import (
	"regexp"

	"tugasku/internal/model"
)

// rule extracts one field value from text, or reports no match.
type rule[T any] func(text string) (T, bool)

// firstMatch runs rules in order and returns the first match.
func firstMatch[T any](rules []rule[T], text string) (T, bool) {
	for _, r := range rules {
		if v, ok := r(text); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

type subjectMatch struct {
	value      string
	confidence model.Confidence
}

// captureRule returns the first non-stop-word capture group of re.
func captureRule(re *regexp.Regexp) rule[string] {
	return func(text string) (string, bool) {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 || isStopWord(m[1]) {
				continue
			}
			return m[1], true
		}
		return "", false
	}
}

// subjectFromCapture wraps a capture rule and grades the captured word against the vocabulary.
func subjectFromCapture(r rule[string]) rule[subjectMatch] {
	return func(text string) (subjectMatch, bool) {
		word, ok := r(text)
		if !ok {
			return subjectMatch{}, false
		}
		if canonical, known := lookupSubject(word); known {
			return subjectMatch{value: canonical, confidence: model.ConfidenceHigh}, true
		}
		return subjectMatch{value: word, confidence: model.ConfidenceMed}, true
	}
}

// subjectFromVocabulary finds the first known school subject anywhere in text.
func subjectFromVocabulary(text string) (subjectMatch, bool) {
	if canonical, ok := findSubject(text); ok {
		return subjectMatch{value: canonical, confidence: model.ConfidenceHigh}, true
	}
	return subjectMatch{}, false
}
