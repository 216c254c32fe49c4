package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"tugasku/internal/model"
)

// ParseTask extracts a task from text. Fields that cannot be extracted keep their zero value.
func (p *Parser) ParseTask(text string, now time.Time) (model.Task, map[model.Field]model.Confidence) {
	lower := strings.ToLower(text)
	conf := map[model.Field]model.Confidence{}

	t := model.Task{
		Priority:  model.PriorityMedium,
		Status:    model.StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	conf[model.FieldSubject] = model.ConfidenceLow
	if sm, ok := firstMatch(p.taskSubjectRules, text); ok {
		t.Subject = sm.value
		conf[model.FieldSubject] = sm.confidence
	}

	t.Priority, conf[model.FieldPriority] = taskPriority(lower, conf[model.FieldSubject])

	if page, ok := extractPage(text); ok {
		t.Page = &page
		t.Name = fmt.Sprintf(PageNameFormat, page)
		conf[model.FieldPage] = model.ConfidenceHigh
	}

	t.Deadline, conf[model.FieldDeadline] = p.extractDeadline(lower, now)

	if items, ok := extractItems(text); ok {
		t.Notes = items
		conf[model.FieldNotes] = model.ConfidenceMed
	}

	if w := reWarning.FindString(lower); w != "" {
		t.Warning = w
		conf[model.FieldWarning] = model.ConfidenceHigh
	}

	t.Title = taskTitle(t.Name, t.Subject, text)
	return t, conf
}

// taskPriority applies explicit keywords first, then the subject confidence.
func taskPriority(lower string, subject model.Confidence) (model.Priority, model.Confidence) {
	switch {
	case rePriorityHigh.MatchString(lower):
		return model.PriorityHigh, model.ConfidenceHigh
	case rePriorityLow.MatchString(lower):
		return model.PriorityLow, model.ConfidenceHigh
	case subject == model.ConfidenceHigh:
		return model.PriorityHigh, model.ConfidenceMed
	}
	return model.PriorityMedium, model.ConfidenceLow
}

func extractPage(text string) (int, bool) {
	m := rePage.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	page, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return page, true
}

// extractDeadline returns the first date token the normalizer resolves. A day name
// inside a counted span ("2 minggu") is a unit, not a weekday; "N <unit> lagi" is
// resolved relative to now with medium confidence.
func (p *Parser) extractDeadline(lower string, now time.Time) (string, model.Confidence) {
	counted := reCountedUnit.FindAllStringSubmatchIndex(lower, -1)
	for _, loc := range reDateToken.FindAllStringIndex(lower, -1) {
		if insideAny(loc, counted) {
			continue
		}
		if date, err := p.dates.Normalize(lower[loc[0]:loc[1]], now); err == nil {
			return date, model.ConfidenceHigh
		}
	}
	for _, m := range counted {
		if m[6] < 0 {
			continue
		}
		token := fmt.Sprintf(DurationFormat, lower[m[2]:m[3]], durationUnits[lower[m[4]:m[5]]])
		if date, err := p.dates.Normalize(token, now); err == nil {
			return date, model.ConfidenceMed
		}
	}
	if reDeadlineWord.MatchString(lower) {
		if date, err := p.dates.Normalize(RelativeTomorrow, now); err == nil {
			return date, model.ConfidenceMed
		}
	}
	return "", model.ConfidenceLow
}

func insideAny(loc []int, spans [][]int) bool {
	for _, sp := range spans {
		if loc[0] >= sp[0] && loc[1] <= sp[1] {
			return true
		}
	}
	return false
}

// extractItems captures what to bring and normalizes separators to ", ".
func extractItems(text string) (string, bool) {
	m := reItems.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	items := splitItems(m[1])
	if len(items) == 0 {
		return "", false
	}
	return strings.Join(items, ItemsSeparator), true
}

func splitItems(s string) []string {
	var items []string
	for _, part := range reItemSeparator.Split(s, -1) {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

func taskTitle(name, subject, raw string) string {
	switch {
	case name != "" && subject != "":
		return fmt.Sprintf(NamedTaskFormat, name, subject)
	case subject != "":
		return fmt.Sprintf(TaskTitleFormat, subject)
	}
	return truncate(strings.TrimSpace(raw), TitleMaxRunes)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + TitleEllipsis
}
