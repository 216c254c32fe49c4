package checklist

import (
	"regexp"
	"strings"
)

const (
	Unchecked = "- [ ]"
	Checked   = "- [x]"
)

// "  - [x] buku gambar" -> indent, state, text
var checkboxPattern = regexp.MustCompile(`^(\s*)[-*] \[([ xX])\] (.+)$`)

// Items returns the checkbox lines of content in order.
func Items(content string) []Item {
	var items []Item
	for i, line := range strings.Split(content, "\n") {
		m := checkboxPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		items = append(items, Item{
			Line:    i,
			Checked: strings.EqualFold(m[2], "x"),
			Text:    strings.TrimSpace(m[3]),
		})
	}
	return items
}

// Summarize counts the checked and total checkboxes of content.
func Summarize(content string) Progress {
	var p Progress
	for _, it := range Items(content) {
		p.Total++
		if it.Checked {
			p.Completed++
		}
	}
	return p
}

// Check sets the state of every checkbox whose text contains text, ignoring case.
// It returns the rewritten content and how many lines matched.
func Check(content, text string, checked bool) (string, int) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return content, 0
	}

	state := Unchecked
	if checked {
		state = Checked
	}

	lines := strings.Split(content, "\n")
	count := 0
	for i, line := range lines {
		m := checkboxPattern.FindStringSubmatch(line)
		if m == nil || !strings.Contains(strings.ToLower(m[3]), needle) {
			continue
		}
		lines[i] = m[1] + state + " " + m[3]
		count++
	}
	return strings.Join(lines, "\n"), count
}
