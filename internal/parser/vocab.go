package parser

import (
	"regexp"
	"strings"
)

type subjectEntry struct {
	canonical string
	anywhere  *regexp.Regexp
	exact     *regexp.Regexp
}

func newSubject(canonical, pattern string) subjectEntry {
	return subjectEntry{
		canonical: canonical,
		anywhere:  regexp.MustCompile(`\b(?:` + pattern + `)\b`),
		exact:     regexp.MustCompile(`^(?:` + pattern + `)$`),
	}
}

// subjectVocabulary holds the known school subjects. Multi-word names come first.
var subjectVocabulary = []subjectEntry{
	newSubject("Bahasa Indonesia", `bahasa indonesia|b\. ?indonesia|b\. ?indo`),
	newSubject("Bahasa Inggris", `bahasa inggris|b\. ?inggris`),
	newSubject("Pendidikan Agama", `pendidikan agama|agama|pai`),
	newSubject("Seni Budaya", `seni budaya|seni`),
	newSubject("Matematika", `matematika|mtk`),
	newSubject("Fisika", `fisika`),
	newSubject("Kimia", `kimia`),
	newSubject("Biologi", `biologi`),
	newSubject("Sejarah", `sejarah`),
	newSubject("Geografi", `geografi`),
	newSubject("Ekonomi", `ekonomi`),
	newSubject("Sosiologi", `sosiologi`),
	newSubject("PJOK", `pjok|penjaskes|penjas|olahraga`),
	newSubject("Informatika", `tik|informatika`),
	newSubject("PKN", `ppkn|pkn`),
}

// lookupSubject maps a single captured word to its canonical subject name.
func lookupSubject(word string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	for _, s := range subjectVocabulary {
		if s.exact.MatchString(w) {
			return s.canonical, true
		}
	}
	return "", false
}

// findSubject returns the known subject that appears earliest in text.
func findSubject(text string) (string, bool) {
	lower := strings.ToLower(text)
	best, bestPos := "", -1
	for _, s := range subjectVocabulary {
		loc := s.anywhere.FindStringIndex(lower)
		if loc == nil {
			continue
		}
		if bestPos == -1 || loc[0] < bestPos {
			best, bestPos = s.canonical, loc[0]
		}
	}
	return best, bestPos != -1
}
