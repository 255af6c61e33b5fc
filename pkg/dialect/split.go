package dialect

import (
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // Compiled once, read-only.
var separatorLineRe = regexp.MustCompile(`^\s*---\s*$`)

// SplitSections splits document text on lines that are exactly "---",
// tolerating whitespace around the dashes on that line. Sections are trimmed
// and empty ones are dropped.
func SplitSections(text string) []string {
	var (
		sections []string
		current  []string
	)

	flush := func() {
		if len(current) == 0 {
			return
		}
		if s := strings.TrimSpace(strings.Join(current, "\n")); s != "" {
			sections = append(sections, s)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if separatorLineRe.MatchString(line) {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return sections
}

// SplitParagraphs splits section text on blank lines. Paragraphs are trimmed
// and empty ones are dropped.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}
