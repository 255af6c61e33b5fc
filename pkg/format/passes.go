package format

import (
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	trailingSpaceRe = regexp.MustCompile(`\s+$`)

	longDashRe  = regexp.MustCompile(`\n-{3,}\n`)
	shortDashRe = regexp.MustCompile(`\n-{1,2}\n`)
	equalsRe    = regexp.MustCompile(`\n={3,}\n`)

	blankRunRe        = regexp.MustCompile(`\n{3,}`)
	spacedSeparatorRe = regexp.MustCompile(`\n{2,}---\n{2,}`)
	separatorBelowRe  = regexp.MustCompile(`\n---\n\n`)
	separatorAboveRe  = regexp.MustCompile(`\n\n---\n`)
)

// TrimTrailingWhitespace strips whitespace from the end of every line.
func TrimTrailingWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = trailingSpaceRe.ReplaceAllString(line, "")
	}
	return strings.Join(lines, "\n")
}

// ExpandTabs replaces every tab with size spaces.
func ExpandTabs(text string, size int) string {
	return strings.ReplaceAll(text, "\t", strings.Repeat(" ", size))
}

// FixSectionSeparators rewrites dash runs of any length and "===" runs on
// their own line to "---".
func FixSectionSeparators(text string) string {
	text = longDashRe.ReplaceAllString(text, "\n---\n")
	text = shortDashRe.ReplaceAllString(text, "\n---\n")
	return equalsRe.ReplaceAllString(text, "\n---\n")
}

// FixParagraphSpacing collapses blank-line runs to one blank line and pulls
// separators tight against the text around them.
func FixParagraphSpacing(text string) string {
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	text = spacedSeparatorRe.ReplaceAllString(text, "\n---\n")
	text = separatorBelowRe.ReplaceAllString(text, "\n---\n")
	return separatorAboveRe.ReplaceAllString(text, "\n---\n")
}

// FixDocumentStructure trims every section, drops separator lines stranded
// at a section's edges, and removes empty sections.
func FixDocumentStructure(text string) string {
	var sections []string
	for _, section := range strings.Split(text, "\n---\n") {
		section = strings.TrimSpace(stripEdgeSeparators(section))
		if section != "" {
			sections = append(sections, section)
		}
	}
	return strings.Join(sections, "\n\n---\n\n")
}

func stripEdgeSeparators(section string) string {
	lines := strings.Split(strings.TrimSpace(section), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "---" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "---" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
