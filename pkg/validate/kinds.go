package validate

import (
	"regexp"
	"strings"

	"github.com/yaklabco/haikal/pkg/dialect"
)

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	headerRe      = regexp.MustCompile(`^#{1,6}\s.+$`)
	bulletRe      = regexp.MustCompile(`^[-*+]\s`)
	numberedRe    = regexp.MustCompile(`^\d+\.\s`)
	taskRe        = regexp.MustCompile(`^[-*+]\s\[([ x])\]`)
	mediaRe       = regexp.MustCompile(`^!\[.*?\]\(.+?\)$`)
	linkedMediaRe = regexp.MustCompile(`^\[!\[.*?\]\(.+?\)\]\(.+?\)$`)
	footnoteRe    = regexp.MustCompile(`^\[?\^.+?\]:\s*.+$`)
	quoteRe       = regexp.MustCompile(`^>\s?`)
	codeRe        = regexp.MustCompile("^```.*?\\n(?s:.*?)\\n```$")
	tableRowRe    = regexp.MustCompile(`^\|.*\|$`)
)

type kindCheck func(text string) bool

// checks holds the acceptance test for each paragraph kind. The tests are
// stricter than the parsers in some places (single-line headers, complete
// media) and looser in others (any list bullet glyph, quote markers without
// a space).
//
//nolint:gochecknoglobals // Read-only lookup table.
var checks = map[dialect.Kind]kindCheck{
	dialect.KindText:     func(string) bool { return true },
	dialect.KindHeader:   Header,
	dialect.KindList:     List,
	dialect.KindMedia:    Media,
	dialect.KindFootnote: Footnote,
	dialect.KindQuote:    Quote,
	dialect.KindCode:     Code,
	dialect.KindTable:    Table,
}

// Paragraph reports whether text is well formed for the given kind.
// Unknown kinds are never valid.
func Paragraph(text string, kind dialect.Kind) bool {
	check, ok := checks[kind]
	if !ok {
		return false
	}
	return check(text)
}

// Header accepts a single-line ATX header with non-empty content.
func Header(text string) bool {
	return !strings.Contains(text, "\n") && headerRe.MatchString(text)
}

// List accepts a list whose lines all share the first line's list type.
// Any of "-", "*" and "+" counts as a bullet.
func List(text string) bool {
	lines := strings.Split(text, "\n")

	var lineRe *regexp.Regexp
	switch first := lines[0]; {
	case bulletRe.MatchString(first):
		lineRe = bulletRe
	case numberedRe.MatchString(first):
		lineRe = numberedRe
	case taskRe.MatchString(first):
		lineRe = taskRe
	default:
		return false
	}

	for _, line := range lines {
		if !lineRe.MatchString(line) {
			return false
		}
	}
	return true
}

// Media accepts a single media reference. The linked form is accepted too,
// because the serializer emits it for media carrying a URL.
func Media(text string) bool {
	if strings.Contains(text, "\n") {
		return false
	}
	return mediaRe.MatchString(text) || linkedMediaRe.MatchString(text)
}

// Footnote accepts one footnote definition per line. Ids need not be
// numeric here.
func Footnote(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if !footnoteRe.MatchString(line) {
			return false
		}
	}
	return true
}

// Quote accepts text whose every line starts with ">".
func Quote(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if !quoteRe.MatchString(line) {
			return false
		}
	}
	return true
}

// Code accepts a fenced block with the fences on their own lines.
func Code(text string) bool {
	return codeRe.MatchString(text)
}

// Table accepts at least two pipe-wrapped rows, ignoring blank lines.
func Table(text string) bool {
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !tableRowRe.MatchString(line) {
			return false
		}
		rows++
	}
	return rows >= 2
}
