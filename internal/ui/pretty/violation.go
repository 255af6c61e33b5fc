package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/haikal/pkg/validate"
)

// documentLocation stands in for the location of document-wide violations.
const documentLocation = "-"

// Location returns "section:paragraph", "section", or "-" for a violation.
func Location(v validate.Violation) string {
	switch {
	case v.Section == 0:
		return documentLocation
	case v.Paragraph == 0:
		return strconv.Itoa(v.Section)
	default:
		return fmt.Sprintf("%d:%d", v.Section, v.Paragraph)
	}
}

// FormatViolation formats one violation as an indented line:
//
//	path:2:1  paragraph-kind  Invalid header format
func (s *Styles) FormatViolation(path string, v validate.Violation) string {
	loc := Location(v)
	if path != "" {
		loc = path + ":" + loc
	}
	return fmt.Sprintf("  %s  %s  %s\n",
		s.Location.Render(loc),
		s.RuleID.Render(v.Rule),
		v.Message,
	)
}

// FormatFileError formats a file that could not be processed.
func (s *Styles) FormatFileError(path string, err error) string {
	return s.FilePath.Render(path) + ": " + s.Error.Render("error") + " " + err.Error() + "\n"
}

// FormatDiffLine colors one line of a unified diff.
func (s *Styles) FormatDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "diff "),
		strings.HasPrefix(line, "--- "),
		strings.HasPrefix(line, "+++ "):
		return s.DiffHeader.Render(line)
	case strings.HasPrefix(line, "@@"):
		return s.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		return s.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		return s.DiffRemove.Render(line)
	default:
		return s.DiffContext.Render(line)
	}
}
