package pretty

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/haikal/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"

	summaryDividerWidth = 40
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as one line.
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := fmt.Sprintf("%d %s", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))

	var parts []string
	switch {
	case stats.ViolationsTotal > 0:
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s",
			stats.ViolationsTotal, plural(stats.ViolationsTotal, "violation", "violations"))))
		parts = append(parts, fmt.Sprintf("in %d of %s", stats.FilesInvalid, checked))
	case stats.FilesChanged > 0 && stats.FilesWritten == 0:
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d of %s would be reformatted", stats.FilesChanged, checked)))
	case stats.FilesWritten > 0:
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d of %s reformatted", stats.FilesWritten, checked)))
	default:
		parts = append(parts, s.Success.Render(checked+" ok"))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s",
			stats.FilesErrored, plural(stats.FilesErrored, "error", "errors"))))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block with a per-rule
// breakdown.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " + s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")
	if stats.FilesInvalid > 0 {
		builder.WriteString("  Files invalid:     " + s.Failure.Render(strconv.Itoa(stats.FilesInvalid)) + "\n")
	}
	if stats.FilesChanged > 0 {
		builder.WriteString("  Files changed:     " + s.SummaryValue.Render(strconv.Itoa(stats.FilesChanged)) + "\n")
	}
	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:     " + s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " + s.Error.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	if stats.ViolationsTotal > 0 {
		builder.WriteString("\n  Violations:        " + s.SummaryValue.Render(strconv.Itoa(stats.ViolationsTotal)) + "\n")

		rules := make([]string, 0, len(stats.ViolationsByRule))
		for rule := range stats.ViolationsByRule {
			rules = append(rules, rule)
		}
		slices.Sort(rules)
		for _, rule := range rules {
			builder.WriteString(fmt.Sprintf("    %-22s %s\n",
				s.RuleID.Render(rule), s.SummaryValue.Render(strconv.Itoa(stats.ViolationsByRule[rule]))))
		}
	}

	return builder.String()
}
