package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	tablePadding   = 2
	tableSeparator = "-"
)

// FormatTable lays out rows under a header with padded columns. Widths are
// measured after styling so ANSI sequences do not skew alignment. The last
// column is not padded.
func (s *Styles) FormatTable(header []string, rows [][]string) string {
	if len(header) == 0 {
		return ""
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	total := 0
	for _, w := range widths {
		total += w + tablePadding
	}
	total -= tablePadding

	var builder strings.Builder

	styled := make([]string, len(header))
	for i, h := range header {
		styled[i] = s.TableHeader.Render(h)
	}
	builder.WriteString(s.formatRow(styled, widths))
	builder.WriteString(s.TableSeparator.Render(strings.Repeat(tableSeparator, total)))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(s.formatRow(row, widths))
	}

	return builder.String()
}

func (s *Styles) formatRow(cells []string, widths []int) string {
	var builder strings.Builder
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		builder.WriteString(cell)
		if i < len(cells)-1 && i < len(widths)-1 {
			builder.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+tablePadding))
		}
	}
	builder.WriteString("\n")
	return builder.String()
}
