// Package pretty renders haikal's CLI output with lipgloss styles.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by IsColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ANSI 256 palette indices.
const (
	colorRed     = "9"
	colorGreen   = "10"
	colorMagenta = "13"
	colorCyan    = "14"
	colorGray    = "8"
	colorWhite   = "7"
)

// Styles holds the renderers used by the reporters and commands.
// Every style renders plain text when color is disabled.
type Styles struct {
	Error lipgloss.Style

	// FilePath, Location and RuleID make up a violation line.
	FilePath lipgloss.Style
	Location lipgloss.Style
	RuleID   lipgloss.Style

	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles builds the style set. With colorEnabled false only plain
// renderers are produced, bold included.
func NewStyles(colorEnabled bool) *Styles {
	plain := lipgloss.NewStyle()

	fg := func(color string) lipgloss.Style {
		if !colorEnabled {
			return plain
		}
		return plain.Foreground(lipgloss.Color(color))
	}
	bold := func(s lipgloss.Style) lipgloss.Style {
		if !colorEnabled {
			return s
		}
		return s.Bold(true)
	}

	return &Styles{
		Error: bold(fg(colorRed)),

		FilePath: bold(plain),
		Location: fg(colorGray),
		RuleID:   fg(colorMagenta),

		DiffHeader:  bold(plain),
		DiffHunk:    fg(colorCyan),
		DiffAdd:     fg(colorGreen),
		DiffRemove:  fg(colorRed),
		DiffContext: fg(colorGray),

		SummaryTitle: bold(plain),
		SummaryValue: plain,
		Success:      bold(fg(colorGreen)),
		Failure:      bold(fg(colorRed)),

		TableHeader:    bold(fg(colorWhite)),
		TableSeparator: fg(colorGray),

		Dim:  fg(colorGray),
		Bold: bold(plain),
	}
}

// IsColorEnabled resolves a color mode against the destination writer.
// Auto enables color only for a terminal and only when NO_COLOR is unset.
// Unknown modes behave like auto.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ValidColorMode reports whether mode is one of the accepted color modes.
func ValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}
