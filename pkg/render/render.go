// Package render turns dialect documents into HTML and styled terminal
// output.
//
// Both renderers go through CommonMark: the document is parsed, rewritten
// into GFM text (tables gain a delimiter row, sections become thematic
// breaks) and handed to goldmark or glamour.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/yaklabco/haikal/pkg/dialect"
)

// DefaultWidth is the terminal wrap width used when none is given.
const DefaultWidth = 80

//nolint:gochecknoglobals // Stateless converter, safe for concurrent use.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Footnote,
	),
)

// CommonMark rewrites a parsed document as GFM text.
func CommonMark(doc dialect.Document) string {
	sections := make([]string, len(doc))
	for i, section := range doc {
		paragraphs := make([]string, len(section))
		for j, p := range section {
			paragraphs[j] = commonMarkParagraph(p)
		}
		sections[i] = strings.Join(paragraphs, dialect.ParagraphSeparator)
	}
	return strings.Join(sections, dialect.SectionSeparator)
}

func commonMarkParagraph(p dialect.Paragraph) string {
	switch p := p.(type) {
	case dialect.TableParagraph:
		return commonMarkTable(p)
	case dialect.QuoteParagraph:
		var lines []string
		for i, inner := range p.Paragraphs {
			if i > 0 {
				lines = append(lines, ">")
			}
			for _, line := range strings.Split(commonMarkParagraph(inner), "\n") {
				lines = append(lines, strings.TrimRight("> "+line, " "))
			}
		}
		return strings.Join(lines, "\n")
	default:
		return dialect.SerializeParagraph(p)
	}
}

// commonMarkTable inserts the delimiter row GFM needs after the first row.
func commonMarkTable(t dialect.TableParagraph) string {
	if len(t.Rows) == 0 {
		return ""
	}
	lines := strings.Split(dialect.SerializeParagraph(t), "\n")
	delimiter := "|" + strings.Repeat(" --- |", max(len(t.Rows[0]), 1))
	lines = append(lines[:1], append([]string{delimiter}, lines[1:]...)...)
	return strings.Join(lines, "\n")
}

// HTML parses text and renders it as an HTML fragment.
func HTML(text string) (string, error) {
	doc, err := dialect.Parse(text)
	if err != nil {
		return "", err
	}
	return DocumentHTML(doc)
}

// DocumentHTML renders a parsed document as an HTML fragment.
func DocumentHTML(doc dialect.Document) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(CommonMark(doc)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// TerminalOptions configures Terminal.
type TerminalOptions struct {
	// Width is the word-wrap column. Zero selects DefaultWidth.
	Width int

	// Style is a glamour standard style name such as "dark", "light" or
	// "notty". Empty picks one from the terminal background.
	Style string
}

// Terminal parses text and renders it with ANSI styling for display in a
// terminal.
func Terminal(text string, opts TerminalOptions) (string, error) {
	doc, err := dialect.Parse(text)
	if err != nil {
		return "", err
	}
	return DocumentTerminal(doc, opts)
}

// DocumentTerminal renders a parsed document for a terminal.
func DocumentTerminal(doc dialect.Document, opts TerminalOptions) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	style := glamour.WithAutoStyle()
	if opts.Style != "" {
		style = glamour.WithStandardStyle(opts.Style)
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create terminal renderer: %w", err)
	}

	out, err := renderer.Render(CommonMark(doc))
	if err != nil {
		return "", fmt.Errorf("render terminal: %w", err)
	}
	return out, nil
}
