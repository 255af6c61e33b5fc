// Package format rewrites loosely written markdown into the canonical Haikal
// form.
//
// Formatting is best effort. It runs an ordered pipeline of passes over the
// whole document, then normalizes every paragraph according to its detected
// kind. Canonical input passes through unchanged.
package format

import (
	"strings"

	"github.com/yaklabco/haikal/pkg/dialect"
	"github.com/yaklabco/haikal/pkg/langdetect"
)

// DefaultTabSize is the number of spaces a tab expands to.
const DefaultTabSize = 4

// Options tune a Formatter.
type Options struct {
	// TabSize is the tab expansion width. Non-positive means DefaultTabSize.
	TabSize int

	// InferCodeLanguage tags untagged code fences with a detected language.
	InferCodeLanguage bool
}

// Formatter normalizes documents.
type Formatter struct {
	opts     Options
	handlers map[dialect.Kind]func(string) string
}

// New returns a Formatter with the given options.
func New(opts Options) *Formatter {
	if opts.TabSize <= 0 {
		opts.TabSize = DefaultTabSize
	}

	f := &Formatter{opts: opts}
	f.handlers = map[dialect.Kind]func(string) string{
		dialect.KindText:     FixTextFormatting,
		dialect.KindHeader:   NormalizeHeader,
		dialect.KindList:     NormalizeList,
		dialect.KindMedia:    func(s string) string { return s },
		dialect.KindFootnote: FixTextFormatting,
		dialect.KindQuote:    NormalizeQuote,
		dialect.KindCode:     f.normalizeCode,
		dialect.KindTable:    NormalizeTable,
	}
	return f
}

//nolint:gochecknoglobals // Stateless, read-only after init.
var defaultFormatter = New(Options{})

// Markdown formats text with default options.
func Markdown(text string) string {
	return defaultFormatter.Markdown(text)
}

// AutoCorrect is Markdown under the name callers reach for when repairing
// user input.
func AutoCorrect(text string) string {
	return Markdown(text)
}

// Options returns the effective options.
func (f *Formatter) Options() Options {
	return f.opts
}

// Markdown runs the full pipeline over text.
func (f *Formatter) Markdown(text string) string {
	text = TrimTrailingWhitespace(text)
	text = ExpandTabs(text, f.opts.TabSize)
	text = FixSectionSeparators(text)
	text = FixParagraphSpacing(text)

	sections := strings.Split(text, "\n---\n")
	for i, section := range sections {
		paragraphs := dialect.SplitParagraphs(section)
		for j, p := range paragraphs {
			paragraphs[j] = f.Paragraph(p)
		}
		sections[i] = strings.Join(paragraphs, dialect.ParagraphSeparator)
	}

	text = strings.Join(sections, dialect.SectionSeparator)
	text = FixDocumentStructure(text)

	return strings.TrimSpace(text)
}

// File formats the contents of a document file: the pipeline output ends
// with exactly one newline, and an empty document stays empty.
func (f *Formatter) File(text string) string {
	out := f.Markdown(text)
	if out == "" {
		return ""
	}
	return out + "\n"
}

// Paragraph normalizes a single paragraph according to its kind. Detection
// is lenient here so "*" and "+" bullets are recognized and rewritten.
func (f *Formatter) Paragraph(text string) string {
	return f.handlers[dialect.Classify(text, dialect.Lenient)](text)
}

func (f *Formatter) normalizeCode(text string) string {
	text = NormalizeCode(text)
	if !f.opts.InferCodeLanguage {
		return text
	}
	return InferCodeLanguage(text)
}

// InferCodeLanguage adds a language tag to an untagged code block when its
// body is recognizable. Anything else is returned unchanged.
func InferCodeLanguage(text string) string {
	code, err := dialect.ParseCode(text)
	if err != nil || code.Language != "" || !strings.HasPrefix(text, "```\n") {
		return text
	}

	lang := langdetect.Detect([]byte(code.Text))
	if lang == "" {
		return text
	}
	return "```" + string(lang) + text[len("```"):]
}
