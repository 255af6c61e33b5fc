// Package validate checks text against the strict rules of the Haikal dialect.
//
// Validation never fails: every problem found is collected into a Result, and
// a document is valid exactly when that list is empty.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/haikal/pkg/dialect"
)

// Rule identifiers carried by violations.
const (
	RuleSectionSeparator   = "section-separator"
	RuleWhitespace         = "whitespace"
	RuleInlineFormatting   = "inline-formatting"
	RuleParagraphSeparator = "paragraph-separator"
	RuleParagraphKind      = "paragraph-kind"
)

// Messages for document-wide violations.
const (
	MsgSectionSeparator = `Invalid section separators - use exactly "---" surrounded by single newlines`
	MsgWhitespace       = "Invalid whitespace - no trailing spaces or tabs allowed"
	MsgInlineFormatting = "Unclosed text formatting detected"
)

// Violation is a single rule failure.
type Violation struct {
	// Rule is one of the Rule* identifiers.
	Rule string `json:"rule"`

	// Section is the 1-based section number, or 0 for document-wide rules.
	Section int `json:"section,omitempty"`

	// Paragraph is the 1-based paragraph number within Section, or 0.
	Paragraph int `json:"paragraph,omitempty"`

	// Kind is the detected paragraph kind for paragraph-level violations.
	Kind string `json:"kind,omitempty"`

	// Message is the human-readable description.
	Message string `json:"message"`
}

// Result is the outcome of validating one document.
type Result struct {
	Valid bool `json:"valid"`

	// Errors holds the message of every violation, in order.
	Errors []string `json:"errors"`

	Violations []Violation `json:"violations"`
}

// Options tune a Validator.
type Options struct {
	// StrictInline reports markup markers left over after inline extraction,
	// such as "**unclosed". Off by default: the dialect tolerates stray markers.
	StrictInline bool
}

// Validator checks documents. The zero value uses default options.
type Validator struct {
	opts Options
}

// New returns a Validator with the given options.
func New(opts Options) *Validator {
	return &Validator{opts: opts}
}

// Markdown validates text with default options.
func Markdown(text string) Result {
	return New(Options{}).Markdown(text)
}

// IsValid reports whether text passes every check with default options.
func IsValid(text string) bool {
	return Markdown(text).Valid
}

// IsValid reports whether text passes every check.
func (v *Validator) IsValid(text string) bool {
	return v.Markdown(text).Valid
}

// Markdown runs every check over text and collects all violations.
func (v *Validator) Markdown(text string) Result {
	var c collector

	if !SectionSeparators(text) {
		c.add(Violation{Rule: RuleSectionSeparator, Message: MsgSectionSeparator})
	}
	if !Whitespace(text) {
		c.add(Violation{Rule: RuleWhitespace, Message: MsgWhitespace})
	}
	if !TextFormatting(text) {
		c.add(Violation{Rule: RuleInlineFormatting, Message: MsgInlineFormatting})
	}

	sections := strings.Split(text, "\n---\n")
	for i, section := range sections {
		num := i + 1

		// Newlines consumed by the separator still count towards a blank run.
		bounded := section
		if i > 0 {
			bounded = "\n" + bounded
		}
		if i < len(sections)-1 {
			bounded += "\n"
		}
		if !ParagraphSeparators(bounded) {
			c.add(Violation{
				Rule:    RuleParagraphSeparator,
				Section: num,
				Message: fmt.Sprintf("Section %d: Invalid paragraph separators - use exactly double newlines", num),
			})
		}

		for j, para := range dialect.SplitParagraphs(section) {
			kind := dialect.Detect(para)
			if !Paragraph(para, kind) {
				c.add(Violation{
					Rule:      RuleParagraphKind,
					Section:   num,
					Paragraph: j + 1,
					Kind:      kind.String(),
					Message:   fmt.Sprintf("Section %d, Paragraph %d: Invalid %s format", num, j+1, kind),
				})
			}
			if v.opts.StrictInline && !closedInline(para, kind) {
				c.add(Violation{
					Rule:      RuleInlineFormatting,
					Section:   num,
					Paragraph: j + 1,
					Kind:      kind.String(),
					Message:   fmt.Sprintf("Section %d, Paragraph %d: %s", num, j+1, MsgInlineFormatting),
				})
			}
		}
	}

	return c.result()
}

type collector struct {
	violations []Violation
}

func (c *collector) add(v Violation) {
	c.violations = append(c.violations, v)
}

func (c *collector) result() Result {
	res := Result{
		Valid:      len(c.violations) == 0,
		Errors:     make([]string, 0, len(c.violations)),
		Violations: c.violations,
	}
	if res.Violations == nil {
		res.Violations = []Violation{}
	}
	for _, v := range c.violations {
		res.Errors = append(res.Errors, v.Message)
	}
	return res
}

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	paddedSeparatorRe = regexp.MustCompile(`(?m)^(?:[ \t]+---[ \t]*|---[ \t]+)$`)
	trailingSpaceRe   = regexp.MustCompile(`(?m)[ \t\r\f\v]+$`)
	leftoverMarkerRe  = regexp.MustCompile("\\*|~~|==|`")

	pairedMarkerRes = []*regexp.Regexp{
		regexp.MustCompile(`\*\*.*?\*\*`),
		regexp.MustCompile(`\*.*?\*`),
		regexp.MustCompile("`.*?`"),
		regexp.MustCompile(`~~.*?~~`),
		regexp.MustCompile(`==.*?==`),
	}
)

// SectionSeparators reports whether every separator line is a bare "---".
// Lines of other dash counts are ordinary text and are not separators.
func SectionSeparators(text string) bool {
	return !paddedSeparatorRe.MatchString(text)
}

// ParagraphSeparators reports whether text is free of blank-line runs longer
// than one.
func ParagraphSeparators(text string) bool {
	return !strings.Contains(text, "\n\n\n")
}

// Whitespace reports whether text is free of trailing whitespace and tabs.
func Whitespace(text string) bool {
	return !strings.Contains(text, "\t") && !trailingSpaceRe.MatchString(text)
}

// TextFormatting reports whether each marker pair the inline patterns match
// opens and closes alike. A lone opener such as "**unclosed" never forms a
// match and so passes; Options.StrictInline flags those.
func TextFormatting(text string) bool {
	for _, re := range pairedMarkerRes {
		for _, m := range re.FindAllString(text, -1) {
			opener, closer := m[:len(m)/2], m[len(m)/2:]
			if opener != closer && !strings.Contains(m, opener[len(opener)-1:]) {
				return false
			}
		}
	}
	return true
}

// closedInline reports whether no markup markers remain once the inline
// spans of prose-bearing paragraphs are extracted.
func closedInline(text string, kind dialect.Kind) bool {
	switch kind {
	case dialect.KindCode, dialect.KindMedia, dialect.KindFootnote:
		return true
	}
	return !leftoverMarkerRe.MatchString(dialect.ExtractFormats(text).Text)
}
