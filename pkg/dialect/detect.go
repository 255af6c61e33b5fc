package dialect

import (
	"regexp"
	"strings"
)

// Mode selects which acceptance rules Classify applies.
type Mode uint8

const (
	// Strict is the detection used by the parser and the validator.
	Strict Mode = iota

	// Lenient additionally recognizes the loose forms the formatter repairs.
	Lenient
)

// detectRule is one row of the classification cascade. When lenient is nil
// the strict matcher is used in both modes.
type detectRule struct {
	kind    Kind
	strict  func(string) bool
	lenient func(string) bool
}

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	headerStartRe   = regexp.MustCompile(`^#{1,6}\s`)
	quoteStartRe    = regexp.MustCompile(`^>+\s`)
	quoteLooseRe    = regexp.MustCompile(`^>`)
	listStartRe     = regexp.MustCompile(`^-\s(\[([ x])\])?|^\d+\.\s`)
	listLooseRe     = regexp.MustCompile(`^[-*+]\s|^\d+\.\s`)
	mediaStartRe    = regexp.MustCompile(`^\[?!\[.*\]\(.+\)`)
	footnoteStartRe = regexp.MustCompile(`^\[?\^.+\]:`)
	tableStartRe    = regexp.MustCompile(`^\|.+\|`)
)

// detectRules is the single authoritative cascade. The first matching rule wins.
//
// Named leniency exceptions:
//   - quote: Lenient accepts ">" without a following space.
//   - list: Lenient accepts "*" and "+" bullets. Strict does not, so "* item"
//     parses as text.
//
//nolint:gochecknoglobals // Read-only lookup table.
var detectRules = []detectRule{
	{kind: KindHeader, strict: headerStartRe.MatchString},
	{kind: KindQuote, strict: quoteStartRe.MatchString, lenient: quoteLooseRe.MatchString},
	{kind: KindList, strict: listStartRe.MatchString, lenient: listLooseRe.MatchString},
	{kind: KindMedia, strict: mediaStartRe.MatchString},
	{kind: KindFootnote, strict: footnoteStartRe.MatchString},
	{kind: KindCode, strict: isFenced},
	{kind: KindTable, strict: tableStartRe.MatchString},
}

func isFenced(text string) bool {
	return strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```")
}

// Detect classifies a paragraph-sized block using the strict cascade.
// Text is the fallback kind.
func Detect(text string) Kind {
	return Classify(text, Strict)
}

// Classify classifies a paragraph-sized block in the given mode.
func Classify(text string, mode Mode) Kind {
	for _, rule := range detectRules {
		match := rule.strict
		if mode == Lenient && rule.lenient != nil {
			match = rule.lenient
		}
		if match(text) {
			return rule.kind
		}
	}
	return KindText
}
