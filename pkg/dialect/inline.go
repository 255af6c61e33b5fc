package dialect

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// FormatType is an inline formatting kind.
type FormatType uint8

const (
	FormatBold FormatType = iota
	FormatItalic
	FormatStrikethrough
	FormatHighlight
	FormatCode
	FormatSubscript
	FormatSuperscript
)

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	formatNames = [...]string{
		FormatBold:          "bold",
		FormatItalic:        "italic",
		FormatStrikethrough: "strikethrough",
		FormatHighlight:     "highlight",
		FormatCode:          "code",
		FormatSubscript:     "subscript",
		FormatSuperscript:   "superscript",
	}
	formatMarkers = [...]string{
		FormatBold:          "**",
		FormatItalic:        "*",
		FormatStrikethrough: "~~",
		FormatHighlight:     "==",
		FormatCode:          "`",
		FormatSubscript:     "~",
		FormatSuperscript:   "^",
	}
)

func (t FormatType) String() string {
	if int(t) < len(formatNames) {
		return formatNames[t]
	}
	return "unknown"
}

// Marker returns the markup glyphs that open and close the format.
func (t FormatType) Marker() string {
	if int(t) < len(formatMarkers) {
		return formatMarkers[t]
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler.
func (t FormatType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FormatType) UnmarshalText(b []byte) error {
	for i, n := range formatNames {
		if n == string(b) {
			*t = FormatType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown format type %q", b)
}

// TextFormat is a half-open span [Start, End) over the plain text of a Content,
// measured in characters (runes).
type TextFormat struct {
	Type  FormatType `json:"type"`
	Start int        `json:"start"`
	End   int        `json:"end"`
}

// Content is plain text with its inline formatting lifted out into spans.
type Content struct {
	Text    string       `json:"text"`
	Formats []TextFormat `json:"formats"`
}

type inlinePattern struct {
	re        *regexp.Regexp
	typ       FormatType
	markerLen int
}

// inlinePatterns run in priority order. Bold must precede italic since both
// use "*".
//
//nolint:gochecknoglobals // Compiled once, read-only.
var inlinePatterns = []inlinePattern{
	{re: regexp.MustCompile(`\*\*(.*?)\*\*`), typ: FormatBold, markerLen: 2},
	{re: regexp.MustCompile(`\*(.*?)\*`), typ: FormatItalic, markerLen: 1},
	{re: regexp.MustCompile("`(.*?)`"), typ: FormatCode, markerLen: 1},
	{re: regexp.MustCompile(`~~(.*?)~~`), typ: FormatStrikethrough, markerLen: 2},
	{re: regexp.MustCompile(`==(.*?)==`), typ: FormatHighlight, markerLen: 2},
}

// ExtractFormats strips inline markup from text and records each stripped
// span as a TextFormat in the coordinate space of the returned plain text.
func ExtractFormats(text string) Content {
	formats := []TextFormat{}

	// Offsets are tracked in bytes while markup is removed and converted to
	// rune offsets once the final text is known.
	for _, pat := range inlinePatterns {
		pos := 0
		for pos <= len(text) {
			loc := pat.re.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				break
			}
			matchStart, matchEnd := pos+loc[0], pos+loc[1]
			inner := text[pos+loc[2] : pos+loc[3]]

			for i := range formats {
				formats[i].Start = shiftOffset(formats[i].Start, matchStart, pat.markerLen, len(inner))
				formats[i].End = shiftOffset(formats[i].End, matchStart, pat.markerLen, len(inner))
			}

			text = text[:matchStart] + inner + text[matchEnd:]
			formats = append(formats, TextFormat{
				Type:  pat.typ,
				Start: matchStart,
				End:   matchStart + len(inner),
			})
			pos = matchStart + len(inner)
		}
	}

	for i := range formats {
		formats[i].Start = utf8.RuneCountInString(text[:formats[i].Start])
		formats[i].End = utf8.RuneCountInString(text[:formats[i].End])
	}

	return Content{Text: text, Formats: formats}
}

// shiftOffset maps an offset from before to after the removal of a marker
// pair of length l around c bytes of content starting at p.
func shiftOffset(x, p, l, c int) int {
	switch {
	case x <= p:
		return x
	case x < p+l:
		return p
	case x <= p+l+c:
		return x - l
	case x < p+2*l+c:
		return p + c
	default:
		return x - 2*l
	}
}

// ApplyFormats re-inserts markup for formats into plain text. It is the
// inverse of ExtractFormats. Formats whose span falls outside text are ignored.
//
// Empty spans are written as an adjacent marker pair, after any spans closing
// at the same offset and before any opening there.
func ApplyFormats(text string, formats []TextFormat) string {
	if len(formats) == 0 {
		return text
	}

	runes := []rune(text)
	opens := make([][]FormatType, len(runes)+1)
	closes := make([][]FormatType, len(runes)+1)
	empties := make([][]FormatType, len(runes)+1)

	sorted := make([]TextFormat, len(formats))
	copy(sorted, formats)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	for _, f := range sorted {
		if f.Start < 0 || f.End > len(runes) || f.Start > f.End {
			continue
		}
		if f.Start == f.End {
			empties[f.Start] = append(empties[f.Start], f.Type)
			continue
		}
		opens[f.Start] = append(opens[f.Start], f.Type)
		// Last opened, first closed.
		closes[f.End] = append([]FormatType{f.Type}, closes[f.End]...)
	}

	var b strings.Builder
	b.Grow(len(text) + 4*len(formats))
	for i := 0; i <= len(runes); i++ {
		for _, t := range closes[i] {
			b.WriteString(t.Marker())
		}
		for _, t := range empties[i] {
			b.WriteString(t.Marker())
			b.WriteString(t.Marker())
		}
		for _, t := range opens[i] {
			b.WriteString(t.Marker())
		}
		if i < len(runes) {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}
