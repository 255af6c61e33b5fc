package dialect

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// DefaultMaxQuoteDepth bounds quote nesting for DefaultParser.
const DefaultMaxQuoteDepth = 16

// Parser turns dialect text into a Document. The zero value is not usable;
// use NewParser or DefaultParser.
type Parser struct {
	// MaxQuoteDepth is the deepest quote nesting accepted. Deeper input fails
	// with a FormatError of kind quote.
	MaxQuoteDepth int
}

// NewParser returns a Parser with the given quote depth limit. A non-positive
// limit selects DefaultMaxQuoteDepth.
func NewParser(maxQuoteDepth int) *Parser {
	if maxQuoteDepth <= 0 {
		maxQuoteDepth = DefaultMaxQuoteDepth
	}
	return &Parser{MaxQuoteDepth: maxQuoteDepth}
}

// DefaultParser backs the package-level parse functions.
//
//nolint:gochecknoglobals // Stateless, read-only after init.
var DefaultParser = NewParser(DefaultMaxQuoteDepth)

type parseFunc func(p *Parser, text string, depth int) (Paragraph, error)

// parsers maps each kind to its parser. Every Kind must have an entry.
//
//nolint:gochecknoglobals // Read-only lookup table.
var parsers map[Kind]parseFunc

func init() {
	parsers = map[Kind]parseFunc{
		KindText:     func(_ *Parser, text string, _ int) (Paragraph, error) { return ParseText(text), nil },
		KindHeader:   func(_ *Parser, text string, _ int) (Paragraph, error) { return ParseHeader(text) },
		KindList:     func(_ *Parser, text string, _ int) (Paragraph, error) { return ParseList(text), nil },
		KindMedia:    func(_ *Parser, text string, _ int) (Paragraph, error) { return ParseMedia(text) },
		KindFootnote: func(_ *Parser, text string, _ int) (Paragraph, error) { return ParseFootnotes(text) },
		KindQuote:    (*Parser).parseQuote,
		KindCode:     func(_ *Parser, text string, _ int) (Paragraph, error) { return ParseCode(text) },
		KindTable:    func(_ *Parser, text string, _ int) (Paragraph, error) { return ParseTable(text), nil },
	}
}

// Parse parses a whole document. Empty sections are dropped.
func Parse(text string) (Document, error) {
	return DefaultParser.Parse(text)
}

// ParseSection parses the text of a single section.
func ParseSection(text string) (Section, error) {
	return DefaultParser.ParseSection(text)
}

// ParseParagraph detects the kind of a single paragraph and parses it.
func ParseParagraph(text string) (Paragraph, error) {
	return DefaultParser.ParseParagraph(text)
}

// Parse parses a whole document. Empty sections are dropped.
func (p *Parser) Parse(text string) (Document, error) {
	doc := Document{}
	for i, raw := range SplitSections(text) {
		section, err := p.parseSection(raw, 0)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i+1, err)
		}
		if len(section) > 0 {
			doc = append(doc, section)
		}
	}
	return doc, nil
}

// ParseSection parses the text of a single section.
func (p *Parser) ParseSection(text string) (Section, error) {
	return p.parseSection(text, 0)
}

// ParseParagraph detects the kind of a single paragraph and parses it.
func (p *Parser) ParseParagraph(text string) (Paragraph, error) {
	return p.parseParagraph(text, 0)
}

func (p *Parser) parseSection(text string, depth int) (Section, error) {
	raw := SplitParagraphs(text)
	section := make(Section, 0, len(raw))
	for _, block := range raw {
		para, err := p.parseParagraph(block, depth)
		if err != nil {
			return nil, err
		}
		if IsEmpty(para) {
			continue
		}
		section = append(section, para)
	}
	return section, nil
}

// IsEmpty reports paragraphs that serialize to nothing: lists without items
// and quotes without paragraphs. The parser drops them.
func IsEmpty(p Paragraph) bool {
	switch p := p.(type) {
	case ListParagraph:
		return len(p.Items) == 0
	case QuoteParagraph:
		return len(p.Paragraphs) == 0
	default:
		return false
	}
}

func (p *Parser) parseParagraph(text string, depth int) (Paragraph, error) {
	return parsers[Detect(text)](p, text, depth)
}

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	headerRe       = regexp.MustCompile(`^(#{1,6})\s(.+)$`)
	numberedRe     = regexp.MustCompile(`^\d+\.`)
	listMarkerRe   = regexp.MustCompile(`^\s*(?:[-*+]\s+|\d+[.)]\s+)?`)
	checkboxRe     = regexp.MustCompile(`^\[[ x]\]\s?`)
	linkedMediaRe  = regexp.MustCompile(`^\[!\[(.*?)\]\((.+?)\)\]\((.+?)\)$`)
	mediaRe        = regexp.MustCompile(`^!\[(.*?)\]\((.+?)\)$`)
	footnoteLineRe = regexp.MustCompile(`^\[?\^(.+?)\]:\s*(.+)$`)
	quoteMarkerRe  = regexp.MustCompile(`^>\s?`)
	codeRe         = regexp.MustCompile("(?s)^```(\\w+)?\\n?(.*?)\\n?```$")
	delimiterRowRe = regexp.MustCompile(`^[|\s\-:]+$`)
)

// mediaTypes maps a lowercase file extension to its media type.
//
//nolint:gochecknoglobals // Read-only lookup table.
var mediaTypes = map[string]MediaType{
	"png":  MediaImage,
	"jpg":  MediaImage,
	"jpeg": MediaImage,
	"webp": MediaImage,
	"gif":  MediaGIF,
	"mp4":  MediaVideo,
	"webm": MediaVideo,
	"avi":  MediaVideo,
	"mov":  MediaVideo,
	"mp3":  MediaAudio,
	"wav":  MediaAudio,
	"ogg":  MediaAudio,
	"flac": MediaAudio,
}

// ParseText parses a text paragraph. It never fails.
func ParseText(text string) TextParagraph {
	return TextParagraph{Content: ExtractFormats(text)}
}

// ParseHeader parses a single-line "# title" header.
func ParseHeader(text string) (HeaderParagraph, error) {
	m := headerRe.FindStringSubmatch(text)
	if m == nil {
		return HeaderParagraph{}, &FormatError{Kind: KindHeader, Text: text}
	}
	return HeaderParagraph{
		Level:   len(m[1]),
		Content: ExtractFormats(m[2]),
	}, nil
}

// ParseList parses a list. The list type comes from the first non-blank line;
// every line has its marker stripped regardless of which marker it carries.
// A checkbox is stripped only in task lists, and blank items are dropped.
func ParseList(text string) ListParagraph {
	lines := strings.Split(text, "\n")
	for len(lines) > 1 && stripListMarker(lines[0]) == "" {
		lines = lines[1:]
	}

	listType := ListBullet
	switch {
	case numberedRe.MatchString(lines[0]):
		listType = ListNumber
	case checkboxRe.MatchString(stripListMarker(lines[0])):
		listType = ListTask
	}

	items := make([]Content, 0, len(lines))
	for _, line := range lines {
		item := stripListMarker(line)
		if listType == ListTask {
			item = checkboxRe.ReplaceAllString(item, "")
		}
		if item == "" {
			continue
		}
		items = append(items, ExtractFormats(item))
	}

	return ListParagraph{ListType: listType, Items: items}
}

func stripListMarker(line string) string {
	return strings.TrimRightFunc(listMarkerRe.ReplaceAllString(line, ""), unicode.IsSpace)
}

// ParseMedia parses "![alt](path)" or the linked form "[![alt](path)](url)".
func ParseMedia(text string) (MediaParagraph, error) {
	var media MediaParagraph

	if m := linkedMediaRe.FindStringSubmatch(text); m != nil {
		media = MediaParagraph{Alt: m[1], Path: m[2], URL: m[3]}
	} else if m := mediaRe.FindStringSubmatch(text); m != nil {
		media = MediaParagraph{Alt: m[1], Path: m[2]}
	} else {
		return MediaParagraph{}, &FormatError{Kind: KindMedia, Text: text}
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(media.Path), "."))
	if mt, ok := mediaTypes[ext]; ok {
		media.MediaType = mt
		media.Extension = ext
	}

	return media, nil
}

// ParseFootnotes parses footnote definitions, one per line. Lines that are
// not "[^id]: text" are skipped; it fails only when no line matches.
func ParseFootnotes(text string) (FootnoteParagraph, error) {
	var footnotes []Footnote

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := footnoteLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		footnotes = append(footnotes, Footnote{ID: m[1], Number: leadingInt(m[1]), Text: m[2]})
	}

	if len(footnotes) == 0 {
		return FootnoteParagraph{}, &FormatError{Kind: KindFootnote, Text: text}
	}
	return FootnoteParagraph{Footnotes: footnotes}, nil
}

// leadingInt parses the integer prefix of s, ignoring anything after it. It
// returns zero when s has no such prefix.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// ParseQuote strips one quote marker per line and parses the remainder as a
// section, so a quote may hold several paragraphs of any kind.
func ParseQuote(text string) (QuoteParagraph, error) {
	para, err := DefaultParser.parseQuote(text, 0)
	if err != nil {
		return QuoteParagraph{}, err
	}
	return para.(QuoteParagraph), nil
}

func (p *Parser) parseQuote(text string, depth int) (Paragraph, error) {
	if depth >= p.MaxQuoteDepth {
		return nil, &FormatError{
			Kind:   KindQuote,
			Text:   text,
			Reason: fmt.Sprintf("nesting deeper than %d", p.MaxQuoteDepth),
		}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = quoteMarkerRe.ReplaceAllString(line, "")
	}

	inner, err := p.parseSection(strings.Join(lines, "\n"), depth+1)
	if err != nil {
		return nil, err
	}
	return QuoteParagraph{Paragraphs: inner}, nil
}

// ParseCode parses a fenced code block with an optional language tag.
func ParseCode(text string) (CodeParagraph, error) {
	m := codeRe.FindStringSubmatch(text)
	if m == nil {
		return CodeParagraph{}, &FormatError{Kind: KindCode, Text: text}
	}
	return CodeParagraph{Language: Language(m[1]), Text: m[2]}, nil
}

// ParseTable parses a pipe table. A delimiter row after the first row is
// dropped, and the empty cells produced by the outer pipes are trimmed.
func ParseTable(text string) TableParagraph {
	var rows [][]Content

	i := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if i > 0 && delimiterRowRe.MatchString(line) {
			i++
			continue
		}
		i++

		cells := strings.Split(line, "|")
		if len(cells) > 0 && strings.TrimSpace(cells[0]) == "" {
			cells = cells[1:]
		}
		if len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" {
			cells = cells[:len(cells)-1]
		}

		row := make([]Content, 0, len(cells))
		for _, cell := range cells {
			row = append(row, ExtractFormats(strings.TrimSpace(cell)))
		}
		rows = append(rows, row)
	}

	return TableParagraph{Rows: rows}
}
