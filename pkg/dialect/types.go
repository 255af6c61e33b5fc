// Package dialect implements the Haikal markdown dialect: a strict, constrained
// grammar with an unambiguous document model.
//
// A Document is an ordered list of Sections separated by a "---" line. A Section
// is an ordered list of Paragraphs separated by a blank line. Every Paragraph is
// exactly one of eight kinds, and inline emphasis inside text is modelled as a
// plain string plus a list of half-open format spans.
//
// All values produced by this package are plain immutable data. Every function
// is pure and safe for concurrent use.
package dialect

// Kind identifies which variant of Paragraph is active.
type Kind uint8

// Paragraph kinds, in detection order after the text fallback.
const (
	KindText Kind = iota
	KindHeader
	KindList
	KindMedia
	KindFootnote
	KindQuote
	KindCode
	KindTable
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [...]string{
	KindText:     "text",
	KindHeader:   "header",
	KindList:     "list",
	KindMedia:    "media",
	KindFootnote: "footnote",
	KindQuote:    "quote",
	KindCode:     "code",
	KindTable:    "table",
}

// Kinds returns every paragraph kind.
func Kinds() []Kind {
	return []Kind{KindText, KindHeader, KindList, KindMedia, KindFootnote, KindQuote, KindCode, KindTable}
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind resolves a kind name such as "header" or "table".
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return KindText, false
}

// ListType distinguishes bullet, numbered, and task lists.
type ListType string

const (
	ListBullet ListType = "bullet"
	ListNumber ListType = "number"
	ListTask   ListType = "task"
)

// MediaType is derived from the media path's extension.
// The empty value means the extension is not recognized.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaGIF   MediaType = "gif"
	MediaVideo MediaType = "video"
	MediaAudio MediaType = "audio"
)

// Language is a code fence language tag.
type Language string

// Languages with syntax highlighting support. The parser accepts any tag;
// these are the ones the dialect documents.
const (
	LangC          Language = "c"
	LangCPP        Language = "cpp"
	LangCSharp     Language = "csharp"
	LangJava       Language = "java"
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
	LangRuby       Language = "ruby"
	LangGo         Language = "go"
	LangRust       Language = "rust"
)

// Languages returns the documented language tags.
func Languages() []Language {
	return []Language{LangC, LangCPP, LangCSharp, LangJava, LangJavaScript, LangPython, LangRuby, LangGo, LangRust}
}

// Known reports whether l is one of the documented language tags.
func (l Language) Known() bool {
	for _, known := range Languages() {
		if l == known {
			return true
		}
	}
	return false
}

// Paragraph is the closed sum type over the eight paragraph kinds.
// Only types in this package implement it.
type Paragraph interface {
	Kind() Kind
	paragraph()
}

// Section is an ordered list of paragraphs.
type Section []Paragraph

// Document is an ordered list of sections.
type Document []Section

// TextParagraph is a plain paragraph of formatted text.
type TextParagraph struct {
	Content Content `json:"content"`
}

// HeaderParagraph is an ATX header of level 1 to 6.
type HeaderParagraph struct {
	Level   int     `json:"level"`
	Content Content `json:"content"`
}

// ListParagraph holds one Content per list item.
type ListParagraph struct {
	ListType ListType  `json:"listType"`
	Items    []Content `json:"contents"`
}

// MediaParagraph references an image, gif, video, or audio file.
type MediaParagraph struct {
	Path string `json:"path"`
	Alt  string `json:"alt,omitempty"`

	// URL is set when the media is wrapped in a link.
	URL string `json:"url,omitempty"`

	// MediaType and Extension are empty when the extension is unknown.
	MediaType MediaType `json:"mediaType,omitempty"`
	Extension string    `json:"extension,omitempty"`
}

// Footnote is a single footnote definition. ID is the label between "[^"
// and "]" as written. Number holds its leading integer, or zero when the
// label is not numeric.
type Footnote struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// FootnoteParagraph is a block of footnote definitions.
type FootnoteParagraph struct {
	Footnotes []Footnote `json:"list"`
}

// QuoteParagraph contains nested paragraphs of any kind.
type QuoteParagraph struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

// CodeParagraph is a fenced code block. Text is kept verbatim.
type CodeParagraph struct {
	Text     string   `json:"text"`
	Language Language `json:"language,omitempty"`
}

// TableParagraph is a pipe table. Rows may differ in cell count.
type TableParagraph struct {
	Rows [][]Content `json:"rows"`
}

func (TextParagraph) Kind() Kind     { return KindText }
func (HeaderParagraph) Kind() Kind   { return KindHeader }
func (ListParagraph) Kind() Kind     { return KindList }
func (MediaParagraph) Kind() Kind    { return KindMedia }
func (FootnoteParagraph) Kind() Kind { return KindFootnote }
func (QuoteParagraph) Kind() Kind    { return KindQuote }
func (CodeParagraph) Kind() Kind     { return KindCode }
func (TableParagraph) Kind() Kind    { return KindTable }

func (TextParagraph) paragraph()     {}
func (HeaderParagraph) paragraph()   {}
func (ListParagraph) paragraph()     {}
func (MediaParagraph) paragraph()    {}
func (FootnoteParagraph) paragraph() {}
func (QuoteParagraph) paragraph()    {}
func (CodeParagraph) paragraph()     {}
func (TableParagraph) paragraph()    {}

// ParagraphCount returns the total number of paragraphs across all sections.
func (d Document) ParagraphCount() int {
	n := 0
	for _, s := range d {
		n += len(s)
	}
	return n
}

// Has reports whether the section contains a paragraph of the given kind.
func (s Section) Has(kind Kind) bool {
	for _, p := range s {
		if p.Kind() == kind {
			return true
		}
	}
	return false
}
