package dialect

import (
	"strconv"
	"strings"
)

// Separators of the canonical form.
const (
	ParagraphSeparator = "\n\n"
	SectionSeparator   = "\n\n---\n\n"
)

// Serialize renders a document in canonical form.
func Serialize(doc Document) string {
	sections := make([]string, len(doc))
	for i, s := range doc {
		sections[i] = SerializeSection(s)
	}
	return strings.Join(sections, SectionSeparator)
}

// SerializeSection renders a section in canonical form.
func SerializeSection(section Section) string {
	paragraphs := make([]string, len(section))
	for i, p := range section {
		paragraphs[i] = SerializeParagraph(p)
	}
	return strings.Join(paragraphs, ParagraphSeparator)
}

// SerializeContent re-applies inline markup to a Content.
func SerializeContent(c Content) string {
	return ApplyFormats(c.Text, c.Formats)
}

// SerializeParagraph renders a single paragraph in canonical form.
// Task list items always render unchecked.
func SerializeParagraph(p Paragraph) string {
	switch p := p.(type) {
	case TextParagraph:
		return SerializeContent(p.Content)

	case HeaderParagraph:
		return strings.Repeat("#", p.Level) + " " + SerializeContent(p.Content)

	case ListParagraph:
		lines := make([]string, len(p.Items))
		for i, item := range p.Items {
			lines[i] = listMarker(p.ListType, i) + SerializeContent(item)
		}
		return strings.Join(lines, "\n")

	case MediaParagraph:
		media := "![" + p.Alt + "](" + p.Path + ")"
		if p.URL != "" {
			return "[" + media + "](" + p.URL + ")"
		}
		return media

	case FootnoteParagraph:
		lines := make([]string, len(p.Footnotes))
		for i, fn := range p.Footnotes {
			lines[i] = "[^" + fn.Label() + "]: " + fn.Text
		}
		return strings.Join(lines, "\n")

	case QuoteParagraph:
		return serializeQuote(p)

	case CodeParagraph:
		if p.Text == "" {
			return "```" + string(p.Language) + "\n```"
		}
		return "```" + string(p.Language) + "\n" + p.Text + "\n```"

	case TableParagraph:
		lines := make([]string, len(p.Rows))
		for i, row := range p.Rows {
			cells := make([]string, len(row))
			for j, cell := range row {
				cells[j] = SerializeContent(cell)
			}
			lines[i] = "| " + strings.Join(cells, " | ") + " |"
		}
		return strings.Join(lines, "\n")

	default:
		return ""
	}
}

// Label returns the footnote id, falling back to its number.
func (f Footnote) Label() string {
	if f.ID != "" {
		return f.ID
	}
	return strconv.Itoa(f.Number)
}

func listMarker(listType ListType, index int) string {
	switch listType {
	case ListNumber:
		return strconv.Itoa(index+1) + ". "
	case ListTask:
		return "- [ ] "
	default:
		return "- "
	}
}

// serializeQuote prefixes every line of the nested paragraphs with "> ".
// Nested paragraphs are joined by a bare ">" line so the quote re-parses as
// one paragraph.
func serializeQuote(q QuoteParagraph) string {
	var lines []string
	for i, inner := range q.Paragraphs {
		if i > 0 {
			lines = append(lines, ">")
		}
		for _, line := range strings.Split(SerializeParagraph(inner), "\n") {
			if line == "" {
				lines = append(lines, ">")
				continue
			}
			lines = append(lines, "> "+line)
		}
	}
	return strings.Join(lines, "\n")
}
