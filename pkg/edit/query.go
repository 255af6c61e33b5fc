package edit

import (
	"slices"

	"github.com/yaklabco/haikal/pkg/dialect"
)

// Read-only queries. Optional kinds narrow a count to sections or paragraphs
// carrying any of the given kinds.

// IsEmpty reports whether text holds no paragraphs at all.
func (e *Editor) IsEmpty(text string) (bool, error) {
	doc, err := e.parser.Parse(text)
	if err != nil {
		return false, err
	}
	return doc.ParagraphCount() == 0, nil
}

// SectionCount counts the sections of text, or only those containing a
// paragraph of one of kinds.
func (e *Editor) SectionCount(text string, kinds ...dialect.Kind) (int, error) {
	doc, err := e.parser.Parse(text)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, s := range doc {
		if sectionMatches(s, kinds) {
			n++
		}
	}
	return n, nil
}

// ParagraphCount counts the paragraphs of a single section's text.
func (e *Editor) ParagraphCount(text string, kinds ...dialect.Kind) (int, error) {
	section, err := e.parser.ParseSection(text)
	if err != nil {
		return 0, err
	}
	return countParagraphs(section, kinds), nil
}

// TotalParagraphCount counts paragraphs across every section of text.
func (e *Editor) TotalParagraphCount(text string, kinds ...dialect.Kind) (int, error) {
	doc, err := e.parser.Parse(text)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, s := range doc {
		n += countParagraphs(s, kinds)
	}
	return n, nil
}

// FindSectionIndex returns the index of the first section containing a
// paragraph of kind, or -1.
func (e *Editor) FindSectionIndex(text string, kind dialect.Kind) (int, error) {
	doc, err := e.parser.Parse(text)
	if err != nil {
		return -1, err
	}
	return slices.IndexFunc(doc, func(s dialect.Section) bool { return s.Has(kind) }), nil
}

// FindSection returns the first section containing a paragraph of kind.
func (e *Editor) FindSection(text string, kind dialect.Kind) (dialect.Section, bool, error) {
	doc, err := e.parser.Parse(text)
	if err != nil {
		return nil, false, err
	}
	for _, s := range doc {
		if s.Has(kind) {
			return s, true, nil
		}
	}
	return nil, false, nil
}

// FindSections returns every section containing a paragraph of kind.
func (e *Editor) FindSections(text string, kind dialect.Kind) ([]dialect.Section, error) {
	doc, err := e.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	sections := []dialect.Section{}
	for _, s := range doc {
		if s.Has(kind) {
			sections = append(sections, s)
		}
	}
	return sections, nil
}

// FindParagraph returns the first paragraph of kind in document order.
func (e *Editor) FindParagraph(text string, kind dialect.Kind) (dialect.Paragraph, bool, error) {
	paragraphs, err := e.FindParagraphs(text, kind)
	if err != nil || len(paragraphs) == 0 {
		return nil, false, err
	}
	return paragraphs[0], true, nil
}

// FindParagraphs returns every paragraph of kind in document order.
// Paragraphs nested in quotes are not searched.
func (e *Editor) FindParagraphs(text string, kind dialect.Kind) ([]dialect.Paragraph, error) {
	doc, err := e.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	paragraphs := []dialect.Paragraph{}
	for _, s := range doc {
		for _, p := range s {
			if p.Kind() == kind {
				paragraphs = append(paragraphs, p)
			}
		}
	}
	return paragraphs, nil
}

// Headers returns every top-level header of text.
func (e *Editor) Headers(text string) ([]dialect.HeaderParagraph, error) {
	paragraphs, err := e.FindParagraphs(text, dialect.KindHeader)
	if err != nil {
		return nil, err
	}
	headers := make([]dialect.HeaderParagraph, 0, len(paragraphs))
	for _, p := range paragraphs {
		headers = append(headers, p.(dialect.HeaderParagraph))
	}
	return headers, nil
}

// HeadersByLevel returns the top-level headers of the given level.
func (e *Editor) HeadersByLevel(text string, level int) ([]dialect.HeaderParagraph, error) {
	headers, err := e.Headers(text)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(headers, func(h dialect.HeaderParagraph) bool { return h.Level != level }), nil
}

func sectionMatches(s dialect.Section, kinds []dialect.Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	return slices.ContainsFunc(kinds, s.Has)
}

func countParagraphs(s dialect.Section, kinds []dialect.Kind) int {
	if len(kinds) == 0 {
		return len(s)
	}
	n := 0
	for _, p := range s {
		if slices.Contains(kinds, p.Kind()) {
			n++
		}
	}
	return n
}
