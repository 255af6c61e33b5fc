// Package edit performs structural edits on dialect documents.
//
// Every edit is a full rebuild: the document (or section) is parsed, the
// tree is spliced, and the result is serialized again. Replacement content is
// parsed with the same parser, so what lands in the tree is always well
// formed. Content that parses to nothing removes the target on replace and is
// a no-op on insert.
package edit

import (
	"slices"
	"strings"

	"github.com/yaklabco/haikal/pkg/dialect"
)

const (
	opInsert  = "insert"
	opReplace = "replace"
	opRemove  = "remove"
)

// Editor edits documents using a specific parser.
type Editor struct {
	parser *dialect.Parser
}

// New returns an Editor. A nil parser selects dialect.DefaultParser.
func New(parser *dialect.Parser) *Editor {
	if parser == nil {
		parser = dialect.DefaultParser
	}
	return &Editor{parser: parser}
}

//nolint:gochecknoglobals // Stateless, read-only after init.
var defaultEditor = New(nil)

// Section edits.

// ReplaceSectionAt replaces the section at index with content parsed as a
// section.
func (e *Editor) ReplaceSectionAt(text string, index int, content string) (string, error) {
	doc, err := e.parser.Parse(text)
	if err != nil {
		return "", err
	}
	if err := checkIndex(opReplace, UnitSection, index, len(doc)); err != nil {
		return "", err
	}
	section, err := e.parser.ParseSection(content)
	if err != nil {
		return "", err
	}
	doc[index] = section
	return serializeDocument(doc), nil
}

// ReplaceFirstSection replaces the first section.
func (e *Editor) ReplaceFirstSection(text, content string) (string, error) {
	return e.ReplaceSectionAt(text, 0, content)
}

// ReplaceLastSection replaces the last section.
func (e *Editor) ReplaceLastSection(text, content string) (string, error) {
	n, err := e.SectionCount(text)
	if err != nil {
		return "", err
	}
	return e.ReplaceSectionAt(text, lastIndex(n), content)
}

// InsertSectionAt inserts content parsed as a section before index.
// An index equal to the section count appends.
func (e *Editor) InsertSectionAt(text string, index int, content string) (string, error) {
	doc, err := e.parser.Parse(text)
	if err != nil {
		return "", err
	}
	if err := checkIndex(opInsert, UnitSection, index, len(doc)+1); err != nil {
		return "", err
	}
	section, err := e.parser.ParseSection(content)
	if err != nil {
		return "", err
	}
	doc = slices.Insert(doc, index, section)
	return serializeDocument(doc), nil
}

// InsertFirstSection prepends a section.
func (e *Editor) InsertFirstSection(text, content string) (string, error) {
	return e.InsertSectionAt(text, 0, content)
}

// InsertLastSection appends a section.
func (e *Editor) InsertLastSection(text, content string) (string, error) {
	n, err := e.SectionCount(text)
	if err != nil {
		return "", err
	}
	return e.InsertSectionAt(text, n, content)
}

// RemoveSectionAt removes the section at index.
func (e *Editor) RemoveSectionAt(text string, index int) (string, error) {
	doc, err := e.parser.Parse(text)
	if err != nil {
		return "", err
	}
	if err := checkIndex(opRemove, UnitSection, index, len(doc)); err != nil {
		return "", err
	}
	doc = slices.Delete(doc, index, index+1)
	return serializeDocument(doc), nil
}

// RemoveFirstSection removes the first section.
func (e *Editor) RemoveFirstSection(text string) (string, error) {
	return e.RemoveSectionAt(text, 0)
}

// RemoveLastSection removes the last section.
func (e *Editor) RemoveLastSection(text string) (string, error) {
	n, err := e.SectionCount(text)
	if err != nil {
		return "", err
	}
	return e.RemoveSectionAt(text, lastIndex(n))
}

// Paragraph edits. These take the text of a single section.

// ReplaceParagraphAt replaces the paragraph at index with content parsed as
// a single paragraph.
func (e *Editor) ReplaceParagraphAt(text string, index int, content string) (string, error) {
	section, err := e.parser.ParseSection(text)
	if err != nil {
		return "", err
	}
	if err := checkIndex(opReplace, UnitParagraph, index, len(section)); err != nil {
		return "", err
	}
	para, err := e.parseParagraph(content)
	if err != nil {
		return "", err
	}
	if para == nil {
		section = slices.Delete(section, index, index+1)
	} else {
		section[index] = para
	}
	return dialect.SerializeSection(section), nil
}

// ReplaceFirstParagraph replaces the first paragraph.
func (e *Editor) ReplaceFirstParagraph(text, content string) (string, error) {
	return e.ReplaceParagraphAt(text, 0, content)
}

// ReplaceLastParagraph replaces the last paragraph.
func (e *Editor) ReplaceLastParagraph(text, content string) (string, error) {
	n, err := e.ParagraphCount(text)
	if err != nil {
		return "", err
	}
	return e.ReplaceParagraphAt(text, lastIndex(n), content)
}

// InsertParagraphAt inserts content parsed as a paragraph before index.
// An index equal to the paragraph count appends.
func (e *Editor) InsertParagraphAt(text string, index int, content string) (string, error) {
	section, err := e.parser.ParseSection(text)
	if err != nil {
		return "", err
	}
	if err := checkIndex(opInsert, UnitParagraph, index, len(section)+1); err != nil {
		return "", err
	}
	para, err := e.parseParagraph(content)
	if err != nil {
		return "", err
	}
	if para != nil {
		section = slices.Insert(section, index, para)
	}
	return dialect.SerializeSection(section), nil
}

// InsertFirstParagraph prepends a paragraph.
func (e *Editor) InsertFirstParagraph(text, content string) (string, error) {
	return e.InsertParagraphAt(text, 0, content)
}

// InsertLastParagraph appends a paragraph.
func (e *Editor) InsertLastParagraph(text, content string) (string, error) {
	n, err := e.ParagraphCount(text)
	if err != nil {
		return "", err
	}
	return e.InsertParagraphAt(text, n, content)
}

// RemoveParagraphAt removes the paragraph at index.
func (e *Editor) RemoveParagraphAt(text string, index int) (string, error) {
	section, err := e.parser.ParseSection(text)
	if err != nil {
		return "", err
	}
	if err := checkIndex(opRemove, UnitParagraph, index, len(section)); err != nil {
		return "", err
	}
	section = slices.Delete(section, index, index+1)
	return dialect.SerializeSection(section), nil
}

// RemoveFirstParagraph removes the first paragraph.
func (e *Editor) RemoveFirstParagraph(text string) (string, error) {
	return e.RemoveParagraphAt(text, 0)
}

// RemoveLastParagraph removes the last paragraph.
func (e *Editor) RemoveLastParagraph(text string) (string, error) {
	n, err := e.ParagraphCount(text)
	if err != nil {
		return "", err
	}
	return e.RemoveParagraphAt(text, lastIndex(n))
}

// parseParagraph parses content as one paragraph. It returns nil for blank
// content and for content that parses to an empty paragraph.
func (e *Editor) parseParagraph(content string) (dialect.Paragraph, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil //nolint:nilnil // Blank content is not an error.
	}
	para, err := e.parser.ParseParagraph(content)
	if err != nil {
		return nil, err
	}
	if dialect.IsEmpty(para) {
		return nil, nil //nolint:nilnil // Same as blank content.
	}
	return para, nil
}

// checkIndex validates 0 <= index < length. Inserts pass length+1.
func checkIndex(op, unit string, index, length int) error {
	if index < 0 || index >= length {
		if op == opInsert {
			length--
		}
		return &IndexError{Op: op, Unit: unit, Index: index, Length: length}
	}
	return nil
}

// lastIndex keeps an empty target at index 0 so the bounds check reports it
// as empty rather than as index -1.
func lastIndex(n int) int {
	return max(n-1, 0)
}

// serializeDocument drops sections left empty by a splice.
func serializeDocument(doc dialect.Document) string {
	doc = slices.DeleteFunc(doc, func(s dialect.Section) bool { return len(s) == 0 })
	return dialect.Serialize(doc)
}
