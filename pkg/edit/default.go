package edit

import "github.com/yaklabco/haikal/pkg/dialect"

// The functions below use an Editor backed by dialect.DefaultParser.

func ReplaceSectionAt(text string, index int, content string) (string, error) {
	return defaultEditor.ReplaceSectionAt(text, index, content)
}

func ReplaceFirstSection(text, content string) (string, error) {
	return defaultEditor.ReplaceFirstSection(text, content)
}

func ReplaceLastSection(text, content string) (string, error) {
	return defaultEditor.ReplaceLastSection(text, content)
}

func InsertSectionAt(text string, index int, content string) (string, error) {
	return defaultEditor.InsertSectionAt(text, index, content)
}

func InsertFirstSection(text, content string) (string, error) {
	return defaultEditor.InsertFirstSection(text, content)
}

func InsertLastSection(text, content string) (string, error) {
	return defaultEditor.InsertLastSection(text, content)
}

func RemoveSectionAt(text string, index int) (string, error) {
	return defaultEditor.RemoveSectionAt(text, index)
}

func RemoveFirstSection(text string) (string, error) {
	return defaultEditor.RemoveFirstSection(text)
}

func RemoveLastSection(text string) (string, error) {
	return defaultEditor.RemoveLastSection(text)
}

func ReplaceParagraphAt(text string, index int, content string) (string, error) {
	return defaultEditor.ReplaceParagraphAt(text, index, content)
}

func ReplaceFirstParagraph(text, content string) (string, error) {
	return defaultEditor.ReplaceFirstParagraph(text, content)
}

func ReplaceLastParagraph(text, content string) (string, error) {
	return defaultEditor.ReplaceLastParagraph(text, content)
}

func InsertParagraphAt(text string, index int, content string) (string, error) {
	return defaultEditor.InsertParagraphAt(text, index, content)
}

func InsertFirstParagraph(text, content string) (string, error) {
	return defaultEditor.InsertFirstParagraph(text, content)
}

func InsertLastParagraph(text, content string) (string, error) {
	return defaultEditor.InsertLastParagraph(text, content)
}

func RemoveParagraphAt(text string, index int) (string, error) {
	return defaultEditor.RemoveParagraphAt(text, index)
}

func RemoveFirstParagraph(text string) (string, error) {
	return defaultEditor.RemoveFirstParagraph(text)
}

func RemoveLastParagraph(text string) (string, error) {
	return defaultEditor.RemoveLastParagraph(text)
}

func IsEmpty(text string) (bool, error) {
	return defaultEditor.IsEmpty(text)
}

func SectionCount(text string, kinds ...dialect.Kind) (int, error) {
	return defaultEditor.SectionCount(text, kinds...)
}

func ParagraphCount(text string, kinds ...dialect.Kind) (int, error) {
	return defaultEditor.ParagraphCount(text, kinds...)
}

func TotalParagraphCount(text string, kinds ...dialect.Kind) (int, error) {
	return defaultEditor.TotalParagraphCount(text, kinds...)
}

func FindSectionIndex(text string, kind dialect.Kind) (int, error) {
	return defaultEditor.FindSectionIndex(text, kind)
}

func FindSection(text string, kind dialect.Kind) (dialect.Section, bool, error) {
	return defaultEditor.FindSection(text, kind)
}

func FindSections(text string, kind dialect.Kind) ([]dialect.Section, error) {
	return defaultEditor.FindSections(text, kind)
}

func FindParagraph(text string, kind dialect.Kind) (dialect.Paragraph, bool, error) {
	return defaultEditor.FindParagraph(text, kind)
}

func FindParagraphs(text string, kind dialect.Kind) ([]dialect.Paragraph, error) {
	return defaultEditor.FindParagraphs(text, kind)
}

func Headers(text string) ([]dialect.HeaderParagraph, error) {
	return defaultEditor.Headers(text)
}

func HeadersByLevel(text string, level int) ([]dialect.HeaderParagraph, error) {
	return defaultEditor.HeadersByLevel(text, level)
}
