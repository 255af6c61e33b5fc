package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/haikal/pkg/dialect"
	"github.com/yaklabco/haikal/pkg/validate"
)

func TestSectionSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"Section 1\n---\nSection 2\n---\nSection 3", true},
		{"Section 1\n--\nSection 2", true},
		{"Section 1\n----\nSection 2", true},
		{"Section 1\n\n---\n\nSection 2", true},
		{"Just one section", true},
		{"Section 1\n  ---\nSection 2", false},
		{"Section 1\n---  \nSection 2", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validate.SectionSeparators(tt.input), "%q", tt.input)
	}
}

func TestWhitespace(t *testing.T) {
	t.Parallel()

	assert.True(t, validate.Whitespace("Clean text\nWith newlines"))
	assert.True(t, validate.Whitespace("Text with  double spaces"))
	assert.False(t, validate.Whitespace("Text with trailing space "))
	assert.False(t, validate.Whitespace("Line 1 \nLine 2"))
	assert.False(t, validate.Whitespace("Text with\ttab"))
	assert.False(t, validate.Whitespace("\tTab at start"))
}

func TestTextFormattingIsLenient(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"**bold** text",
		"**bold *and italic* together**",
		"**unclosed bold",
		"*unclosed italic",
		"`unclosed code",
		"~~unclosed strike",
		"==unclosed highlight",
	}
	for _, in := range inputs {
		assert.True(t, validate.TextFormatting(in), in)
	}
}

func TestKindChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		check func(string) bool
		valid []string
		bad   []string
	}{
		{
			name:  "header",
			check: validate.Header,
			valid: []string{"# Header 1", "###### Header 6"},
			bad:   []string{"####### Too many hashes", "#No space", "# ", "# Header\nWith newline", "Not a header"},
		},
		{
			name:  "list",
			check: validate.List,
			valid: []string{
				"- Item 1\n- Item 2", "* Item 1\n* Item 2", "+ Item 1\n+ Item 2",
				"1. Item 1\n2. Item 2", "10. Item 1\n11. Item 2",
				"- [ ] Todo item\n- [x] Done item", "* [ ] Todo item\n* [ ] Another todo",
				"- Bullet\n* Different bullet", "- ",
			},
			bad: []string{"- Bullet\n1. Number", "1. Number\n- Bullet", "Not a list", "1.No space"},
		},
		{
			name:  "media",
			check: validate.Media,
			valid: []string{
				"![](image.jpg)", "![Alt text](path/to/image.png)",
				"![Description](https://example.com/video.mp4)", "[![a](b.png)](https://c.d)",
			},
			bad: []string{
				"![Alt text](image.jpg)\nWith newline", "[Not media](image.jpg)",
				"![Missing closing bracket(image.jpg)", "![](",
			},
		},
		{
			name:  "footnote",
			check: validate.Footnote,
			valid: []string{"[^1]: Footnote content", "[^note]: Named footnote", "[^1]: a\n[^2]: b"},
			bad:   []string{"^1: Alternative format", "[^]: Empty reference", "[^1] Missing colon", "Not a footnote", "[^1]: a\nstray"},
		},
		{
			name:  "quote",
			check: validate.Quote,
			valid: []string{"> Simple quote", "> Multi line\n> quote", ">No space after arrow"},
			bad:   []string{"> Valid quote\nInvalid line", "Not a quote"},
		},
		{
			name:  "code",
			check: validate.Code,
			valid: []string{"```\ncode content\n```", "```javascript\nconsole.log(\"Hello\");\n```", "```\n\n```"},
			bad:   []string{"```\ncode content", "code content\n```", "`single backtick`", "Not code"},
		},
		{
			name:  "table",
			check: validate.Table,
			valid: []string{"| Header 1 | Header 2 |\n| Cell 1 | Cell 2 |", "|Col1|Col2|\n|Val1|Val2|"},
			bad:   []string{"| Only header |", "No pipes at all", "| Missing end pipe\n| Also missing end pipe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, in := range tt.valid {
				assert.True(t, tt.check(in), "%q", in)
			}
			for _, in := range tt.bad {
				assert.False(t, tt.check(in), "%q", in)
			}
		})
	}
}

func TestValidFootnotesParse(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"[^1]: Footnote content", "[^note]: Named footnote", "[^1]: a\n[^b]: c", "^x]: bare", "[^ ]: blank id"} {
		require.True(t, validate.Footnote(in), "%q", in)

		fn, err := dialect.ParseFootnotes(in)
		require.NoError(t, err, "%q", in)

		again, err := dialect.ParseFootnotes(dialect.SerializeParagraph(fn))
		require.NoError(t, err, "%q", in)
		assert.Equal(t, fn, again, "%q", in)
	}
}

func TestParagraphCoversEveryKind(t *testing.T) {
	t.Parallel()

	samples := map[dialect.Kind]string{
		dialect.KindText:     "Any text content",
		dialect.KindHeader:   "# Header",
		dialect.KindList:     "- List item",
		dialect.KindMedia:    "![](image.jpg)",
		dialect.KindFootnote: "[^1]: Footnote",
		dialect.KindQuote:    "> Quote",
		dialect.KindCode:     "```\ncode\n```",
		dialect.KindTable:    "| Header |\n| Cell |",
	}

	for _, kind := range dialect.Kinds() {
		sample, ok := samples[kind]
		require.True(t, ok, "no sample for %s", kind)
		assert.True(t, validate.Paragraph(sample, kind), kind.String())
		if kind != dialect.KindText {
			assert.False(t, validate.Paragraph("Not "+kind.String(), kind), kind.String())
		}
	}

	assert.True(t, validate.Paragraph("", dialect.KindText))
	assert.False(t, validate.Paragraph("Content", dialect.Kind(200)))
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		res := validate.Markdown("# Header\n\nText content\n\n---\n\n## Another Header\n\nMore content")
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Violations)
	})

	t.Run("short dashes are text", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validate.Markdown("Section 1\n--\nSection 2").Valid)
	})

	t.Run("whitespace", func(t *testing.T) {
		t.Parallel()
		res := validate.Markdown("Text with trailing space ")
		assert.False(t, res.Valid)
		assert.Equal(t, []string{validate.MsgWhitespace}, res.Errors)
		assert.Equal(t, validate.RuleWhitespace, res.Violations[0].Rule)
	})

	t.Run("unclosed formatting passes", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validate.Markdown("Text with **unclosed bold").Valid)
	})

	t.Run("paragraph separators", func(t *testing.T) {
		t.Parallel()
		res := validate.Markdown("Paragraph 1\n\n\nParagraph 2")
		assert.Equal(t, []string{"Section 1: Invalid paragraph separators - use exactly double newlines"}, res.Errors)
		assert.Equal(t, 1, res.Violations[0].Section)
	})

	t.Run("blank run next to a separator", func(t *testing.T) {
		t.Parallel()
		res := validate.Markdown("A\n\n\n---\n\nB")
		require.Len(t, res.Violations, 1)
		assert.Equal(t, validate.RuleParagraphSeparator, res.Violations[0].Rule)
	})

	t.Run("seven hashes is text", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validate.Markdown("####### Too many hashes").Valid)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		res := validate.Markdown("")
		assert.True(t, res.Valid)
		assert.Equal(t, []string{}, res.Errors)
	})

	t.Run("paragraph kind with position", func(t *testing.T) {
		t.Parallel()
		res := validate.Markdown("# Fine\n\n---\n\nText\n\n| only one row |")
		require.Len(t, res.Violations, 1)
		v := res.Violations[0]
		assert.Equal(t, validate.RuleParagraphKind, v.Rule)
		assert.Equal(t, 2, v.Section)
		assert.Equal(t, 2, v.Paragraph)
		assert.Equal(t, "table", v.Kind)
		assert.Equal(t, "Section 2, Paragraph 2: Invalid table format", v.Message)
	})

	t.Run("all violations reported", func(t *testing.T) {
		t.Parallel()
		res := validate.Markdown("# H \n\n\n![x](y.png) caption")
		assert.Len(t, res.Errors, 3)
	})
}

func TestStrictInline(t *testing.T) {
	t.Parallel()

	strict := validate.New(validate.Options{StrictInline: true})

	res := strict.Markdown("Text with **unclosed bold\n\n```\na * b\n```")
	require.Len(t, res.Violations, 1)
	assert.Equal(t, validate.RuleInlineFormatting, res.Violations[0].Rule)
	assert.Equal(t, 1, res.Violations[0].Paragraph)

	assert.True(t, strict.IsValid("**bold** and *italic*\n\n- `code` item"))
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, validate.IsValid("# Header\n\nText content"))
	assert.False(t, validate.IsValid("# Header\n\n\n\nText with triple newlines"))
}
