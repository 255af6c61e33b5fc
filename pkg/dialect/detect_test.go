package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/haikal/pkg/dialect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  dialect.Kind
	}{
		{"h1", "# h", dialect.KindHeader},
		{"h6", "###### deep", dialect.KindHeader},
		{"seven hashes is text", "####### Too many hashes", dialect.KindText},
		{"hash without space is text", "#tag", dialect.KindText},
		{"quote", "> quoted", dialect.KindQuote},
		{"nested quote", ">> quoted", dialect.KindQuote},
		{"quote without space is text", ">quoted", dialect.KindText},
		{"bullet list", "- item", dialect.KindList},
		{"task list", "- [ ] t", dialect.KindList},
		{"checked task list", "- [x] done", dialect.KindList},
		{"numbered list", "1. first\n2. second", dialect.KindList},
		{"star bullet is text", "* item", dialect.KindText},
		{"plus bullet is text", "+ item", dialect.KindText},
		{"media", "![alt](image.png)", dialect.KindMedia},
		{"linked media", "[![alt](image.png)](https://example.com)", dialect.KindMedia},
		{"footnote", "[^1]: note", dialect.KindFootnote},
		{"footnote without leading bracket", "^1]: note", dialect.KindFootnote},
		{"footnote reference is text", "see [^1] here", dialect.KindText},
		{"code", "```go\nfmt.Println()\n```", dialect.KindCode},
		{"unterminated code is text", "```go\nfmt.Println()", dialect.KindText},
		{"table", "| a | b |\n| c | d |", dialect.KindTable},
		{"plain text", "Just words.", dialect.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dialect.Detect(tt.input))
		})
	}
}

func TestClassifyLenient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  dialect.Kind
	}{
		{"* item", dialect.KindList},
		{"+ item", dialect.KindList},
		{">quoted", dialect.KindQuote},
		{"# h", dialect.KindHeader},
		{"plain", dialect.KindText},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, dialect.Classify(tt.input, dialect.Lenient), tt.input)
	}
}

func TestClassifyModesAgreeOnCanonicalInput(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"# h", "> q", "- a", "1. a", "- [ ] a", "![a](b.png)", "[^1]: x",
		"```\nx\n```", "| a |\n| b |", "text",
	}
	for _, in := range inputs {
		assert.Equal(t, dialect.Classify(in, dialect.Strict), dialect.Classify(in, dialect.Lenient), in)
	}
}

func TestKindNames(t *testing.T) {
	t.Parallel()

	for _, k := range dialect.Kinds() {
		parsed, ok := dialect.ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, parsed)
	}

	_, ok := dialect.ParseKind("paragraph")
	assert.False(t, ok)
}
