package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/haikal/pkg/dialect"
	"github.com/yaklabco/haikal/pkg/render"
)

func TestCommonMark(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "table gains delimiter row",
			input: "| a | b |\n| c | d |",
			want:  "| a | b |\n| --- | --- |\n| c | d |",
		},
		{
			name:  "single row table",
			input: "| only |",
			want:  "| only |\n| --- |",
		},
		{
			name:  "table inside quote",
			input: "> | a |\n> | b |",
			want:  "> | a |\n> | --- |\n> | b |",
		},
		{
			name:  "other kinds are canonical",
			input: "# Title\n\n---\n\n- item\n\n> q",
			want:  "# Title\n\n---\n\n- item\n\n> q",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, err := dialect.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, render.CommonMark(doc))
		})
	}
}

func TestHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"header", "# Title", []string{"<h1>Title</h1>"}},
		{"emphasis", "Some **bold** and ~~gone~~", []string{"<strong>bold</strong>", "<del>gone</del>"}},
		{"sections", "A\n\n---\n\nB", []string{"<p>A</p>", "<hr>", "<p>B</p>"}},
		{"table", "| h1 | h2 |\n| c1 | c2 |", []string{"<table>", "<th>h1</th>", "<td>c2</td>"}},
		{"code", "```go\nx := 1\n```", []string{`<code class="language-go">x := 1`}},
		{"quote", "> quoted", []string{"<blockquote>", "<p>quoted</p>"}},
		{"media", "![alt](img.png)", []string{`<img src="img.png" alt="alt">`}},
		{"numbered list", "1. one\n2. two", []string{"<ol>", "<li>one</li>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := render.HTML(tt.input)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestHTMLParseError(t *testing.T) {
	t.Parallel()

	_, err := render.HTML("![x](a.png) caption")
	require.ErrorIs(t, err, dialect.ErrFormat)
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	out, err := render.Terminal("# Title\n\nBody text", render.TerminalOptions{Style: "notty", Width: 40})
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Body text")

	_, err = render.Terminal("![x](a.png) bad", render.TerminalOptions{Style: "notty"})
	require.ErrorIs(t, err, dialect.ErrFormat)
}
