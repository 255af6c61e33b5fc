package dialect_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/haikal/pkg/dialect"
)

func TestExtractFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		wantText    string
		wantFormats []dialect.TextFormat
	}{
		{
			name:        "bold",
			input:       "This is **bold** text",
			wantText:    "This is bold text",
			wantFormats: []dialect.TextFormat{{Type: dialect.FormatBold, Start: 8, End: 12}},
		},
		{
			name:        "italic",
			input:       "This is *italic* text",
			wantText:    "This is italic text",
			wantFormats: []dialect.TextFormat{{Type: dialect.FormatItalic, Start: 8, End: 14}},
		},
		{
			name:        "inline code",
			input:       "This is `inline code` text",
			wantText:    "This is inline code text",
			wantFormats: []dialect.TextFormat{{Type: dialect.FormatCode, Start: 8, End: 19}},
		},
		{
			name:        "strikethrough",
			input:       "This is ~~strikethrough~~ text",
			wantText:    "This is strikethrough text",
			wantFormats: []dialect.TextFormat{{Type: dialect.FormatStrikethrough, Start: 8, End: 21}},
		},
		{
			name:        "highlight",
			input:       "This is ==highlight== text",
			wantText:    "This is highlight text",
			wantFormats: []dialect.TextFormat{{Type: dialect.FormatHighlight, Start: 8, End: 17}},
		},
		{
			name:     "several kinds",
			input:    "**bold** and *italic* and `code`",
			wantText: "bold and italic and code",
			wantFormats: []dialect.TextFormat{
				{Type: dialect.FormatBold, Start: 0, End: 4},
				{Type: dialect.FormatItalic, Start: 9, End: 15},
				{Type: dialect.FormatCode, Start: 20, End: 24},
			},
		},
		{
			name:     "earlier spans shift when later markup is removed",
			input:    "*a* **b**",
			wantText: "a b",
			wantFormats: []dialect.TextFormat{
				{Type: dialect.FormatBold, Start: 2, End: 3},
				{Type: dialect.FormatItalic, Start: 0, End: 1},
			},
		},
		{
			name:     "nested italic inside bold",
			input:    "**bold *and italic* together**",
			wantText: "bold and italic together",
			wantFormats: []dialect.TextFormat{
				{Type: dialect.FormatBold, Start: 0, End: 24},
				{Type: dialect.FormatItalic, Start: 5, End: 15},
			},
		},
		{
			name:     "offsets count characters",
			input:    "مرحبا **عالم**",
			wantText: "مرحبا عالم",
			wantFormats: []dialect.TextFormat{
				{Type: dialect.FormatBold, Start: 6, End: 10},
			},
		},
		{
			name:        "plain text",
			input:       "Plain text",
			wantText:    "Plain text",
			wantFormats: []dialect.TextFormat{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dialect.ExtractFormats(tt.input)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantFormats, got.Formats)
		})
	}
}

func TestApplyFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		formats []dialect.TextFormat
		want    string
	}{
		{
			name:    "single",
			text:    "bold text",
			formats: []dialect.TextFormat{{Type: dialect.FormatBold, Start: 0, End: 4}},
			want:    "**bold** text",
		},
		{
			name: "multiple",
			text: "bold text",
			formats: []dialect.TextFormat{
				{Type: dialect.FormatBold, Start: 0, End: 4},
				{Type: dialect.FormatItalic, Start: 5, End: 9},
			},
			want: "**bold** *text*",
		},
		{
			name: "nested closes last-opened first",
			text: "bold text",
			formats: []dialect.TextFormat{
				{Type: dialect.FormatBold, Start: 0, End: 9},
				{Type: dialect.FormatItalic, Start: 5, End: 9},
			},
			want: "**bold *text***",
		},
		{
			name: "longer span at same start is outer",
			text: "ab",
			formats: []dialect.TextFormat{
				{Type: dialect.FormatItalic, Start: 0, End: 1},
				{Type: dialect.FormatBold, Start: 0, End: 2},
			},
			want: "***a*b**",
		},
		{
			name: "write-only kinds",
			text: "H2O x2",
			formats: []dialect.TextFormat{
				{Type: dialect.FormatSubscript, Start: 1, End: 2},
				{Type: dialect.FormatSuperscript, Start: 5, End: 6},
			},
			want: "H~2~O x^2^",
		},
		{
			name: "empty spans at one offset stay paired",
			text: "",
			formats: []dialect.TextFormat{
				{Type: dialect.FormatBold, Start: 0, End: 0},
				{Type: dialect.FormatCode, Start: 0, End: 0},
			},
			want: "****``",
		},
		{
			name: "empty span after a closing span",
			text: "a",
			formats: []dialect.TextFormat{
				{Type: dialect.FormatItalic, Start: 0, End: 1},
				{Type: dialect.FormatCode, Start: 1, End: 1},
			},
			want: "*a*``",
		},
		{
			name: "empty span before an opening span",
			text: "a",
			formats: []dialect.TextFormat{
				{Type: dialect.FormatCode, Start: 0, End: 0},
				{Type: dialect.FormatItalic, Start: 0, End: 1},
			},
			want: "``*a*",
		},
		{
			name:    "out of range span is ignored",
			text:    "short",
			formats: []dialect.TextFormat{{Type: dialect.FormatBold, Start: 2, End: 40}},
			want:    "short",
		},
		{
			name: "no formats",
			text: "plain text",
			want: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dialect.ApplyFormats(tt.text, tt.formats))
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"plain words only",
		"This is **bold** text",
		"**bold** and *italic* and `code`",
		"*a* **b** ~~c~~ ==d==",
		"**bold *and italic* together**",
		"***both***",
		"*a***b**",
		"`code` then **bold**",
		"مرحبا **عالم** و *نص*",
	}

	for _, in := range inputs {
		got := dialect.ExtractFormats(in)
		assert.Equal(t, in, dialect.ApplyFormats(got.Text, got.Formats), in)
	}
}

// Extraction is not injective ("``*a*" and "*``a*" give the same Content), so
// markup with empty spans is compared after a second extraction.
func TestFormatRoundTripEmptySpans(t *testing.T) {
	t.Parallel()

	inputs := []string{"**``**", "``*a*", "*``a*", "*a*``", "a****b", "==``==", "**** *x*"}

	for _, in := range inputs {
		want := dialect.ExtractFormats(in)
		got := dialect.ExtractFormats(dialect.ApplyFormats(want.Text, want.Formats))
		assert.Equal(t, want, got, in)
	}
}

func TestFormatTypeJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dialect.TextFormat{Type: dialect.FormatHighlight, Start: 1, End: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"highlight","start":1,"end":2}`, string(data))

	var back dialect.TextFormat
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, dialect.FormatHighlight, back.Type)

	var bad dialect.TextFormat
	require.Error(t, json.Unmarshal([]byte(`{"type":"blink"}`), &bad))
}
