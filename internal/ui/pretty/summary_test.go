package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/haikal/internal/ui/pretty"
	"github.com/yaklabco/haikal/pkg/runner"
)

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{"clean", runner.Stats{FilesProcessed: 3}, "3 files ok\n"},
		{"single file", runner.Stats{FilesProcessed: 1}, "1 file ok\n"},
		{
			"violations",
			runner.Stats{FilesProcessed: 4, FilesInvalid: 2, ViolationsTotal: 5},
			"5 violations, in 2 of 4 files\n",
		},
		{
			"one violation",
			runner.Stats{FilesProcessed: 1, FilesInvalid: 1, ViolationsTotal: 1},
			"1 violation, in 1 of 1 file\n",
		},
		{"check", runner.Stats{FilesProcessed: 2, FilesChanged: 1}, "1 of 2 files would be reformatted\n"},
		{"write", runner.Stats{FilesProcessed: 2, FilesChanged: 2, FilesWritten: 2}, "2 of 2 files reformatted\n"},
		{"errors", runner.Stats{FilesProcessed: 1, FilesErrored: 1}, "1 file ok, 1 error\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	got := styles.FormatSummary(runner.Stats{
		FilesProcessed:  3,
		FilesInvalid:    1,
		ViolationsTotal: 3,
		ViolationsByRule: map[string]int{
			"whitespace":     1,
			"paragraph-kind": 2,
		},
	})

	assert.Contains(t, got, "Files checked:     3")
	assert.Contains(t, got, "Files invalid:     1")
	assert.Contains(t, got, "Violations:        3")
	assert.Less(t, strings.Index(got, "paragraph-kind"), strings.Index(got, "whitespace"), "rules are sorted")
	assert.NotContains(t, got, "Files written")
}

func TestFormatTable(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	got := styles.FormatTable(
		[]string{"KIND", "COUNT"},
		[][]string{{"header", "2"}, {"text", "10"}},
	)

	want := "KIND    COUNT\n" +
		"-------------\n" +
		"header  2\n" +
		"text    10\n"
	assert.Equal(t, want, got)
	assert.Empty(t, styles.FormatTable(nil, nil))
}
