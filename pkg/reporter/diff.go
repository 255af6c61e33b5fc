package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	diff "github.com/shogoki/gotextdiff"

	"github.com/yaklabco/haikal/internal/ui/pretty"
	"github.com/yaklabco/haikal/pkg/runner"
)

// DiffReporter writes a unified diff for every file formatting would change.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	opts = opts.withDefaults()
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. It returns the number of changed files.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	changed := 0
	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(displayPath(r.opts.WorkingDir, file.Path), file.Error))
			continue
		}
		if file.Result == nil || !file.Result.Changed {
			continue
		}

		text := UnifiedDiff(displayPath(r.opts.WorkingDir, file.Path), file.Result.Original, file.Result.Formatted)
		if text == "" {
			continue
		}
		changed++

		for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
			fmt.Fprintln(r.bw, r.styles.FormatDiffLine(line))
		}
	}

	return changed, nil
}

// UnifiedDiff returns a unified diff between old and new, labelled with path.
// It returns "" when the texts are equal.
func UnifiedDiff(path, oldText, newText string) string {
	if oldText == newText {
		return ""
	}
	return string(diff.Diff(path, []byte(oldText), path, []byte(newText)))
}
