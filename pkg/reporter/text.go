package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/haikal/internal/ui/pretty"
	"github.com/yaklabco/haikal/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by file.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	opts = opts.withDefaults()
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		path := displayPath(r.opts.WorkingDir, file.Path)

		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}
		if file.Result == nil {
			continue
		}

		if violations := file.Result.Violations; len(violations) > 0 {
			fmt.Fprintln(r.bw, r.styles.FilePath.Render(path))
			for _, v := range violations {
				fmt.Fprint(r.bw, r.styles.FormatViolation("", v))
			}
			fmt.Fprintln(r.bw)
		}

		switch {
		case file.Result.Written:
			fmt.Fprintln(r.bw, r.styles.Dim.Render("reformatted")+" "+r.styles.FilePath.Render(path))
		case file.Result.Changed:
			fmt.Fprintln(r.bw, r.styles.Failure.Render("would reformat")+" "+r.styles.FilePath.Render(path))
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return issues(result), nil
}
