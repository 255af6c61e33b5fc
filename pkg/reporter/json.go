package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/haikal/pkg/runner"
	"github.com/yaklabco/haikal/pkg/validate"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string               `json:"path"`
	Valid      bool                 `json:"valid"`
	Violations []validate.Violation `json:"violations"`
	Changed    bool                 `json:"changed,omitempty"`
	Written    bool                 `json:"written,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesInvalid    int            `json:"filesInvalid"`
	FilesChanged    int            `json:"filesChanged"`
	FilesWritten    int            `json:"filesWritten"`
	FilesErrored    int            `json:"filesErrored"`
	TotalViolations int            `json:"totalViolations"`
	ByRule          map[string]int `json:"byRule"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	opts = opts.withDefaults()
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.build(result)

	enc := json.NewEncoder(r.bw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return 0, fmt.Errorf("encode json: %w", err)
	}

	return issues(result), nil
}

func (r *JSONReporter) build(result *runner.Result) JSONOutput {
	output := JSONOutput{
		Files:   []JSONFileResult{},
		Summary: JSONSummary{ByRule: map[string]int{}},
	}
	if result == nil {
		return output
	}

	for _, file := range result.Files {
		entry := JSONFileResult{
			Path:       displayPath(r.opts.WorkingDir, file.Path),
			Violations: []validate.Violation{},
		}
		switch {
		case file.Error != nil:
			entry.Error = file.Error.Error()
		case file.Result != nil:
			entry.Valid = len(file.Result.Violations) == 0
			if !entry.Valid {
				entry.Violations = file.Result.Violations
			}
			entry.Changed = file.Result.Changed
			entry.Written = file.Result.Written
		}
		output.Files = append(output.Files, entry)
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesChecked:    stats.FilesProcessed,
		FilesInvalid:    stats.FilesInvalid,
		FilesChanged:    stats.FilesChanged,
		FilesWritten:    stats.FilesWritten,
		FilesErrored:    stats.FilesErrored,
		TotalViolations: stats.ViolationsTotal,
		ByRule:          stats.ViolationsByRule,
	}
	if output.Summary.ByRule == nil {
		output.Summary.ByRule = map[string]int{}
	}
	return output
}
