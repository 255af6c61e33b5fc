package runner

import "github.com/yaklabco/haikal/pkg/validate"

// FileResult is what a Processor reports for one file.
type FileResult struct {
	// Violations found by a check. Empty for a valid document.
	Violations []validate.Violation

	// Original and Formatted hold the text before and after formatting.
	// Both are empty for a check.
	Original  string
	Formatted string

	// Changed is true when formatting altered the file.
	Changed bool

	// Written is true when the formatted text was saved.
	Written bool
}

// FileOutcome pairs a file with its result or processing error.
type FileOutcome struct {
	Path   string
	Result *FileResult
	Error  error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesErrored    int

	// FilesInvalid counts files with at least one violation.
	FilesInvalid int

	ViolationsTotal  int
	ViolationsByRule map[string]int

	FilesChanged int
	FilesWritten int
}

// Result is the overall outcome of a run.
type Result struct {
	// Files are in discovery order.
	Files []FileOutcome
	Stats Stats
}

// HasViolations reports whether any file failed validation.
func (r *Result) HasViolations() bool {
	return r != nil && r.Stats.ViolationsTotal > 0
}

// HasErrors reports whether any file could not be processed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// HasChanges reports whether formatting would alter any file.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// NewResult builds a Result from outcomes produced outside a Run, such as
// text read from standard input.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{Stats: newStats()}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}

func newStats() Stats {
	return Stats{ViolationsByRule: make(map[string]int)}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++

	if n := len(outcome.Result.Violations); n > 0 {
		r.Stats.FilesInvalid++
		r.Stats.ViolationsTotal += n
		for _, v := range outcome.Result.Violations {
			r.Stats.ViolationsByRule[v.Rule]++
		}
	}
	if outcome.Result.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Result.Written {
		r.Stats.FilesWritten++
	}
}
