package cli

import (
	"errors"

	"github.com/yaklabco/haikal/internal/configloader"
	"github.com/yaklabco/haikal/pkg/dialect"
	"github.com/yaklabco/haikal/pkg/edit"
	"github.com/yaklabco/haikal/pkg/fsutil"
	"github.com/yaklabco/haikal/pkg/runner"
)

// Exit codes for haikal.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssues indicates invalid documents, files needing formatting, or
	// input that does not parse.
	ExitIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage, including edit
	// positions outside the document.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrIssuesFound is returned when a run finds violations or unformatted
// files. It only signals the exit code and is not printed.
var ErrIssuesFound = errors.New("issues found")

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var coded *exitError
	var validation *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &coded):
		return coded.code
	case errors.Is(err, ErrIssuesFound), errors.Is(err, dialect.ErrFormat):
		return ExitIssues
	case errors.Is(err, edit.ErrIndex):
		return ExitInvalidUsage
	case errors.As(err, &validation):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrModified):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// ExitCodeFromResult determines the exit code for a multi-file run.
func ExitCodeFromResult(result *runner.Result) int {
	switch {
	case result == nil:
		return ExitSuccess
	case result.HasViolations():
		return ExitIssues
	case result.Stats.FilesChanged > result.Stats.FilesWritten:
		return ExitIssues
	case result.HasErrors():
		return ExitIOError
	default:
		return ExitSuccess
	}
}
