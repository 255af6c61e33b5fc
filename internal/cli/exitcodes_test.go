package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/haikal/internal/cli"
	"github.com/yaklabco/haikal/internal/configloader"
	"github.com/yaklabco/haikal/pkg/dialect"
	"github.com/yaklabco/haikal/pkg/edit"
	"github.com/yaklabco/haikal/pkg/fsutil"
	"github.com/yaklabco/haikal/pkg/runner"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"issues", cli.ErrIssuesFound, cli.ExitIssues},
		{"parse error", fmt.Errorf("section 1: %w", &dialect.FormatError{Kind: dialect.KindQuote}), cli.ExitIssues},
		{"index", &edit.IndexError{Op: "remove", Unit: edit.UnitSection, Index: 3, Length: 1}, cli.ExitInvalidUsage},
		{"config", &configloader.ValidationError{Field: "jobs"}, cli.ExitConfigError},
		{"not found", fmt.Errorf("read: %w", fsutil.ErrNotFound), cli.ExitIOError},
		{"modified", fsutil.ErrModified, cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cli.ExitCode(tt.err), tt.name)
	}
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stats runner.Stats
		want  int
	}{
		{"clean", runner.Stats{FilesProcessed: 2}, cli.ExitSuccess},
		{"violations", runner.Stats{ViolationsTotal: 1}, cli.ExitIssues},
		{"unformatted", runner.Stats{FilesChanged: 1}, cli.ExitIssues},
		{"formatted", runner.Stats{FilesChanged: 1, FilesWritten: 1}, cli.ExitSuccess},
		{"errors", runner.Stats{FilesErrored: 1}, cli.ExitIOError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cli.ExitCodeFromResult(&runner.Result{Stats: tt.stats}), tt.name)
	}
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeFromResult(nil))
}
