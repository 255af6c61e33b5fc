package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/yaklabco/haikal/pkg/dialect"
	"github.com/yaklabco/haikal/pkg/format"
	"github.com/yaklabco/haikal/pkg/runner"
	"github.com/yaklabco/haikal/pkg/validate"
)

func TestRunOrderAndStats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.md": "ok",
		"b.md": "bad",
		"c.md": "fail",
		"d.md": "ok",
	})

	var calls atomic.Int32
	proc := runner.ProcessorFunc(func(_ context.Context, path string) (*runner.FileResult, error) {
		calls.Add(1)
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		switch string(content) {
		case "bad":
			return &runner.FileResult{Violations: []validate.Violation{
				{Rule: validate.RuleWhitespace},
				{Rule: validate.RuleParagraphKind},
			}}, nil
		case "fail":
			return nil, errors.New("boom")
		default:
			return &runner.FileResult{}, nil
		}
	})

	result, err := runner.New(proc).Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 3})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if calls.Load() != 4 {
		t.Errorf("processor called %d times, want 4", calls.Load())
	}

	got := relNames(t, dir, pathsOf(result))
	want := []string{"a.md", "b.md", "c.md", "d.md"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	stats := result.Stats
	if stats.FilesDiscovered != 4 || stats.FilesProcessed != 3 || stats.FilesErrored != 1 {
		t.Errorf("unexpected file counts: %+v", stats)
	}
	if stats.FilesInvalid != 1 || stats.ViolationsTotal != 2 {
		t.Errorf("unexpected violation counts: %+v", stats)
	}
	if stats.ViolationsByRule[validate.RuleWhitespace] != 1 {
		t.Errorf("by rule = %v", stats.ViolationsByRule)
	}
	if !result.HasViolations() || !result.HasErrors() || result.HasChanges() {
		t.Error("unexpected Has* answers")
	}
}

func TestRunNoFiles(t *testing.T) {
	t.Parallel()

	proc := runner.ProcessorFunc(func(context.Context, string) (*runner.FileResult, error) {
		t.Error("processor should not be called")
		return nil, nil
	})

	result, err := runner.New(proc).Run(context.Background(), runner.Options{WorkingDir: t.TempDir()})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(result.Files) != 0 || result.HasViolations() {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestChecker(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"good.md": "# Title\n\nBody\n",
		"bad.md":  "Trailing   \n",
		"deep.md": "> > > too deep\n",
	})

	checker := runner.Checker{
		Validator: validate.New(validate.Options{}),
		Parser:    dialect.NewParser(2),
	}
	result, err := runner.New(checker).Run(context.Background(), runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	byName := map[string]*runner.FileResult{}
	for _, f := range result.Files {
		byName[filepath.Base(f.Path)] = f.Result
	}

	if n := len(byName["good.md"].Violations); n != 0 {
		t.Errorf("good.md: %d violations", n)
	}
	if byName["bad.md"].Violations[0].Rule != validate.RuleWhitespace {
		t.Errorf("bad.md: %+v", byName["bad.md"].Violations)
	}
	deep := byName["deep.md"].Violations
	if len(deep) != 1 || deep[0].Rule != runner.RuleParse {
		t.Errorf("deep.md: %+v", deep)
	}
}

func TestFormatter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"messy.md": "##   Title   \n\n\n\nBody",
		"clean.md": "# Clean\n",
	})

	f := runner.Formatter{Formatter: format.New(format.Options{}), Write: true}
	result, err := runner.New(f).Run(context.Background(), runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesChanged != 1 || result.Stats.FilesWritten != 1 {
		t.Errorf("unexpected stats: %+v", result.Stats)
	}

	got, err := os.ReadFile(filepath.Join(dir, "messy.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "## Title\n\nBody\n" {
		t.Errorf("messy.md = %q", got)
	}
}

func TestFormatterDryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"messy.md": "#  Title"})

	f := runner.Formatter{Formatter: format.New(format.Options{})}
	result, err := runner.New(f).Run(context.Background(), runner.Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	file := result.Files[0].Result
	if !file.Changed || file.Written || file.Formatted != "# Title\n" {
		t.Errorf("unexpected result: %+v", file)
	}

	got, _ := os.ReadFile(filepath.Join(dir, "messy.md"))
	if string(got) != "#  Title" {
		t.Errorf("file modified without Write: %q", got)
	}
}

func pathsOf(result *runner.Result) []string {
	out := make([]string, len(result.Files))
	for i, f := range result.Files {
		out[i] = f.Path
	}
	return out
}

func TestNewResult(t *testing.T) {
	t.Parallel()

	checker := runner.Checker{Validator: validate.New(validate.Options{}), Parser: dialect.DefaultParser}
	formatter := runner.Formatter{Formatter: format.New(format.Options{})}

	result := runner.NewResult(
		runner.FileOutcome{Path: "<stdin>", Result: checker.Check("# ok")},
		runner.FileOutcome{Path: "<stdin>", Result: formatter.Format("#  Title")},
		runner.FileOutcome{Path: "broken", Error: errors.New("boom")},
	)

	if result.Stats.FilesDiscovered != 3 || result.Stats.FilesProcessed != 2 || result.Stats.FilesErrored != 1 {
		t.Errorf("unexpected stats %+v", result.Stats)
	}
	if result.HasViolations() {
		t.Error("valid text reported violations")
	}
	if !result.HasChanges() {
		t.Error("unformatted text not reported as changed")
	}
	if got := result.Files[1].Result.Formatted; got != "# Title\n" {
		t.Errorf("Formatted = %q", got)
	}
}
