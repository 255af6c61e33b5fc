package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/haikal/internal/logging"
	"github.com/yaklabco/haikal/pkg/config"
	"github.com/yaklabco/haikal/pkg/format"
	"github.com/yaklabco/haikal/pkg/reporter"
	"github.com/yaklabco/haikal/pkg/runner"
)

// stdinPath labels standard input in reports.
const stdinPath = "<stdin>"

type fmtFlags struct {
	write     bool
	diff      bool
	check     bool
	tabSize   int
	inferLang bool
	jobs      int
	ignore    []string
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Normalize documents to canonical form",
		Long: `Normalize Haikal documents: trailing whitespace, tabs, separators,
paragraph spacing, header and list markers, quotes, fences, tables and
inline markup.

With no paths (or "-") the formatted standard input is printed. With paths,
files that would change are listed; --write saves them in place and --diff
shows what changes.

Examples:
  haikal fmt < draft.md          Print the canonical form
  haikal fmt docs/               List files needing formatting
  haikal fmt --write docs/       Format files in place
  haikal fmt --diff README.md    Show changes as a unified diff
  haikal fmt --check .           Exit 1 when any file needs formatting`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write formatted files in place")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print a unified diff of the changes")
	cmd.Flags().BoolVar(&flags.check, "check", false, "exit 1 when any file needs formatting")
	cmd.Flags().IntVar(&flags.tabSize, "tab-size", 0, "spaces per tab (default from config, 4)")
	cmd.Flags().BoolVar(&flags.inferLang, "infer-lang", false, "tag untagged code fences with a detected language")
	addRunFlags(cmd, &flags.jobs, &flags.ignore)

	return cmd
}

// addRunFlags registers the flags shared by multi-file commands.
func addRunFlags(cmd *cobra.Command, jobs *int, ignore *[]string) {
	cmd.Flags().IntVarP(jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(ignore, "ignore", nil, "glob patterns to ignore")
}

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	cli := &config.Config{Jobs: flags.jobs, Ignore: flags.ignore}
	cli.Format.TabSize = flags.tabSize
	if cmd.Flags().Changed("infer-lang") {
		cli.Format.InferCodeLanguage = config.Bool(flags.inferLang)
	}

	cfg, err := loadConfig(cmd, cli)
	if err != nil {
		return err
	}

	proc := runner.Formatter{
		Formatter: format.New(format.Options{
			TabSize:           cfg.Format.TabSize,
			InferCodeLanguage: cfg.InferCodeLanguage(),
		}),
		Write: flags.write,
	}

	if isStdinArgs(args) {
		return fmtStdin(cmd, proc, flags)
	}

	result, err := runFiles(cmd, proc, args, cfg)
	if err != nil {
		return err
	}

	repFormat := reporter.FormatText
	if flags.diff {
		repFormat = reporter.FormatDiff
	}
	if err := report(cmd, repFormat, result); err != nil {
		return err
	}

	logging.FromContext(cmd.Context()).Debug("format complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldWrite, flags.write,
	)

	if result.HasErrors() {
		return withExitCode(ExitIOError, fmt.Errorf("%d files could not be formatted", result.Stats.FilesErrored))
	}
	if flags.check && ExitCodeFromResult(result) != ExitSuccess {
		return ErrIssuesFound
	}
	return nil
}

func fmtStdin(cmd *cobra.Command, proc runner.Formatter, flags *fmtFlags) error {
	if flags.write {
		return usageErrorf("--write needs a file argument")
	}

	doc, err := readDocument(cmd, nil)
	if err != nil {
		return err
	}
	res := proc.Format(doc.Text)

	switch {
	case flags.diff:
		if err := report(cmd, reporter.FormatDiff, runner.NewResult(runner.FileOutcome{Path: stdinPath, Result: res})); err != nil {
			return err
		}
	case !flags.check:
		if _, err := fmt.Fprint(cmd.OutOrStdout(), res.Formatted); err != nil {
			return err
		}
	}

	if flags.check && res.Changed {
		return ErrIssuesFound
	}
	return nil
}

// isStdinArgs reports whether args select standard input.
func isStdinArgs(args []string) bool {
	return len(args) == 0 || len(args) == 1 && args[0] == stdinName
}

// runFiles discovers args and runs proc over them.
func runFiles(cmd *cobra.Command, proc runner.Processor, args []string, cfg *config.Config) (*runner.Result, error) {
	result, err := runner.New(proc).Run(cmd.Context(), runner.Options{
		Paths:        args,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	})
	if err != nil {
		return nil, withExitCode(ExitIOError, fmt.Errorf("run: %w", err))
	}
	return result, nil
}

// report writes result in the given format to the command's output.
func report(cmd *cobra.Command, format reporter.Format, result *runner.Result) error {
	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowSummary: true,
		WorkingDir:  workingDir(),
	})
	if err != nil {
		return usageErrorf("%v", err)
	}
	if _, err := rep.Report(cmd.Context(), result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	return nil
}
