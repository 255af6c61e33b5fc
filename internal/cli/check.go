package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/haikal/internal/logging"
	"github.com/yaklabco/haikal/pkg/config"
	"github.com/yaklabco/haikal/pkg/reporter"
	"github.com/yaklabco/haikal/pkg/runner"
	"github.com/yaklabco/haikal/pkg/validate"
)

type checkFlags struct {
	output       string
	strictInline bool
	jobs         int
	ignore       []string
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Validate documents against the dialect",
		Long: `Validate Haikal documents. Every violation is reported with its rule and
its section:paragraph position; document-wide violations show "-".

By default checks all .md and .markdown files under the current directory.
Use "-" to check standard input. Exits 1 when any document is invalid.

Examples:
  haikal check                   Check the current directory
  haikal check docs/ notes.md    Check specific paths
  haikal check --output json     Machine-readable output for CI
  cat doc.md | haikal check -    Check standard input`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: text, json, summary")
	cmd.Flags().BoolVar(&flags.strictInline, "strict-inline", false, "report stray inline markup markers")
	addRunFlags(cmd, &flags.jobs, &flags.ignore)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	if flags.output != "" && !config.OutputFormat(flags.output).IsValid() {
		return usageErrorf("invalid --output %q: must be text, json or summary", flags.output)
	}

	cli := &config.Config{
		Jobs:   flags.jobs,
		Ignore: flags.ignore,
		Output: config.OutputFormat(flags.output),
	}
	if cmd.Flags().Changed("strict-inline") {
		cli.Validate.StrictInline = config.Bool(flags.strictInline)
	}

	cfg, err := loadConfig(cmd, cli)
	if err != nil {
		return err
	}

	repFormat, err := reporter.ParseFormat(string(cfg.Output))
	if err != nil {
		return usageErrorf("%v", err)
	}

	proc := runner.Checker{
		Validator: validate.New(validate.Options{StrictInline: cfg.StrictInline()}),
		Parser:    newParser(cfg),
	}

	var result *runner.Result
	if len(args) == 1 && args[0] == stdinName {
		doc, err := readDocument(cmd, args)
		if err != nil {
			return err
		}
		result = runner.NewResult(runner.FileOutcome{Path: stdinPath, Result: proc.Check(doc.Text)})
	} else {
		result, err = runFiles(cmd, proc, args, cfg)
		if err != nil {
			return err
		}
	}

	if err := report(cmd, repFormat, result); err != nil {
		return err
	}

	logging.FromContext(cmd.Context()).Debug("check complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesInvalid, result.Stats.FilesInvalid,
		logging.FieldViolations, result.Stats.ViolationsTotal,
	)

	if code := ExitCodeFromResult(result); code != ExitSuccess {
		if code == ExitIssues {
			return ErrIssuesFound
		}
		return withExitCode(code, ErrIssuesFound)
	}
	return nil
}
