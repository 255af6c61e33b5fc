// Package cli provides the Cobra command structure for haikal.
package cli

import (
	"cmp"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/haikal/internal/logging"
	"github.com/yaklabco/haikal/internal/ui/pretty"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Names of the persistent flags shared by every command.
const (
	flagDebug  = "debug"
	flagConfig = "config"
	flagColor  = "color"
)

// NewRootCommand creates the root haikal command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "haikal",
		Short: "Parse, validate, format and edit Haikal markdown",
		Long: `haikal works with the Haikal dialect: a strict subset of Markdown made of
sections separated by "---" lines, each holding blank-line separated
paragraphs of a single kind (text, header, list, media, footnote, quote,
code or table).

It parses documents into a typed tree, validates them, normalizes them to
canonical form, and edits them section by section or paragraph by
paragraph.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !pretty.ValidColorMode(color) {
				return usageErrorf("invalid --color %q: must be auto, always or never", color)
			}
			level := cmp.Or(os.Getenv(logging.EnvLevel), "info")
			if debug {
				level = "debug"
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(ExitInvalidUsage, err)
	})

	rootCmd.PersistentFlags().BoolVar(&debug, flagDebug, false, "enable debug logging")
	rootCmd.PersistentFlags().String(flagConfig, "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, flagColor, pretty.ColorAuto,
		"colorize output: auto, always, never")

	rootCmd.AddCommand(
		newParseCommand(),
		newFmtCommand(),
		newCheckCommand(),
		newRuleCommand(),
		newEditCommand(),
		newStatsCommand(),
		newRenderCommand(),
		newViewCommand(),
		newInitCommand(),
		newVersionCommand(info),
	)

	wrapArgs(rootCmd)
	NewHelpFormatter(color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

// colorMode reads the --color persistent flag.
func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString(flagColor)
	if err != nil {
		return pretty.ColorAuto
	}
	return mode
}

// wrapArgs marks positional argument failures as usage errors throughout the
// command tree.
func wrapArgs(cmd *cobra.Command) {
	if validate := cmd.Args; validate != nil {
		cmd.Args = func(c *cobra.Command, args []string) error {
			return withExitCode(ExitInvalidUsage, validate(c, args))
		}
	}
	for _, sub := range cmd.Commands() {
		wrapArgs(sub)
	}
}

func usageErrorf(format string, args ...any) error {
	return withExitCode(ExitInvalidUsage, fmt.Errorf(format, args...))
}
