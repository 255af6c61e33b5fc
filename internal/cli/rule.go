package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/haikal/pkg/format"
)

func newRuleCommand() *cobra.Command {
	var write bool

	names := make([]string, 0, len(format.Rules()))
	for _, r := range format.Rules() {
		names = append(names, string(r))
	}

	cmd := &cobra.Command{
		Use:   "rule <" + strings.Join(names, "|") + "> [file|-]",
		Short: "Apply a single formatting rule",
		Long: `Apply one formatting rule to a document instead of the full pipeline.
The whole-document passes (trailing whitespace, tabs, separators, empty
sections) are not run.

Examples:
  haikal rule headers README.md
  haikal rule tables --write notes.md`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, ok := format.ParseRule(args[0])
			if !ok {
				return usageErrorf("unknown rule %q: must be one of %s", args[0], strings.Join(names, ", "))
			}

			doc, err := readDocument(cmd, args[1:])
			if err != nil {
				return err
			}
			return writeDocument(cmd, doc, format.ApplyRule(doc.Text, rule), write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")

	return cmd
}
