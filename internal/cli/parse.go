package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/haikal/pkg/dialect"
)

func newParseCommand() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Print the document tree as JSON",
		Long: `Parse a Haikal document and print its tree as JSON: a list of sections,
each a list of paragraphs tagged with their "type".

Reads standard input when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			tree, err := newParser(cfg).Parse(doc.Text)
			if err != nil {
				return err
			}
			if tree == nil {
				tree = dialect.Document{}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			if err := enc.Encode(tree); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "print JSON on a single line")

	return cmd
}
