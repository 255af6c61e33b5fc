package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/haikal/internal/ui/pretty"
	"github.com/yaklabco/haikal/pkg/render"
)

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a document as HTML",
		Long: `Render a Haikal document as an HTML fragment. Tables, strikethrough and
footnotes use their GitHub Flavored Markdown forms.`,
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
			html, err := render.DocumentHTML(tree)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), html)
			return err
		},
	}

	return cmd
}

func newViewCommand() *cobra.Command {
	var width int
	var style string

	cmd := &cobra.Command{
		Use:   "view [file|-]",
		Short: "Display a document styled for the terminal",
		Long: `Display a Haikal document with terminal styling. The wrap width follows
the terminal unless --width is given.

Examples:
  haikal view README.md
  haikal view --style light --width 60 doc.md`,
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

			opts := render.TerminalOptions{Width: width, Style: style}
			if opts.Width <= 0 {
				opts.Width = terminalWidth(cmd.OutOrStdout())
			}
			if opts.Style == "" && colorMode(cmd) == pretty.ColorNever {
				opts.Style = "notty"
			}

			out, err := render.DocumentTerminal(tree, opts)
			if err != nil {
				return fmt.Errorf("view: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "wrap width (default: terminal width)")
	cmd.Flags().StringVar(&style, "style", "", "glamour style: dark, light, notty, ... (default: auto)")

	return cmd
}

// terminalWidth returns the width of the terminal behind w, or
// render.DefaultWidth when w is not a terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return render.DefaultWidth
}
