package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/haikal/internal/ui/pretty"
	"github.com/yaklabco/haikal/pkg/dialect"
	"github.com/yaklabco/haikal/pkg/edit"
)

// documentStats is the JSON form of "haikal stats".
type documentStats struct {
	Sections   int            `json:"sections"`
	Paragraphs int            `json:"paragraphs"`
	ByKind     map[string]int `json:"byKind"`

	// SectionsWith counts the sections holding at least one paragraph of
	// each kind.
	SectionsWith map[string]int `json:"sectionsWith"`

	Headers []headerStat `json:"headers,omitempty"`
}

type headerStat struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

func newStatsCommand() *cobra.Command {
	var kinds []string
	var output string

	cmd := &cobra.Command{
		Use:   "stats [file|-]",
		Short: "Count sections, paragraphs and headers",
		Long: `Print structural counts for a document: sections, top-level paragraphs
per kind, and the header outline. --kind limits the counts to the given
paragraph kinds.

Examples:
  haikal stats README.md
  haikal stats --kind header,table README.md
  haikal stats --output json < doc.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseKinds(kinds)
			if err != nil {
				return err
			}
			if output != "" && output != string(outputText) && output != string(outputJSON) {
				return usageErrorf("invalid --output %q: must be text or json", output)
			}

			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			stats, err := collectStats(edit.New(newParser(cfg)), doc.Text, filter)
			if err != nil {
				return err
			}

			if output == string(outputJSON) {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(stats); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				return nil
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), cmd.OutOrStdout()))
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatStats(styles, stats, filter))
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&kinds, "kind", "k", nil, "paragraph kinds to count (default all)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json")

	return cmd
}

type outputKind string

const (
	outputText outputKind = "text"
	outputJSON outputKind = "json"
)

func parseKinds(names []string) ([]dialect.Kind, error) {
	kinds := make([]dialect.Kind, 0, len(names))
	for _, name := range names {
		kind, ok := dialect.ParseKind(strings.TrimSpace(name))
		if !ok {
			return nil, usageErrorf("unknown paragraph kind %q", name)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func collectStats(e *edit.Editor, text string, filter []dialect.Kind) (*documentStats, error) {
	sections, err := e.SectionCount(text, filter...)
	if err != nil {
		return nil, err
	}
	paragraphs, err := e.TotalParagraphCount(text, filter...)
	if err != nil {
		return nil, err
	}

	stats := &documentStats{
		Sections:     sections,
		Paragraphs:   paragraphs,
		ByKind:       make(map[string]int),
		SectionsWith: make(map[string]int),
	}

	kinds := filter
	if len(kinds) == 0 {
		kinds = dialect.Kinds()
	}
	for _, kind := range kinds {
		n, err := e.TotalParagraphCount(text, kind)
		if err != nil {
			return nil, err
		}
		s, err := e.SectionCount(text, kind)
		if err != nil {
			return nil, err
		}
		stats.ByKind[kind.String()] = n
		stats.SectionsWith[kind.String()] = s
	}

	if len(filter) == 0 || slices.Contains(filter, dialect.KindHeader) {
		headers, err := e.Headers(text)
		if err != nil {
			return nil, err
		}
		for _, h := range headers {
			stats.Headers = append(stats.Headers, headerStat{Level: h.Level, Text: dialect.SerializeContent(h.Content)})
		}
	}

	return stats, nil
}

func formatStats(styles *pretty.Styles, stats *documentStats, filter []dialect.Kind) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", styles.Bold.Render("Sections:  "), strconv.Itoa(stats.Sections))
	fmt.Fprintf(&b, "%s %s\n\n", styles.Bold.Render("Paragraphs:"), strconv.Itoa(stats.Paragraphs))

	kinds := filter
	if len(kinds) == 0 {
		kinds = dialect.Kinds()
	}
	rows := make([][]string, 0, len(kinds))
	for _, kind := range kinds {
		name := kind.String()
		rows = append(rows, []string{
			name,
			strconv.Itoa(stats.ByKind[name]),
			strconv.Itoa(stats.SectionsWith[name]),
		})
	}
	b.WriteString(styles.FormatTable([]string{"KIND", "PARAGRAPHS", "SECTIONS"}, rows))

	if len(stats.Headers) > 0 {
		b.WriteString("\n" + styles.Bold.Render("Outline") + "\n")
		for _, h := range stats.Headers {
			b.WriteString(strings.Repeat("  ", h.Level-1) + styles.Dim.Render(strings.Repeat("#", h.Level)) + " " + h.Text + "\n")
		}
	}

	return b.String()
}
