package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/haikal/internal/logging"
	"github.com/yaklabco/haikal/pkg/dialect"
	"github.com/yaklabco/haikal/pkg/edit"
)

const (
	opInsert  = "insert"
	opReplace = "replace"
	opRemove  = "remove"
)

// position selects the section or paragraph an edit addresses.
type position struct {
	index int
	first bool
	last  bool
}

type editFlags struct {
	position
	content     string
	contentFile string
	section     int
	write       bool
}

func newEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Insert, replace or remove sections and paragraphs",
		Long: `Edit a document structurally. The document is parsed, the edit is applied
to the tree, and the canonical form is printed (or written back with
--write).

Section edits address sections of the whole document. Paragraph edits
address paragraphs of one section, chosen with --section.

Content that is blank removes the target on replace and changes nothing on
insert.

Examples:
  haikal edit section insert --last --content "# Appendix" doc.md
  haikal edit paragraph replace --section 1 --index 0 --content "# New" doc.md
  haikal edit section remove --first --write doc.md`,
	}

	for _, unit := range []string{edit.UnitSection, edit.UnitParagraph} {
		unitCmd := &cobra.Command{
			Use:   unit,
			Short: "Edit " + unit + "s",
		}
		for _, op := range []string{opInsert, opReplace, opRemove} {
			unitCmd.AddCommand(newEditOpCommand(unit, op))
		}
		cmd.AddCommand(unitCmd)
	}

	return cmd
}

func newEditOpCommand(unit, op string) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:   op + " [file|-]",
		Short: editShort(unit, op),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args, unit, op, flags)
		},
	}

	cmd.Flags().IntVar(&flags.index, "index", 0, "zero-based "+unit+" index")
	cmd.Flags().BoolVar(&flags.first, "first", false, "address the first "+unit)
	cmd.Flags().BoolVar(&flags.last, "last", false, "address the last "+unit)

	if op != opRemove {
		cmd.Flags().StringVarP(&flags.content, "content", "c", "", "content to insert or replace with")
		cmd.Flags().StringVar(&flags.contentFile, "content-file", "", "read the content from a file")
	}
	if unit == edit.UnitParagraph {
		cmd.Flags().IntVar(&flags.section, "section", 0, "zero-based index of the section to edit")
	}
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the result back to the file")

	return cmd
}

func editShort(unit, op string) string {
	switch op {
	case opInsert:
		return "Insert a " + unit
	case opReplace:
		return "Replace a " + unit
	default:
		return "Remove a " + unit
	}
}

func runEdit(cmd *cobra.Command, args []string, unit, op string, flags *editFlags) error {
	if changedCount(cmd, "index", "first", "last") != 1 {
		return usageErrorf("exactly one of --index, --first or --last is required")
	}
	if op != opRemove && changedCount(cmd, "content", "content-file") != 1 {
		return usageErrorf("exactly one of --content or --content-file is required")
	}

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	content := flags.content
	if flags.contentFile != "" {
		raw, err := os.ReadFile(flags.contentFile)
		if err != nil {
			return withExitCode(ExitIOError, err)
		}
		content = string(raw)
	}

	doc, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	parser := newParser(cfg)
	editor := edit.New(parser)

	var out string
	if unit == edit.UnitSection {
		out, err = applyEdit(editor, sectionOps, doc.Text, op, flags.position, content)
	} else {
		out, err = editParagraphs(parser, editor, doc.Text, flags.section, op, flags.position, content)
	}
	if err != nil {
		return err
	}

	logging.FromContext(cmd.Context()).Debug("edit applied",
		logging.FieldUnit, unit,
		logging.FieldOp, op,
		logging.FieldWrite, flags.write,
	)

	return writeDocument(cmd, doc, out, flags.write)
}

// changedCount counts how many of the named flags were set.
func changedCount(cmd *cobra.Command, names ...string) int {
	n := 0
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			n++
		}
	}
	return n
}

// editOps is one unit's set of positional edits.
type editOps struct {
	count func(text string) (int, error)

	insert  func(text string, index int, content string) (string, error)
	replace func(text string, index int, content string) (string, error)
	remove  func(text string, index int) (string, error)
}

func sectionOps(e *edit.Editor) editOps {
	return editOps{
		count:   func(text string) (int, error) { return e.SectionCount(text) },
		insert:  e.InsertSectionAt,
		replace: e.ReplaceSectionAt,
		remove:  e.RemoveSectionAt,
	}
}

func paragraphOps(e *edit.Editor) editOps {
	return editOps{
		count:   func(text string) (int, error) { return e.ParagraphCount(text) },
		insert:  e.InsertParagraphAt,
		replace: e.ReplaceParagraphAt,
		remove:  e.RemoveParagraphAt,
	}
}

// applyEdit resolves the position and runs op. --last inserts after the last
// element and otherwise addresses it.
func applyEdit(e *edit.Editor, ops func(*edit.Editor) editOps, text, op string, pos position, content string) (string, error) {
	table := ops(e)

	index := pos.index
	switch {
	case pos.first:
		index = 0
	case pos.last:
		n, err := table.count(text)
		if err != nil {
			return "", err
		}
		index = n
		if op != opInsert {
			index = max(n-1, 0)
		}
	}

	switch op {
	case opInsert:
		return table.insert(text, index, content)
	case opReplace:
		return table.replace(text, index, content)
	default:
		return table.remove(text, index)
	}
}

// editParagraphs applies a paragraph edit to one section of a document and
// splices the result back. An empty document has one empty section 0.
func editParagraphs(
	parser *dialect.Parser, e *edit.Editor, text string, section int, op string, pos position, content string,
) (string, error) {
	doc, err := parser.Parse(text)
	if err != nil {
		return "", err
	}

	n := len(doc)
	if n == 0 && section == 0 {
		return applyEdit(e, paragraphOps, "", op, pos, content)
	}
	if section < 0 || section >= n {
		return "", &edit.IndexError{Op: "edit", Unit: edit.UnitSection, Index: section, Length: n}
	}
	edited, err := applyEdit(e, paragraphOps, dialect.SerializeSection(doc[section]), op, pos, content)
	if err != nil {
		return "", err
	}
	if edited == "" {
		return e.RemoveSectionAt(text, section)
	}
	return e.ReplaceSectionAt(text, section, edited)
}
