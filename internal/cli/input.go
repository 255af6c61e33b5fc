package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/haikal/internal/configloader"
	"github.com/yaklabco/haikal/internal/logging"
	"github.com/yaklabco/haikal/pkg/config"
	"github.com/yaklabco/haikal/pkg/dialect"
	"github.com/yaklabco/haikal/pkg/fsutil"
)

// stdinName selects standard input in place of a file argument.
const stdinName = "-"

// document is one input read by a single-document command.
type document struct {
	// Path is empty for standard input.
	Path string
	Text string

	// info is kept so --write can refuse files modified in the meantime.
	info *fsutil.FileInfo
}

func (d *document) isStdin() bool {
	return d.info == nil
}

// readDocument reads the file named by the first argument, or standard input
// when there is none or it is "-".
func readDocument(cmd *cobra.Command, args []string) (*document, error) {
	if len(args) == 0 || args[0] == stdinName {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, withExitCode(ExitIOError, fmt.Errorf("read stdin: %w", err))
		}
		return &document{Text: string(content)}, nil
	}

	content, info, err := fsutil.ReadFile(cmd.Context(), args[0])
	if err != nil {
		return nil, err
	}
	return &document{Path: args[0], Text: string(content), info: info}, nil
}

// writeDocument saves text back to the document's file when write is set,
// and prints it otherwise.
func writeDocument(cmd *cobra.Command, doc *document, text string, write bool) error {
	text = fileText(text)
	if !write {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	if doc.isStdin() {
		return usageErrorf("--write needs a file argument")
	}
	if err := fsutil.Rewrite(cmd.Context(), doc.info, []byte(text)); err != nil {
		return err
	}
	logging.FromContext(cmd.Context()).Debug("wrote file", logging.FieldPath, doc.Path)
	return nil
}

// fileText ends non-empty text with a single newline.
func fileText(text string) string {
	if text == "" {
		return ""
	}
	return text + "\n"
}

// loadConfig resolves the configuration for cmd. cli holds the values set
// by flags and may be nil.
func loadConfig(cmd *cobra.Command, cli *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cli,
	})
	if err != nil {
		return nil, withExitCode(ExitConfigError, errors.Join(errors.New("failed to load configuration"), err))
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	logger.Debug("configuration loaded",
		logging.FieldFiles, result.LoadedFrom,
		logging.FieldMaxQuoteDepth, result.Config.Parser.MaxQuoteDepth,
		logging.FieldTabSize, result.Config.Format.TabSize,
		logging.FieldJobs, result.Config.Jobs,
	)

	return result.Config, nil
}

// newParser builds the parser configured by cfg.
func newParser(cfg *config.Config) *dialect.Parser {
	return dialect.NewParser(cfg.Parser.MaxQuoteDepth)
}

// workingDir is the directory reported paths are made relative to.
func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return dir
}
