package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/haikal/internal/ui/pretty"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color is "auto", "always" or "never".
	Color string

	// ShowSummary appends a one-line summary to text output.
	ShowSummary bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       pretty.ColorAuto,
		ShowSummary: true,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Writer == nil {
		o.Writer = def.Writer
	}
	if o.ErrorWriter == nil {
		o.ErrorWriter = def.ErrorWriter
	}
	if o.Format == "" {
		o.Format = def.Format
	}
	if o.Color == "" {
		o.Color = def.Color
	}
	return o
}
