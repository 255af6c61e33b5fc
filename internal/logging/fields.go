// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldSource     = "source"

	// Configuration fields.
	FieldJobs          = "jobs"
	FieldTabSize       = "tab_size"
	FieldMaxQuoteDepth = "max_quote_depth"
	FieldWrite         = "write"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesInvalid    = "files_invalid"
	FieldFilesChanged    = "files_changed"
	FieldViolations      = "violations"

	// Document fields.
	FieldSection   = "section"
	FieldParagraph = "paragraph"
	FieldKind      = "kind"
	FieldRule      = "rule"
	FieldLanguage  = "language"
	FieldUnit      = "unit"
	FieldOp        = "op"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
