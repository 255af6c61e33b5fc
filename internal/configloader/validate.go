package configloader

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/haikal/pkg/config"
)

// maxReasonableTabSize is the tab width above which a warning is issued.
const maxReasonableTabSize = 16

// ValidationError represents a configuration validation finding.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "format.tab_size").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the problem.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Parser.MaxQuoteDepth < 0 {
		result.addError("parser.max_quote_depth", cfg.Parser.MaxQuoteDepth,
			"max_quote_depth must be >= 1 (0 selects the default)")
	}

	switch {
	case cfg.Format.TabSize < 0:
		result.addError("format.tab_size", cfg.Format.TabSize, "tab_size must be >= 1 (0 selects the default)")
	case cfg.Format.TabSize > maxReasonableTabSize:
		result.addWarning("format.tab_size", cfg.Format.TabSize,
			fmt.Sprintf("tab_size %d is unusually large", cfg.Format.TabSize))
	}

	if cfg.Jobs < 0 {
		result.addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.Output != "" && !cfg.Output.IsValid() {
		result.addError("output", cfg.Output,
			fmt.Sprintf("invalid output %q; must be one of: text, json, summary", cfg.Output))
	}

	for i, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			result.addError(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern")
		}
	}

	return result
}

// ValidateWithFile validates cfg and records filePath on every finding.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

func (r *ValidationResult) addError(field string, value any, msg string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: msg})
}

func (r *ValidationResult) addWarning(field string, value any, msg string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: msg})
}
