package runner

import (
	"context"

	"github.com/yaklabco/haikal/internal/logging"
	"github.com/yaklabco/haikal/pkg/dialect"
	"github.com/yaklabco/haikal/pkg/format"
	"github.com/yaklabco/haikal/pkg/fsutil"
	"github.com/yaklabco/haikal/pkg/validate"
)

// RuleParse marks a violation raised because the document failed to parse.
const RuleParse = "parse"

// Checker validates each file.
type Checker struct {
	Validator *validate.Validator

	// Parser, when set, also parses each file; a parse failure is reported
	// as a RuleParse violation.
	Parser *dialect.Parser
}

// Process implements Processor.
func (c Checker) Process(ctx context.Context, path string) (*FileResult, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return c.Check(string(content)), nil
}

// Check validates text that did not come from a file.
func (c Checker) Check(text string) *FileResult {
	result := &FileResult{Violations: c.Validator.Markdown(text).Violations}
	if c.Parser != nil {
		if _, err := c.Parser.Parse(text); err != nil {
			result.Violations = append(result.Violations, validate.Violation{
				Rule:    RuleParse,
				Message: err.Error(),
			})
		}
	}
	return result
}

// Formatter formats each file and optionally writes the result back.
type Formatter struct {
	Formatter *format.Formatter

	// Write saves changed files in place.
	Write bool
}

// Process implements Processor.
func (f Formatter) Process(ctx context.Context, path string) (*FileResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	result := f.Format(string(content))
	if f.Write && result.Changed {
		if err := fsutil.Rewrite(ctx, info, []byte(result.Formatted)); err != nil {
			return nil, err
		}
		result.Written = true
		logging.FromContext(ctx).Debug("formatted file")
	}
	return result, nil
}

// Format formats text that did not come from a file. Nothing is written.
func (f Formatter) Format(text string) *FileResult {
	formatted := f.Formatter.File(text)
	return &FileResult{
		Original:  text,
		Formatted: formatted,
		Changed:   formatted != text,
	}
}
