// Package config defines the configuration types for haikal.
// These are plain data structures; discovery and merging live in the loader.
package config

import "github.com/yaklabco/haikal/pkg/dialect"

// Defaults applied by NewConfig.
const (
	DefaultTabSize       = 4
	DefaultMaxQuoteDepth = dialect.DefaultMaxQuoteDepth
)

// OutputFormat specifies how check results are reported.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// ParserConfig controls parsing.
type ParserConfig struct {
	// MaxQuoteDepth bounds quote nesting. Deeper quotes fail to parse.
	MaxQuoteDepth int `yaml:"max_quote_depth"`
}

// FormatConfig controls the formatter.
type FormatConfig struct {
	// TabSize is the number of spaces a tab expands to.
	TabSize int `yaml:"tab_size"`

	// InferCodeLanguage tags untagged code fences with a detected language.
	InferCodeLanguage *bool `yaml:"infer_code_language"`
}

// ValidateConfig controls the validator.
type ValidateConfig struct {
	// StrictInline reports emphasis markers left unpaired after inline
	// parsing.
	StrictInline *bool `yaml:"strict_inline"`
}

// Config is the root configuration structure for haikal.
type Config struct {
	Parser   ParserConfig   `yaml:"parser"`
	Format   FormatConfig   `yaml:"format"`
	Validate ValidateConfig `yaml:"validate"`

	// Ignore contains doublestar patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Jobs is the number of parallel workers. 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs"`

	// CLI-level options (not persisted to config files).

	// Output specifies the report format.
	Output OutputFormat `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Parser: ParserConfig{MaxQuoteDepth: DefaultMaxQuoteDepth},
		Format: FormatConfig{
			TabSize:           DefaultTabSize,
			InferCodeLanguage: Bool(false),
		},
		Validate: ValidateConfig{StrictInline: Bool(false)},
		Output:   FormatText,
	}
}

// InferCodeLanguage reports whether untagged fences get a detected language.
func (c *Config) InferCodeLanguage() bool {
	return c.Format.InferCodeLanguage != nil && *c.Format.InferCodeLanguage
}

// StrictInline reports whether unpaired inline markers are violations.
func (c *Config) StrictInline() bool {
	return c.Validate.StrictInline != nil && *c.Validate.StrictInline
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
