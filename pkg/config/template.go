package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Template formats.
const (
	TemplateYAML = "yaml"
	TemplateJSON = "json"
)

// DefaultIgnore is the ignore list written into new configuration files.
//
//nolint:gochecknoglobals // Read-only template data.
var DefaultIgnore = []string{"vendor/**", "node_modules/**"}

// GenerateTemplate creates the contents of a new configuration file holding
// the default settings. YAML output is commented; JSON is plain.
func GenerateTemplate(format string) ([]byte, error) {
	switch format {
	case TemplateYAML, "":
		return generateYAMLTemplate(), nil
	case TemplateJSON:
		return generateJSONTemplate()
	default:
		return nil, fmt.Errorf("unknown template format %q", format)
	}
}

func generateYAMLTemplate() []byte {
	defaults := NewConfig()

	var b strings.Builder
	b.WriteString(DefaultTemplateHeader())
	b.WriteString("\n\n")

	b.WriteString("parser:\n")
	b.WriteString("  # Deepest quote nesting accepted before parsing fails.\n")
	b.WriteString("  max_quote_depth: " + strconv.Itoa(defaults.Parser.MaxQuoteDepth) + "\n\n")

	b.WriteString("format:\n")
	b.WriteString("  # Spaces substituted for each tab.\n")
	b.WriteString("  tab_size: " + strconv.Itoa(defaults.Format.TabSize) + "\n")
	b.WriteString("  # Tag untagged code fences with a detected language.\n")
	b.WriteString("  infer_code_language: " + strconv.FormatBool(defaults.InferCodeLanguage()) + "\n\n")

	b.WriteString("validate:\n")
	b.WriteString("  # Report emphasis markers that do not pair up.\n")
	b.WriteString("  strict_inline: " + strconv.FormatBool(defaults.StrictInline()) + "\n\n")

	b.WriteString("# Parallel workers; 0 uses every CPU.\n")
	b.WriteString("jobs: 0\n\n")

	b.WriteString("# Files to skip (doublestar patterns).\n")
	b.WriteString("ignore:\n")
	for _, pattern := range DefaultIgnore {
		b.WriteString("  - " + strconv.Quote(pattern) + "\n")
	}

	return []byte(b.String())
}

func generateJSONTemplate() ([]byte, error) {
	defaults := NewConfig()

	cfg := map[string]any{
		"parser": map[string]any{
			"max_quote_depth": defaults.Parser.MaxQuoteDepth,
		},
		"format": map[string]any{
			"tab_size":            defaults.Format.TabSize,
			"infer_code_language": defaults.InferCodeLanguage(),
		},
		"validate": map[string]any{
			"strict_inline": defaults.StrictInline(),
		},
		"jobs":   0,
		"ignore": DefaultIgnore,
	}

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(out, '\n'), nil
}

// DefaultTemplateHeader returns the header comment for generated configs.
func DefaultTemplateHeader() string {
	return `# haikal configuration
# See: https://github.com/yaklabco/haikal`
}
