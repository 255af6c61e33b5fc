package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/haikal/pkg/config"
)

// envVarPrefix is the prefix for all haikal environment variables.
const envVarPrefix = "HAIKAL_"

// envVar binds one environment variable to a config field.
type envVar struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

// envVars maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"MAX_QUOTE_DEPTH": {
		description: "Deepest quote nesting accepted",
		apply: intSetter(func(cfg *config.Config, v int) { cfg.Parser.MaxQuoteDepth = v }),
	},
	"TAB_SIZE": {
		description: "Spaces substituted for each tab",
		apply: intSetter(func(cfg *config.Config, v int) { cfg.Format.TabSize = v }),
	},
	"INFER_CODE_LANGUAGE": {
		description: "Tag untagged code fences: true or false",
		apply: boolSetter(func(cfg *config.Config, v bool) { cfg.Format.InferCodeLanguage = config.Bool(v) }),
	},
	"STRICT_INLINE": {
		description: "Report unpaired emphasis markers: true or false",
		apply: boolSetter(func(cfg *config.Config, v bool) { cfg.Validate.StrictInline = config.Bool(v) }),
	},
	"JOBS": {
		description: "Number of parallel workers (0 = auto)",
		apply: intSetter(func(cfg *config.Config, v int) { cfg.Jobs = v }),
	},
	"IGNORE": {
		description: "Comma-separated list of ignore patterns",
		apply: func(cfg *config.Config, value string) error {
			cfg.Ignore = parseSliceValue(value)
			return nil
		},
	},
	"OUTPUT": {
		description: "Report format for check: text, json or summary",
		apply: func(cfg *config.Config, value string) error {
			cfg.Output = config.OutputFormat(value)
			return nil
		},
	},
}

func intSetter(set func(*config.Config, int)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		set(cfg, i)
		return nil
	}
}

func boolSetter(set func(*config.Config, bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		set(cfg, b)
		return nil
	}
}

// LoadFromEnv applies HAIKAL_* environment variable overrides to cfg.
// Empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range envVarNames() {
		name := envVarPrefix + suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := envVars[suffix].apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// parseSliceValue splits a comma-separated list, dropping blank elements.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns every supported environment variable with its
// description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for suffix, v := range envVars {
		out[envVarPrefix+suffix] = v.description
	}
	return out
}

func envVarNames() []string {
	names := make([]string, 0, len(envVars))
	for suffix := range envVars {
		names = append(names, suffix)
	}
	sort.Strings(names)
	return names
}
