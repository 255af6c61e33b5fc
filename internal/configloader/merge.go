package configloader

import "github.com/yaklabco/haikal/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Scalars: override wins when non-zero.
//   - Pointer booleans: override wins when set, so a file can turn an
//     option back off.
//   - Slices: override replaces base entirely when non-nil.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Parser.MaxQuoteDepth != 0 {
		result.Parser.MaxQuoteDepth = override.Parser.MaxQuoteDepth
	}
	if override.Format.TabSize != 0 {
		result.Format.TabSize = override.Format.TabSize
	}
	if override.Format.InferCodeLanguage != nil {
		result.Format.InferCodeLanguage = config.Bool(*override.Format.InferCodeLanguage)
	}
	if override.Validate.StrictInline != nil {
		result.Validate.StrictInline = config.Bool(*override.Validate.StrictInline)
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}

	return result
}

// MergeAll merges configurations in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
