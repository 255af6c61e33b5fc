package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/haikal/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.DefaultMaxQuoteDepth, cfg.Parser.MaxQuoteDepth)
	assert.Equal(t, config.DefaultTabSize, cfg.Format.TabSize)
	assert.False(t, cfg.InferCodeLanguage())
	assert.False(t, cfg.StrictInline())
	assert.Equal(t, config.FormatText, cfg.Output)
	assert.Zero(t, cfg.Jobs)
}

func TestOutputFormatIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FormatText.IsValid())
	assert.True(t, config.FormatJSON.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("all keys", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte(`
parser:
  max_quote_depth: 3
format:
  tab_size: 2
  infer_code_language: true
validate:
  strict_inline: true
ignore:
  - "drafts/**"
jobs: 4
`))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Parser.MaxQuoteDepth)
		assert.Equal(t, 2, cfg.Format.TabSize)
		assert.True(t, cfg.InferCodeLanguage())
		assert.True(t, cfg.StrictInline())
		assert.Equal(t, []string{"drafts/**"}, cfg.Ignore)
		assert.Equal(t, 4, cfg.Jobs)
	})

	t.Run("unset keys stay zero", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte("jobs: 2\n"))
		require.NoError(t, err)
		assert.Zero(t, cfg.Format.TabSize)
		assert.Nil(t, cfg.Format.InferCodeLanguage)
		assert.Nil(t, cfg.Ignore)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("jobs: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})
}

func TestToYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Ignore = []string{"a/**"}
	original.Output = config.FormatJSON

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "output", "CLI-only fields are not persisted")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original.Parser, parsed.Parser)
	assert.Equal(t, original.Ignore, parsed.Ignore)
	assert.Equal(t, original.InferCodeLanguage(), parsed.InferCodeLanguage())

	withHeader, err := original.ToYAMLWithHeader("# header")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(withHeader), "# header\n\n"))
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	var nilCfg *config.Config
	assert.Nil(t, nilCfg.Clone())

	original := config.NewConfig()
	original.Ignore = []string{"*.tmp"}
	original.Jobs = 3

	clone := original.Clone()
	require.NotNil(t, clone)
	assert.NotSame(t, original, clone)
	assert.Equal(t, original, clone)

	clone.Ignore[0] = "changed"
	*clone.Format.InferCodeLanguage = true
	assert.Equal(t, "*.tmp", original.Ignore[0])
	assert.False(t, original.InferCodeLanguage())
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	t.Run("yaml parses back to defaults", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateYAML)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "# haikal configuration"))

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		defaults := config.NewConfig()
		assert.Equal(t, defaults.Parser, cfg.Parser)
		assert.Equal(t, defaults.Format.TabSize, cfg.Format.TabSize)
		assert.Equal(t, config.DefaultIgnore, cfg.Ignore)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		data, err := config.GenerateTemplate(config.TemplateJSON)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"tab_size": 4`)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := config.GenerateTemplate("toml")
		require.Error(t, err)
	})
}
