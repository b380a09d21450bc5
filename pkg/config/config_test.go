package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdbuild/pkg/config"
)

func TestNewConfig(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, config.FlavorGFM, cfg.Flavor)
	assert.Equal(t, config.LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.False(t, cfg.Verify)
	assert.False(t, cfg.DetectLanguage)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{name: "zero value", cfg: config.Config{}},
		{name: "commonmark", cfg: config.Config{Flavor: config.FlavorCommonMark}},
		{name: "unknown flavor", cfg: config.Config{Flavor: "markua"}, wantErr: "flavor"},
		{name: "unknown log level", cfg: config.Config{LogLevel: "trace"}, wantErr: "log_level"},
		{name: "unknown color", cfg: config.Config{Color: "sometimes"}, wantErr: "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGenerateTemplate(t *testing.T) {
	t.Run("minimal template parses to defaults", func(t *testing.T) {
		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)
		assert.Contains(t, string(data), "# gomdbuild configuration")
		assert.Contains(t, string(data), "# verify: false")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.FlavorGFM, cfg.Flavor)
		assert.Empty(t, cfg.LogLevel)
	})

	t.Run("full template documents every key", func(t *testing.T) {
		data, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
		require.NoError(t, err)

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.LogLevelInfo, cfg.LogLevel)
		assert.Contains(t, string(data), "# Markdown flavor")
	})

	t.Run("json", func(t *testing.T) {
		data, err := config.GenerateTemplate(config.TemplateOptions{Format: config.TemplateFormatJSON})
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"flavor":"gfm","detect_language":false,"verify":false,"log_level":"info"}`,
			string(data))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := config.GenerateTemplate(config.TemplateOptions{Format: "toml"})
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
