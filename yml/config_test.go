package yml_test

import (
	"testing"

	"github.com/speakeasy-api/asyncapi/yml"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestContextWithConfig_Success(t *testing.T) {
	t.Parallel()

	cfg := &yml.Config{
		Indentation:    4,
		OutputFormat:   yml.OutputFormatJSON,
		OriginalFormat: yml.OutputFormatYAML,
	}

	ctx := yml.ContextWithConfig(t.Context(), cfg)
	assert.Same(t, cfg, yml.GetConfigFromContext(ctx))
	assert.True(t, yml.HasConfig(ctx))

	assert.Equal(t, t.Context(), yml.ContextWithConfig(t.Context(), nil))
	assert.False(t, yml.HasConfig(t.Context()))
	assert.Equal(t, yml.GetDefaultConfig(), yml.GetConfigFromContext(t.Context()))
}

func TestGetConfigFromDoc_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		data                string
		expectedFormat      yml.OutputFormat
		expectedIndentation int
		expectedValueStyle  yaml.Style
	}{
		{
			name:                "yaml with two spaces",
			data:                "asyncapi: 2.3.0\ninfo:\n  title: t\n  version: v\n",
			expectedFormat:      yml.OutputFormatYAML,
			expectedIndentation: 2,
		},
		{
			name:                "yaml with four spaces and double quotes",
			data:                "# comment\nasyncapi: \"2.3.0\"\ninfo:\n    title: \"t\"\n    version: \"v\"\n",
			expectedFormat:      yml.OutputFormatYAML,
			expectedIndentation: 4,
			expectedValueStyle:  yaml.DoubleQuotedStyle,
		},
		{
			name:                "json",
			data:                "{\n    \"asyncapi\": \"2.3.0\"\n}\n",
			expectedFormat:      yml.OutputFormatJSON,
			expectedIndentation: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var node yaml.Node
			if err := yaml.Unmarshal([]byte(tt.data), &node); err != nil {
				t.Fatal(err)
			}

			cfg := yml.GetConfigFromDoc([]byte(tt.data), &node)
			assert.Equal(t, tt.expectedFormat, cfg.OutputFormat)
			assert.Equal(t, tt.expectedFormat, cfg.OriginalFormat)
			assert.Equal(t, tt.expectedIndentation, cfg.Indentation)
			assert.Equal(t, tt.expectedValueStyle, cfg.ValueStringStyle)
			assert.True(t, cfg.TrailingNewline)
		})
	}
}
