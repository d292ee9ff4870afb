package yml

import (
	"bytes"
	"context"

	"gopkg.in/yaml.v3"
)

type contextKey string

func (c contextKey) String() string {
	return "yml-context-key-" + string(c)
}

const configContextKey = contextKey("config")

type OutputFormat string

const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

type Config struct {
	KeyStringStyle   yaml.Style   // string style used for newly created keys
	ValueStringStyle yaml.Style   // string style used for newly created string values
	Indentation      int          // spaces per indentation level
	OutputFormat     OutputFormat // format used when marshalling
	OriginalFormat   OutputFormat // format the document was read from, empty for documents built in memory
	TrailingNewline  bool         // whether the source ended with a newline
}

var defaultConfig = Config{
	Indentation:     2,
	OutputFormat:    OutputFormatYAML,
	TrailingNewline: true,
}

// GetDefaultConfig returns a copy of the default configuration: 2 space YAML.
func GetDefaultConfig() *Config {
	cfg := defaultConfig
	return &cfg
}

func ContextWithConfig(ctx context.Context, config *Config) context.Context {
	if config == nil {
		return ctx
	}

	return context.WithValue(ctx, configContextKey, config)
}

// GetConfigFromContext returns the config stored in ctx or the default config.
func GetConfigFromContext(ctx context.Context) *Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configContextKey).(*Config); ok && cfg != nil {
			return cfg
		}
	}

	return GetDefaultConfig()
}

// HasConfig reports whether ctx carries an explicit config.
func HasConfig(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	_, ok := ctx.Value(configContextKey).(*Config)
	return ok
}

// GetConfigFromDoc inspects the raw document and its parsed tree to capture
// the formatting conventions to reuse when the document is written back out.
func GetConfigFromDoc(data []byte, doc *yaml.Node) *Config {
	cfg := defaultConfig

	cfg.OutputFormat, cfg.Indentation = inspectData(data)
	cfg.OriginalFormat = cfg.OutputFormat
	cfg.TrailingNewline = len(data) > 0 && data[len(data)-1] == '\n'

	if cfg.OriginalFormat == OutputFormatYAML && doc != nil {
		cfg.KeyStringStyle, cfg.ValueStringStyle = sampleStringStyles(doc)
	}

	return &cfg
}

func inspectData(data []byte) (OutputFormat, int) {
	format := OutputFormatYAML
	indentation := 2

	foundFormat := false
	baseline := -1

	for _, line := range bytes.Split(data, []byte("\n")) {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 || trimmed[0] == '#' {
			continue
		}

		if !foundFormat {
			foundFormat = true
			if trimmed[0] == '{' {
				format = OutputFormatJSON
			}
		}

		leading := len(line) - len(bytes.TrimLeft(line, " "))
		if baseline == -1 {
			baseline = leading
			continue
		}
		if leading > baseline {
			indentation = leading - baseline
			break
		}
	}

	return format, indentation
}

// sampleStringStyles picks the most common key and value string styles among the first few samples.
func sampleStringStyles(doc *yaml.Node) (yaml.Style, yaml.Style) {
	const samples = 5

	keyCounts := map[yaml.Style]int{}
	valueCounts := map[yaml.Style]int{}
	keys, values := 0, 0

	var visit func(n *yaml.Node)
	visit = func(n *yaml.Node) {
		if n == nil || (keys >= samples && values >= samples) {
			return
		}
		switch n.Kind {
		case yaml.DocumentNode, yaml.SequenceNode:
			for _, c := range n.Content {
				visit(c)
			}
		case yaml.MappingNode:
			for i := 0; i+1 < len(n.Content); i += 2 {
				if k := n.Content[i]; k.Kind == yaml.ScalarNode && keys < samples {
					keyCounts[k.Style]++
					keys++
				}
				visit(n.Content[i+1])
			}
		case yaml.ScalarNode:
			if n.ShortTag() == "!!str" && values < samples {
				valueCounts[n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle)]++
				values++
			}
		}
	}
	visit(doc)

	return mostCommon(keyCounts), mostCommon(valueCounts)
}

func mostCommon(counts map[yaml.Style]int) yaml.Style {
	var best yaml.Style
	bestCount := 0
	for style, count := range counts {
		if count > bestCount || (count == bestCount && style < best) {
			best, bestCount = style, count
		}
	}
	return best
}
