package marshaller

import (
	"bytes"
	"context"
	"io"

	"github.com/speakeasy-api/asyncapi/json"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// Render writes node as YAML or JSON following the yml.Config found in ctx.
func Render(ctx context.Context, node *yaml.Node, w io.Writer) error {
	cfg := yml.GetConfigFromContext(ctx)

	var buf bytes.Buffer

	switch cfg.OutputFormat {
	case yml.OutputFormatJSON:
		if err := json.YAMLToJSON(node, cfg.Indentation, &buf); err != nil {
			return err
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(cfg.Indentation)
		if err := enc.Encode(node); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}

	out := buf.Bytes()
	if !cfg.TrailingNewline {
		out = bytes.TrimRight(out, "\n")
	}

	_, err := w.Write(out)
	return err
}
