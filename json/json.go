// Package json renders yaml node trees as JSON without reordering keys.
package json

import (
	"fmt"
	"io"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// YAMLToJSON writes node to w as JSON, keeping the key order of every mapping.
func YAMLToJSON(node *yaml.Node, indentation int, w io.Writer) error {
	v, err := ToValue(node)
	if err != nil {
		return err
	}

	e := gojson.NewEncoder(w)
	e.SetEscapeHTML(false)
	if indentation > 0 {
		e.SetIndent("", strings.Repeat(" ", indentation))
	}

	return e.Encode(v)
}

// ToValue converts node into plain Go values. Mappings become ordered
// *sequencedmap.Map[string, any] values so that re-encoding preserves key order.
func ToValue(node *yaml.Node) (any, error) {
	node = yml.ResolveAlias(node)
	if node == nil {
		return nil, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return ToValue(node.Content[0])
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := ToValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := sequencedmap.New[string, any]()
		content := yml.ResolveMergeKeys(node.Content)
		for i := 0; i+1 < len(content); i += 2 {
			key, err := mapKey(content[i])
			if err != nil {
				return nil, err
			}
			v, err := ToValue(content[i+1])
			if err != nil {
				return nil, err
			}
			out.Set(key, v)
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown node kind: %s", yml.NodeKindToString(node.Kind))
	}
}

func mapKey(node *yaml.Node) (string, error) {
	node = yml.ResolveAlias(node)
	if node.Kind == yaml.ScalarNode {
		return node.Value, nil
	}

	// complex keys are stringified as JSON
	v, err := ToValue(node)
	if err != nil {
		return "", err
	}
	data, err := gojson.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
