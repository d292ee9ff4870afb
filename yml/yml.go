// Package yml contains helpers for working with the gopkg.in/yaml.v3 node tree
// that backs every document handled by this module.
package yml

import (
	"context"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ResolveAlias follows alias nodes until it reaches the aliased node.
func ResolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

// UnwrapDocument returns the root content of a document node, or node itself.
func UnwrapDocument(node *yaml.Node) *yaml.Node {
	if node != nil && node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return node.Content[0]
	}
	return node
}

// GetMapElementNodes returns the key and value nodes for key within mapNode.
func GetMapElementNodes(ctx context.Context, mapNode *yaml.Node, key string) (*yaml.Node, *yaml.Node, bool) {
	resolved := ResolveAlias(mapNode)
	if resolved == nil || resolved.Kind != yaml.MappingNode {
		return nil, nil, false
	}

	for i := 0; i+1 < len(resolved.Content); i += 2 {
		keyNode := resolved.Content[i]
		if k := ResolveAlias(keyNode); k != nil && k.Value == key {
			return keyNode, resolved.Content[i+1], true
		}
	}

	return nil, nil, false
}

func CreateStringNode(value string) *yaml.Node {
	return &yaml.Node{
		Value: value,
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
	}
}

// CreateKeyNode creates a mapping key using the key string style from the context config.
func CreateKeyNode(ctx context.Context, key string) *yaml.Node {
	n := CreateStringNode(key)
	n.Style = GetConfigFromContext(ctx).KeyStringStyle
	return n
}

// CreateValueStringNode creates a string value using the value string style from the context config.
func CreateValueStringNode(ctx context.Context, value string) *yaml.Node {
	n := CreateStringNode(value)
	n.Style = GetConfigFromContext(ctx).ValueStringStyle
	return n
}

func CreateIntNode(value int64) *yaml.Node {
	return &yaml.Node{
		Value: strconv.FormatInt(value, 10),
		Kind:  yaml.ScalarNode,
		Tag:   "!!int",
	}
}

func CreateFloatNode(value float64) *yaml.Node {
	return &yaml.Node{
		Value: formatFloat(value),
		Kind:  yaml.ScalarNode,
		Tag:   "!!float",
	}
}

// formatFloat spells non-finite values the way YAML 1.2 does.
func formatFloat(value float64) string {
	switch {
	case math.IsNaN(value):
		return ".nan"
	case math.IsInf(value, 1):
		return ".inf"
	case math.IsInf(value, -1):
		return "-.inf"
	default:
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
}

func CreateBoolNode(value bool) *yaml.Node {
	return &yaml.Node{
		Value: strconv.FormatBool(value),
		Kind:  yaml.ScalarNode,
		Tag:   "!!bool",
	}
}

func CreateNullNode() *yaml.Node {
	return &yaml.Node{
		Value: "null",
		Kind:  yaml.ScalarNode,
		Tag:   "!!null",
	}
}

func CreateMapNode(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Content: content,
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
	}
}

func CreateSequenceNode(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{
		Content: content,
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
	}
}

// Clone deep copies node, expanding aliases and dropping positions and comments.
// Values kept untyped in the model are stored as clones so a document never
// shares nodes with the tree it was decoded from.
func Clone(node *yaml.Node) *yaml.Node {
	return clone(node, map[*yaml.Node]bool{})
}

func clone(node *yaml.Node, expanding map[*yaml.Node]bool) *yaml.Node {
	if node == nil {
		return nil
	}

	if node.Kind == yaml.AliasNode {
		target := ResolveAlias(node)
		if target == nil || expanding[target] {
			// alias cycle, cut it here
			return CreateNullNode()
		}
		expanding[target] = true
		defer delete(expanding, target)
		return clone(target, expanding)
	}

	out := &yaml.Node{
		Kind:  node.Kind,
		Style: node.Style,
		Tag:   node.ShortTag(),
		Value: node.Value,
	}
	if node.Kind == yaml.DocumentNode {
		out.Tag = ""
	}

	if len(node.Content) > 0 {
		out.Content = make([]*yaml.Node, len(node.Content))
		for i, c := range node.Content {
			out.Content[i] = clone(c, expanding)
		}
	}

	return out
}

// IsMergeKey returns true if the given node is a YAML merge key (<<).
func IsMergeKey(node *yaml.Node) bool {
	node = ResolveAlias(node)
	return node != nil && node.Kind == yaml.ScalarNode && node.Tag == "!!merge" && node.Value == "<<"
}

// ResolveMergeKeys expands YAML merge keys (<<) found in a mapping's content.
// Explicit keys win over merged ones, earlier merge sources win over later ones.
func ResolveMergeKeys(content []*yaml.Node) []*yaml.Node {
	hasMerge := false
	for i := 0; i+1 < len(content); i += 2 {
		if IsMergeKey(content[i]) {
			hasMerge = true
			break
		}
	}
	if !hasMerge {
		return content
	}

	explicit := map[string]bool{}
	for i := 0; i+1 < len(content); i += 2 {
		if !IsMergeKey(content[i]) {
			explicit[ResolveAlias(content[i]).Value] = true
		}
	}

	merged := []*yaml.Node{}
	seen := map[string]bool{}
	var collect func(n *yaml.Node)
	collect = func(n *yaml.Node) {
		n = ResolveAlias(n)
		if n == nil {
			return
		}
		switch n.Kind {
		case yaml.MappingNode:
			flat := ResolveMergeKeys(n.Content)
			for j := 0; j+1 < len(flat); j += 2 {
				k := ResolveAlias(flat[j]).Value
				if explicit[k] || seen[k] {
					continue
				}
				seen[k] = true
				merged = append(merged, flat[j], flat[j+1])
			}
		case yaml.SequenceNode:
			for _, item := range n.Content {
				collect(item)
			}
		}
	}

	for i := 0; i+1 < len(content); i += 2 {
		if IsMergeKey(content[i]) {
			collect(content[i+1])
		}
	}

	out := make([]*yaml.Node, 0, len(merged)+len(content))
	out = append(out, merged...)
	for i := 0; i+1 < len(content); i += 2 {
		if !IsMergeKey(content[i]) {
			out = append(out, content[i], content[i+1])
		}
	}
	return out
}

// EqualNodes compares two nodes structurally: kind, resolved tag, value and content.
// Styles, positions and comments are ignored.
func EqualNodes(a, b *yaml.Node) bool {
	a = ResolveAlias(a)
	b = ResolveAlias(b)

	if a == nil || b == nil {
		return a == b
	}

	if a.Kind != b.Kind || a.ShortTag() != b.ShortTag() || a.Value != b.Value {
		return false
	}

	if len(a.Content) != len(b.Content) {
		return false
	}
	for i := range a.Content {
		if !EqualNodes(a.Content[i], b.Content[i]) {
			return false
		}
	}

	return true
}
