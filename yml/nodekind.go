package yml

import "gopkg.in/yaml.v3"

// NodeKindToString returns a human-readable name for a yaml.Kind, for use in error messages.
func NodeKindToString(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// NodeTagToString returns a human-readable name for a resolved yaml tag.
func NodeTagToString(tag string) string {
	switch tag {
	case "!!str":
		return "string"
	case "!!int":
		return "integer"
	case "!!float":
		return "number"
	case "!!bool":
		return "boolean"
	case "!!map":
		return "object"
	case "!!seq":
		return "sequence"
	case "!!null":
		return "null"
	default:
		return tag
	}
}

// Describe names the shape of node for error messages, e.g. "string" or "sequence".
func Describe(node *yaml.Node) string {
	node = ResolveAlias(node)
	if node == nil {
		return "nothing"
	}
	if node.Kind == yaml.ScalarNode {
		return NodeTagToString(node.ShortTag())
	}
	return NodeKindToString(node.Kind)
}
