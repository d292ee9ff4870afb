package jsonpointer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// GetNodeTarget evaluates the pointer against a yaml node tree and returns the node it points at.
// Document and alias nodes are followed transparently.
func GetNodeTarget(node *yaml.Node, pointer JSONPointer) (*yaml.Node, error) {
	tokens, err := pointer.tokens()
	if err != nil {
		return nil, ErrValidation.Wrap(err)
	}

	current := resolve(node)
	currentPath := ""

	for _, token := range tokens {
		currentPath += "/" + token

		if current == nil {
			return nil, ErrNotFound.Wrap(fmt.Errorf("yaml node is nil at %s", currentPath))
		}

		switch current.Kind {
		case yaml.MappingNode:
			next, ok := getMappingValue(current, Unescape(token))
			if !ok {
				return nil, ErrNotFound.Wrap(fmt.Errorf("key not found in mapping at %s", currentPath))
			}
			current = next
		case yaml.SequenceNode:
			index, ok := parseIndex(token)
			if !ok {
				return nil, ErrInvalidPath.Wrap(fmt.Errorf("expected index for sequence at %s", currentPath))
			}
			if index >= len(current.Content) {
				return nil, ErrNotFound.Wrap(fmt.Errorf("index %d out of range at %s", index, currentPath))
			}
			current = resolve(current.Content[index])
		default:
			return nil, ErrInvalidPath.Wrap(fmt.Errorf("cannot navigate through scalar yaml node at %s", currentPath))
		}
	}

	return current, nil
}

func getMappingValue(node *yaml.Node, key string) (*yaml.Node, bool) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := resolve(node.Content[i])
		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return resolve(node.Content[i+1]), true
		}
	}
	return nil, false
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && (node.Kind == yaml.DocumentNode || node.Kind == yaml.AliasNode) {
		if node.Kind == yaml.AliasNode {
			node = node.Alias
			continue
		}
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	return node
}
