package marshaller

import (
	"reflect"

	"gopkg.in/yaml.v3"
)

// Matcher is implemented by types with a custom structural shape test, used to pick a candidate of a union.
type Matcher interface {
	MatchesNode(node *yaml.Node) bool
}

// ShapeNamer is implemented by types that name their shape in union errors.
type ShapeNamer interface {
	ShapeName() string
}

// Matches reports whether node has the structural shape of typ. Only the kind of the node is
// checked, the content of mappings and sequences is not inspected unless typ implements Matcher.
func Matches(typ reflect.Type, node *yaml.Node) bool {
	node = resolve(node)
	if node == nil {
		return false
	}

	if typ == yamlNodePtrType {
		return true
	}

	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	if m, ok := reflect.New(typ).Interface().(Matcher); ok {
		return m.MatchesNode(node)
	}

	if node.Kind != yaml.ScalarNode {
		switch typ.Kind() {
		case reflect.Slice:
			return node.Kind == yaml.SequenceNode
		case reflect.Struct, reflect.Map:
			return node.Kind == yaml.MappingNode
		default:
			return false
		}
	}

	tag := node.ShortTag()
	switch typ.Kind() {
	case reflect.String:
		return tag != "!!null"
	case reflect.Bool:
		return tag == "!!bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return tag == "!!int"
	case reflect.Float32, reflect.Float64:
		return tag == "!!int" || tag == "!!float"
	default:
		return false
	}
}

// ShapeName describes the shape of typ for error messages.
func ShapeName(typ reflect.Type) string {
	if typ == yamlNodePtrType {
		return "any value"
	}

	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	if n, ok := reflect.New(typ).Interface().(ShapeNamer); ok {
		return n.ShapeName()
	}

	switch typ.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice:
		return "array of " + ShapeName(typ.Elem())
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return typ.String()
	}
}
