package asyncapi

import (
	"context"
	"reflect"
	"slices"

	"github.com/speakeasy-api/asyncapi/marshaller"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

const refKey = "$ref"

// ReferenceOr holds either a `$ref` to an object of type T or the object itself.
// References are never resolved.
type ReferenceOr[T any] struct {
	Reference *references.Reference
	Item      *T
}

var (
	_ marshaller.Unmarshallable = (*ReferenceOr[Message])(nil)
	_ marshaller.Marshallable   = (*ReferenceOr[Message])(nil)
	_ marshaller.Matcher        = (*ReferenceOr[Message])(nil)
)

// NewReference creates a ReferenceOr holding a reference.
func NewReference[T any](ref references.Reference) *ReferenceOr[T] {
	return &ReferenceOr[T]{Reference: &ref}
}

// NewItem creates a ReferenceOr holding an inline object.
func NewItem[T any](item *T) *ReferenceOr[T] {
	return &ReferenceOr[T]{Item: item}
}

// IsReference reports whether a reference is held.
func (r *ReferenceOr[T]) IsReference() bool {
	return r != nil && r.Reference != nil
}

// GetReference returns the reference or "" when an inline object is held.
func (r *ReferenceOr[T]) GetReference() references.Reference {
	if r == nil || r.Reference == nil {
		return ""
	}
	return *r.Reference
}

// GetItem returns the inline object or nil when a reference is held.
func (r *ReferenceOr[T]) GetItem() *T {
	if r == nil {
		return nil
	}
	return r.Item
}

func (r *ReferenceOr[T]) ShapeName() string {
	return "reference or " + marshaller.ShapeName(reflect.TypeFor[T]())
}

func (r *ReferenceOr[T]) MatchesNode(node *yaml.Node) bool {
	if _, ok := stringRef(node); ok {
		return true
	}
	return marshaller.Matches(reflect.TypeFor[T](), node)
}

func (r *ReferenceOr[T]) UnmarshalNode(ctx context.Context, d *marshaller.Decoder, node *yaml.Node) {
	r.Reference = nil
	r.Item = nil

	if refNode, ok := stringRef(node); ok {
		if siblings := siblingKeys(node); len(siblings) > 0 {
			d.Report(node, &validation.UnionMismatchError{
				Candidates: []string{"reference", marshaller.ShapeName(reflect.TypeFor[T]())},
				Reason:     "`$ref` must be the only key, found " + joinKeys(siblings),
			})
			return
		}

		ref := references.Reference(refNode.Value)
		if err := ref.Validate(); err != nil {
			d.ReportAt(refKey, refNode, &validation.InvalidReferenceError{Value: refNode.Value, Cause: err})
			return
		}

		r.Reference = &ref
		return
	}

	if !marshaller.Matches(reflect.TypeFor[T](), node) {
		d.Report(node, &validation.UnionMismatchError{
			Candidates: []string{"reference", marshaller.ShapeName(reflect.TypeFor[T]())},
			Reason:     "found " + yml.Describe(node),
		})
		return
	}

	var item T
	d.Decode(ctx, node, &item)
	r.Item = &item
}

func (r *ReferenceOr[T]) MarshalNode(ctx context.Context) *yaml.Node {
	switch {
	case r == nil:
		return nil
	case r.Reference != nil:
		return yml.CreateMapNode(
			yml.CreateKeyNode(ctx, refKey),
			yml.CreateValueStringNode(ctx, r.Reference.String()),
		)
	case r.Item != nil:
		return marshaller.Encode(ctx, r.Item)
	default:
		return nil
	}
}

// stringRef returns the `$ref` value node of a mapping when it holds a string.
func stringRef(node *yaml.Node) (*yaml.Node, bool) {
	node = yml.ResolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, false
	}

	_, valueNode, found := yml.GetMapElementNodes(context.Background(), node, refKey)
	valueNode = yml.ResolveAlias(valueNode)
	if !found || valueNode == nil || valueNode.Kind != yaml.ScalarNode || valueNode.ShortTag() != "!!str" {
		return nil, false
	}

	return valueNode, true
}

func siblingKeys(node *yaml.Node) []string {
	node = yml.ResolveAlias(node)
	content := yml.ResolveMergeKeys(node.Content)

	var keys []string
	for i := 0; i+1 < len(content); i += 2 {
		if key := yml.ResolveAlias(content[i]).Value; key != refKey && !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	return keys
}

func joinKeys(keys []string) string {
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += "`" + k + "`"
	}
	return out
}
