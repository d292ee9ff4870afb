// Package extensions holds the `x-` prefixed vendor keys of AsyncAPI objects in their raw form.
package extensions

import (
	"context"

	"github.com/speakeasy-api/asyncapi/marshaller"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// Prefix is the key prefix that marks a vendor extension.
const Prefix = marshaller.ExtensionPrefix

// Extension represents a single extension to an object, in its raw form.
type Extension = *yaml.Node

// Element represents a key/value pair of a set of extensions.
type Element struct {
	*sequencedmap.Element[string, Extension]
}

// NewElem will create a new element for the extensions set.
func NewElem(key string, value *yaml.Node) *Element {
	return &Element{
		sequencedmap.NewElem(key, value),
	}
}

// Extensions represents an ordered set of raw key/value pairs attached to an object.
// The same type backs both the `x-` extensions and the bucket of unrecognized keys kept in lenient mode.
type Extensions struct {
	*sequencedmap.Map[string, Extension]
}

// New will create a new extensions set.
func New(elements ...*Element) *Extensions {
	ee := make([]*sequencedmap.Element[string, Extension], len(elements))
	for i, element := range elements {
		ee[i] = element.Element
	}

	return &Extensions{
		Map: sequencedmap.New(ee...),
	}
}

// Init will initialize the extensions set.
func (e *Extensions) Init() {
	e.Map = sequencedmap.New[string, Extension]()
}

// IsExtension reports whether key is a vendor extension key.
func IsExtension(key string) bool {
	return marshaller.IsExtensionKey(key)
}

// IsEqual compares two sets of extensions by key order and node content, ignoring formatting.
func (e *Extensions) IsEqual(other *Extensions) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.IsEqualFunc(other.Map, yml.EqualNodes)
}

// UnmarshalExtensionModel decodes the raw value of the named extension into a typed model.
// It reports false when the extension is not present.
func UnmarshalExtensionModel[T any](ctx context.Context, e *Extensions, ext string, m *T, opts ...marshaller.Option) (bool, error) {
	if e == nil {
		return false, nil
	}

	node, ok := e.Get(ext)
	if !ok {
		return false, nil
	}

	d := marshaller.NewDecoder(opts...)
	d.DecodeField(ctx, ext, node, m)

	return true, d.Err()
}
