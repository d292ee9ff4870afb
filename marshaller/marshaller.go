package marshaller

import (
	"context"
	"fmt"
	"iter"
	"math"
	"reflect"

	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// Marshallable is implemented by types that build their own node, for example union types.
// MarshalNode returns nil when there is nothing to emit.
type Marshallable interface {
	MarshalNode(ctx context.Context) *yaml.Node
}

// mapGetter is satisfied by *sequencedmap.Map.
type mapGetter interface {
	AllUntyped() iter.Seq2[any, any]
}

// rawGetter is satisfied by *extensions.Extensions.
type rawGetter interface {
	All() iter.Seq2[string, *yaml.Node]
}

// Encode builds the node tree for v. Nil pointers and nil slices yield a nil node so that absent fields are omitted.
// Raw values are copied, the returned tree never shares nodes with v.
func Encode(ctx context.Context, v any) *yaml.Node {
	if v == nil {
		return nil
	}
	return marshal(ctx, reflect.ValueOf(v))
}

// EncodeFields builds a mapping node from the tagged fields of structPtr, ignoring any Marshallable implementation.
func EncodeFields(ctx context.Context, structPtr any) *yaml.Node {
	v := reflect.ValueOf(structPtr)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	return marshalStruct(ctx, v)
}

func marshal(ctx context.Context, v reflect.Value) *yaml.Node {
	if !v.IsValid() {
		return nil
	}

	if v.Type() == yamlNodePtrType {
		if v.IsNil() {
			return nil
		}
		return yml.Clone(v.Interface().(*yaml.Node))
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
	}

	target := v
	if v.Kind() != reflect.Ptr && v.CanAddr() {
		target = v.Addr()
	}
	if target.CanInterface() {
		switch m := target.Interface().(type) {
		case Marshallable:
			return m.MarshalNode(ctx)
		case mapGetter:
			return marshalMapping(ctx, m)
		}
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return marshal(ctx, v.Elem())
	case reflect.Struct:
		return marshalStruct(ctx, v)
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		return marshalSequence(ctx, v)
	case reflect.String:
		return yml.CreateValueStringNode(ctx, v.String())
	case reflect.Bool:
		return yml.CreateBoolNode(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return yml.CreateIntNode(v.Int())
	case reflect.Float32, reflect.Float64:
		return createNumberNode(v.Float())
	default:
		panic(fmt.Sprintf("marshaller: unsupported type %s", v.Type()))
	}
}

func marshalStruct(ctx context.Context, v reflect.Value) *yaml.Node {
	info := getStructInfo(v.Type())

	content := make([]*yaml.Node, 0, len(info.fields)*2)
	for _, f := range info.fields {
		n := marshal(ctx, v.FieldByIndex(f.index))
		if n == nil {
			continue
		}
		content = append(content, yml.CreateKeyNode(ctx, f.key), n)
	}

	if info.unrecognized != nil {
		content = appendRaw(ctx, content, v.FieldByIndex(info.unrecognized))
	}
	if info.extensions != nil {
		content = appendRaw(ctx, content, v.FieldByIndex(info.extensions))
	}

	return yml.CreateMapNode(content...)
}

func appendRaw(ctx context.Context, content []*yaml.Node, field reflect.Value) []*yaml.Node {
	if field.IsNil() {
		return content
	}

	raw, ok := field.Interface().(rawGetter)
	if !ok {
		return content
	}

	for key, value := range raw.All() {
		n := yml.Clone(value)
		if n == nil {
			n = yml.CreateNullNode()
		}
		content = append(content, yml.CreateKeyNode(ctx, key), n)
	}

	return content
}

func marshalMapping(ctx context.Context, m mapGetter) *yaml.Node {
	content := []*yaml.Node{}
	for key, value := range m.AllUntyped() {
		n := Encode(ctx, value)
		if n == nil {
			n = yml.CreateNullNode()
		}
		content = append(content, yml.CreateKeyNode(ctx, fmt.Sprintf("%v", key)), n)
	}
	return yml.CreateMapNode(content...)
}

func marshalSequence(ctx context.Context, v reflect.Value) *yaml.Node {
	content := make([]*yaml.Node, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		n := marshal(ctx, v.Index(i))
		if n == nil {
			n = yml.CreateNullNode()
		}
		content = append(content, n)
	}
	return yml.CreateSequenceNode(content...)
}

// integral values are written without a fraction so `maximum: 10` stays `10`
func createNumberNode(f float64) *yaml.Node {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return yml.CreateIntNode(int64(f))
	}
	return yml.CreateFloatNode(f)
}
