package marshaller

import (
	"context"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/speakeasy-api/asyncapi/validation"
	"github.com/speakeasy-api/asyncapi/yml"
	"gopkg.in/yaml.v3"
)

// ExtensionPrefix marks keys that are routed to the extensions field of an object.
const ExtensionPrefix = "x-"

// IsExtensionKey reports whether key is routed to the extensions field of an object.
func IsExtensionKey(key string) bool {
	return strings.HasPrefix(key, ExtensionPrefix)
}

// Unmarshallable is implemented by types that decode themselves, for example union types.
// Implementations report problems through the Decoder rather than returning them.
type Unmarshallable interface {
	UnmarshalNode(ctx context.Context, d *Decoder, node *yaml.Node)
}

// mapSetter is satisfied by *sequencedmap.Map.
type mapSetter interface {
	Init()
	SetUntyped(key, value any) error
	GetValueType() reflect.Type
}

// rawSetter is satisfied by *extensions.Extensions.
type rawSetter interface {
	Init()
	Set(key string, value *yaml.Node)
}

var yamlNodePtrType = reflect.TypeOf((*yaml.Node)(nil))

func (d *Decoder) unmarshal(ctx context.Context, node *yaml.Node, out reflect.Value) {
	node = resolve(node)
	if node == nil {
		d.Report(node, &validation.ParseError{Expected: ShapeName(out.Type()), Found: yml.Describe(node)})
		return
	}

	if out.Type() == yamlNodePtrType {
		out.Set(reflect.ValueOf(yml.Clone(node)))
		return
	}

	if out.Kind() == reflect.Ptr {
		if isNull(node) {
			out.Set(reflect.Zero(out.Type()))
			return
		}

		v := reflect.New(out.Type().Elem())
		d.unmarshal(ctx, node, v.Elem())
		out.Set(v)
		return
	}

	if out.CanAddr() {
		switch target := out.Addr().Interface().(type) {
		case Unmarshallable:
			target.UnmarshalNode(ctx, d, node)
			return
		case mapSetter:
			d.unmarshalMapping(ctx, node, target)
			return
		}
	}

	switch out.Kind() {
	case reflect.Struct:
		d.unmarshalStruct(ctx, node, out)
	case reflect.Slice:
		d.unmarshalSequence(ctx, node, out)
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		d.unmarshalScalar(node, out)
	default:
		d.Report(node, &validation.ParseError{Expected: out.Type().String(), Found: yml.Describe(node)})
	}
}

func (d *Decoder) unmarshalStruct(ctx context.Context, node *yaml.Node, out reflect.Value) {
	if node == nil || node.Kind != yaml.MappingNode {
		d.Report(node, &validation.ParseError{Expected: "object", Found: yml.Describe(node)})
		return
	}

	info := getStructInfo(out.Type())
	content := yml.ResolveMergeKeys(node.Content)
	found := make(map[string]bool, len(info.fields))

	for i := 0; i+1 < len(content); i += 2 {
		keyNode := yml.ResolveAlias(content[i])
		valueNode := content[i+1]
		key := keyNode.Value

		if f, ok := info.byKey[key]; ok {
			if d.mode == ModeStrict && f.since != nil && d.version != nil && d.version.LessThan(*f.since) {
				d.ReportAt(key, keyNode, &validation.UnknownFieldError{Key: key, Since: f.since.String()})
				continue
			}

			found[key] = true

			// null is never a value for a required field
			if f.required && isNull(resolve(valueNode)) {
				field := out.FieldByIndex(f.index)
				d.ReportAt(key, valueNode, &validation.ParseError{Expected: ShapeName(field.Type()), Found: yml.Describe(valueNode)})
				continue
			}

			pop := d.push(key)
			d.unmarshal(ctx, valueNode, out.FieldByIndex(f.index))
			pop()
			continue
		}

		if IsExtensionKey(key) && info.extensions != nil {
			setRaw(out.FieldByIndex(info.extensions), key, valueNode)
			continue
		}

		if d.mode == ModeStrict {
			d.ReportAt(key, keyNode, &validation.UnknownFieldError{Key: key})
			continue
		}

		if info.unrecognized != nil {
			setRaw(out.FieldByIndex(info.unrecognized), key, valueNode)
		}
	}

	for _, f := range info.fields {
		if f.required && !found[f.key] {
			d.Report(node, &validation.ParseError{Expected: f.key, Found: "nothing", Required: true})
		}
	}
}

func setRaw(field reflect.Value, key string, valueNode *yaml.Node) {
	if field.IsNil() {
		v := reflect.New(field.Type().Elem())
		v.Interface().(rawSetter).Init()
		field.Set(v)
	}

	field.Interface().(rawSetter).Set(key, yml.Clone(valueNode))
}

func (d *Decoder) unmarshalMapping(ctx context.Context, node *yaml.Node, m mapSetter) {
	if node.Kind != yaml.MappingNode {
		d.Report(node, &validation.ParseError{Expected: "object", Found: yml.Describe(node)})
		return
	}

	m.Init()
	valueType := m.GetValueType()
	content := yml.ResolveMergeKeys(node.Content)

	for i := 0; i+1 < len(content); i += 2 {
		keyNode := yml.ResolveAlias(content[i])
		key := keyNode.Value

		v := reflect.New(valueType).Elem()

		pop := d.push(key)
		d.unmarshal(ctx, content[i+1], v)
		if err := m.SetUntyped(key, v.Interface()); err != nil {
			d.Report(keyNode, &validation.ParseError{Expected: valueType.String(), Found: err.Error()})
		}
		pop()
	}
}

func (d *Decoder) unmarshalSequence(ctx context.Context, node *yaml.Node, out reflect.Value) {
	if node.Kind != yaml.SequenceNode {
		d.Report(node, &validation.ParseError{Expected: ShapeName(out.Type()), Found: yml.Describe(node)})
		return
	}

	s := reflect.MakeSlice(out.Type(), len(node.Content), len(node.Content))
	for i, item := range node.Content {
		pop := d.push(strconv.Itoa(i))
		d.unmarshal(ctx, item, s.Index(i))
		pop()
	}

	out.Set(s)
}

func (d *Decoder) unmarshalScalar(node *yaml.Node, out reflect.Value) {
	mismatch := func() {
		d.Report(node, &validation.ParseError{Expected: ShapeName(out.Type()), Found: yml.Describe(node)})
	}

	if node.Kind != yaml.ScalarNode || isNull(node) {
		mismatch()
		return
	}

	tag := node.ShortTag()

	switch out.Kind() {
	case reflect.String:
		out.SetString(node.Value)
	case reflect.Bool:
		var b bool
		if tag != "!!bool" || node.Decode(&b) != nil {
			mismatch()
			return
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		if tag != "!!int" || node.Decode(&i) != nil || out.OverflowInt(i) {
			mismatch()
			return
		}
		out.SetInt(i)
	case reflect.Float32, reflect.Float64:
		var f float64
		if (tag != "!!int" && tag != "!!float") || node.Decode(&f) != nil {
			mismatch()
			return
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			d.Report(node, &validation.ParseError{Expected: "finite number", Found: node.Value})
			return
		}
		out.SetFloat(f)
	default:
		mismatch()
	}
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
