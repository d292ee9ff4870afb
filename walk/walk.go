// Package walk visits every model reachable from a root model along with its location.
package walk

import (
	"context"
	"fmt"
	"iter"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Item is a single model yielded by Walk.
type Item struct {
	// Value is a non nil pointer to the model.
	Value    any
	Location Locations
}

// mapIterator is satisfied by *sequencedmap.Map.
type mapIterator interface {
	AllUntyped() iter.Seq2[any, any]
}

var yamlNodePtrType = reflect.TypeOf((*yaml.Node)(nil))

// Walk returns an iterator over root and every model below it, depth first in field declaration order.
// Map entries are visited in insertion order.
//
// Models are followed through fields carrying a `key` tag, sequenced maps and slices. Untagged
// exported fields, as found on union types, are followed without adding a location. Extensions,
// unrecognized keys and other raw values are not visited.
func Walk(ctx context.Context, root any) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		if root == nil {
			return
		}

		w := &walker{ctx: ctx, yield: yield}
		w.walk(reflect.ValueOf(root), nil, nil)
	}
}

type walker struct {
	ctx   context.Context
	yield func(Item) bool
}

func (w *walker) walk(v reflect.Value, parent any, loc Locations) bool {
	if w.ctx.Err() != nil {
		return false
	}

	if !v.IsValid() || v.Type() == yamlNodePtrType {
		return true
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return true
		}

		if m, ok := v.Interface().(mapIterator); ok {
			return w.walkMap(m, parent, loc)
		}

		if v.Kind() == reflect.Ptr && v.Elem().Kind() == reflect.Struct {
			if !w.yield(Item{Value: v.Interface(), Location: loc}) {
				return false
			}
			return w.walkStruct(v, loc)
		}

		return w.walk(v.Elem(), parent, loc)
	case reflect.Struct:
		if v.CanAddr() {
			return w.walk(v.Addr(), parent, loc)
		}
		return true
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if !w.walk(v.Index(i), parent, appendIndex(loc, parent, i)) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (w *walker) walkStruct(ptr reflect.Value, loc Locations) bool {
	v := ptr.Elem()
	t := v.Type()
	parent := ptr.Interface()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		key := field.Tag.Get("key")
		switch key {
		case "extensions", "unrecognized":
			continue
		case "":
			// union variants share the location of the union itself
			if !w.walk(v.Field(i), parent, loc) {
				return false
			}
		default:
			if !w.walk(v.Field(i), parent, appendField(loc, parent, key)) {
				return false
			}
		}
	}

	return true
}

func (w *walker) walkMap(m mapIterator, parent any, loc Locations) bool {
	// the map field itself was recorded as the last location, keys extend it
	base, field := loc, ""
	if len(loc) > 0 && loc[len(loc)-1].ParentKey == nil && loc[len(loc)-1].ParentIndex == nil {
		base, field = loc[:len(loc)-1], loc[len(loc)-1].ParentField
	}

	for key, value := range m.AllUntyped() {
		k := fmt.Sprintf("%v", key)
		next := append(base[:len(base):len(base)], LocationContext{Parent: parent, ParentField: field, ParentKey: &k})
		if !w.walk(reflect.ValueOf(value), parent, next) {
			return false
		}
	}

	return true
}

func appendField(loc Locations, parent any, field string) Locations {
	return append(loc[:len(loc):len(loc)], LocationContext{Parent: parent, ParentField: field})
}

func appendIndex(loc Locations, parent any, index int) Locations {
	base, field := loc, ""
	if len(loc) > 0 && loc[len(loc)-1].ParentKey == nil && loc[len(loc)-1].ParentIndex == nil {
		base, field = loc[:len(loc)-1], loc[len(loc)-1].ParentField
	}
	return append(base[:len(base):len(base)], LocationContext{Parent: parent, ParentField: field, ParentIndex: &index})
}
