// Package sequencedmap provides a map implementation that maintains the order of keys as they are added.
package sequencedmap

import (
	"bytes"
	"fmt"
	"iter"
	"reflect"
	"slices"

	gojson "github.com/goccy/go-json"
)

// Element is a key-value pair that is stored in a sequenced map.
type Element[K comparable, V any] struct {
	Key   K
	Value V
}

// NewElem creates a new element with the specified key and value.
func NewElem[K comparable, V any](key K, value V) *Element[K, V] {
	return &Element[K, V]{
		Key:   key,
		Value: value,
	}
}

// Map is a map implementation that maintains the order of keys as they are added.
type Map[K comparable, V any] struct {
	m map[K]*Element[K, V]
	l []*Element[K, V]
}

// New creates a new map with the specified elements. Later duplicates of a key replace earlier values.
func New[K comparable, V any](elements ...*Element[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		m: make(map[K]*Element[K, V], len(elements)),
		l: make([]*Element[K, V], 0, len(elements)),
	}

	for _, element := range elements {
		m.Set(element.Key, element.Value)
	}

	return m
}

// Init initializes the underlying resources of the map.
func (m *Map[K, V]) Init() {
	if m.m == nil {
		m.m = make(map[K]*Element[K, V])
	}
	if m.l == nil {
		m.l = make([]*Element[K, V], 0)
	}
}

// Len returns the number of elements in the map. nil safe.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.l)
}

// Set sets the value for the specified key. Existing keys keep their position.
func (m *Map[K, V]) Set(key K, value V) {
	m.Init()

	if e, ok := m.m[key]; ok {
		e.Value = value
		return
	}

	e := NewElem(key, value)
	m.m[key] = e
	m.l = append(m.l, e)
}

// SetUntyped sets the value for the specified key with untyped key and value.
// This allows for using the map in generic code.
func (m *Map[K, V]) SetUntyped(key, value any) error {
	k, ok := key.(K)
	if !ok {
		return fmt.Errorf("expected key to be of type %s, got %T", m.GetKeyType(), key)
	}

	if value == nil {
		var zero V
		m.Set(k, zero)
		return nil
	}

	v, ok := value.(V)
	if !ok {
		return fmt.Errorf("expected value to be of type %s, got %T", m.GetValueType(), value)
	}

	m.Set(k, v)

	return nil
}

// Get returns the value for the specified key and a boolean indicating whether the key was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil || m.m == nil {
		return zero, false
	}

	element, ok := m.m[key]
	if !ok {
		return zero, false
	}

	return element.Value, true
}

// GetOrZero returns the value for the specified key or the zero value if the key is not found.
func (m *Map[K, V]) GetOrZero(key K) V {
	v, _ := m.Get(key)
	return v
}

// Has returns a boolean indicating whether the map contains the specified key.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes the element with the specified key from the map.
func (m *Map[K, V]) Delete(key K) {
	if m == nil || m.m == nil {
		return
	}

	if _, ok := m.m[key]; !ok {
		return
	}

	delete(m.m, key)
	m.l = slices.DeleteFunc(m.l, func(e *Element[K, V]) bool {
		return e.Key == key
	})
}

// All returns an iterator that iterates over all elements in the map, in the order they were added.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}

		for _, element := range m.l {
			if !yield(element.Key, element.Value) {
				return
			}
		}
	}
}

// AllUntyped returns an iterator over all elements with untyped key and value.
// This allows for using the map in generic code.
func (m *Map[K, V]) AllUntyped() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range m.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns an iterator that iterates over all keys in the map, in the order they were added.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator that iterates over all values in the map, in the order they were added.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// GetKeyType returns the type of the keys in the map.
func (m *Map[K, V]) GetKeyType() reflect.Type {
	return reflect.TypeOf((*K)(nil)).Elem()
}

// GetValueType returns the type of the values in the map.
func (m *Map[K, V]) GetValueType() reflect.Type {
	return reflect.TypeOf((*V)(nil)).Elem()
}

// IsEqualFunc reports whether both maps hold the same keys in the same order with values equal according to eq.
// A nil map and an empty map are not equal, as presence is significant in documents.
func (m *Map[K, V]) IsEqualFunc(other *Map[K, V], eq func(a, b V) bool) bool {
	if m == nil || other == nil {
		return m == other
	}

	if m.Len() != other.Len() {
		return false
	}

	for i, e := range m.l {
		o := other.l[i]
		if e.Key != o.Key || !eq(e.Value, o.Value) {
			return false
		}
	}

	return true
}

// MarshalJSON returns the JSON representation of the map with keys in insertion order.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, element := range m.l {
		if i > 0 {
			buf.WriteByte(',')
		}

		kb, err := gojson.MarshalNoEscape(fmt.Sprintf("%v", element.Key))
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := gojson.MarshalNoEscape(element.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
