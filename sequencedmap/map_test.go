package sequencedmap_test

import (
	"reflect"
	"slices"
	"testing"

	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_SetGet_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("b", 2),
		sequencedmap.NewElem("a", 1),
	)
	m.Set("c", 3)
	m.Set("b", 20)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"b", "a", "c"}, slices.Collect(m.Keys()))
	assert.Equal(t, []int{20, 1, 3}, slices.Collect(m.Values()))

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.True(t, m.Has("c"))
	assert.False(t, m.Has("z"))
	assert.Equal(t, 0, m.GetOrZero("z"))
}

func TestMap_Delete_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("a", 1),
		sequencedmap.NewElem("b", 2),
		sequencedmap.NewElem("c", 3),
	)

	m.Delete("b")
	m.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, slices.Collect(m.Keys()))
}

func TestMap_NilSafe(t *testing.T) {
	t.Parallel()

	var m *sequencedmap.Map[string, int]

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Has("a"))
	m.Delete("a")

	for range m.All() {
		t.Fatal("nil map should not yield")
	}

	var zero sequencedmap.Map[string, int]
	zero.Set("a", 1)
	assert.Equal(t, 1, zero.Len())
}

func TestMap_SetUntyped_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New[string, *int]()

	require.NoError(t, m.SetUntyped("a", nil))
	require.Error(t, m.SetUntyped(1, nil))
	require.Error(t, m.SetUntyped("b", "not an int pointer"))

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Nil(t, v)

	assert.Equal(t, reflect.TypeOf(""), m.GetKeyType())
	assert.Equal(t, reflect.TypeOf((*int)(nil)), m.GetValueType())
}

func TestMap_IsEqualFunc_Success(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }

	a := sequencedmap.New(sequencedmap.NewElem("x", 1), sequencedmap.NewElem("y", 2))
	b := sequencedmap.New(sequencedmap.NewElem("x", 1), sequencedmap.NewElem("y", 2))
	c := sequencedmap.New(sequencedmap.NewElem("y", 2), sequencedmap.NewElem("x", 1))

	assert.True(t, a.IsEqualFunc(b, eq))
	assert.False(t, a.IsEqualFunc(c, eq))
	assert.False(t, a.IsEqualFunc(nil, eq))
	assert.False(t, sequencedmap.New[string, int]().IsEqualFunc(nil, eq))
	assert.True(t, (*sequencedmap.Map[string, int])(nil).IsEqualFunc(nil, eq))
}

func TestMap_MarshalJSON_Success(t *testing.T) {
	t.Parallel()

	m := sequencedmap.New(
		sequencedmap.NewElem("z", any("<last>")),
		sequencedmap.NewElem("a", any([]int{1, 2})),
	)

	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":"<last>","a":[1,2]}`, string(data))

	var empty *sequencedmap.Map[string, int]
	data, err = empty.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
