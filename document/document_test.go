package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "sequence", KindSequence.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestMappingOrder(t *testing.T) {
	m := NewMapping()
	m.Set("zebra", NewString("1"))
	m.Set("apple", NewString("2"))
	m.Set("mango", NewString("3"))

	assert.Equal(t, []string{"zebra", "apple", "mango"}, m.Keys(),
		"insertion order, not alphabetical")
	assert.Equal(t, 3, m.Len())

	// Replacing keeps position.
	m.Set("apple", NewString("new"))
	assert.Equal(t, []string{"zebra", "apple", "mango"}, m.Keys())
	apple, ok := m.Get("apple")
	require.True(t, ok)
	assert.Equal(t, "new", apple.Value())
}

func TestMappingDelete(t *testing.T) {
	m := NewMapping()
	m.Set("a", NewString("1"))
	m.Set("b", NewString("2"))

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"), "second delete reports false")
	assert.Equal(t, []string{"b"}, m.Keys())
	assert.False(t, m.Has("a"))
}

func TestSequence(t *testing.T) {
	s := NewSequence(NewString("x"))
	s.Append(NewString("y"))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "x", items[0].Value())
	assert.Equal(t, "y", items[1].Value())
	assert.Equal(t, 2, s.Len())
}

func TestKindMismatchAccessors(t *testing.T) {
	scalar := NewString("v")

	_, ok := scalar.Get("k")
	assert.False(t, ok)
	assert.Nil(t, scalar.Keys())
	assert.Nil(t, scalar.Items())
	assert.Equal(t, 0, scalar.Len())

	// Mutators on the wrong kind are no-ops, not panics.
	scalar.Set("k", NewString("x"))
	scalar.Append(NewString("x"))
	assert.False(t, scalar.Delete("k"))

	m := NewMapping()
	assert.Equal(t, "", m.Value())
	assert.Equal(t, "", m.Tag())
	_, ok = m.StringValue()
	assert.False(t, ok)
}

func TestStringValue(t *testing.T) {
	s, ok := NewString("hello").StringValue()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	_, ok = NewScalar("!!int", "42").StringValue()
	assert.False(t, ok, "numeric scalars are not string values")

	_, ok = NewScalar("!!null", "null").StringValue()
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	m := NewMapping()
	inner := NewMapping()
	inner.Set("x", NewString("1"))
	m.Set("inner", inner)
	m.Set("list", NewSequence(NewString("a")))

	c := m.Clone()

	// Mutate the copy.
	cInner, ok := c.Get("inner")
	require.True(t, ok)
	cInner.Set("x", NewString("changed"))
	cInner.Set("added", NewString("2"))

	// Original unchanged.
	origX, ok := inner.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1", origX.Value())
	assert.False(t, inner.Has("added"))
}

func TestCloneNil(t *testing.T) {
	var n *Node
	assert.Nil(t, n.Clone())
}
