package webvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedGetters(t *testing.T) {
	v := NewInt(42)
	i, ok := v.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(42), i)

	_, ok = v.Str()
	assert.False(t, ok)

	v.SetString("hello")
	assert.Equal(t, String, v.Type())
	s, ok := v.Str()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)
	_, ok = v.Int()
	assert.False(t, ok)
}

func TestBinaryIsCopied(t *testing.T) {
	raw := []byte{1, 2, 3}
	v := NewBinary(raw)
	raw[0] = 9

	got, ok := v.Binary()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestListOperations(t *testing.T) {
	var v Value
	v.Append(NewInt(1))
	v.Append(NewString("two"))
	assert.Equal(t, List, v.Type())
	assert.Equal(t, 2, v.Len())

	second, ok := v.Index(1)
	require.True(t, ok)
	assert.True(t, Equal(NewString("two"), second))

	_, ok = v.Index(5)
	assert.False(t, ok)

	last, ok := v.Pop()
	require.True(t, ok)
	assert.True(t, Equal(NewString("two"), last))
	assert.Equal(t, 1, v.Len())
}

func TestDictionaryOperations(t *testing.T) {
	v := NewDictionary(map[string]Value{"b": NewBool(true)})
	v.Put("a", NewDouble(1.5))

	assert.Equal(t, []string{"a", "b"}, v.Keys())
	assert.True(t, v.Has("a"))

	got, ok := v.Get("a")
	require.True(t, ok)
	d, _ := got.Double()
	assert.Equal(t, 1.5, d)

	assert.True(t, v.Delete("a"))
	assert.False(t, v.Delete("a"))
	assert.False(t, v.Has("a"))
}

func TestEqual(t *testing.T) {
	assert.False(t, Equal(Value{}, Value{}))
	assert.False(t, Equal(NewInt(1), NewDouble(1)))
	assert.True(t, Equal(NewError("E", "m"), NewError("E", "m")))
	assert.True(t, Equal(
		NewList(NewInt(1), NewDictionary(map[string]Value{"k": NewInt64Array([]int64{1, 2})})),
		NewList(NewInt(1), NewDictionary(map[string]Value{"k": NewInt64Array([]int64{1, 2})})),
	))
	assert.False(t, Equal(NewList(NewInt(1)), NewList(NewInt(2))))
	assert.False(t, Equal(NewList(Value{}), NewList(Value{})))
}

func TestSetTypeClearsPayload(t *testing.T) {
	v := NewString("x")
	v.SetJsonString(`{"a":1}`)
	v.SetType(Integer)

	i, ok := v.Int()
	assert.True(t, ok)
	assert.Zero(t, i)
	assert.Equal(t, `{"a":1}`, v.GetJsonString())
}

func TestMessageTypeMapping(t *testing.T) {
	cases := []struct {
		value Value
		want  MessageType
	}{
		{NewString("s"), MessageString},
		{NewInt(1), MessageNumber},
		{NewDouble(1), MessageNumber},
		{NewBool(true), MessageBoolean},
		{NewBinary([]byte("x")), MessageArrayBuffer},
		{NewStringArray([]string{"a"}), MessageArray},
		{NewBooleanArray([]bool{true}), MessageArray},
		{NewDoubleArray([]float64{1}), MessageArray},
		{NewInt64Array([]int64{1}), MessageArray},
		{NewError("E", "m"), MessageError},
		{NewList(), MessageNotSupport},
		{Value{}, MessageNotSupport},
	}
	for _, c := range cases {
		v := c.value
		assert.Equal(t, c.want, NewMessage(&v).Type(), "type %s", c.value.Type())
	}
}

func TestMessageSetType(t *testing.T) {
	m := NewMessage(nil)
	m.SetType(MessageNumber)
	assert.Equal(t, Double, m.Value().Type())
	m.SetType(MessageArray)
	assert.Equal(t, StringArray, m.Value().Type())
	m.SetType(MessageArrayBuffer)
	assert.Equal(t, Binary, m.Value().Type())

	m.SetNumber(3)
	n, ok := m.Number()
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)
}
