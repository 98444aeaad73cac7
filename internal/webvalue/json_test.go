package webvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestJSONRoundTripNested(t *testing.T) {
	src := NewDictionary(map[string]Value{
		"name":  NewString("scheme \"bridge\""),
		"count": NewInt(3),
		"ratio": NewDouble(2),
		"body":  NewBinary([]byte{0, 1, 254, 255}),
		"items": NewList(
			NewBool(false),
			NewList(NewString("deep")),
			NewDictionary(map[string]Value{"a.b": NewInt(-1)}),
		),
		"fault":   NewError("TypeError", "boom"),
		"strings": NewStringArray([]string{"x", "y"}),
		"doubles": NewDoubleArray([]float64{1, 2.5}),
	})

	raw, err := src.MarshalJSON()
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(raw))

	var back Value
	require.NoError(t, back.UnmarshalJSON(raw))
	assert.True(t, Equal(src, back), string(raw))
}

func TestJSONEncodingShape(t *testing.T) {
	raw, err := NewBinary([]byte("hi")).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "aGk=", gjson.GetBytes(raw, "$binary").String())

	raw, err = NewError("E", "m").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "m", gjson.GetBytes(raw, "$error.message").String())

	raw, err = NewDouble(4).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "4.0", string(raw))
}

func TestParseNullAndInvalid(t *testing.T) {
	v, err := Parse("null")
	require.NoError(t, err)
	assert.True(t, v.IsNone())

	_, err = Parse("{")
	assert.ErrorIs(t, err, ErrInvalidJSON)
}
