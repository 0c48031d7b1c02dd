package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prachigauriar/twvalidation/value"
)

func TestDecodeDistinguishesIntegerAndFloat(t *testing.T) {
	v, err := value.Decode([]byte(`[1, 1.0, 2.5, -3]`))
	require.NoError(t, err)

	items, ok := v.Items()
	require.True(t, ok)
	require.Len(t, items, 4)

	assert.Equal(t, value.KindInteger, items[0].Kind())
	assert.Equal(t, value.KindFloat, items[1].Kind())
	assert.Equal(t, value.KindFloat, items[2].Kind())
	assert.Equal(t, value.KindInteger, items[3].Kind())
}

func TestDecodePreservesObjectOrder(t *testing.T) {
	v, err := value.Decode([]byte(`{"z": 1, "a": 2, "m": 3}`))
	require.NoError(t, err)

	obj, ok := v.Object()
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
}

func TestEqualTreatsIntegerAndFloatAsEqual(t *testing.T) {
	assert.True(t, value.Equal(value.Int(1), value.Float(1.0)))
	assert.False(t, value.Equal(value.Int(1), value.Float(1.5)))
}

func TestEqualArraysAndObjects(t *testing.T) {
	a, err := value.Decode([]byte(`{"x": [1, 2.0], "y": "hi"}`))
	require.NoError(t, err)
	b, err := value.Decode([]byte(`{"y": "hi", "x": [1.0, 2]}`))
	require.NoError(t, err)

	assert.True(t, value.Equal(a, b))
}

func TestDecodeRejectsTrailingGarbage(t *testing.T) {
	_, err := value.Decode([]byte(`1 2`))
	assert.Error(t, err)
}
