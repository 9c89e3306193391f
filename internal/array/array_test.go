package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LengthMismatch(t *testing.T) {
	_, err := New([]float32{1, 2, 3}, Shape{2, 2})
	assert.Error(t, err)

	_, err = New([]float32{1, 2, 3, 4}, Shape{2, 2})
	assert.NoError(t, err)
}

func TestNew_InvalidShape(t *testing.T) {
	_, err := New([]float32{}, Shape{})
	assert.Error(t, err)

	_, err = Zeros[float32](Shape{0, 2})
	assert.Error(t, err)
}

func TestFromSlice_Copies(t *testing.T) {
	data := []int{1, 2, 3, 4}
	a, err := FromSlice(data, Shape{2, 2})
	require.NoError(t, err)

	data[0] = 99
	assert.Equal(t, 1, a.At(0, 0))
}

func TestArrayAtSet(t *testing.T) {
	a, err := Zeros[float64](Shape{2, 3})
	require.NoError(t, err)

	a.Set(1.5, 1, 2)
	assert.Equal(t, 1.5, a.At(1, 2))
	assert.Equal(t, 1.5, a.Data()[5]) // row-major: 1*3 + 2

	assert.Panics(t, func() { a.At(2, 0) })
	assert.Panics(t, func() { a.At(0) })
}

func TestArrayStrides(t *testing.T) {
	a, err := Zeros[int](Shape{4, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, []int{6, 3, 1}, a.Strides())
	assert.Equal(t, 24, a.NumElements())
	assert.Equal(t, 3, a.Rank())
}

func TestArrayEqual(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	b, err := FromSlice([]int{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	c, err := FromSlice([]int{1, 2, 3, 4}, Shape{4})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	b.Set(9, 0, 0)
	assert.False(t, a.Equal(b))
}

func TestArrayClone(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	b := a.Clone()
	b.Set(9, 0, 0)

	assert.Equal(t, 1, a.At(0, 0))
	assert.Equal(t, 9, b.At(0, 0))
}
