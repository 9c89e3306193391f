package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFromFloat16(t *testing.T) {
	values := []float32{0, 1, -1, 0.5, 1.5, -2.25}
	bits := make([]uint16, len(values))
	for i, v := range values {
		bits[i] = float16.Fromfloat32(v).Bits()
	}

	a, err := FromFloat16(bits, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, a.Shape())
	// All values are exactly representable in binary16.
	assert.Equal(t, values, a.Data())
}

func TestFloat16RoundTrip(t *testing.T) {
	a, err := FromSlice([]float32{0, 0.25, -3, 1024}, Shape{4})
	require.NoError(t, err)

	bits := ToFloat16(a)
	back, err := FromFloat16(bits, a.Shape())
	require.NoError(t, err)

	assert.True(t, a.Equal(back))
}
