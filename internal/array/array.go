package array

import (
	"fmt"

	"github.com/pkg/errors"
)

// Numeric is a constraint for supported element types.
// Convolution needs an additive identity and closed +/* on the element
// type, so bool is not included (unlike a general tensor dtype set).
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Array is a dense N-dimensional array with row-major contiguous storage.
//
// The zero Array is not valid; use Zeros, FromSlice or New.
type Array[T Numeric] struct {
	data    []T
	shape   Shape
	strides []int
}

// New creates an array that takes ownership of data.
// len(data) must equal shape.NumElements().
func New[T Numeric](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "array: invalid shape")
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Errorf("array: data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Array[T]{
		data:    data,
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// FromSlice creates an array by copying data.
func FromSlice[T Numeric](data []T, shape Shape) (*Array[T], error) {
	buf := make([]T, len(data))
	copy(buf, data)
	return New(buf, shape)
}

// Zeros creates a zero-initialized array with the given shape.
func Zeros[T Numeric](shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "array: invalid shape")
	}
	return &Array[T]{
		data:    make([]T, shape.NumElements()),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Strides returns the array's row-major memory strides.
func (a *Array[T]) Strides() []int {
	return a.strides
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array[T]) NumElements() int {
	return a.shape.NumElements()
}

// Data returns the flat backing slice.
// Direct access to underlying memory; mutations are visible to the array.
func (a *Array[T]) Data() []T {
	return a.data
}

// flatIndex converts a multi-index to a flat offset.
// Panics on rank mismatch or out-of-range index.
func (a *Array[T]) flatIndex(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("array: index rank %d does not match array rank %d", len(idx), len(a.shape)))
	}
	flat := 0
	for i, j := range idx {
		if j < 0 || j >= a.shape[i] {
			panic(fmt.Sprintf("array: index %d out of range for dimension %d (size %d)", j, i, a.shape[i]))
		}
		flat += j * a.strides[i]
	}
	return flat
}

// At returns the element at the given multi-index.
func (a *Array[T]) At(idx ...int) T {
	return a.data[a.flatIndex(idx)]
}

// Set stores v at the given multi-index.
func (a *Array[T]) Set(v T, idx ...int) {
	a.data[a.flatIndex(idx)] = v
}

// Equal reports whether two arrays have the same shape and elements.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if !a.shape.Equal(other.shape) {
		return false
	}
	for i, v := range a.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	buf := make([]T, len(a.data))
	copy(buf, a.data)
	return &Array[T]{
		data:    buf,
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
	}
}
