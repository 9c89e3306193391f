package conv

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndconv/internal/array"
)

// Kernel pairs a weight array with per-dimension dilation factors.
// The weight array is borrowed for the duration of a convolution call and
// never mutated.
type Kernel[T array.Numeric] struct {
	weights  *array.Array[T]
	dilation []int
}

// NewKernel wraps a weight array with dilation 1 in every dimension.
func NewKernel[T array.Numeric](weights *array.Array[T]) *Kernel[T] {
	return &Kernel[T]{weights: weights}
}

// WithDilation returns a kernel with the given dilation factors.
// A single value applies to every dimension; otherwise one value per
// dimension is required (checked at convolution time).
func (k *Kernel[T]) WithDilation(dilation ...int) *Kernel[T] {
	return &Kernel[T]{
		weights:  k.weights,
		dilation: append([]int(nil), dilation...),
	}
}

// Weights returns the borrowed weight array.
func (k *Kernel[T]) Weights() *array.Array[T] {
	return k.weights
}

// dilationFor normalizes the dilation factors to one per dimension.
func (k *Kernel[T]) dilationFor(rank int) ([]int, error) {
	d := make([]int, rank)
	switch len(k.dilation) {
	case 0:
		for i := range d {
			d[i] = 1
		}
	case 1:
		for i := range d {
			d[i] = k.dilation[0]
		}
	case rank:
		copy(d, k.dilation)
	default:
		return nil, errors.Wrapf(ErrRankMismatch, "dilation has %d factors, kernel has %d dimensions",
			len(k.dilation), rank)
	}
	for i, v := range d {
		if v < 1 {
			return nil, errors.Wrapf(ErrInvalidDilation, "dimension %d: %d", i, v)
		}
	}
	return d, nil
}

// spanOf returns the dilated effective span per dimension: the number of
// cells the dilated kernel occupies including the gaps, k*d - d + 1.
func spanOf(shape array.Shape, dilation []int) []int {
	span := make([]int, len(shape))
	for i, k := range shape {
		span[i] = k*dilation[i] - dilation[i] + 1
	}
	return span
}

// tap pairs one kernel weight with its flat element displacement from an
// output cell's anchor position in the padded buffer.
type tap[T array.Numeric] struct {
	offset int
	weight T
}

// taps enumerates the kernel index space in row-major order and builds
// one entry per weight. The offset contribution of dimension i at kernel
// index j is j * dilation[i] * strides[i], where strides are the padded
// buffer's memory strides. All contributions are non-negative, so the
// largest offset belongs to the last entry.
func (k *Kernel[T]) taps(dilation, strides []int) []tap[T] {
	shape := k.weights.Shape()
	weights := k.weights.Data()

	rank := shape.Rank()
	list := make([]tap[T], len(weights))
	idx := make([]int, rank)
	off := 0
	for n, w := range weights {
		list[n] = tap[T]{offset: off, weight: w}

		for i := rank - 1; i >= 0; i-- {
			idx[i]++
			off += dilation[i] * strides[i]
			if idx[i] < shape[i] {
				break
			}
			idx[i] = 0
			off -= shape[i] * dilation[i] * strides[i]
		}
	}
	return list
}
