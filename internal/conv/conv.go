// Package conv implements generalized N-dimensional discrete convolution
// (cross-correlation) over dense arrays, with configurable padding mode,
// stride and kernel dilation.
//
// The core is split in two: mode resolution (mode.go) turns a declarative
// convolution mode into explicit per-dimension padding and strides, and
// the engine (this file) pads the input, builds a flat tap-offset list
// from the dilated kernel, and accumulates every output cell with a
// fixed-size weighted sum over the padded buffer.
package conv

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndconv/internal/array"
	"github.com/born-ml/ndconv/internal/pad"
	"github.com/born-ml/ndconv/internal/parallel"
)

// Errors returned by the convolution engine.
var (
	ErrRankMismatch    = errors.New("conv: rank mismatch")
	ErrInvalidStride   = errors.New("conv: stride must be >= 1")
	ErrInvalidDilation = errors.New("conv: dilation must be >= 1")
	ErrKernelTooLarge  = errors.New("conv: kernel does not fit padded input")
)

// Conv convolves input with kernel under the given mode and border-fill
// policy, using the default parallel configuration.
func Conv[T array.Numeric](input *array.Array[T], kernel *Kernel[T], mode Mode, fill pad.Fill[T]) (*array.Array[T], error) {
	return ConvWith(input, kernel, mode, fill, parallel.DefaultConfig())
}

// ConvWith is Conv with an explicit parallel execution configuration.
//
// The computation is a pure, single-pass transformation: one pass to
// materialize the padded buffer, one to build the tap list, one over the
// output cells. Output cells are independent, so the final pass may be
// partitioned across workers.
func ConvWith[T array.Numeric](input *array.Array[T], kernel *Kernel[T], mode Mode, fill pad.Fill[T], cfg parallel.Config) (*array.Array[T], error) {
	inShape := input.Shape()
	rank := inShape.Rank()

	kernelShape := kernel.weights.Shape()
	if kernelShape.Rank() != rank {
		return nil, errors.Wrapf(ErrRankMismatch, "kernel rank %d, input rank %d",
			kernelShape.Rank(), rank)
	}
	dilation, err := kernel.dilationFor(rank)
	if err != nil {
		return nil, err
	}
	if err := mode.check(rank); err != nil {
		return nil, err
	}

	span := spanOf(kernelShape, dilation)
	cm := mode.resolve(span)

	// Fit check before any shape arithmetic: the subtraction in the
	// output-shape formula must not go negative.
	for i := range span {
		extent := cm.padding[i][0] + cm.padding[i][1] + inShape[i]
		if span[i] > extent {
			return nil, errors.Wrapf(ErrKernelTooLarge,
				"dimension %d: dilated kernel span %d exceeds padded input extent %d",
				i, span[i], extent)
		}
	}

	padded, err := pad.Pad(input, fill, cm.padding)
	if err != nil {
		return nil, err
	}

	outShape := make(array.Shape, rank)
	for i := range outShape {
		outShape[i] = (cm.padding[i][0]+cm.padding[i][1]+inShape[i]-span[i])/cm.strides[i] + 1
	}
	out, err := array.Zeros[T](outShape)
	if err != nil {
		return nil, errors.Wrap(err, "conv: allocating output")
	}

	paddedStrides := padded.Strides()
	taps := kernel.taps(dilation, paddedStrides)

	// Anchor view over the padded buffer: same rank and shape as the
	// output, per-dimension stride = conv stride * padded memory stride.
	// Walking it in row-major order yields, for flat output index k, the
	// padded-buffer offset of cell k's receptive-field anchor.
	viewStrides := make([]int, rank)
	for i := range viewStrides {
		viewStrides[i] = cm.strides[i] * paddedStrides[i]
	}

	// Every anchor+tap access below is in bounds by construction:
	// (outShape[i]-1)*strides[i] + span[i] - 1 <= paddedShape[i] - 1 per
	// dimension. Validate the maximal flat offset once, then accumulate
	// without per-tap checks.
	maxOff := 0
	for i := range outShape {
		maxOff += (outShape[i] - 1) * viewStrides[i]
	}
	if len(taps) > 0 {
		maxOff += taps[len(taps)-1].offset
	}
	paddedData := padded.Data()
	if maxOff >= len(paddedData) {
		return nil, errors.Errorf("conv: internal: maximal tap offset %d exceeds padded buffer length %d",
			maxOff, len(paddedData))
	}

	outData := out.Data()
	parallel.For(out.NumElements(), cfg, func(start, end int) {
		anchorWalk(outShape, viewStrides, start, end, func(k, anchor int) {
			var acc T
			for _, t := range taps {
				acc += t.weight * paddedData[anchor+t.offset]
			}
			outData[k] = acc
		})
	})

	return out, nil
}

// anchorWalk invokes fn(k, offset) for every flat index k in [start, end)
// of a row-major enumeration of shape, where offset is the strided flat
// position sum(idx[i] * strides[i]).
//
// The enumeration order is, by construction, exactly the flat memory
// layout of a row-major array of the same shape: the k-th visited anchor
// corresponds to flat output index k. The index vector is carried as an
// odometer with incremental offset updates, seeded by unraveling start.
func anchorWalk(shape array.Shape, strides []int, start, end int, fn func(k, offset int)) {
	rank := shape.Rank()
	idx := shape.UnravelIndex(start)
	off := 0
	for i, j := range idx {
		off += j * strides[i]
	}

	for k := start; k < end; k++ {
		fn(k, off)

		for i := rank - 1; i >= 0; i-- {
			idx[i]++
			off += strides[i]
			if idx[i] < shape[i] {
				break
			}
			idx[i] = 0
			off -= shape[i] * strides[i]
		}
	}
}
