// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndconv

import (
	"github.com/born-ml/ndconv/internal/array"
	"github.com/born-ml/ndconv/internal/conv"
	"github.com/born-ml/ndconv/internal/pad"
	"github.com/born-ml/ndconv/internal/parallel"
)

// Type aliases for the public API

// Numeric is the constraint for supported element types: the fixed-width
// integer types and both float types.
type Numeric = array.Numeric

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a 3D array with dimensions 2×3×4.
type Shape = array.Shape

// Array is a dense N-dimensional array with row-major contiguous storage.
type Array[T Numeric] = array.Array[T]

// Kernel pairs a weight array with per-dimension dilation factors.
type Kernel[T Numeric] = conv.Kernel[T]

// Mode declares how the convolution's padding and strides are chosen.
type Mode = conv.Mode

// Fill is a border-fill policy for padding cells.
type Fill[T Numeric] = pad.Fill[T]

// Border selects how padding cells are populated.
type Border = pad.Border

// Supported border-fill policies.
const (
	Zero      = pad.Zero
	Constant  = pad.Constant
	Replicate = pad.Replicate
	Reflect   = pad.Reflect
	Circular  = pad.Circular
)

// Config controls parallel execution of the accumulation loop.
type Config = parallel.Config

// Errors returned by the package.
var (
	ErrRankMismatch    = conv.ErrRankMismatch
	ErrInvalidStride   = conv.ErrInvalidStride
	ErrInvalidDilation = conv.ErrInvalidDilation
	ErrKernelTooLarge  = conv.ErrKernelTooLarge
	ErrUnsupportedFill = pad.ErrUnsupportedFill
	ErrInvalidPadding  = pad.ErrInvalidPadding
)

// Array creation

// New creates an array that takes ownership of data.
// len(data) must equal shape.NumElements().
func New[T Numeric](data []T, shape Shape) (*Array[T], error) {
	return array.New(data, shape)
}

// FromSlice creates an array by copying data.
//
// Example:
//
//	x, err := ndconv.FromSlice([]float32{1, 2, 3, 4, 5, 6}, ndconv.Shape{2, 3})
func FromSlice[T Numeric](data []T, shape Shape) (*Array[T], error) {
	return array.FromSlice(data, shape)
}

// Zeros creates a zero-initialized array with the given shape.
func Zeros[T Numeric](shape Shape) (*Array[T], error) {
	return array.Zeros[T](shape)
}

// FromFloat16 decodes IEEE 754 binary16 values, given as raw bits, into a
// float32 array.
func FromFloat16(bits []uint16, shape Shape) (*Array[float32], error) {
	return array.FromFloat16(bits, shape)
}

// ToFloat16 encodes a float32 array into binary16 raw bits.
func ToFloat16(a *Array[float32]) []uint16 {
	return array.ToFloat16(a)
}

// Kernels

// NewKernel wraps a weight array with dilation 1 in every dimension.
// Use WithDilation for dilated kernels:
//
//	k := ndconv.NewKernel(weights).WithDilation(2)
func NewKernel[T Numeric](weights *Array[T]) *Kernel[T] {
	return conv.NewKernel(weights)
}

// Modes

// Full pads so the output covers every position where kernel and input
// overlap at all.
func Full() Mode { return conv.Full() }

// Same pads so the output spatial size equals the input's.
func Same() Mode { return conv.Same() }

// Valid applies no padding; the kernel must fit entirely within the input.
func Valid() Mode { return conv.Valid() }

// Custom applies symmetric per-dimension padding with user strides.
func Custom(padding, strides []int) Mode { return conv.Custom(padding, strides) }

// Explicit applies fully asymmetric user padding with user strides.
func Explicit(padding [][2]int, strides []int) Mode { return conv.Explicit(padding, strides) }

// Fill policies

// ZeroFill fills padding cells with the element type's zero value.
func ZeroFill[T Numeric]() Fill[T] { return Fill[T]{} }

// ConstFill fills padding cells with v.
func ConstFill[T Numeric](v T) Fill[T] { return Fill[T]{Border: pad.Constant, Value: v} }

// ReplicateFill clamps padding cells to the nearest edge cell.
func ReplicateFill[T Numeric]() Fill[T] { return Fill[T]{Border: pad.Replicate} }

// ReflectFill mirrors the input across its edges, without repeating the
// edge cell.
func ReflectFill[T Numeric]() Fill[T] { return Fill[T]{Border: pad.Reflect} }

// CircularFill wraps indices around, tiling the input periodically.
func CircularFill[T Numeric]() Fill[T] { return Fill[T]{Border: pad.Circular} }

// Operations

// Conv convolves input with kernel under the given mode and border-fill
// policy. The output is freshly allocated; its shape per dimension is
// (padBefore+padAfter+inputSize-dilatedSpan)/stride + 1.
//
// Returns ErrKernelTooLarge when the dilated kernel span exceeds the
// padded input extent in some dimension, and ErrRankMismatch when the
// kernel, dilation or mode rank disagrees with the input rank.
func Conv[T Numeric](input *Array[T], kernel *Kernel[T], mode Mode, fill Fill[T]) (*Array[T], error) {
	return conv.Conv(input, kernel, mode, fill)
}

// ConvWith is Conv with an explicit parallel execution configuration.
func ConvWith[T Numeric](input *Array[T], kernel *Kernel[T], mode Mode, fill Fill[T], cfg Config) (*Array[T], error) {
	return conv.ConvWith(input, kernel, mode, fill, cfg)
}

// Pad returns a copy of a grown by padding[i][0] cells before and
// padding[i][1] cells after per dimension, with border cells populated
// per fill.
func Pad[T Numeric](a *Array[T], fill Fill[T], padding [][2]int) (*Array[T], error) {
	return pad.Pad(a, fill, padding)
}

// DefaultConfig returns the default parallel configuration, based on CPU
// count.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// Sequential returns a configuration that runs on the calling goroutine.
func Sequential() Config { return parallel.Sequential() }
