// Package pad materializes padded copies of dense arrays for the
// convolution engine. The border-fill policy decides what goes into the
// cells outside the original input's footprint.
package pad

import (
	"github.com/pkg/errors"

	"github.com/born-ml/ndconv/internal/array"
)

// Errors returned by the padding collaborator.
var (
	ErrUnsupportedFill = errors.New("pad: unsupported fill policy")
	ErrInvalidPadding  = errors.New("pad: negative padding")
)

// Border selects how cells outside the input's footprint are populated.
type Border int

// Supported border-fill policies.
const (
	// Zero fills border cells with the element type's zero value.
	Zero Border = iota
	// Constant fills border cells with Fill.Value.
	Constant
	// Replicate clamps out-of-range indices to the nearest edge cell.
	Replicate
	// Reflect mirrors indices across the edges without repeating the
	// edge cell itself: [a b c] padded by 2 reads [c b a b c b a].
	Reflect
	// Circular wraps indices around, tiling the input periodically.
	Circular
)

// String returns a human-readable policy name.
func (b Border) String() string {
	switch b {
	case Zero:
		return "zero"
	case Constant:
		return "constant"
	case Replicate:
		return "replicate"
	case Reflect:
		return "reflect"
	case Circular:
		return "circular"
	default:
		return "unknown"
	}
}

// Fill is a border-fill policy. Value is only consulted for Constant.
// The zero Fill is the zero-fill policy.
type Fill[T array.Numeric] struct {
	Border Border
	Value  T
}

// Pad returns a copy of a grown by padding[i][0] cells before and
// padding[i][1] cells after, per dimension. The input occupies the
// sub-region offset by padding[i][0] on each dimension; all other cells
// are populated per fill.
func Pad[T array.Numeric](a *array.Array[T], fill Fill[T], padding [][2]int) (*array.Array[T], error) {
	inShape := a.Shape()
	if len(padding) != inShape.Rank() {
		return nil, errors.Errorf("pad: padding rank %d does not match array rank %d",
			len(padding), inShape.Rank())
	}

	outShape := make(array.Shape, inShape.Rank())
	for i, p := range padding {
		if p[0] < 0 || p[1] < 0 {
			return nil, errors.Wrapf(ErrInvalidPadding, "dimension %d: [%d, %d]", i, p[0], p[1])
		}
		outShape[i] = inShape[i] + p[0] + p[1]
	}

	out, err := array.Zeros[T](outShape)
	if err != nil {
		return nil, errors.Wrap(err, "pad: allocating padded buffer")
	}

	switch fill.Border {
	case Zero:
		copyInterior(out, a, padding)
	case Constant:
		data := out.Data()
		for i := range data {
			data[i] = fill.Value
		}
		copyInterior(out, a, padding)
	case Replicate, Reflect, Circular:
		mapBorder(out, a, padding, fill.Border)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFill, "border %d", int(fill.Border))
	}

	return out, nil
}

// copyInterior copies the input into the padded buffer's interior,
// one contiguous innermost-dimension run at a time.
func copyInterior[T array.Numeric](dst, src *array.Array[T], padding [][2]int) {
	srcShape := src.Shape()
	dstStrides := dst.Strides()
	srcData := src.Data()
	dstData := dst.Data()

	rank := srcShape.Rank()
	rowLen := srcShape[rank-1]
	rows := src.NumElements() / rowLen

	idx := make([]int, rank-1)
	for r := 0; r < rows; r++ {
		dstOff := padding[rank-1][0]
		for i, j := range idx {
			dstOff += (j + padding[i][0]) * dstStrides[i]
		}
		copy(dstData[dstOff:dstOff+rowLen], srcData[r*rowLen:(r+1)*rowLen])

		for i := rank - 2; i >= 0; i-- {
			idx[i]++
			if idx[i] < srcShape[i] {
				break
			}
			idx[i] = 0
		}
	}
}

// mapBorder fills every cell of the padded buffer by mapping its index
// back into the source through the border policy. Interior cells map to
// themselves.
func mapBorder[T array.Numeric](dst, src *array.Array[T], padding [][2]int, border Border) {
	dstShape := dst.Shape()
	srcShape := src.Shape()
	srcStrides := src.Strides()
	srcData := src.Data()
	dstData := dst.Data()

	rank := dstShape.Rank()
	idx := make([]int, rank)
	for k := range dstData {
		srcOff := 0
		for i, j := range idx {
			t := j - padding[i][0]
			switch border {
			case Replicate:
				t = clampIndex(t, srcShape[i])
			case Reflect:
				t = reflectIndex(t, srcShape[i])
			case Circular:
				t = wrapIndex(t, srcShape[i])
			}
			srcOff += t * srcStrides[i]
		}
		dstData[k] = srcData[srcOff]

		for i := rank - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < dstShape[i] {
				break
			}
			idx[i] = 0
		}
	}
}

func clampIndex(t, n int) int {
	if t < 0 {
		return 0
	}
	if t >= n {
		return n - 1
	}
	return t
}

// reflectIndex mirrors t into [0, n) with period 2(n-1), never repeating
// the edge cell. A single-cell dimension reflects onto itself.
func reflectIndex(t, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	t %= period
	if t < 0 {
		t += period
	}
	if t >= n {
		t = period - t
	}
	return t
}

func wrapIndex(t, n int) int {
	t %= n
	if t < 0 {
		t += n
	}
	return t
}
