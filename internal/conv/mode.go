package conv

import (
	"github.com/pkg/errors"
)

type modeKind int

const (
	modeFull modeKind = iota
	modeSame
	modeValid
	modeCustom
	modeExplicit
)

// Mode declares how the convolution's padding and strides are chosen.
// Exactly one variant is active; construct with Full, Same, Valid,
// Custom or Explicit.
type Mode struct {
	kind      modeKind
	symmetric []int    // Custom: same padding on both sides, per dimension
	padding   [][2]int // Explicit: (before, after) per dimension
	strides   []int    // Custom/Explicit: user strides
}

// Full pads so the output covers every position where kernel and input
// overlap at all. Stride 1.
func Full() Mode {
	return Mode{kind: modeFull}
}

// Same pads so the output spatial size equals the input's (for stride 1).
// When the dilated kernel span is even, the extra padding cell goes on
// the leading side.
func Same() Mode {
	return Mode{kind: modeSame}
}

// Valid applies no padding; the kernel must fit entirely within the input.
// Stride 1.
func Valid() Mode {
	return Mode{kind: modeValid}
}

// Custom applies symmetric padding (the same amount on both sides of each
// dimension) with user strides.
func Custom(padding, strides []int) Mode {
	return Mode{
		kind:      modeCustom,
		symmetric: append([]int(nil), padding...),
		strides:   append([]int(nil), strides...),
	}
}

// Explicit applies fully asymmetric user padding, (before, after) per
// dimension, with user strides.
func Explicit(padding [][2]int, strides []int) Mode {
	return Mode{
		kind:      modeExplicit,
		padding:   append([][2]int(nil), padding...),
		strides:   append([]int(nil), strides...),
	}
}

// String returns the mode's variant name.
func (m Mode) String() string {
	switch m.kind {
	case modeFull:
		return "full"
	case modeSame:
		return "same"
	case modeValid:
		return "valid"
	case modeCustom:
		return "custom"
	case modeExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// check validates user-supplied padding/stride ranks and stride values
// against the input rank. Full/Same/Valid carry no user data and always
// pass.
func (m Mode) check(rank int) error {
	switch m.kind {
	case modeCustom:
		if len(m.symmetric) != rank {
			return errors.Wrapf(ErrRankMismatch, "custom padding has %d dimensions, input has %d",
				len(m.symmetric), rank)
		}
	case modeExplicit:
		if len(m.padding) != rank {
			return errors.Wrapf(ErrRankMismatch, "explicit padding has %d dimensions, input has %d",
				len(m.padding), rank)
		}
	default:
		return nil
	}
	if len(m.strides) != rank {
		return errors.Wrapf(ErrRankMismatch, "strides have %d dimensions, input has %d",
			len(m.strides), rank)
	}
	for i, s := range m.strides {
		if s < 1 {
			return errors.Wrapf(ErrInvalidStride, "dimension %d: %d", i, s)
		}
	}
	return nil
}

// resolved is the output of mode resolution: padding always expressed as
// asymmetric (before, after) pairs, strides always explicit.
type resolved struct {
	padding [][2]int
	strides []int
}

// resolve converts the mode into explicit padding and strides, given the
// dilated kernel span per dimension. Total over its domain for any
// span >= 1; no error conditions, no side effects.
func (m Mode) resolve(span []int) resolved {
	n := len(span)
	r := resolved{
		padding: make([][2]int, n),
		strides: make([]int, n),
	}

	switch m.kind {
	case modeFull:
		for i, s := range span {
			r.padding[i] = [2]int{s - 1, s - 1}
			r.strides[i] = 1
		}
	case modeSame:
		for i, s := range span {
			half := (s - 1) / 2
			if s%2 == 0 {
				r.padding[i] = [2]int{half + 1, half}
			} else {
				r.padding[i] = [2]int{half, half}
			}
			r.strides[i] = 1
		}
	case modeValid:
		for i := range span {
			r.strides[i] = 1
		}
	case modeCustom:
		for i, p := range m.symmetric {
			r.padding[i] = [2]int{p, p}
		}
		copy(r.strides, m.strides)
	case modeExplicit:
		copy(r.padding, m.padding)
		copy(r.strides, m.strides)
	}

	return r
}
