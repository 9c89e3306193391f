package conv

import (
	"errors"
	"testing"

	"github.com/born-ml/ndconv/internal/array"
)

func TestKernelSpan(t *testing.T) {
	tests := []struct {
		shape    array.Shape
		dilation []int
		want     []int
	}{
		{array.Shape{3}, []int{1}, []int{3}},
		{array.Shape{3}, []int{2}, []int{5}},
		{array.Shape{2, 3}, []int{2, 2}, []int{3, 5}},
		{array.Shape{1, 1}, []int{4, 7}, []int{1, 1}},
	}

	for _, tt := range tests {
		got := spanOf(tt.shape, tt.dilation)
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("shape %v dilation %v: expected span %v, got %v",
					tt.shape, tt.dilation, tt.want, got)
				break
			}
		}
	}
}

// TestKernelTaps_2D checks the row-major tap offset list for a 2x2 kernel
// over a padded buffer with strides [6, 1].
func TestKernelTaps_2D(t *testing.T) {
	weights, err := array.FromSlice([]int{10, 20, 30, 40}, array.Shape{2, 2})
	if err != nil {
		t.Fatal(err)
	}

	list := NewKernel(weights).taps([]int{1, 1}, []int{6, 1})

	wantOff := []int{0, 1, 6, 7}
	wantW := []int{10, 20, 30, 40}
	if len(list) != 4 {
		t.Fatalf("expected 4 taps, got %d", len(list))
	}
	for i := range list {
		if list[i].offset != wantOff[i] || list[i].weight != wantW[i] {
			t.Errorf("tap %d: expected (offset %d, weight %d), got (%d, %d)",
				i, wantOff[i], wantW[i], list[i].offset, list[i].weight)
		}
	}
}

// TestKernelTaps_Dilated checks that dilation stretches the offsets but
// not the number of taps.
func TestKernelTaps_Dilated(t *testing.T) {
	weights, err := array.FromSlice([]int{1, 2, 3}, array.Shape{3})
	if err != nil {
		t.Fatal(err)
	}

	list := NewKernel(weights).WithDilation(2).taps([]int{2}, []int{1})

	wantOff := []int{0, 2, 4}
	if len(list) != 3 {
		t.Fatalf("expected 3 taps, got %d", len(list))
	}
	for i := range list {
		if list[i].offset != wantOff[i] {
			t.Errorf("tap %d: expected offset %d, got %d", i, wantOff[i], list[i].offset)
		}
	}
}

func TestKernelDilationFor(t *testing.T) {
	weights, err := array.FromSlice([]int{1, 1, 1, 1}, array.Shape{2, 2})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("default is ones", func(t *testing.T) {
		d, err := NewKernel(weights).dilationFor(2)
		if err != nil {
			t.Fatal(err)
		}
		if d[0] != 1 || d[1] != 1 {
			t.Errorf("expected [1 1], got %v", d)
		}
	})

	t.Run("scalar broadcasts", func(t *testing.T) {
		d, err := NewKernel(weights).WithDilation(3).dilationFor(2)
		if err != nil {
			t.Fatal(err)
		}
		if d[0] != 3 || d[1] != 3 {
			t.Errorf("expected [3 3], got %v", d)
		}
	})

	t.Run("per dimension", func(t *testing.T) {
		d, err := NewKernel(weights).WithDilation(1, 2).dilationFor(2)
		if err != nil {
			t.Fatal(err)
		}
		if d[0] != 1 || d[1] != 2 {
			t.Errorf("expected [1 2], got %v", d)
		}
	})

	t.Run("count mismatch", func(t *testing.T) {
		_, err := NewKernel(weights).WithDilation(1, 2, 3).dilationFor(2)
		if !errors.Is(err, ErrRankMismatch) {
			t.Fatalf("expected ErrRankMismatch, got %v", err)
		}
	})

	t.Run("non-positive factor", func(t *testing.T) {
		_, err := NewKernel(weights).WithDilation(0).dilationFor(2)
		if !errors.Is(err, ErrInvalidDilation) {
			t.Fatalf("expected ErrInvalidDilation, got %v", err)
		}
	})
}
