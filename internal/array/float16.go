package array

import (
	"github.com/x448/float16"
)

// FromFloat16 decodes IEEE 754 binary16 values, given as raw bits, into a
// float32 array. Kernel weights are commonly shipped as fp16; accumulation
// happens in float32.
func FromFloat16(bits []uint16, shape Shape) (*Array[float32], error) {
	buf := make([]float32, len(bits))
	for i, b := range bits {
		buf[i] = float16.Frombits(b).Float32()
	}
	return New(buf, shape)
}

// ToFloat16 encodes a float32 array into binary16 raw bits, in the array's
// row-major element order. Values outside the binary16 range round to ±Inf.
func ToFloat16(a *Array[float32]) []uint16 {
	out := make([]uint16, len(a.data))
	for i, v := range a.data {
		out[i] = float16.Fromfloat32(v).Bits()
	}
	return out
}
