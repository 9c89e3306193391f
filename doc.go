// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndconv provides generalized N-dimensional discrete convolution
// (cross-correlation) over dense numeric arrays.
//
// The package supports configurable padding modes, strides and kernel
// dilation, and works for any array rank:
//   - Array[T]: dense row-major N-dimensional array
//   - Kernel[T]: convolution kernel with optional per-dimension dilation
//   - Mode: Full, Same, Valid, Custom or Explicit padding/stride selection
//   - Fill[T]: border-fill policy (zero, constant, replicate, reflect, circular)
//
// Example:
//
//	input, _ := ndconv.FromSlice([]float32{1, 2, 3, 4}, ndconv.Shape{2, 2})
//	weights, _ := ndconv.FromSlice([]float32{1, 1, 1, 1}, ndconv.Shape{2, 2})
//	out, err := ndconv.Conv(input, ndconv.NewKernel(weights), ndconv.Full(), ndconv.ZeroFill[float32]())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out.Shape()) // [3 3]
package ndconv
