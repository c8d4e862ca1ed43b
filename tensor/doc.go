// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense N-dimensional tensors with shape-checked
// elementwise arithmetic and generalized axis contraction.
//
// # Overview
//
// A Tensor[T] owns a flat, row-major buffer and an immutable shape. This package provides:
//   - Generic tensors over integer and floating-point element types
//   - Elementwise Add, Sub, Mul, Div with exact shape checking (no broadcasting)
//   - Whole-tensor Equal / NotEqual
//   - Contract: an N-dimensional generalization of matrix multiplication
//   - Conversion to and from nested Go slices and gonum matrices
//
// # Basic Usage
//
//	import "github.com/born-ml/ndtensor/tensor"
//
//	func main() {
//	    a, _ := tensor.Rand[float64](4, 100, 8)
//	    b, _ := tensor.Rand[float64](8, 64, 4)
//
//	    c, _ := tensor.Dot(a, b)            // Shape: [4, 100, 64, 4]
//	    d, _ := tensor.Contract(a, b, 0, 2) // Shape: [100, 8, 8, 64]
//	}
//
// # Contraction
//
// Contract(a, b, axisA, axisB) sums products over axisA of a and axisB of b.
// The remaining axes of a, then those of b, form the result in their original
// order. Negative axes count from the end. Two vectors contract to a scalar
// (rank-0) tensor holding their dot product.
//
// # Errors
//
// Operations never return partial results. Failures wrap one of
// ErrShapeMismatch, ErrRankMismatch, ErrIndexOutOfBounds, ErrIncompatibleAxes,
// ErrAxisOutOfRange, ErrInvalidShape or ErrUnsupportedType; match them with errors.Is.
package tensor
