// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndtensor/internal/parallel"
	"github.com/born-ml/ndtensor/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
// Supported types: signed and unsigned integers, float32, float64.
type DType = tensor.DType

// Float is a constraint for floating-point element types.
type Float = tensor.Float

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense, row-major N-dimensional array.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	y, _ := x.Add(x)
type Tensor[T DType] = tensor.Tensor[T]

// ParallelConfig controls how ContractWith spreads work over goroutines.
type ParallelConfig = parallel.Config

// Errors returned by tensor operations.
var (
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrRankMismatch     = tensor.ErrRankMismatch
	ErrIndexOutOfBounds = tensor.ErrIndexOutOfBounds
	ErrIncompatibleAxes = tensor.ErrIncompatibleAxes
	ErrAxisOutOfRange   = tensor.ErrAxisOutOfRange
	ErrInvalidShape     = tensor.ErrInvalidShape
	ErrUnsupportedType  = tensor.ErrUnsupportedType
)

// Creation functions

// FromSlice creates a tensor over data. The slice is not copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// FromNested creates a tensor from nested slices or arrays.
//
// Example:
//
//	x, err := tensor.FromNested[float64]([][]float64{{1, 2}, {3, 4}})
func FromNested[T DType](v any) (*Tensor[T], error) {
	return tensor.FromNested[T](v)
}

// FromDense copies a gonum matrix into a rank-2 tensor.
func FromDense(m mat.Matrix) *Tensor[float64] {
	return tensor.FromDense(m)
}

// ToDense copies a rank-2 tensor into a gonum matrix.
func ToDense[T DType](t *Tensor[T]) (*mat.Dense, error) {
	return tensor.ToDense(t)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape ...int) (*Tensor[T], error) {
	return tensor.Zeros[T](shape...)
}

// Full creates a tensor filled with value.
func Full[T DType](value T, shape ...int) (*Tensor[T], error) {
	return tensor.Full(value, shape...)
}

// Rand creates a tensor with values drawn from U[0, 1).
//
// Example:
//
//	x, err := tensor.Rand[float32](4, 100, 8)
func Rand[T Float](shape ...int) (*Tensor[T], error) {
	return tensor.Rand[T](shape...)
}

// RandWith is like Rand but draws from r.
func RandWith[T Float](r *rand.Rand, shape ...int) (*Tensor[T], error) {
	return tensor.RandWith[T](r, shape...)
}

// Contraction

// Contract sums products over axisA of a and axisB of b.
// Negative axes count from the end.
//
// Example:
//
//	c, err := tensor.Contract(a, b, 0, 2) // [4,100,8] x [8,64,4] → [100, 8, 8, 64]
func Contract[T DType](a, b *Tensor[T], axisA, axisB int) (*Tensor[T], error) {
	return tensor.Contract(a, b, axisA, axisB)
}

// Dot contracts the last axis of a with the first axis of b.
func Dot[T DType](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Dot(a, b)
}

// ContractWith is Contract with control over parallel execution.
func ContractWith[T DType](a, b *Tensor[T], axisA, axisB int, cfg ParallelConfig) (*Tensor[T], error) {
	return tensor.ContractWith(a, b, axisA, axisB, cfg)
}

// DefaultParallelConfig returns a parallel configuration sized to the machine.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
