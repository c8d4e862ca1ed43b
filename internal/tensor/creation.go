package tensor

import "math/rand"

// Zeros creates a tensor filled with the additive identity.
//
// Example:
//
//	t, _ := tensor.Zeros[float32](3, 4)
func Zeros[T DType](shape ...int) (*Tensor[T], error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return newTensor[T](s), nil
}

// Full creates a tensor filled with value.
func Full[T DType](value T, shape ...int) (*Tensor[T], error) {
	t, err := Zeros[T](shape...)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Rand creates a tensor with values drawn independently from U[0, 1).
// Note: Uses math/rand (not crypto/rand) - appropriate for test fixtures and benchmarks.
//
// Example:
//
//	t, _ := tensor.Rand[float64](4, 100, 8)
func Rand[T Float](shape ...int) (*Tensor[T], error) {
	return fillUniform[T](rand.Float64, shape) //nolint:gosec // G404: fixtures use math/rand intentionally
}

// RandWith is like Rand but draws from r, for reproducible fixtures.
func RandWith[T Float](r *rand.Rand, shape ...int) (*Tensor[T], error) {
	return fillUniform[T](r.Float64, shape)
}

func fillUniform[T Float](next func() float64, shape []int) (*Tensor[T], error) {
	t, err := Zeros[T](shape...)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		v := T(next())
		// float32 rounding can turn values just below 1 into exactly 1.
		for v >= 1 {
			v = T(next())
		}
		t.data[i] = v
	}
	return t, nil
}
