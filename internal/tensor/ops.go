package tensor

import "fmt"

// Add performs element-wise addition. Shapes must match exactly.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float32{1, 2}, Shape{2})
//	b, _ := tensor.FromSlice([]float32{3, 4}, Shape{2})
//	c, _ := a.Add(b) // [4, 6]
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return t.zip(other, "add", func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction. Shapes must match exactly.
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return t.zip(other, "sub", func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication. Shapes must match exactly.
func (t *Tensor[T]) Mul(other *Tensor[T]) (*Tensor[T], error) {
	return t.zip(other, "mul", func(x, y T) T { return x * y })
}

// Div performs element-wise division. Shapes must match exactly.
// Division by zero follows T's own semantics.
func (t *Tensor[T]) Div(other *Tensor[T]) (*Tensor[T], error) {
	return t.zip(other, "div", func(x, y T) T { return x / y })
}

// Equal reports whether every pair of corresponding elements compares equal.
//
// Tensors of different shapes are not comparable: the result is an error
// wrapping ErrShapeMismatch, not false.
func (t *Tensor[T]) Equal(other *Tensor[T]) (bool, error) {
	if err := t.sameShape(other, "equal"); err != nil {
		return false, err
	}
	for i, v := range t.data {
		if v != other.data[i] {
			return false, nil
		}
	}
	return true, nil
}

// NotEqual is the negation of Equal, with the same shape requirement.
func (t *Tensor[T]) NotEqual(other *Tensor[T]) (bool, error) {
	eq, err := t.Equal(other)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func (t *Tensor[T]) sameShape(other *Tensor[T], op string) error {
	if !t.shape.Equal(other.shape) {
		return fmt.Errorf("%w: %s %v and %v", ErrShapeMismatch, op, t.shape, other.shape)
	}
	return nil
}

// zip applies f pairwise over both buffers into a fresh tensor.
func (t *Tensor[T]) zip(other *Tensor[T], op string, f func(x, y T) T) (*Tensor[T], error) {
	if err := t.sameShape(other, op); err != nil {
		return nil, err
	}
	result := newTensor[T](t.shape.Clone())
	for i, x := range t.data {
		result.data[i] = f(x, other.data[i])
	}
	return result, nil
}
