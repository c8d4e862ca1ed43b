package tensor

import "fmt"

// Tensor is a dense, row-major N-dimensional array of T.
//
// A Tensor owns its buffer exclusively. The shape is fixed at construction
// and can only be replaced by Reshape, which re-validates the element count.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
//	v, _ := a.Get(1, 2) // 6
type Tensor[T DType] struct {
	data  []T
	shape Shape
}

// FromSlice creates a tensor over data with the given shape.
//
// Ownership of data moves to the tensor: the slice is NOT copied, and the
// caller must not keep writing to it if isolation is needed.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}
	return &Tensor[T]{data: data, shape: shape.Clone()}, nil
}

// newTensor allocates a zero-filled tensor for a shape known to be valid.
func newTensor[T DType](shape Shape) *Tensor[T] {
	return &Tensor[T]{
		data:  make([]T, shape.NumElements()),
		shape: shape,
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// Len returns the total number of elements.
func (t *Tensor[T]) Len() int {
	return len(t.data)
}

// Data returns the tensor's flat row-major buffer.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Item returns the value of a rank-0 tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor[T]) Item() T {
	if len(t.shape) != 0 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// Get returns the element at the given multi-index.
func (t *Tensor[T]) Get(indices ...int) (T, error) {
	if err := t.shape.checkIndex(indices); err != nil {
		var zero T
		return zero, err
	}
	return t.data[t.shape.offset(indices)], nil
}

// Set stores value at the given multi-index.
func (t *Tensor[T]) Set(value T, indices ...int) error {
	if err := t.shape.checkIndex(indices); err != nil {
		return err
	}
	t.data[t.shape.offset(indices)] = value
	return nil
}

// Reshape replaces the tensor's shape in place. The new shape must describe
// exactly as many elements as the buffer holds; the data is not moved.
func (t *Tensor[T]) Reshape(shape ...int) error {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return err
	}
	if s.NumElements() != len(t.data) {
		return fmt.Errorf("%w: cannot reshape %v (%d elements) to %v",
			ErrShapeMismatch, t.shape, len(t.data), s)
	}
	t.shape = s.Clone()
	return nil
}

// Clone returns a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{data: data, shape: t.shape.Clone()}
}

// String returns a short description of the tensor.
func (t *Tensor[T]) String() string {
	var zero T
	return fmt.Sprintf("Tensor[%T]%v", zero, t.shape)
}
