package tensor

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// FromNested builds a tensor from nested Go slices or arrays whose leaves
// are of type T. The shape is read from the per-axis extents, outermost
// first, and the elements are copied in row-major order. A bare T yields a
// rank-0 tensor.
//
// Example:
//
//	t, _ := tensor.FromNested[float64]([][]float64{{1, 2, 3}, {4, 5, 6}}) // Shape: [2, 3]
func FromNested[T DType](v any) (*Tensor[T], error) {
	elem := reflect.TypeFor[T]()
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil value", ErrUnsupportedType)
	}

	rank := 0
	typ := rv.Type()
	for typ != elem {
		if typ.Kind() != reflect.Slice && typ.Kind() != reflect.Array {
			return nil, fmt.Errorf("%w: %s has no %s leaves", ErrUnsupportedType, rv.Type(), elem)
		}
		typ = typ.Elem()
		rank++
	}

	shape := make(Shape, rank)
	cur := rv
	for d := range shape {
		shape[d] = cur.Len()
		if cur.Len() == 0 {
			// Nothing to look into: remaining slice extents are 0, array extents come from the type.
			t := cur.Type().Elem()
			for rest := d + 1; rest < rank; rest++ {
				if t.Kind() == reflect.Array {
					shape[rest] = t.Len()
				}
				t = t.Elem()
			}
			break
		}
		cur = cur.Index(0)
	}

	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]T, 0, shape.NumElements())
	data, err := flattenNested(rv, shape, 0, data)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: data, shape: shape}, nil
}

func flattenNested[T DType](v reflect.Value, shape Shape, d int, data []T) ([]T, error) {
	if d == len(shape) {
		return append(data, v.Interface().(T)), nil
	}
	if v.Len() != shape[d] {
		return nil, fmt.Errorf("%w: ragged input at axis %d (extent %d, expected %d)",
			ErrShapeMismatch, d, v.Len(), shape[d])
	}
	var err error
	for i := 0; i < v.Len(); i++ {
		if data, err = flattenNested(v.Index(i), shape, d+1, data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// ToNested copies the tensor into nested slices matching its shape, e.g.
// [][][]float64 for a rank-3 float64 tensor. A rank-0 tensor returns its
// single value as T.
func (t *Tensor[T]) ToNested() any {
	if len(t.shape) == 0 {
		return t.data[0]
	}
	typ := reflect.TypeFor[T]()
	for range t.shape {
		typ = reflect.SliceOf(typ)
	}
	pos := 0
	return t.buildNested(typ, 0, &pos).Interface()
}

func (t *Tensor[T]) buildNested(typ reflect.Type, d int, pos *int) reflect.Value {
	n := t.shape[d]
	v := reflect.MakeSlice(typ, n, n)
	if d == len(t.shape)-1 {
		*pos += copy(v.Interface().([]T), t.data[*pos:*pos+n])
		return v
	}
	for i := 0; i < n; i++ {
		v.Index(i).Set(t.buildNested(typ.Elem(), d+1, pos))
	}
	return v
}

// FromDense copies a gonum matrix into a rank-2 tensor.
func FromDense(m mat.Matrix) *Tensor[float64] {
	r, c := m.Dims()
	t := newTensor[float64](Shape{r, c})
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			t.data[i*c+j] = m.At(i, j)
		}
	}
	return t
}

// ToDense copies a rank-2 tensor into a new gonum matrix, converting
// elements with float64(v).
func ToDense[T DType](t *Tensor[T]) (*mat.Dense, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("%w: dense matrix needs rank 2, got shape %v", ErrRankMismatch, t.shape)
	}
	r, c := t.shape[0], t.shape[1]
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%w: dense matrix cannot be empty, got shape %v", ErrShapeMismatch, t.shape)
	}
	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = float64(v)
	}
	return mat.NewDense(r, c, data), nil
}
