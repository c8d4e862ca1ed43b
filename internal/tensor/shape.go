package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
// The result is only meaningful for shapes that pass Validate.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative and that the element count
// fits in an int. Zero-sized dimensions are allowed, but the product of the
// non-zero dimensions must still fit.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
		if dim == 0 {
			continue
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as a bracketed, comma-separated list, e.g. [4, 100, 64].
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, dim := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", dim)
	}
	sb.WriteByte(']')
	return sb.String()
}

// offset linearizes a multi-index in row-major order using a running
// accumulator. Indices are assumed to be in bounds.
func (s Shape) offset(indices []int) int {
	off := 0
	for i, idx := range indices {
		off *= s[i]
		off += idx
	}
	return off
}

// checkIndex validates a multi-index against the shape.
func (s Shape) checkIndex(indices []int) error {
	if len(indices) != len(s) {
		return fmt.Errorf("%w: expected %d indices, got %d", ErrRankMismatch, len(s), len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= s[i] {
			return fmt.Errorf("%w: index %d at axis %d (size %d)", ErrIndexOutOfBounds, idx, i, s[i])
		}
	}
	return nil
}

// without returns a copy of the shape with the given axis removed.
func (s Shape) without(axis int) Shape {
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:axis]...)
	return append(out, s[axis+1:]...)
}

// stride returns the row-major distance between consecutive positions
// along axis.
func (s Shape) stride(axis int) int {
	st := 1
	for _, dim := range s[axis+1:] {
		st *= dim
	}
	return st
}

// ResolveAxis maps a possibly negative axis selector onto [0, rank).
// Negative values count from the end (-1 is the last axis).
func ResolveAxis(axis, rank int) (int, error) {
	resolved := axis
	if resolved < 0 {
		resolved += rank
	}
	if resolved < 0 || resolved >= rank {
		return 0, fmt.Errorf("%w: axis %d for rank %d", ErrAxisOutOfRange, axis, rank)
	}
	return resolved, nil
}
