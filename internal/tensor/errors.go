package tensor

import "errors"

// Errors returned by tensor operations. They are wrapped with context, so
// compare with errors.Is.
var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrRankMismatch     = errors.New("rank mismatch")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrIncompatibleAxes = errors.New("incompatible contraction axes")
	ErrAxisOutOfRange   = errors.New("axis out of range")
	ErrInvalidShape     = errors.New("invalid shape")
	ErrUnsupportedType  = errors.New("unsupported element type")
)
