// Package tensor provides the dense N-dimensional tensor type, its elementwise
// operators and the generalized axis contraction.
package tensor

// DType is a constraint for supported tensor element types.
//
// Every member has a zero value (the additive identity) and supports
// +, -, *, / and ==. Division follows Go semantics: floating-point
// division by zero yields ±Inf or NaN, integer division by zero panics.
type DType interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is a constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}
