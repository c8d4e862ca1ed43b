package serialization

import (
	"errors"
)

// Common errors.
var (
	ErrChecksumMismatch  = errors.New("checksum mismatch: file may be corrupted")
	ErrUnsupportedDType  = errors.New("element type has no safetensors dtype")
	ErrDTypeMismatch     = errors.New("stored dtype does not match requested element type")
	ErrInvalidTensorName = errors.New("invalid tensor name")
	ErrNilTensor         = errors.New("nil tensor")
)
