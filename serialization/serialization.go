// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization saves and loads named tensors in the safetensors format.
//
// This package wraps the internal implementation and exports a clean public API.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/ndtensor/serialization"
//	    "github.com/born-ml/ndtensor/tensor"
//	)
//
//	a, _ := tensor.Rand[float32](4, 100, 8)
//	err := serialization.SaveFile("a.safetensors", map[string]*tensor.Tensor[float32]{"a": a}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tensors, metadata, err := serialization.LoadFile[float32]("a.safetensors")
package serialization

import (
	"io"

	"github.com/born-ml/ndtensor/internal/serialization"
	"github.com/born-ml/ndtensor/internal/tensor"
)

// Errors returned by Save and Load.
var (
	ErrChecksumMismatch  = serialization.ErrChecksumMismatch
	ErrUnsupportedDType  = serialization.ErrUnsupportedDType
	ErrDTypeMismatch     = serialization.ErrDTypeMismatch
	ErrInvalidTensorName = serialization.ErrInvalidTensorName
	ErrNilTensor         = serialization.ErrNilTensor
)

// Save writes tensors and metadata to w in safetensors format.
func Save[T tensor.DType](w io.Writer, tensors map[string]*tensor.Tensor[T], metadata map[string]string) error {
	return serialization.Save(w, tensors, metadata)
}

// Load reads every tensor from a safetensors stream.
func Load[T tensor.DType](r io.Reader) (map[string]*tensor.Tensor[T], map[string]string, error) {
	return serialization.Load[T](r)
}

// SaveFile writes tensors to a safetensors file at path.
func SaveFile[T tensor.DType](path string, tensors map[string]*tensor.Tensor[T], metadata map[string]string) error {
	return serialization.SaveFile(path, tensors, metadata)
}

// LoadFile reads a safetensors file from path.
func LoadFile[T tensor.DType](path string) (map[string]*tensor.Tensor[T], map[string]string, error) {
	return serialization.LoadFile[T](path)
}
