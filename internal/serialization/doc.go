// Package serialization saves and loads named tensors in the safetensors format.
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON, tensor dtype/shape/data_offsets + "__metadata__"]
//	  [Tensor data: raw little-endian bytes, row-major]
//
// Every saved tensor also gets a SHA-256 checksum of its data bytes in the
// metadata, under the key "sha256:<name>". Load verifies the checksums it
// finds and strips them from the returned metadata.
//
// Example usage:
//
//	a, _ := tensor.Rand[float32](4, 100, 8)
//	err := serialization.SaveFile("weights.safetensors",
//	    map[string]*tensor.Tensor[float32]{"a": a}, map[string]string{"step": "10"})
//
//	tensors, meta, err := serialization.LoadFile[float32]("weights.safetensors")
package serialization
