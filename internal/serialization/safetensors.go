package serialization

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/nlpodyssey/safetensors"
	"github.com/pkg/errors"

	"github.com/born-ml/ndtensor/internal/tensor"
)

// metadataKey is the header entry reserved by the safetensors format.
const metadataKey = "__metadata__"

// tensorView exposes an encoded tensor to the safetensors serializer.
type tensorView struct {
	dtype safetensors.DType
	shape []uint64
	data  []byte
}

func (v tensorView) DType() safetensors.DType { return v.dtype }
func (v tensorView) Shape() []uint64         { return v.shape }
func (v tensorView) Data() []byte            { return v.data }
func (v tensorView) DataLen() uint64         { return uint64(len(v.data)) }

// dtypeOf maps an element type to its safetensors dtype.
// int and uint have no fixed width and are rejected.
func dtypeOf[T tensor.DType]() (safetensors.DType, error) {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return safetensors.F32, nil
	case reflect.Float64:
		return safetensors.F64, nil
	case reflect.Int8:
		return safetensors.I8, nil
	case reflect.Int16:
		return safetensors.I16, nil
	case reflect.Int32:
		return safetensors.I32, nil
	case reflect.Int64:
		return safetensors.I64, nil
	case reflect.Uint8:
		return safetensors.U8, nil
	case reflect.Uint16:
		return safetensors.U16, nil
	case reflect.Uint32:
		return safetensors.U32, nil
	case reflect.Uint64:
		return safetensors.U64, nil
	default:
		var zero T
		return 0, errors.Wrapf(ErrUnsupportedDType, "%T", zero)
	}
}

// Save writes tensors and metadata to w in safetensors format.
//
// Tensor data is stored little-endian in row-major order. Metadata keys must
// not start with "sha256:", which is reserved for checksums.
func Save[T tensor.DType](w io.Writer, tensors map[string]*tensor.Tensor[T], metadata map[string]string) error {
	dt, err := dtypeOf[T]()
	if err != nil {
		return err
	}

	meta := make(map[string]string, len(metadata)+len(tensors))
	for k, v := range metadata {
		if strings.HasPrefix(k, checksumPrefix) {
			return errors.Errorf("metadata key %q uses reserved prefix %q", k, checksumPrefix)
		}
		meta[k] = v
	}

	views := make(map[string]tensorView, len(tensors))
	for name, t := range tensors {
		if name == "" || name == metadataKey {
			return errors.Wrapf(ErrInvalidTensorName, "%q", name)
		}
		if t == nil {
			return errors.Wrapf(ErrNilTensor, "tensor %q", name)
		}
		data, err := binary.Append(nil, binary.LittleEndian, t.Data())
		if err != nil {
			return errors.Wrapf(err, "encode tensor %q", name)
		}
		shape := make([]uint64, t.Rank())
		for i, dim := range t.Shape() {
			shape[i] = uint64(dim) //nolint:gosec // G115: dimensions are validated non-negative.
		}
		views[name] = tensorView{dtype: dt, shape: shape, data: data}
		meta[checksumKey(name)] = encodeChecksum(ComputeChecksum(data))
	}

	if err := safetensors.SerializeToWriter(views, meta, w); err != nil {
		return errors.Wrap(err, "serialize safetensors")
	}
	return nil
}

// Load reads every tensor from a safetensors stream. All stored tensors must
// have the dtype matching T. The returned metadata excludes checksum entries.
func Load[T tensor.DType](r io.Reader) (map[string]*tensor.Tensor[T], map[string]string, error) {
	dt, err := dtypeOf[T]()
	if err != nil {
		return nil, nil, err
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read safetensors stream")
	}
	n, header, err := safetensors.ReadMetadata(buf)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read safetensors header")
	}
	data := buf[8+n:]

	user, sums := splitMetadata(header.Metadata())
	infos := header.Tensors()
	out := make(map[string]*tensor.Tensor[T], len(infos))

	for name, info := range infos {
		if info.DType != dt {
			return nil, nil, errors.Wrapf(ErrDTypeMismatch, "tensor %q is %s, want %s", name, info.DType, dt)
		}
		raw := data[info.DataOffsets[0]:info.DataOffsets[1]]

		if s, ok := sums[name]; ok {
			stored, err := decodeChecksum(s)
			if err != nil {
				return nil, nil, errors.Wrapf(ErrChecksumMismatch, "tensor %q: malformed checksum", name)
			}
			if err := ValidateChecksum(ComputeChecksum(raw), stored); err != nil {
				return nil, nil, errors.Wrapf(err, "tensor %q", name)
			}
		}

		shape := make(tensor.Shape, len(info.Shape))
		for i, dim := range info.Shape {
			shape[i] = int(dim) //nolint:gosec // G115: header validation bounds the element count.
		}
		values := make([]T, uint64(len(raw))/dt.Size())
		if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, values); err != nil {
			return nil, nil, errors.Wrapf(err, "decode tensor %q", name)
		}
		t, err := tensor.FromSlice(values, shape)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "tensor %q", name)
		}
		out[name] = t
	}

	return out, user, nil
}

// SaveFile writes tensors to a safetensors file at path.
func SaveFile[T tensor.DType](path string, tensors map[string]*tensor.Tensor[T], metadata map[string]string) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for saving
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close file")
		}
	}()

	bw := bufio.NewWriter(file)
	if err := Save(bw, tensors, metadata); err != nil {
		return err
	}
	return errors.Wrap(bw.Flush(), "failed to flush file")
}

// LoadFile reads a safetensors file from path.
func LoadFile[T tensor.DType](path string) (map[string]*tensor.Tensor[T], map[string]string, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open file")
	}
	defer func() {
		_ = file.Close() // Best effort close
	}()

	return Load[T](file)
}
