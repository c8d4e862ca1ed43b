package serialization

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// checksumPrefix marks metadata entries that hold per-tensor checksums.
const checksumPrefix = "sha256:"

// ComputeChecksum computes SHA-256 checksum of data.
func ComputeChecksum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// ValidateChecksum compares computed checksum against stored checksum.
// Returns ErrChecksumMismatch if they don't match.
func ValidateChecksum(computed, stored [32]byte) error {
	if computed != stored {
		return ErrChecksumMismatch
	}
	return nil
}

func checksumKey(name string) string {
	return checksumPrefix + name
}

func encodeChecksum(sum [32]byte) string {
	return hex.EncodeToString(sum[:])
}

func decodeChecksum(s string) ([32]byte, error) {
	var sum [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return sum, err
	}
	if len(raw) != len(sum) {
		return sum, ErrChecksumMismatch
	}
	copy(sum[:], raw)
	return sum, nil
}

// splitMetadata separates user metadata from checksum entries.
func splitMetadata(meta map[string]string) (user, sums map[string]string) {
	user = make(map[string]string, len(meta))
	sums = make(map[string]string)
	for k, v := range meta {
		if name, ok := strings.CutPrefix(k, checksumPrefix); ok {
			sums[name] = v
			continue
		}
		user[k] = v
	}
	return user, sums
}
