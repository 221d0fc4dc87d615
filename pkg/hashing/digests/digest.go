//
// Copyright 2025 The Hashdemo Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package digests provides types for representing cryptographic hash digests.
//
// A Digest encapsulates both the algorithm name and the computed hash value,
// providing immutability guarantees through defensive copying and unexported
// fields. Comparisons are constant time so digests can be matched without
// leaking timing information.
package digests

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

// Digest represents a computed cryptographic hash digest.
//
// Digest is designed to be effectively immutable: its fields are unexported,
// and access is provided via read-only methods. Constructors and accessors
// defensively copy the underlying data to prevent external mutation.
type Digest struct {
	algorithm string // Name of the hash algorithm used
	value     []byte // Raw digest bytes
}

// NewDigest creates a new Digest with the specified algorithm and hash value.
//
// The value slice is defensively copied to preserve immutability and prevent
// external mutations or data races.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// Algorithm returns the name of the hash algorithm used to compute this digest.
//
// The returned name may be a canonical algorithm name (e.g., "sha256") or a
// name that encodes additional parameters (e.g., "hmac-sha256" for keyed
// digests). This name identifies the hashing configuration needed to
// recompute a compatible digest during verification.
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
//
// A defensive copy is returned to prevent callers from mutating the internal
// state, preserving the immutability guarantee of Digest.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hexadecimal string representation of the digest value.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the length in bytes of the digest value.
func (d Digest) Size() int {
	return len(d.value)
}

// String returns a human-readable string representation of the digest.
//
// The format is "algorithm:hexvalue" (e.g., "sha256:abc123...").
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal compares this digest with another for equality.
//
// Two digests are equal if and only if they have the same algorithm name
// and identical digest values. The value comparison is constant time.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm {
		return false
	}

	if len(d.value) != len(other.value) {
		return false
	}

	return subtle.ConstantTimeCompare(d.value, other.value) == 1
}

// CompareHex reports whether two hex-encoded digests are identical.
//
// Both inputs are trimmed of surrounding whitespace and lowercased before
// comparison, so digests copied out of different tools compare as expected.
// The comparison itself is constant time to avoid leaking the position of
// the first differing byte.
func CompareHex(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))

	if len(na) != len(nb) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(na), []byte(nb)) == 1
}
