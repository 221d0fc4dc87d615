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

package memory

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // offered for educational comparison only
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	hashengines "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines"
	"golang.org/x/crypto/blake2b"
)

// hmacPrimitives maps algorithm names to the hash constructors usable as an
// HMAC inner function. Kept separate from the engine registry because HMAC
// engines are keyed and therefore cannot be built by a zero-argument factory.
var hmacPrimitives = map[string]struct {
	factory func() hash.Hash
	size    int
}{
	"sha256": {sha256.New, sha256.Size},
	"sha1":   {sha1.New, sha1.Size},
	"sha512": {sha512.New, sha512.Size},
	"blake2b": {
		func() hash.Hash {
			h, _ := blake2b.New512(nil) // errors only for oversized keys, none given
			return h
		},
		blake2b.Size,
	},
}

// HMAC is a type alias for GenericHashEngine configured for keyed hashing.
//
// The digest name is "hmac-<algorithm>" (e.g., "hmac-sha256") so that the
// algorithm field of the resulting Digest records that the value is a MAC,
// not a plain digest.
type HMAC = GenericHashEngine

// NewHMAC creates a keyed HMAC engine over the named underlying algorithm.
//
// The algorithm name is matched case-insensitively against the same four
// algorithms the plain registry carries. An empty key fails with
// ErrMissingKey: HMAC without a key is not a valid degraded mode. The key
// is copied and never appears in the engine's digest name or output.
func NewHMAC(algorithm string, key []byte) (*HMAC, error) {
	prim, ok := hmacPrimitives[strings.ToLower(strings.TrimSpace(algorithm))]
	if !ok {
		return nil, fmt.Errorf("%w: %s (for HMAC)", hashengines.ErrUnsupportedAlgorithm, algorithm)
	}

	if len(key) == 0 {
		return nil, fmt.Errorf("%w: HMAC over %s requires a key", hashengines.ErrMissingKey, algorithm)
	}

	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	name := "hmac-" + strings.ToLower(strings.TrimSpace(algorithm))

	return NewGenericHashEngine(
		name,
		prim.size,
		func() (hash.Hash, error) {
			return hmac.New(prim.factory, keyCopy), nil
		},
		nil,
	)
}
