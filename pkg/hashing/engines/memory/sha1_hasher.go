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
	"crypto/sha1" //nolint:gosec // SHA-1 is offered for educational comparison only.
	"hash"

	hashengines "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines"
)

func init() {
	hashengines.MustRegister("sha1", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA1(nil)
	})
}

// SHA1 is a type alias for GenericHashEngine configured for SHA-1.
//
// SHA-1 has known collision attacks. It stays in the registry because the
// tool exists to demonstrate digest algorithms, not to recommend them; do
// not use it for integrity protection.
type SHA1 = GenericHashEngine

// NewSHA1 creates a new SHA-1 engine producing 20-byte digests.
//
// If initialData is non-nil and non-empty, it is hashed immediately.
func NewSHA1(initialData []byte) (*SHA1, error) {
	return NewGenericHashEngine(
		"sha1",
		sha1.Size,
		func() (hash.Hash, error) {
			return sha1.New(), nil //nolint:gosec
		},
		initialData,
	)
}
