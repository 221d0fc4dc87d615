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
	"crypto/sha512"
	"hash"

	hashengines "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines"
)

func init() {
	hashengines.MustRegister("sha512", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA512(nil)
	})
}

// SHA512 is a type alias for GenericHashEngine configured for SHA-512.
type SHA512 = GenericHashEngine

// NewSHA512 creates a new SHA-512 engine producing 64-byte digests.
//
// If initialData is non-nil and non-empty, it is hashed immediately.
func NewSHA512(initialData []byte) (*SHA512, error) {
	return NewGenericHashEngine(
		"sha512",
		sha512.Size,
		func() (hash.Hash, error) {
			return sha512.New(), nil
		},
		initialData,
	)
}
