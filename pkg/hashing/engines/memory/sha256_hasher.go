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
	"crypto/sha256"
	"hash"

	hashengines "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines"
)

func init() {
	hashengines.MustRegister("sha256", func() (hashengines.StreamingHashEngine, error) {
		return NewSHA256(nil)
	})
}

// SHA256 is a type alias for GenericHashEngine configured for SHA-256.
type SHA256 = GenericHashEngine

// NewSHA256 creates a new SHA-256 engine producing 32-byte digests.
//
// If initialData is non-nil and non-empty, it is hashed immediately.
func NewSHA256(initialData []byte) (*SHA256, error) {
	return NewGenericHashEngine(
		"sha256",
		sha256.Size,
		func() (hash.Hash, error) {
			return sha256.New(), nil
		},
		initialData,
	)
}
