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

// Package salt generates cryptographically random salts.
//
// Salts are not secret: they are returned alongside the digest they were
// used with so that a verifier can recompute the same digest. Their only
// job is to make equal inputs produce distinct digests.
package salt

import (
	"crypto/rand"
	"errors"
	"fmt"
)

// DefaultLength is the salt length in bytes used when the caller does not
// specify one.
const DefaultLength = 16

// ErrInvalidLength indicates a non-positive salt length.
var ErrInvalidLength = errors.New("salt length must be positive")

// Generate returns lengthBytes of cryptographically random salt.
//
// The randomness comes from crypto/rand, never from a time-seeded PRNG.
// Fails with ErrInvalidLength if lengthBytes is not positive.
func Generate(lengthBytes int) ([]byte, error) {
	if lengthBytes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, lengthBytes)
	}

	b := make([]byte, lengthBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	return b, nil
}

// GenerateDefault returns a salt of DefaultLength bytes.
func GenerateDefault() ([]byte, error) {
	return Generate(DefaultLength)
}
