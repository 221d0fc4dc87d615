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

// Package memory provides in-memory streaming hash engines for the supported
// digest algorithms (SHA-256, SHA-1, SHA-512, BLAKE2b) plus a keyed HMAC
// engine built on the same primitives. Importing this package registers the
// plain algorithms with the engine registry.
package memory

import (
	"fmt"
	"hash"

	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/digests"
	hashengines "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines"
)

// Ensure GenericHashEngine implements StreamingHashEngine at compile time.
var _ hashengines.StreamingHashEngine = (*GenericHashEngine)(nil)

// HashFactoryFunc is a function that creates a new hash.Hash instance.
type HashFactoryFunc func() (hash.Hash, error)

// GenericHashEngine is a reusable wrapper around any hash.Hash implementation.
//
// This eliminates code duplication between the different algorithm
// implementations (SHA-256, SHA-1, SHA-512, BLAKE2b) by providing a single
// generic wrapper that also tracks the finalized state: after Compute has
// been called, further Update or Compute calls fail with ErrEngineFinalized
// until the engine is Reset.
type GenericHashEngine struct {
	name      string
	size      int
	factory   HashFactoryFunc
	h         hash.Hash
	finalized bool
}

// NewGenericHashEngine creates a new generic hash engine.
//
// Parameters:
//   - name: The canonical name of the hash algorithm (e.g., "sha256", "blake2b")
//   - size: The size of the digest in bytes
//   - factory: A function that creates new hash.Hash instances
//   - initialData: Optional initial data to hash immediately
func NewGenericHashEngine(name string, size int, factory HashFactoryFunc, initialData []byte) (*GenericHashEngine, error) {
	h, err := factory()
	if err != nil {
		return nil, err
	}

	engine := &GenericHashEngine{
		name:    name,
		size:    size,
		factory: factory,
		h:       h,
	}

	if len(initialData) > 0 {
		// hash.Hash.Write never returns an error per the interface contract.
		_, _ = engine.h.Write(initialData)
	}

	return engine, nil
}

// Update appends additional bytes to the data to be hashed.
//
// Fails with ErrEngineFinalized if Compute has already been called and the
// engine has not been Reset since.
func (e *GenericHashEngine) Update(data []byte) error {
	if e.finalized {
		return fmt.Errorf("%w: update after compute on %q", hashengines.ErrEngineFinalized, e.name)
	}

	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}

	return nil
}

// Reset clears the hash state, including the finalized marker, and optionally
// seeds it with initial data.
func (e *GenericHashEngine) Reset(data []byte) {
	// Recreate the hash instance for a clean state. The factory already
	// succeeded once during construction.
	h, _ := e.factory()
	e.h = h
	e.finalized = false

	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the hash and returns a digests.Digest.
//
// A second Compute without an intervening Reset fails with ErrEngineFinalized.
func (e *GenericHashEngine) Compute() (digests.Digest, error) {
	if e.finalized {
		return digests.Digest{}, fmt.Errorf("%w: repeated compute on %q", hashengines.ErrEngineFinalized, e.name)
	}

	e.finalized = true
	sum := e.h.Sum(nil)
	return digests.NewDigest(e.name, sum), nil
}

// DigestName returns the canonical name of the hash algorithm.
func (e *GenericHashEngine) DigestName() string {
	return e.name
}

// DigestSize returns the size, in bytes, of digests produced by this engine.
func (e *GenericHashEngine) DigestSize() int {
	return e.size
}
