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

// Package hashengines provides interfaces and implementations for cryptographic hashing operations.
//
// The package defines the core HashEngine interface and supporting types for
// computing digests of data. It supports both one-shot hashing and streaming
// operations where data can be fed incrementally. Engines are single use:
// once Compute has finalized the state, further updates are rejected until
// the engine is Reset.
package hashengines

import (
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/digests"
)

// HashEngine defines the core interface for computing cryptographic hashes.
//
// Implementations must provide methods to compute digests, report the
// algorithm name, and specify the digest size. The algorithm name must
// include all parameters that affect the hash output (e.g., "hmac-sha256"
// for a keyed digest rather than a plain "sha256").
type HashEngine interface {
	// Compute finalizes the hash computation and returns the resulting digest.
	// Compute may be called at most once per computation; a second call
	// without an intervening Reset fails with ErrEngineFinalized.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical name of the hash algorithm.
	// Implementations must include all parameters that influence the hash
	// output. This name is transferred to the algorithm field of the Digest
	// returned by Compute.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this engine.
	// The returned value must match the Size() of the Digest returned by Compute.
	DigestSize() int
}

// Streaming defines the interface for incrementally feeding data to a hash engine.
//
// This interface is separate from HashEngine to keep interfaces small and
// focused, allowing implementations that only support one-shot hashing.
type Streaming interface {
	// Update appends additional bytes to the data being hashed.
	// Updating an engine whose state has already been finalized by Compute
	// fails with ErrEngineFinalized.
	Update(data []byte) error

	// Reset clears the hash state, including any finalized marker, and
	// optionally initializes it with new data.
	Reset(data []byte)
}

// StreamingHashEngine combines HashEngine and Streaming for incremental hashing.
//
// This interface composes the smaller HashEngine and Streaming interfaces
// rather than creating a monolithic interface, following the principle of
// interface composition in Go.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
