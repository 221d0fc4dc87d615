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

package hashengines

import "errors"

// Sentinel errors for digest operations. Callers match them with errors.Is;
// all call sites wrap them with additional context via fmt.Errorf and %w.
var (
	// ErrUnsupportedAlgorithm indicates an algorithm name not present in the registry.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

	// ErrEngineFinalized indicates an Update or Compute call on an engine
	// whose state was already finalized by a previous Compute.
	ErrEngineFinalized = errors.New("hash engine already finalized")

	// ErrInvalidChunkSize indicates a non-positive chunk size.
	ErrInvalidChunkSize = errors.New("chunk size must be positive")

	// ErrMissingKey indicates a keyed digest was requested but no key is
	// configured in the secret source. Unlike an absent pepper, this is not
	// a valid degraded mode.
	ErrMissingKey = errors.New("no HMAC key configured")

	// ErrInputRead wraps read failures propagated from the input source.
	ErrInputRead = errors.New("input read failed")

	// ErrCancelled indicates the operation was aborted via its context
	// before the input was fully consumed.
	ErrCancelled = errors.New("digest operation cancelled")

	// ErrSizeLimitExceeded indicates the input is larger than the configured limit.
	ErrSizeLimitExceeded = errors.New("input exceeds size limit")
)
