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

// Package io streams byte sources into hash engines in fixed-size chunks.
//
// The chunked result is always identical to hashing the same bytes in a
// single call; chunking exists so arbitrarily large inputs never need to
// be held in memory and so progress can be reported per chunk.
package io

import (
	"context"
	"errors"
	"fmt"
	"io"

	hashengines "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/progress"
)

// DefaultChunkSize is the read size used when the caller does not choose one.
// 8 KiB matches the recommended 8 KiB - 1 MiB range; correctness does not
// depend on the value.
const DefaultChunkSize = 8192

// StreamHasher feeds an io.Reader into a StreamingHashEngine chunk by chunk.
//
// It owns neither the reader nor the engine: the caller opens and closes the
// source, and finalizes the engine (possibly after appending trailing salt or
// pepper bytes) once Consume returns. One StreamHasher serves one logical
// operation; it holds no locks and is not for concurrent use.
type StreamHasher struct {
	engine    hashengines.StreamingHashEngine
	chunkSize int
	observer  progress.Observer
	total     int64
}

// NewStreamHasher constructs a StreamHasher reading up to chunkSize bytes
// per iteration.
//
// Fails with ErrInvalidChunkSize if chunkSize is not positive, and rejects a
// nil engine. The progress total defaults to progress.UnknownTotal until
// SetTotal is called.
func NewStreamHasher(engine hashengines.StreamingHashEngine, chunkSize int) (*StreamHasher, error) {
	if engine == nil {
		return nil, fmt.Errorf("hash engine must not be nil")
	}

	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", hashengines.ErrInvalidChunkSize, chunkSize)
	}

	return &StreamHasher{
		engine:    engine,
		chunkSize: chunkSize,
		total:     progress.UnknownTotal,
	}, nil
}

// SetObserver installs a progress observer invoked after every chunk.
func (h *StreamHasher) SetObserver(obs progress.Observer) {
	h.observer = obs
}

// SetTotal records the expected input length reported alongside progress.
// Use progress.UnknownTotal when the length is not known in advance.
func (h *StreamHasher) SetTotal(total int64) {
	h.total = total
}

// Consume reads r to end-of-input, feeding every chunk into the engine.
//
// Returns the number of bytes processed. The cancellation signal is checked
// between chunk reads; on cancellation Consume fails with ErrCancelled and
// the engine state must be considered unusable for a final digest. Read
// failures propagate wrapped in ErrInputRead. A final short read at
// end-of-input terminates the loop without a spurious empty update.
func (h *StreamHasher) Consume(ctx context.Context, r io.Reader) (int64, error) {
	buf := make([]byte, h.chunkSize)

	var processed int64
	for {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", hashengines.ErrCancelled, err)
		}

		n, err := r.Read(buf)
		if n > 0 {
			if uerr := h.engine.Update(buf[:n]); uerr != nil {
				return 0, uerr
			}
			processed += int64(n)
			if h.observer != nil {
				h.observer.Progress(processed, h.total)
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, fmt.Errorf("%w: %w", hashengines.ErrInputRead, err)
		}
	}

	return processed, nil
}
