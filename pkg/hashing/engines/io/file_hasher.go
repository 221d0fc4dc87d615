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

package io

import (
	"context"
	"fmt"
	"os"

	hashengines "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/progress"
)

// DefaultSizeLimit caps file inputs at 10 MiB unless the caller overrides it.
// The limit keeps interactive use responsive; it is not a correctness bound.
const DefaultSizeLimit int64 = 10 * 1024 * 1024

// FileHasher streams a file into a StreamingHashEngine.
//
// It reads the file exactly once, in chunkSize pieces, and never loads the
// whole thing into memory. The file size learned from stat is used both for
// the optional size limit and as the progress total, but the streaming loop
// itself never assumes it: a file that grows or shrinks mid-read still
// digests exactly the bytes that were read.
type FileHasher struct {
	filePath  string
	stream    *StreamHasher
	sizeLimit int64
}

// NewFileHasher constructs a FileHasher.
//
//   - filePath: path to the file to hash
//   - engine: the StreamingHashEngine fed with file contents
//   - chunkSize: bytes read per chunk; must be positive
//
// The size limit defaults to DefaultSizeLimit; use SetSizeLimit(0) to
// disable it.
func NewFileHasher(filePath string, engine hashengines.StreamingHashEngine, chunkSize int) (*FileHasher, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path must be non-empty")
	}

	stream, err := NewStreamHasher(engine, chunkSize)
	if err != nil {
		return nil, err
	}

	return &FileHasher{
		filePath:  filePath,
		stream:    stream,
		sizeLimit: DefaultSizeLimit,
	}, nil
}

// SetSizeLimit sets the maximum file size in bytes; 0 disables the limit.
func (h *FileHasher) SetSizeLimit(limit int64) {
	h.sizeLimit = limit
}

// SetObserver installs a progress observer invoked after every chunk.
func (h *FileHasher) SetObserver(obs progress.Observer) {
	h.stream.SetObserver(obs)
}

// Consume streams the entire file into the engine.
//
// Returns the number of bytes processed. Fails with ErrSizeLimitExceeded
// before reading any content if the file is larger than the configured
// limit; open and read failures propagate wrapped in ErrInputRead. The
// engine is left unfinalized so the caller can append trailing bytes
// before computing the digest.
func (h *FileHasher) Consume(ctx context.Context) (int64, error) {
	f, err := os.Open(h.filePath)
	if err != nil {
		return 0, fmt.Errorf("%w: open %q: %w", hashengines.ErrInputRead, h.filePath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: stat %q: %w", hashengines.ErrInputRead, h.filePath, err)
	}

	if h.sizeLimit > 0 && info.Size() > h.sizeLimit {
		return 0, fmt.Errorf("%w: %q is %d bytes, limit %d",
			hashengines.ErrSizeLimitExceeded, h.filePath, info.Size(), h.sizeLimit)
	}

	h.stream.SetTotal(info.Size())

	n, err := h.stream.Consume(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("hash file %q: %w", h.filePath, err)
	}

	return n, nil
}
