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
	"errors"
	"os"
	"path/filepath"
	"testing"

	hashengines "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines/memory"
)

// writeTempFile creates a file with the given contents under t.TempDir.
func writeTempFile(t *testing.T, contents []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, contents, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestFileHasher_DigestMatchesInMemory(t *testing.T) {
	contents := []byte("contents of a small file, hashed chunk by chunk")
	path := writeTempFile(t, contents)
	want := wholeBufferDigest(t, contents)

	engine, err := memory.NewSHA256(nil)
	if err != nil {
		t.Fatalf("NewSHA256() error = %v", err)
	}

	fh, err := NewFileHasher(path, engine, 8)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	n, err := fh.Consume(context.Background())
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if n != int64(len(contents)) {
		t.Errorf("Consume() processed %d bytes, want %d", n, len(contents))
	}

	d, err := engine.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != want {
		t.Errorf("file digest = %q, want in-memory digest %q", got, want)
	}
}

func TestFileHasher_EngineLeftOpenForTrailers(t *testing.T) {
	path := writeTempFile(t, []byte("message"))
	want := wholeBufferDigest(t, []byte("message-trailer"))

	engine, err := memory.NewSHA256(nil)
	if err != nil {
		t.Fatalf("NewSHA256() error = %v", err)
	}

	fh, err := NewFileHasher(path, engine, DefaultChunkSize)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	if _, err := fh.Consume(context.Background()); err != nil {
		t.Fatalf("Consume() error = %v", err)
	}

	// The engine must accept more input after Consume returns.
	if err := engine.Update([]byte("-trailer")); err != nil {
		t.Fatalf("Update() after Consume() error = %v", err)
	}

	d, err := engine.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if got := d.Hex(); got != want {
		t.Errorf("digest with trailer = %q, want %q", got, want)
	}
}

func TestFileHasher_MissingFile(t *testing.T) {
	engine, err := memory.NewSHA256(nil)
	if err != nil {
		t.Fatalf("NewSHA256() error = %v", err)
	}

	fh, err := NewFileHasher(filepath.Join(t.TempDir(), "does-not-exist"), engine, DefaultChunkSize)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	_, err = fh.Consume(context.Background())
	if !errors.Is(err, hashengines.ErrInputRead) {
		t.Errorf("Consume() on missing file error = %v, want ErrInputRead", err)
	}
}

func TestFileHasher_EmptyPath(t *testing.T) {
	engine, err := memory.NewSHA256(nil)
	if err != nil {
		t.Fatalf("NewSHA256() error = %v", err)
	}

	if _, err := NewFileHasher("", engine, DefaultChunkSize); err == nil {
		t.Error("NewFileHasher(empty path) should fail")
	}
}

func TestFileHasher_SizeLimit(t *testing.T) {
	path := writeTempFile(t, make([]byte, 1024))

	tests := []struct {
		name    string
		limit   int64
		wantErr bool
	}{
		{"under limit", 2048, false},
		{"exactly at limit", 1024, false},
		{"over limit", 1023, true},
		{"limit disabled", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := memory.NewSHA256(nil)
			if err != nil {
				t.Fatalf("NewSHA256() error = %v", err)
			}

			fh, err := NewFileHasher(path, engine, DefaultChunkSize)
			if err != nil {
				t.Fatalf("NewFileHasher() error = %v", err)
			}
			fh.SetSizeLimit(tt.limit)

			_, err = fh.Consume(context.Background())
			if tt.wantErr {
				if !errors.Is(err, hashengines.ErrSizeLimitExceeded) {
					t.Errorf("Consume() error = %v, want ErrSizeLimitExceeded", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Consume() error = %v", err)
			}
		})
	}
}

func TestFileHasher_Cancellation(t *testing.T) {
	path := writeTempFile(t, []byte("cancelled before reading"))

	engine, err := memory.NewSHA256(nil)
	if err != nil {
		t.Fatalf("NewSHA256() error = %v", err)
	}

	fh, err := NewFileHasher(path, engine, DefaultChunkSize)
	if err != nil {
		t.Fatalf("NewFileHasher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = fh.Consume(ctx)
	if !errors.Is(err, hashengines.ErrCancelled) {
		t.Errorf("Consume() with cancelled context error = %v, want ErrCancelled", err)
	}
}
