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

// Package results records completed digest operations and exports them as
// delimited text.
//
// A Record holds only already-computed, non-secret values: digests, salts
// (which are public by design), and metadata. Export formats are stable and
// round-trippable so results written by one session can be read back intact.
package results

import (
	"sync"
	"time"
)

// Record is one completed digest operation.
type Record struct {
	// Timestamp is when the operation completed, in UTC.
	Timestamp time.Time `json:"timestamp"`
	// Kind distinguishes the input type: "text", "file", or "hmac".
	Kind string `json:"kind"`
	// Label identifies the input: a truncated text preview or a file name.
	Label string `json:"label"`
	// Algorithm is the algorithm identifier the digest was computed with.
	Algorithm string `json:"algorithm"`
	// Salted reports whether a salt was appended to the input.
	Salted bool `json:"salted"`
	// SaltHex is the hex-encoded salt, or empty when unsalted.
	SaltHex string `json:"salt_hex,omitempty"`
	// Peppered reports whether a configured pepper was appended.
	Peppered bool `json:"peppered"`
	// HMAC reports whether the digest is a keyed MAC.
	HMAC bool `json:"hmac"`
	// DigestHex is the lowercase hex digest.
	DigestHex string `json:"digest_hex"`
	// Bytes is the number of message bytes processed.
	Bytes int64 `json:"bytes"`
}

// Recorder accumulates records across operations.
//
// Safe for concurrent use: independent digest operations may complete and
// record in parallel.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Add appends a record. A zero Timestamp is filled with the current UTC time.
func (r *Recorder) Add(rec Record) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
}

// Records returns a copy of the accumulated records in insertion order.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of accumulated records.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
