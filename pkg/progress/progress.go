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

// Package progress reports how far an incremental digest operation has
// advanced through its input.
//
// The digesting engine emits (processed, total) byte pairs after every
// chunk; rendering them is the consumer's concern. Reporter is a minimal
// terminal renderer for the CLI.
package progress

import (
	"fmt"
	"io"
)

// Observer receives progress updates during incremental digesting.
//
// Processed is the cumulative number of message bytes fed to the digest
// primitive so far; it is monotonically non-decreasing and reaches total
// exactly when processing completes. Total is UnknownTotal when the input
// length is not known in advance.
type Observer interface {
	Progress(processed, total int64)
}

// UnknownTotal is passed as the total when the input length is not known
// in advance (e.g., a pipe).
const UnknownTotal int64 = -1

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(processed, total int64)

// Progress implements Observer.
func (f ObserverFunc) Progress(processed, total int64) {
	f(processed, total)
}

// Nop returns an Observer that discards all updates.
func Nop() Observer {
	return ObserverFunc(func(int64, int64) {})
}

// Reporter renders progress updates as single-line terminal output.
//
// Each update rewrites the current line; Finish terminates it. Reporter is
// not safe for concurrent use, matching the one-owner-per-operation model
// of the digesting engine.
type Reporter struct {
	w     io.Writer
	label string
	wrote bool
}

// NewReporter creates a Reporter writing to w, prefixing each line with label.
func NewReporter(w io.Writer, label string) *Reporter {
	return &Reporter{w: w, label: label}
}

// Progress implements Observer.
func (r *Reporter) Progress(processed, total int64) {
	r.wrote = true
	if total == UnknownTotal {
		fmt.Fprintf(r.w, "\r%s: %d bytes", r.label, processed)
		return
	}

	pct := float64(0)
	if total > 0 {
		pct = float64(processed) / float64(total) * 100
	}
	fmt.Fprintf(r.w, "\r%s: %d / %d bytes (%.1f%%)", r.label, processed, total, pct)
}

// Finish terminates the progress line, if any updates were written.
func (r *Reporter) Finish() {
	if r.wrote {
		fmt.Fprintln(r.w)
	}
}
