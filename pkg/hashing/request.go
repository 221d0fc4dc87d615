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

package hashing

import (
	"strings"

	hashio "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines/io"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/salt"
)

// mode is the closed set of digest operation variants. Keeping it unexported
// and reachable only through the request constructors makes the mutual
// exclusion of HMAC versus salt/pepper a construction-time property instead
// of a runtime precedence check.
type mode int

const (
	modePlain mode = iota
	modeSalted
	modePeppered
	modeHMAC
)

// String returns the variant name used in logs and results.
func (m mode) String() string {
	switch m {
	case modePlain:
		return "plain"
	case modeSalted:
		return "salted"
	case modePeppered:
		return "peppered"
	case modeHMAC:
		return "hmac"
	default:
		return "unknown"
	}
}

// Request describes one digest operation: the algorithm, the operation
// variant, and the streaming parameters. Requests are values; the With*
// methods return modified copies, so a Request can be reused as a template
// across independent operations.
type Request struct {
	algorithm    string
	mode         mode
	salt         []byte
	generateSalt bool
	saltLength   int
	chunkSize    int
	sizeLimit    int64
}

func newRequest(algorithm string, m mode) Request {
	return Request{
		algorithm:  strings.ToLower(strings.TrimSpace(algorithm)),
		mode:       m,
		saltLength: salt.DefaultLength,
		chunkSize:  hashio.DefaultChunkSize,
		sizeLimit:  hashio.DefaultSizeLimit,
	}
}

// NewPlainRequest describes a digest of the message bytes alone.
func NewPlainRequest(algorithm string) Request {
	return newRequest(algorithm, modePlain)
}

// NewSaltedRequest describes a digest of message ‖ salt.
//
// Passing a nil or empty saltBytes means "generate a fresh default-length
// salt when the operation runs"; pass the previously returned salt to
// reproduce a digest for verification. The salt used is always part of
// the result.
func NewSaltedRequest(algorithm string, saltBytes []byte) Request {
	r := newRequest(algorithm, modeSalted)
	if len(saltBytes) == 0 {
		r.generateSalt = true
	} else {
		r.salt = append([]byte(nil), saltBytes...)
	}
	return r
}

// NewPepperedRequest describes a digest of message ‖ salt-if-present ‖ pepper.
//
// The pepper is fetched from the engine's secret source at execution time;
// when none is configured, peppering is a no-op and the result's
// PepperApplied flag is false. Passing nil saltBytes yields pepper-only
// composition; combine with WithGeneratedSalt for a fresh salt.
func NewPepperedRequest(algorithm string, saltBytes []byte) Request {
	r := newRequest(algorithm, modePeppered)
	if len(saltBytes) > 0 {
		r.salt = append([]byte(nil), saltBytes...)
	}
	return r
}

// NewHmacRequest describes an HMAC over the raw message bytes, keyed with
// the HMAC key from the engine's secret source.
//
// There is deliberately no way to attach salt or pepper to this variant:
// HMAC authentication replaces salt/pepper composition entirely.
func NewHmacRequest(algorithm string) Request {
	return newRequest(algorithm, modeHMAC)
}

// RequestFromFlags builds a Request from the boolean-flag shape
// (useSalt/usePepper/useHmac).
//
// Precedence is explicit and fixed: if useHmac is set, useSalt and usePepper
// are ignored. Otherwise usePepper selects peppered composition (with a
// fresh salt when useSalt is also set), and useSalt alone selects salted
// composition with a fresh salt.
func RequestFromFlags(algorithm string, useSalt, usePepper, useHmac bool) Request {
	switch {
	case useHmac:
		return NewHmacRequest(algorithm)
	case usePepper:
		r := NewPepperedRequest(algorithm, nil)
		if useSalt {
			r.generateSalt = true
		}
		return r
	case useSalt:
		return NewSaltedRequest(algorithm, nil)
	default:
		return NewPlainRequest(algorithm)
	}
}

// WithChunkSize returns a copy of the request reading up to n bytes per
// chunk. Validity is checked when the operation runs.
func (r Request) WithChunkSize(n int) Request {
	r.chunkSize = n
	return r
}

// WithSaltLength returns a copy of the request generating fresh salts of n
// bytes. It has no effect when an explicit salt was supplied.
func (r Request) WithSaltLength(n int) Request {
	r.saltLength = n
	return r
}

// WithGeneratedSalt returns a copy of the request that generates a fresh
// default-length salt at execution time. Only meaningful for the salted and
// peppered variants.
func (r Request) WithGeneratedSalt() Request {
	if r.mode == modeSalted || r.mode == modePeppered {
		r.generateSalt = true
		r.salt = nil
	}
	return r
}

// WithSizeLimit returns a copy of the request with a file size limit of n
// bytes; n <= 0 disables the limit. Only DigestFile enforces it.
func (r Request) WithSizeLimit(n int64) Request {
	r.sizeLimit = n
	return r
}

// Algorithm returns the normalized algorithm name the request will use.
func (r Request) Algorithm() string {
	return r.algorithm
}

// Mode returns the operation variant name ("plain", "salted", "peppered",
// "hmac").
func (r Request) Mode() string {
	return r.mode.String()
}
