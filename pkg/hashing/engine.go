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

// Package hashing is the digesting engine: it resolves an algorithm, applies
// the requested salt/pepper/HMAC composition, streams the input through the
// resulting primitive in chunks, and returns the digest together with the
// salt that was used.
//
// Composition order is fixed and documented: message ‖ salt ‖ pepper. The
// same salt and message therefore always reproduce the same digest, which is
// the verification contract consumers rely on. HMAC mode bypasses salt and
// pepper entirely.
//
// Everything here is request-scoped. An Engine holds only its secret source
// and logger, so independent operations may run concurrently as long as each
// supplies its own Request and input source.
package hashing

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/digests"
	hashengines "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines"
	hashio "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines/io"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines/memory"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/salt"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/logging"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/progress"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/secrets"
)

// Result is the outcome of one digest operation. Results are all-or-nothing:
// no operation ever returns a partially populated Result alongside an error.
type Result struct {
	// Digest is the computed digest; its algorithm name records the full
	// configuration ("sha256", "hmac-sha256", ...).
	Digest digests.Digest
	// Algorithm is the underlying algorithm identifier the caller selected.
	Algorithm string
	// SaltHex is the lowercase hex encoding of the salt fed after the
	// message, or empty when no salt was used. Salts are not secret and are
	// always returned so the digest can be reproduced.
	SaltHex string
	// BytesProcessed counts the message bytes digested (salt and pepper
	// trailers excluded).
	BytesProcessed int64
	// PepperApplied reports whether a configured pepper was actually
	// appended. False on a peppered request means the secret source had no
	// pepper and peppering degraded to a no-op.
	PepperApplied bool
}

// Hex returns the lowercase hex digest.
func (r Result) Hex() string {
	return r.Digest.Hex()
}

// Engine executes digest requests against an injected secret source.
type Engine struct {
	secrets secrets.Source
	logger  logging.Logger
}

// NewEngine creates an Engine reading pepper and HMAC key material from src.
// A nil src behaves as a source with no secrets configured.
func NewEngine(src secrets.Source) *Engine {
	if src == nil {
		src = secrets.None{}
	}
	return &Engine{
		secrets: src,
		logger:  logging.Default(),
	}
}

// SetLogger replaces the engine's logger. Secret values are never logged
// regardless of level.
func (e *Engine) SetLogger(l logging.Logger) {
	e.logger = logging.EnsureLogger(l)
}

// composition holds the per-operation state assembled from a Request: the
// primitive to stream into and the trailer bytes appended after the message.
type composition struct {
	engine        hashengines.StreamingHashEngine
	salt          []byte
	pepper        []byte
	pepperApplied bool
}

// compose resolves the request into a primitive plus trailers.
//
// HMAC requests resolve to a keyed engine and fail with ErrMissingKey when
// the secret source has no HMAC key; the other variants resolve through the
// algorithm registry. Salt is generated here when requested so that one
// operation uses exactly one salt.
func (e *Engine) compose(req Request) (*composition, error) {
	c := &composition{}

	if req.mode == modeHMAC {
		key, ok := e.secrets.Lookup(secrets.KeyHMAC)
		if !ok {
			return nil, fmt.Errorf("%w: secret source has no %s", hashengines.ErrMissingKey, secrets.KeyHMAC)
		}

		engine, err := memory.NewHMAC(req.algorithm, key)
		if err != nil {
			return nil, err
		}
		c.engine = engine
	} else {
		engine, err := hashengines.Create(req.algorithm)
		if err != nil {
			return nil, err
		}
		c.engine = engine
	}

	if req.mode == modeSalted || req.mode == modePeppered {
		switch {
		case req.generateSalt:
			s, err := salt.Generate(req.saltLength)
			if err != nil {
				return nil, err
			}
			c.salt = s
		case len(req.salt) > 0:
			c.salt = append([]byte(nil), req.salt...)
		}
	}

	if req.mode == modePeppered {
		pepper, ok := e.secrets.Lookup(secrets.KeyPepper)
		if ok {
			c.pepper = pepper
			c.pepperApplied = true
		} else {
			// Documented degraded mode: absent pepper is a no-op, surfaced
			// via the PepperApplied flag rather than an error.
			e.logger.Debug("pepper requested but not configured; digest is unpeppered")
		}
	}

	return c, nil
}

// finalize appends the salt and pepper trailers in the fixed order and
// computes the digest.
func (c *composition) finalize(req Request, bytesProcessed int64) (Result, error) {
	if len(c.salt) > 0 {
		if err := c.engine.Update(c.salt); err != nil {
			return Result{}, err
		}
	}

	if len(c.pepper) > 0 {
		if err := c.engine.Update(c.pepper); err != nil {
			return Result{}, err
		}
	}

	d, err := c.engine.Compute()
	if err != nil {
		return Result{}, fmt.Errorf("compute digest: %w", err)
	}

	res := Result{
		Digest:         d,
		Algorithm:      req.algorithm,
		BytesProcessed: bytesProcessed,
		PepperApplied:  c.pepperApplied,
	}
	if len(c.salt) > 0 {
		res.SaltHex = fmt.Sprintf("%x", c.salt)
	}

	return res, nil
}

// DigestBytes digests an in-memory message.
//
// Equivalent to DigestReader over the same bytes with the total known; the
// chunked streaming path is used regardless of input size so the two paths
// cannot diverge.
func (e *Engine) DigestBytes(ctx context.Context, req Request, message []byte) (Result, error) {
	return e.DigestReader(ctx, req, bytes.NewReader(message), int64(len(message)), nil)
}

// DigestReader digests a byte stream of arbitrary length.
//
// total is reported to the observer alongside each cumulative byte count;
// pass progress.UnknownTotal when the length is not known in advance. The
// observer may be nil. Cancellation is checked between chunk reads; a
// cancelled operation fails with ErrCancelled and returns no Result.
func (e *Engine) DigestReader(ctx context.Context, req Request, r io.Reader, total int64, obs progress.Observer) (Result, error) {
	c, err := e.compose(req)
	if err != nil {
		return Result{}, err
	}

	stream, err := hashio.NewStreamHasher(c.engine, req.chunkSize)
	if err != nil {
		return Result{}, err
	}
	stream.SetTotal(total)
	if obs != nil {
		stream.SetObserver(obs)
	}

	e.logger.Debug("digesting stream: algorithm=%s mode=%s chunk=%d", req.algorithm, req.mode, req.chunkSize)

	n, err := stream.Consume(ctx, r)
	if err != nil {
		return Result{}, err
	}

	return c.finalize(req, n)
}

// DigestFile digests a file without loading it into memory.
//
// The file size is used for the request's size limit check and as the
// progress total. The observer may be nil.
func (e *Engine) DigestFile(ctx context.Context, req Request, path string, obs progress.Observer) (Result, error) {
	c, err := e.compose(req)
	if err != nil {
		return Result{}, err
	}

	fh, err := hashio.NewFileHasher(path, c.engine, req.chunkSize)
	if err != nil {
		return Result{}, err
	}
	fh.SetSizeLimit(req.sizeLimit)
	if obs != nil {
		fh.SetObserver(obs)
	}

	e.logger.Debug("digesting file: path=%s algorithm=%s mode=%s chunk=%d", path, req.algorithm, req.mode, req.chunkSize)

	n, err := fh.Consume(ctx)
	if err != nil {
		return Result{}, err
	}

	return c.finalize(req, n)
}
