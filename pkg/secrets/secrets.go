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

// Package secrets models the opaque key-value source the digest engine pulls
// its pepper and HMAC key from.
//
// Absence of a key is a normal, representable state, not an error: Lookup
// returns a second boolean the way a map access does. The engine is handed a
// Source explicitly instead of reading process-wide configuration so tests
// can run against fixed, controlled secrets.
package secrets

import "os"

// Names of the secrets the digest engine looks up.
const (
	// KeyPepper names the secret appended to inputs in peppered mode.
	KeyPepper = "PEPPER"
	// KeyHMAC names the key used for HMAC mode.
	KeyHMAC = "HMAC_KEY"
)

// Source is a key-value lookup for secret material.
//
// Implementations must treat a missing key as (nil, false), never as an
// error, and must never log looked-up values.
type Source interface {
	// Lookup returns the value configured under name, and whether one is set.
	// An empty configured value is reported as absent.
	Lookup(name string) ([]byte, bool)
}

// Static is an in-memory Source, primarily for tests and programmatic use.
type Static map[string]string

// Lookup implements Source.
func (s Static) Lookup(name string) ([]byte, bool) {
	v, ok := s[name]
	if !ok || v == "" {
		return nil, false
	}
	return []byte(v), true
}

// EnvPrefix is the prefix for environment-variable-backed secrets
// (e.g., HASHDEMO_PEPPER, HASHDEMO_HMAC_KEY).
const EnvPrefix = "HASHDEMO_"

// Env is a Source backed by environment variables with the given prefix.
type Env struct {
	prefix string
}

// NewEnv returns an environment-backed Source using EnvPrefix.
func NewEnv() Env {
	return Env{prefix: EnvPrefix}
}

// NewEnvWithPrefix returns an environment-backed Source using a custom prefix.
func NewEnvWithPrefix(prefix string) Env {
	return Env{prefix: prefix}
}

// Lookup implements Source.
func (e Env) Lookup(name string) ([]byte, bool) {
	v, ok := os.LookupEnv(e.prefix + name)
	if !ok || v == "" {
		return nil, false
	}
	return []byte(v), true
}

// Multi chains several sources; the first one that has a value wins.
type Multi []Source

// Lookup implements Source.
func (m Multi) Lookup(name string) ([]byte, bool) {
	for _, src := range m {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(name); ok {
			return v, true
		}
	}
	return nil, false
}

// None is a Source with no secrets configured.
type None struct{}

// Lookup implements Source.
func (None) Lookup(string) ([]byte, bool) {
	return nil, false
}
