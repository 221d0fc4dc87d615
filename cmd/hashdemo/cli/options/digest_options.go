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

package options

import (
	"encoding/hex"
	"fmt"

	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing"
	hashio "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines/io"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/salt"
	"github.com/spf13/cobra"
)

// DigestFlags contains the flags shared by all digest-computing commands.
type DigestFlags struct {
	// Algorithm selects the digest algorithm (sha256, sha1, sha512, blake2b).
	Algorithm string
	// Salt requests a fresh random salt appended after the message.
	Salt bool
	// SaltHex supplies an explicit salt for reproducing a digest; implies
	// salted composition.
	SaltHex string
	// SaltLength sets the generated salt length in bytes.
	SaltLength int
	// Pepper requests the configured PEPPER secret appended after the salt.
	Pepper bool
	// Hmac requests keyed authentication with the configured HMAC_KEY.
	// Takes precedence over salt and pepper.
	Hmac bool
	// ChunkSize sets the bytes read per chunk while streaming.
	ChunkSize int
	// SizeLimit caps file input size in bytes; 0 disables the limit.
	SizeLimit int64
}

var _ FlagAdder = (*DigestFlags)(nil)

// AddFlags adds the digest flags to the cobra command.
func (o *DigestFlags) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", "sha256",
		"digest algorithm (sha256, sha1, sha512, blake2b)")

	cmd.Flags().BoolVar(&o.Salt, "salt", false,
		"append a fresh random salt to the input")

	cmd.Flags().StringVar(&o.SaltHex, "salt-hex", "",
		"append this hex-encoded salt instead of generating one")

	cmd.Flags().IntVar(&o.SaltLength, "salt-length", salt.DefaultLength,
		"length in bytes of generated salts")

	cmd.Flags().BoolVar(&o.Pepper, "pepper", false,
		"append the configured PEPPER secret to the input")

	cmd.Flags().BoolVar(&o.Hmac, "hmac", false,
		"authenticate the input with HMAC using the configured HMAC_KEY (ignores salt and pepper)")

	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", hashio.DefaultChunkSize,
		"bytes read per chunk while streaming")

	cmd.Flags().Int64Var(&o.SizeLimit, "size-limit", hashio.DefaultSizeLimit,
		"maximum file input size in bytes (0 disables the limit)")
}

// BuildRequest translates the flags into a digest request.
//
// An explicit --salt-hex selects salted (or salted+peppered) composition
// with the decoded bytes; otherwise the boolean flags are mapped through
// the engine's documented precedence (HMAC wins over salt and pepper).
func (o *DigestFlags) BuildRequest() (hashing.Request, error) {
	var saltBytes []byte
	if o.SaltHex != "" {
		b, err := hex.DecodeString(o.SaltHex)
		if err != nil {
			return hashing.Request{}, fmt.Errorf("invalid --salt-hex value: %w", err)
		}
		saltBytes = b
	}

	var req hashing.Request
	switch {
	case len(saltBytes) > 0 && !o.Hmac && o.Pepper:
		req = hashing.NewPepperedRequest(o.Algorithm, saltBytes)
	case len(saltBytes) > 0 && !o.Hmac:
		req = hashing.NewSaltedRequest(o.Algorithm, saltBytes)
	default:
		req = hashing.RequestFromFlags(o.Algorithm, o.Salt, o.Pepper, o.Hmac)
	}

	return req.
		WithSaltLength(o.SaltLength).
		WithChunkSize(o.ChunkSize).
		WithSizeLimit(o.SizeLimit), nil
}
