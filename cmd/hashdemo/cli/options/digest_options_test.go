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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hashio "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines/io"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/salt"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/logging"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/secrets"
	"github.com/spf13/cobra"
)

func defaultDigestFlags() *DigestFlags {
	return &DigestFlags{
		Algorithm:  "sha256",
		SaltLength: salt.DefaultLength,
		ChunkSize:  hashio.DefaultChunkSize,
		SizeLimit:  hashio.DefaultSizeLimit,
	}
}

func TestDigestFlags_AddFlags(t *testing.T) {
	flags := &DigestFlags{}
	cmd := &cobra.Command{}

	flags.AddFlags(cmd)

	for _, name := range []string{"algorithm", "salt", "salt-hex", "salt-length", "pepper", "hmac", "chunk-size", "size-limit"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %q", name)
	}

	assert.Equal(t, "sha256", cmd.Flags().Lookup("algorithm").DefValue)
}

func TestBuildRequest_Modes(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*DigestFlags)
		wantMode string
	}{
		{
			name:     "defaults to plain",
			mutate:   func(*DigestFlags) {},
			wantMode: "plain",
		},
		{
			name:     "salt flag",
			mutate:   func(f *DigestFlags) { f.Salt = true },
			wantMode: "salted",
		},
		{
			name:     "pepper flag",
			mutate:   func(f *DigestFlags) { f.Pepper = true },
			wantMode: "peppered",
		},
		{
			name:     "explicit salt hex",
			mutate:   func(f *DigestFlags) { f.SaltHex = "0102030405060708090a0b0c0d0e0f10" },
			wantMode: "salted",
		},
		{
			name: "explicit salt hex with pepper",
			mutate: func(f *DigestFlags) {
				f.SaltHex = "0102030405060708090a0b0c0d0e0f10"
				f.Pepper = true
			},
			wantMode: "peppered",
		},
		{
			name: "hmac wins over everything",
			mutate: func(f *DigestFlags) {
				f.Salt = true
				f.Pepper = true
				f.Hmac = true
			},
			wantMode: "hmac",
		},
		{
			name: "hmac ignores explicit salt hex",
			mutate: func(f *DigestFlags) {
				f.SaltHex = "0102030405060708090a0b0c0d0e0f10"
				f.Hmac = true
			},
			wantMode: "hmac",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := defaultDigestFlags()
			tt.mutate(flags)

			req, err := flags.BuildRequest()
			require.NoError(t, err)

			assert.Equal(t, tt.wantMode, req.Mode())
			assert.Equal(t, "sha256", req.Algorithm())
		})
	}
}

func TestBuildRequest_InvalidSaltHex(t *testing.T) {
	flags := defaultDigestFlags()
	flags.SaltHex = "not hex"

	_, err := flags.BuildRequest()
	assert.Error(t, err)
}

func TestRootOptions_LogLevelAndFormat(t *testing.T) {
	ro := &RootOptions{LogLevel: "debug", LogFormat: "json"}

	assert.Equal(t, logging.LevelDebug, ro.GetLogLevel())
	assert.Equal(t, logging.FormatJSON, ro.GetLogFormat())

	logger := ro.NewLogger()
	require.NotNil(t, logger)
	assert.Equal(t, logging.LevelDebug, logger.GetLevel())
}

func TestRootOptions_NewSecretSource_EnvOnly(t *testing.T) {
	t.Setenv(secrets.EnvPrefix+secrets.KeyPepper, "env-pepper")

	ro := &RootOptions{}

	src, err := ro.NewSecretSource()
	require.NoError(t, err)

	v, ok := src.Lookup(secrets.KeyPepper)
	assert.True(t, ok)
	assert.Equal(t, []byte("env-pepper"), v)
}

func TestRootOptions_NewSecretSource_FileBeforeEnv(t *testing.T) {
	t.Setenv(secrets.EnvPrefix+secrets.KeyPepper, "env-pepper")
	t.Setenv(secrets.EnvPrefix+secrets.KeyHMAC, "env-hmac")

	path := filepath.Join(t.TempDir(), "secrets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("PEPPER: \"file-pepper\"\n"), 0o600))

	ro := &RootOptions{SecretsFile: path}

	src, err := ro.NewSecretSource()
	require.NoError(t, err)

	// The file wins for keys it defines; the environment backfills the rest.
	v, ok := src.Lookup(secrets.KeyPepper)
	assert.True(t, ok)
	assert.Equal(t, []byte("file-pepper"), v)

	v, ok = src.Lookup(secrets.KeyHMAC)
	assert.True(t, ok)
	assert.Equal(t, []byte("env-hmac"), v)
}

func TestRootOptions_NewSecretSource_MissingFile(t *testing.T) {
	ro := &RootOptions{SecretsFile: filepath.Join(t.TempDir(), "missing.yaml")}

	_, err := ro.NewSecretSource()
	assert.Error(t, err)
}
