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

package cli

import (
	"context"
	"fmt"

	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing"
	"github.com/spf13/cobra"
)

// Hmac builds the "hmac" subcommand.
func Hmac() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "hmac [OPTIONS] MESSAGE",
		Short: "Authenticate a message with HMAC.",
		Long: `Authenticate a message with HMAC.

    Computes HMAC over the raw MESSAGE bytes, keyed with the HMAC_KEY from
    the secrets file or the HASHDEMO_HMAC_KEY environment variable. Fails
    when no key is configured: unlike pepper, HMAC has no keyless degraded
    mode. The key is never printed or logged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			engine, _, err := newEngine()
			if err != nil {
				return err
			}

			req := hashing.NewHmacRequest(algorithm)

			res, err := engine.DigestBytes(ctx, req, []byte(args[0]))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Hex())

			return appendResult(buildRecord("hmac", preview(args[0]), res))
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "sha256",
		"underlying digest algorithm (sha256, sha1, sha512, blake2b)")

	return cmd
}
