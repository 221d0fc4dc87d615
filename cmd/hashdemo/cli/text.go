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

	"github.com/Sergioocarmonaaa/hashdemo-go/cmd/hashdemo/cli/options"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/logging"
	"github.com/spf13/cobra"
)

// Text builds the "text" subcommand.
func Text() *cobra.Command {
	o := &options.DigestFlags{}

	cmd := &cobra.Command{
		Use:   "text [OPTIONS] TEXT",
		Short: "Digest a text message.",
		Long: `Digest a text message.

    Computes the digest of TEXT (UTF-8 bytes) with the selected algorithm.
    With --salt a fresh random salt is appended after the message and
    printed with the digest so the result can be verified later; pass the
    same salt back via --salt-hex to reproduce a digest. With --pepper the
    configured PEPPER secret is appended after the salt. With --hmac the
    message is authenticated with the configured HMAC_KEY instead; salt
    and pepper flags are ignored in that case.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			req, err := o.BuildRequest()
			if err != nil {
				return err
			}

			engine, logger, err := newEngine()
			if err != nil {
				return err
			}

			res, err := engine.DigestBytes(ctx, req, []byte(args[0]))
			if err != nil {
				return err
			}

			printResult(cmd, req, res, logger)

			return appendResult(buildRecord("text", preview(args[0]), res))
		},
	}

	o.AddFlags(cmd)
	return cmd
}

// newEngine wires the digest engine from the root options.
func newEngine() (*hashing.Engine, logging.Logger, error) {
	logger := ro.NewLogger()

	src, err := ro.NewSecretSource()
	if err != nil {
		return nil, nil, err
	}

	engine := hashing.NewEngine(src)
	engine.SetLogger(logger)
	return engine, logger, nil
}

// printResult writes the digest (and salt, when present) to the command
// output and warns when requested peppering had no effect.
func printResult(cmd *cobra.Command, req hashing.Request, res hashing.Result, logger logging.Logger) {
	fmt.Fprintln(cmd.OutOrStdout(), res.Hex())

	if res.SaltHex != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "salt: %s\n", res.SaltHex)
	}

	if req.Mode() == "peppered" && !res.PepperApplied {
		logger.Warn("no PEPPER configured; digest was computed without pepper")
	}
}
