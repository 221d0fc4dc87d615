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
	"path/filepath"

	"github.com/Sergioocarmonaaa/hashdemo-go/cmd/hashdemo/cli/options"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/logging"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/progress"
	"github.com/spf13/cobra"
)

// File builds the "file" subcommand.
func File() *cobra.Command {
	o := &options.DigestFlags{}

	cmd := &cobra.Command{
		Use:   "file [OPTIONS] PATH",
		Short: "Digest a file incrementally, with progress.",
		Long: `Digest a file incrementally, with progress.

    The file is streamed in --chunk-size pieces so arbitrarily large inputs
    never need to fit in memory; cumulative progress is reported on stderr
    after every chunk. Files larger than --size-limit are rejected before
    any content is read. Salt, pepper and HMAC behave exactly as for the
    text command.`,
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

			path := args[0]

			var obs progress.Observer
			if ro.GetLogLevel() < logging.LevelSilent {
				reporter := progress.NewReporter(cmd.ErrOrStderr(), filepath.Base(path))
				defer reporter.Finish()
				obs = reporter
			}

			res, err := engine.DigestFile(ctx, req, path, obs)
			if err != nil {
				return err
			}

			printResult(cmd, req, res, logger)

			return appendResult(buildRecord("file", filepath.Base(path), res))
		},
	}

	o.AddFlags(cmd)
	return cmd
}
