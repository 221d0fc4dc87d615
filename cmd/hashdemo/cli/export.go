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
	"fmt"
	"os"

	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/results"
	"github.com/spf13/cobra"
)

// Export builds the "export" subcommand.
func Export() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [OPTIONS]",
		Short: "Export recorded digest results.",
		Long: `Export recorded digest results.

    Reads the CSV results file accumulated by the digest commands (see
    --results-file) and writes it to stdout as CSV or JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ro.ResultsFile == "" {
				return fmt.Errorf("no results file configured; pass --results-file")
			}

			f, err := os.Open(ro.ResultsFile)
			if err != nil {
				return fmt.Errorf("open results file: %w", err)
			}
			defer f.Close()

			records, err := results.ReadCSV(f)
			if err != nil {
				return err
			}

			switch format {
			case "csv":
				return results.WriteCSV(cmd.OutOrStdout(), records)
			case "json":
				return results.WriteJSON(cmd.OutOrStdout(), records)
			default:
				return fmt.Errorf("unknown export format %q (csv, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "export format (csv, json)")

	return cmd
}
