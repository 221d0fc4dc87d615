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

	hashengines "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines"
	// Register the built-in engines.
	_ "github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/engines/memory"
	"github.com/spf13/cobra"
)

// Algorithms builds the "algorithms" subcommand.
func Algorithms() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported digest algorithms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range hashengines.SupportedAlgorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	return cmd
}
