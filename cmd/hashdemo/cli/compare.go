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
	"errors"
	"fmt"

	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing/digests"
	"github.com/spf13/cobra"
)

// ErrDigestsDiffer is returned by the compare command when the two digests
// do not match, so shells observe a non-zero exit status.
var ErrDigestsDiffer = errors.New("digests differ")

// Compare builds the "compare" subcommand.
func Compare() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare HASH_A HASH_B",
		Short: "Compare two hex digests in constant time.",
		Long: `Compare two hex digests in constant time.

    Both values are trimmed and lowercased before comparison, so digests
    copied from different tools compare as expected. The comparison never
    leaks the position of the first differing byte. Exits non-zero when the
    digests differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if digests.CompareHex(args[0], args[1]) {
				fmt.Fprintln(cmd.OutOrStdout(), "digests are identical")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "digests differ")
			return ErrDigestsDiffer
		},
	}

	return cmd
}
