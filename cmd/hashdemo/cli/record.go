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
	"os"
	"strings"
	"time"

	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/hashing"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/results"
)

// previewLimit caps the text preview stored in result labels.
const previewLimit = 30

// preview shortens text to a single-line label.
func preview(text string) string {
	label := strings.ReplaceAll(text, "\n", " ")
	if len(label) > previewLimit {
		return label[:previewLimit] + "..."
	}
	return label
}

// buildRecord converts a digest result into an exportable record.
func buildRecord(kind, label string, res hashing.Result) results.Record {
	return results.Record{
		Timestamp: time.Now().UTC(),
		Kind:      kind,
		Label:     label,
		Algorithm: res.Algorithm,
		Salted:    res.SaltHex != "",
		SaltHex:   res.SaltHex,
		Peppered:  res.PepperApplied,
		HMAC:      strings.HasPrefix(res.Digest.Algorithm(), "hmac-"),
		DigestHex: res.Hex(),
		Bytes:     res.BytesProcessed,
	}
}

// appendResult appends a record to the results file configured on the root
// options, creating the file on first use. A no-op when no results file is
// configured.
func appendResult(rec results.Record) error {
	if ro.ResultsFile == "" {
		return nil
	}

	var records []results.Record

	f, err := os.Open(ro.ResultsFile)
	switch {
	case err == nil:
		records, err = results.ReadCSV(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("read results file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// First record; the file is created below.
	default:
		return fmt.Errorf("open results file: %w", err)
	}

	records = append(records, rec)

	out, err := os.Create(ro.ResultsFile)
	if err != nil {
		return fmt.Errorf("write results file: %w", err)
	}
	defer out.Close()

	if err := results.WriteCSV(out, records); err != nil {
		return fmt.Errorf("write results file: %w", err)
	}

	return nil
}
