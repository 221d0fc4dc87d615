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

package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// csvHeader is the fixed column order of the CSV export. Changing it breaks
// the round-trip contract, so treat it as part of the file format.
var csvHeader = []string{
	"timestamp",
	"kind",
	"label",
	"algorithm",
	"salted",
	"salt_hex",
	"peppered",
	"hmac",
	"digest_hex",
	"bytes",
}

// WriteCSV writes records as CSV with a header row.
//
// Timestamps are serialized as RFC 3339 with nanoseconds so ReadCSV
// reconstructs them exactly.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for i, rec := range records {
		row := []string{
			rec.Timestamp.Format(time.RFC3339Nano),
			rec.Kind,
			rec.Label,
			rec.Algorithm,
			strconv.FormatBool(rec.Salted),
			rec.SaltHex,
			strconv.FormatBool(rec.Peppered),
			strconv.FormatBool(rec.HMAC),
			rec.DigestHex,
			strconv.FormatInt(rec.Bytes, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV reads records previously written by WriteCSV.
//
// The header row is validated so a file from a different tool fails loudly
// instead of being misparsed.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected CSV header: got %q, want %q", header[i], col)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV line %d: %w", line, err)
		}

		rec, err := parseCSVRow(row)
		if err != nil {
			return nil, fmt.Errorf("parse CSV line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseCSVRow(row []string) (Record, error) {
	ts, err := time.Parse(time.RFC3339Nano, row[0])
	if err != nil {
		return Record{}, fmt.Errorf("timestamp: %w", err)
	}

	salted, err := strconv.ParseBool(row[4])
	if err != nil {
		return Record{}, fmt.Errorf("salted flag: %w", err)
	}

	peppered, err := strconv.ParseBool(row[6])
	if err != nil {
		return Record{}, fmt.Errorf("peppered flag: %w", err)
	}

	mac, err := strconv.ParseBool(row[7])
	if err != nil {
		return Record{}, fmt.Errorf("hmac flag: %w", err)
	}

	bytes, err := strconv.ParseInt(row[9], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("bytes: %w", err)
	}

	return Record{
		Timestamp: ts,
		Kind:      row[1],
		Label:     row[2],
		Algorithm: row[3],
		Salted:    salted,
		SaltHex:   row[5],
		Peppered:  peppered,
		HMAC:      mac,
		DigestHex: row[8],
		Bytes:     bytes,
	}, nil
}
