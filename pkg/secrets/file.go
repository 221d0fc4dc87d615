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

package secrets

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadFile reads a YAML secrets file into a Static source.
//
// The file is a flat string-to-string mapping:
//
//	PEPPER: "global pepper value"
//	HMAC_KEY: "shared mac key"
//
// Quote values in the file: secrets are opaque strings, and quoting keeps
// YAML from reinterpreting them as other scalar types.
func LoadFile(path string) (Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read secrets file %q: %w", path, err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse secrets file %q: %w", path, err)
	}

	return Static(raw), nil
}
