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

package hashengines

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// HashEngineFactory is a function that creates a new hash engine.
type HashEngineFactory func() (StreamingHashEngine, error)

var (
	registry = make(map[string]HashEngineFactory)
	mu       sync.RWMutex
)

// normalize maps an algorithm name to its registry key. Lookup is
// case-insensitive, so "SHA256" and "sha256" resolve to the same engine.
func normalize(algorithm string) string {
	return strings.ToLower(strings.TrimSpace(algorithm))
}

// Register registers a new hash engine factory for the given algorithm name.
//
// If an engine with the same name is already registered, an error is returned.
// Algorithm names are matched case-insensitively.
func Register(algorithm string, factory HashEngineFactory) error {
	mu.Lock()
	defer mu.Unlock()

	name := normalize(algorithm)

	if name == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	if _, exists := registry[name]; exists {
		return fmt.Errorf("hash algorithm %q already registered", name)
	}

	registry[name] = factory
	return nil
}

// MustRegister registers a hash engine factory or panics on error.
//
// This is useful for package initialization where registration failure
// indicates a programming error that should be caught immediately.
func MustRegister(algorithm string, factory HashEngineFactory) {
	if err := Register(algorithm, factory); err != nil {
		panic(fmt.Sprintf("failed to register hash algorithm %q: %v", algorithm, err))
	}
}

// Create creates a new hash engine for the given algorithm.
//
// The name is matched case-insensitively. Returns an error wrapping
// ErrUnsupportedAlgorithm if the algorithm is not registered, or the
// factory's error if it fails to create the engine.
func Create(algorithm string) (StreamingHashEngine, error) {
	mu.RLock()
	factory, exists := registry[normalize(algorithm)]
	mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s (supported: %v)",
			ErrUnsupportedAlgorithm, algorithm, SupportedAlgorithms())
	}

	engine, err := factory()
	if err != nil {
		return nil, fmt.Errorf("failed to create hash engine for %q: %w", algorithm, err)
	}

	return engine, nil
}

// SupportedAlgorithms returns a sorted list of registered algorithm names.
func SupportedAlgorithms() []string {
	mu.RLock()
	defer mu.RUnlock()

	algorithms := make([]string, 0, len(registry))
	for algo := range registry {
		algorithms = append(algorithms, algo)
	}
	sort.Strings(algorithms)
	return algorithms
}

// IsSupported checks if an algorithm is registered.
func IsSupported(algorithm string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, exists := registry[normalize(algorithm)]
	return exists
}

// Unregister removes a hash engine from the registry.
//
// This is primarily useful for testing. Returns an error if the algorithm
// is not registered.
func Unregister(algorithm string) error {
	mu.Lock()
	defer mu.Unlock()

	name := normalize(algorithm)

	if _, exists := registry[name]; !exists {
		return fmt.Errorf("hash algorithm %q not registered", name)
	}

	delete(registry, name)
	return nil
}
