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

// Package options defines the command-line options and flags for the
// hashdemo CLI. It provides option structures for the root command and for
// the digest operations.
package options

import (
	"time"

	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/logging"
	"github.com/Sergioocarmonaaa/hashdemo-go/pkg/secrets"
	"github.com/spf13/cobra"
)

// FlagAdder is implemented by any flag group that can register itself to a
// cobra command.
type FlagAdder interface {
	AddFlags(cmd *cobra.Command)
}

// RootOptions defines flags and options for the root CLI command.
// These options are available globally across all subcommands.
type RootOptions struct {
	// OutputFile specifies a file path to redirect output to instead of stdout.
	OutputFile string
	// LogLevel sets the minimum log level (debug, info, warn, error, silent).
	LogLevel string
	// LogFormat sets the log output format (text, json).
	LogFormat string
	// Timeout sets the maximum duration for command execution.
	Timeout time.Duration
	// SecretsFile points to a YAML file holding PEPPER and HMAC_KEY values.
	// Environment variables (HASHDEMO_PEPPER, HASHDEMO_HMAC_KEY) are
	// consulted when the file has no value.
	SecretsFile string
	// ResultsFile accumulates completed operations as CSV for later export.
	ResultsFile string
}

// DefaultTimeout specifies the default timeout duration for commands.
const DefaultTimeout = 3 * time.Minute

// ValidLogLevels lists the valid log level strings.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "silent"}

// ValidLogFormats lists the valid log format strings.
var ValidLogFormats = []string{"text", "json"}

var _ FlagAdder = (*RootOptions)(nil)

// AddFlags adds root-level flags to the cobra command.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"redirect command output to a file")
	_ = cmd.MarkPersistentFlagFilename("output-file")

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"set the minimum log level (debug, info, warn, error, silent)")

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"set the log output format (text, json)")

	cmd.PersistentFlags().DurationVarP(&o.Timeout, "timeout", "t", DefaultTimeout,
		"timeout for commands")

	cmd.PersistentFlags().StringVar(&o.SecretsFile, "secrets-file", "",
		"YAML file providing PEPPER and HMAC_KEY secrets")
	_ = cmd.MarkPersistentFlagFilename("secrets-file", "yaml", "yml")

	cmd.PersistentFlags().StringVar(&o.ResultsFile, "results-file", "",
		"CSV file to append digest results to")
	_ = cmd.MarkPersistentFlagFilename("results-file", "csv")
}

// GetLogLevel returns the effective log level based on the options.
func (o *RootOptions) GetLogLevel() logging.LogLevel {
	return logging.ParseLogLevel(o.LogLevel)
}

// GetLogFormat returns the log format based on the options.
func (o *RootOptions) GetLogFormat() logging.LogFormat {
	return logging.ParseLogFormat(o.LogFormat)
}

// NewLogger creates a new logger based on the root options.
func (o *RootOptions) NewLogger() logging.Logger {
	return logging.NewLoggerWithOptions(logging.LoggerOptions{
		Level:  o.GetLogLevel(),
		Format: o.GetLogFormat(),
	})
}

// NewSecretSource builds the secret source for digest operations: the
// secrets file when configured, falling back to HASHDEMO_-prefixed
// environment variables.
func (o *RootOptions) NewSecretSource() (secrets.Source, error) {
	env := secrets.NewEnv()

	if o.SecretsFile == "" {
		return env, nil
	}

	fileSrc, err := secrets.LoadFile(o.SecretsFile)
	if err != nil {
		return nil, err
	}

	return secrets.Multi{fileSrc, env}, nil
}
