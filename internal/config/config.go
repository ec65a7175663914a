// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

const (
	// DefaultHTTPAddress is the backend address used when none is configured.
	DefaultHTTPAddress = "localhost:8080"
	// DefaultBasePath is the relative path of the todos resource.
	DefaultBasePath = "todos"
	// DefaultLogFile is the file the client logs to while the UI owns the terminal.
	DefaultLogFile = "todo-client.log"
	// DefaultLogLevel is the zerolog level used when none is configured.
	DefaultLogLevel = "debug"
)

// StructuredConfig is the top-level configuration container for the todo
// client. It is populated by merging defaults, environment variables,
// command-line flags and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the todos backend address and request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds the client log destination and level.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or TOML config file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the HTTP adapter talking to the todos backend.
type Adapter struct {
	// HTTPAddress is the backend address, either "host:port" or a full URL
	// that may include a path prefix (e.g. "http://example.com/app").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// BasePath is the path of the todos resource relative to HTTPAddress.
	// Env: ADAPTER_BASE_PATH
	BasePath string `env:"BASE_PATH"`

	// RequestTimeout bounds a single request (e.g. "30s"). Zero means no
	// timeout: an issued request is always allowed to complete.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds the client logging settings.
type Log struct {
	// File is the path of the log file.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
			BasePath:    DefaultBasePath,
		},
		Log: Log{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources, using the process command line for flags.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
