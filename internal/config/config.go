// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// org-atlas server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the catalog source file and the
	// overlay persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5002").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the catalog source and all overlay
// persistence backends.
type Storage struct {
	// Catalog holds the source dataset settings.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// State holds the local overlay persistence settings.
	State State `envPrefix:"STATE_"`

	// Remote holds the remote overlay document store settings.
	Remote Remote `envPrefix:"REMOTE_"`
}

// Catalog holds settings for the immutable base dataset.
type Catalog struct {
	// CSVPath is the path to the CSV file the catalog is loaded from at
	// startup. Required: the server refuses to start without it.
	// Env: STORAGE_CATALOG_CSV_PATH
	CSVPath string `env:"CSV_PATH"`
}

// State holds settings for the local overlay backends.
type State struct {
	// FilePath is the path of the JSON state file used by the local file
	// backend. Defaults to "state.json" in the working directory.
	// Env: STORAGE_STATE_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// SQLiteDSN, when non-empty, selects the SQLite state backend instead
	// of the JSON file. The value is a sqlite3 DSN (usually a file path).
	// Env: STORAGE_STATE_SQLITE_DSN
	SQLiteDSN string `env:"SQLITE_DSN"`
}

// Remote holds settings for the remote overlay document store. The remote
// backend activates only when both URL and Key are non-empty.
type Remote struct {
	// URL is the base URL of the remote REST store, without a trailing
	// slash (e.g. "https://abc.supabase.co").
	// Env: STORAGE_REMOTE_URL
	URL string `env:"URL"`

	// Key is the API key sent as both the apikey header and the bearer
	// token on every request. Must be kept confidential.
	// Env: STORAGE_REMOTE_KEY
	Key string `env:"KEY"`

	// Table is the table holding the single overlay document row.
	// Env: STORAGE_REMOTE_TABLE
	Table string `env:"TABLE"`

	// Timeout bounds every remote round trip so that a slow or
	// unreachable store cannot stall the serving path indefinitely.
	// Env: STORAGE_REMOTE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
