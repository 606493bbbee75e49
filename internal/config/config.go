// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lumenlearn Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the offline
// sync engine. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the agent version and
	// log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backends: the
	// SQLite database and the downloaded-content directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the base URL and timeouts for the backend resource API.
	Remote Remote `envPrefix:"REMOTE_"`

	// Server holds the listen address for the local diagnostics endpoint.
	Server Server `envPrefix:"SERVER_"`

	// Sync holds orchestrator tuning: intervals, debounce, download
	// parallelism and the low-bandwidth threshold.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged beneath the values
	// already loaded from environment variables and flags, filling any
	// fields those sources left unset.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running agent.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the optional path of the rotated agent log file. When
	// empty, logs go to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all local persistence backends.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings for downloaded content.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or connection string
	// (e.g. "file:sync.db?_journal_mode=WAL").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for downloaded content.
type Files struct {
	// ContentDir is the directory under which downloaded content is stored
	// in content-type-scoped subdirectories.
	// Env: STORAGE_FILES_CONTENT_DIR
	ContentDir string `env:"CONTENT_DIR"`
}

// Remote holds network settings for the backend resource API.
type Remote struct {
	// BaseURL is the root URL of the remote resource API
	// (e.g. "https://api.example.com/v1").
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ProbeURL is an optional endpoint returning a payload of known size,
	// used to refine the bandwidth estimate. Empty disables active probing.
	// Env: REMOTE_PROBE_URL
	ProbeURL string `env:"PROBE_URL"`

	// RequestTimeout is the timeout for a single outbound request
	// (e.g. "30s", "1m").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the listen address for the local diagnostics HTTP endpoint.
type Server struct {
	// DebugAddress is the TCP address of the diagnostics endpoint in
	// "host:port" format. Empty disables the endpoint.
	// Env: SERVER_DEBUG_ADDRESS
	DebugAddress string `env:"DEBUG_ADDRESS"`
}

// Sync holds tuning knobs for the orchestrator and its workers.
type Sync struct {
	// Interval is the period between automatic sync passes while the app
	// is foregrounded (e.g. "5m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// BackgroundInterval is the minimum period between passes when only
	// background execution is available (e.g. "15m").
	// Env: SYNC_BACKGROUND_INTERVAL
	BackgroundInterval time.Duration `env:"BACKGROUND_INTERVAL"`

	// ReconnectDebounce delays the reconnect-triggered pass to avoid
	// flapping links (e.g. "2s").
	// Env: SYNC_RECONNECT_DEBOUNCE
	ReconnectDebounce time.Duration `env:"RECONNECT_DEBOUNCE"`

	// CleanupInterval is the period of the expiry sweep (e.g. "1h").
	// Env: SYNC_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`

	// MaxParallelDownloads bounds concurrent content downloads.
	// Env: SYNC_MAX_PARALLEL_DOWNLOADS
	MaxParallelDownloads int `env:"MAX_PARALLEL_DOWNLOADS"`

	// LowBandwidthKbps is the threshold below which the link is treated
	// as low-bandwidth and large content is deferred.
	// Env: SYNC_LOW_BANDWIDTH_KBPS
	LowBandwidthKbps float64 `env:"LOW_BANDWIDTH_KBPS"`
}

// GetStructuredConfig loads, merges, and validates the engine configuration
// from all available sources in the following priority order (an earlier
// source wins; later sources only fill fields still unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		fromEnv().
		fromFlags().
		fromJSONFile().
		build()
}
