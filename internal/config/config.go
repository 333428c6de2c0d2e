package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for zonesync.
// It is populated by merging values from environment variables, command-line
// overrides, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the remote auth token.
	App App `envPrefix:"APP_"`

	// Remote holds the record-store endpoint settings.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds zone identity and background sync settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged underneath the values already
	// loaded from the environment and overrides.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration.
type App struct {
	// AuthToken is the bearer token presented to the remote record store on
	// every request. Must be kept confidential.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`
}

// Remote holds endpoint settings for the remote record store.
type Remote struct {
	// Address is the base URL of the record store
	// (e.g. "https://records.example.com"). A bare host:port is accepted and
	// normalised to http.
	// Env: REMOTE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s", "1m").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that backs both
// materialised records and change tokens.
type DB struct {
	// Path is the SQLite database file path (e.g. "~/.zonesync/zonesync.db").
	// Env: STORAGE_DB_PATH
	Path string `env:"PATH"`
}

// Sync holds zone identity and background job settings.
type Sync struct {
	// ZoneName is the name of the custom record zone all application records
	// live in.
	// Env: SYNC_ZONE_NAME
	ZoneName string `env:"ZONE_NAME"`

	// ZoneOwner identifies the zone owner on the remote store.
	// Env: SYNC_ZONE_OWNER
	ZoneOwner string `env:"ZONE_OWNER"`

	// Interval is how often the background job triggers a sync cycle
	// (e.g. "5m").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in priority order (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line overrides
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a populated *StructuredConfig or an error if any source fails to
// load.
func GetStructuredConfig(overrides Overrides) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withOverrides(overrides).
		withJSON().
		build()
}
