// Package config defines the CLI configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultOutput    = "table"
	DefaultScanCount = 20
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// CLIConfig is the configuration for kvstore-cli.
//
// Keys are nested so every one of them maps to a KVSTORE_* environment
// variable under the confloader transform (KVSTORE_SCAN_COUNT ->
// scan.count, KVSTORE_TTL_DEFAULT -> ttl.default).
type CLIConfig struct {
	// Seed is the path to a YAML seed file loaded into the store on
	// startup. Empty means start with an empty store.
	Seed string `koanf:"seed"`

	// Output selects the output format: table, json, yaml.
	Output string `koanf:"output"`

	TTL  TTLSection  `koanf:"ttl"`
	Scan ScanSection `koanf:"scan"`
	Log  LogSection  `koanf:"log"`
}

// TTLSection configures expiry defaults.
type TTLSection struct {
	// Default is applied by `set` when no --ttl flag is given.
	// Zero means entries never expire.
	Default time.Duration `koanf:"default"`
}

// ScanSection configures range scans.
type ScanSection struct {
	// Count is the default entry limit for `scan`.
	Count int `koanf:"count"`
}

// LogSection configures logging.
type LogSection struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `koanf:"level"`

	// Format is the log output format (json, text).
	Format string `koanf:"format"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Output: DefaultOutput,
		Scan: ScanSection{
			Count: DefaultScanCount,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
