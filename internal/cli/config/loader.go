// Package config defines the CLI configuration structure.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yndnr/kvstore-go/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".kvstore", "cli.yaml")
}

// Load loads CLI configuration.
//
// Priority: KVSTORE_* environment variables > config file > defaults.
// A missing file at the default path is fine; an explicitly given path
// that does not exist is an error.
func Load(path string) (*CLIConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = ""
		}
	}

	cfg := Default()
	l := confloader.NewLoader(confloader.WithConfigFile(path))
	if err := l.Load(cfg); err != nil {
		return nil, fmt.Errorf("load cli config: %w", err)
	}

	return cfg, nil
}
