// Package config defines the configuration for kvstore-cli.
//
// Configuration is layered via confloader: defaults, then the YAML
// file at ~/.kvstore/cli.yaml (or --config), then KVSTORE_* environment
// variables.
package config
