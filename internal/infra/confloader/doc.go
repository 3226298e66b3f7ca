// Package confloader provides configuration loading for kvstore-cli.
//
// It layers Koanf providers so later sources override earlier ones:
//
//  1. Defaults from the config struct
//  2. YAML configuration file
//  3. KVSTORE_* environment variables
//
// Struct fields are mapped via `koanf` tags.
//
// @design DS-0502
package confloader
