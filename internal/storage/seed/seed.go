// Package seed loads bulk store entries from a YAML file.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/kvstore-go/pkg/kvstore"
)

// File is the on-disk seed format:
//
//	entries:
//	  - key: session:alpha
//	    value: "1"
//	    ttl: 30s
//	  - key: session:beta
//	    value: "2"        # no ttl: never expires
type File struct {
	Entries []Record `yaml:"entries"`
}

// Record is one seed entry. TTL is a Go duration string ("10s", "5m");
// empty or "0" means the entry never expires.
type Record struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
	TTL   string `yaml:"ttl"`
}

// Load reads a seed file and converts it to store entries in file
// order, preserving last-write-wins semantics for duplicate keys.
func Load(path string) ([]kvstore.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse converts raw YAML seed data to store entries.
func Parse(data []byte) ([]kvstore.Entry, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	entries := make([]kvstore.Entry, 0, len(f.Entries))
	for i, r := range f.Entries {
		ttl, err := parseTTL(r.TTL)
		if err != nil {
			return nil, fmt.Errorf("entry %d (key %q): %w", i, r.Key, err)
		}
		entries = append(entries, kvstore.Entry{Key: r.Key, Value: r.Value, TTL: ttl})
	}

	return entries, nil
}

func parseTTL(s string) (time.Duration, error) {
	if s == "" || s == "0" {
		return 0, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid ttl %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid ttl %q: must not be negative", s)
	}
	return d, nil
}
