// Package main provides the entry point for kvstore-cli.
//
// The CLI tool provides command-line access to the kvstore engine for:
//
//   - Point lookups and writes (get, set, del)
//   - Ordered range scans (scan)
//   - Expired-entry reclamation (purge)
//   - Engine counters (stats)
//
// Usage:
//
//	kvstore-cli [command] [flags]
//	kvstore-cli --seed data.yaml scan session: 20
//	kvstore-cli --output json stats
//
// The CLI supports both single-command mode and interactive REPL mode.
//
// @design DS-0601
package main
