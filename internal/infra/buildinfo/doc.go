// Package buildinfo provides build-time version information for
// kvstore-cli.
//
// The linker injects Version, Commit, BuildTime, and GoVersion at
// build time; all values default to placeholders for plain `go build`.
package buildinfo
