// Package command provides CLI command definitions for kvstore-cli.
//
// It uses urfave/cli/v2 for command parsing and supports both
// single-command mode and interactive REPL mode. The Before hook
// builds one store instance per invocation, optionally preloaded
// from a YAML seed file, and stashes it in the app metadata for
// the command actions.
package command
