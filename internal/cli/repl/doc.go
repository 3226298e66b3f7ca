// Package repl provides the interactive REPL mode for kvstore-cli.
//
// The REPL owns one store instance for the whole session, so mutations
// persist across commands until the process exits. Commands mirror the
// one-shot CLI verbs: get, set, del, scan, purge, stats.
package repl
