// Package shutdown provides graceful shutdown handling for kvstore-cli.
//
// The REPL registers hooks here (history flush, final log line) so an
// interrupted interactive session still tears down cleanly.
package shutdown
