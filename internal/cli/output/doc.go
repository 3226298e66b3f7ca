// Package output provides output formatting for kvstore-cli.
//
// Three formats are supported:
//
//   - table: aligned columns via text/tabwriter (default)
//   - json:  indented JSON
//   - yaml:  YAML documents
//
// Commands hand the formatter plain values (pairs, stats snapshots);
// the table formatter derives columns from struct json tags.
package output
