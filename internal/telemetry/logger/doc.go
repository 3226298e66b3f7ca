// Package logger provides structured logging for kvstore.
//
// It wraps log/slog with:
//
//   - JSON or text handlers selected by configuration
//   - A process-wide level that can be adjusted at runtime
//   - A default logger plus context propagation helpers
//
// The storage engine itself never logs; logging belongs to the CLI and
// to embedders.
//
// @design DS-0502
package logger
