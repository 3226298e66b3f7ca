// Package seed loads bulk store entries from a YAML file.
//
// kvstore-cli uses it to prefill a store before running one-shot
// commands or entering the REPL. Validation happens here, at the
// boundary: the engine itself assumes well-formed input.
package seed
