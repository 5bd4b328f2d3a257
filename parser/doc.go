// File: doc.go
// Title: Parser Package Documentation
// Description: Documents the parser package, which turns help text into a
//              usage-grammar tree and a runtime argument vector into leaf
//              patterns, sharing one explicitly threaded options registry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial package documentation

/*
Package parser implements the two parsing phases of the usage-grammar
toolkit.

The grammar phase extracts the "Usage:" block from help text
(PrintableUsage, FormalUsage), tokenizes it into a closed set of token
kinds (Tokenize), and builds the pattern tree by recursive descent
(ParsePattern). Option-description lines seed the options registry
(ParseDescriptions, ParseOption).

The argv phase (ParseArgv) classifies a runtime argument vector into leaf
patterns against the same registry, resolving long options (with
unambiguous prefix matching), short-option clusters with inline or
following values, and positional arguments.

The registry is append-only and threaded explicitly: every function that
can discover an option takes the current registry and returns its
successor. No package state is involved; parsing is synchronous and runs
to completion or fails with a tagged *Error.
*/
package parser
