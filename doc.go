// File: doc.go
// Title: Package Documentation for chomsky
// Description: Package-level documentation for the usage-grammar parsing
//              library.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial documentation

// Package chomsky derives a command-line interface from its own help text.
//
// A program hands its usage message to ParseArgs together with the runtime
// argument vector. The engine extracts the usage section, parses the option
// descriptions, compiles the usage lines into a grammar tree, parses the
// argument vector into a leaf list, unifies the two and returns an Opts map
// with one entry per pattern leaf:
//
//	usage := `Naval Fate.
//
//	Usage:
//	  naval_fate ship new <name>...
//	  naval_fate ship <name> move <x> <y> [--speed=<kn>]
//	  naval_fate -h | --help
//
//	Options:
//	  -h --help      Show this screen.
//	  --speed=<kn>   Speed in knots [default: 10].`
//
//	opts, err := chomsky.ParseArgs(usage, os.Args[1:], "1.0.0")
//
// Flags bind to bool, counted flags and repeated commands to int, valued
// options and positional arguments to string, repeatable ones to []string.
// Leaves that never matched keep their default or stay nil.
//
// Parse failures are *parser.Error values; those caused by the argument
// vector report true from parser.IsUserError and conventionally exit with
// code 2, while malformed help texts are programmer errors. Intercepted
// -h/--help and --version requests surface as *Exit.
//
// The subpackages are usable on their own: parser tokenizes and compiles
// usage grammars and argument vectors, pattern holds the tree model, the
// typed values and the matcher.
package chomsky
