// File: doc.go
// Title: Pattern Package Documentation
// Description: Documents the pattern package, which defines the node types
//              of the usage-grammar tree, the typed value model, and the
//              matcher that unifies a grammar tree with parsed argument
//              leaves.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial package documentation

/*
Package pattern defines the tree model shared by the grammar parser and the
argument-vector parser, and the matcher that unifies the two.

A usage line such as

	prog [-v] <host> (start|stop) [FILE ...]

parses into a tree of Pattern nodes: Argument, Command, Option and the
AnyOptions placeholder as leaves; Required, Optional, Either and OneOrMore
as composites. Leaves carry tagged Values coerced from text once and never
re-coerced.

The matcher side of the package provides three pure transforms:

  - ExpandOptions replaces AnyOptions placeholders with the declared options
    the usage line does not already name.
  - Fix gives repeatable leaves accumulator base values (lists, counters).
  - Match unifies the tree with the ordered leaves from argument-vector
    parsing, returning leftover and collected leaves.

Trees are immutable once built; every transform returns a new tree.
*/
package pattern
