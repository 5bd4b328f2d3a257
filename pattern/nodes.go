// File: nodes.go
// Title: Pattern Tree Node Definitions
// Description: Defines the node types of the usage-grammar tree: the leaf
//              variants Argument, Command, Option and AnyOptions, and the
//              composite variants Required, Optional, Either and OneOrMore.
//              Provides canonical string rendering and tree traversal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial pattern node definitions

package pattern

import (
	"strings"
)

// NodeKind identifies the concrete type of a pattern node
type NodeKind int

const (
	// KindArgument is a positional argument leaf (<name> or ALLCAPS)
	KindArgument NodeKind = iota

	// KindCommand is a literal word the user must type verbatim
	KindCommand

	// KindOption is a short and/or long option leaf
	KindOption

	// KindAnyOptions is the unexpanded "options" placeholder leaf
	KindAnyOptions

	// KindRequired is an ordered sequence that must match completely
	KindRequired

	// KindOptional is an ordered sequence that may match partially
	KindOptional

	// KindEither is a set of unordered alternatives
	KindEither

	// KindOneOrMore is a repetition of its child sequence
	KindOneOrMore
)

// String returns the string representation of the node kind
func (k NodeKind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindCommand:
		return "command"
	case KindOption:
		return "option"
	case KindAnyOptions:
		return "options"
	case KindRequired:
		return "required"
	case KindOptional:
		return "optional"
	case KindEither:
		return "either"
	case KindOneOrMore:
		return "oneormore"
	default:
		return "unknown"
	}
}

// Pattern is a node in the usage-grammar tree. A tree is built once per
// parse, is immutable afterwards, and holds no back-references.
type Pattern interface {
	// Kind returns the concrete node kind
	Kind() NodeKind

	// String returns the canonical usage-text rendering of the node
	String() string
}

// Argument represents a positional argument leaf.
type Argument struct {
	Name  string // Placeholder name as written, e.g. "<host>" or "PORT"
	Value Value  // Bound or default value
}

// Command represents a literal command word leaf.
type Command struct {
	Name  string // The literal word
	Value Value  // Boolean presence marker, counter when repeatable
}

// Option represents a short and/or long option leaf. At least one of Short
// and Long is always set.
type Option struct {
	Short    string // Short form including dash, e.g. "-v"
	Long     string // Long form including dashes, e.g. "--verbose"
	ArgCount int    // Number of values the option consumes, 0 or 1
	Value    Value  // Bound or default value
}

// AnyOptions is the placeholder leaf emitted for the literal "options"
// keyword. It stays opaque through parsing and is expanded only by the
// matcher against the registry of declared options.
type AnyOptions struct{}

// Required is an ordered sequence of children that must all match.
type Required struct {
	Children []Pattern
}

// Optional is an ordered sequence of children that match if they can.
type Optional struct {
	Children []Pattern
}

// Either is a set of alternative children; child order carries no meaning.
type Either struct {
	Children []Pattern
}

// OneOrMore repeats its child sequence one or more times.
type OneOrMore struct {
	Children []Pattern
}

// NewArgument creates an argument leaf.
func NewArgument(name string, value Value) *Argument {
	return &Argument{Name: name, Value: value}
}

// NewCommand creates a command leaf with an unset presence marker.
func NewCommand(name string) *Command {
	return &Command{Name: name, Value: BooleanValue(false)}
}

// NewOption creates an option leaf. Either short or long may be empty, but
// never both; argCount is 0 or 1.
func NewOption(short, long string, argCount int, value Value) *Option {
	return &Option{Short: short, Long: long, ArgCount: argCount, Value: value}
}

// NewAnyOptions creates the unexpanded options placeholder.
func NewAnyOptions() *AnyOptions {
	return &AnyOptions{}
}

// NewRequired creates a required sequence over the given children.
func NewRequired(children ...Pattern) *Required {
	return &Required{Children: children}
}

// NewOptional creates an optional sequence over the given children.
func NewOptional(children ...Pattern) *Optional {
	return &Optional{Children: children}
}

// NewEither creates an alternation over the given children.
func NewEither(children ...Pattern) *Either {
	return &Either{Children: children}
}

// NewOneOrMore creates a repetition over the given children.
func NewOneOrMore(children ...Pattern) *OneOrMore {
	return &OneOrMore{Children: children}
}

// Kind implementations

func (a *Argument) Kind() NodeKind   { return KindArgument }
func (c *Command) Kind() NodeKind    { return KindCommand }
func (o *Option) Kind() NodeKind     { return KindOption }
func (s *AnyOptions) Kind() NodeKind { return KindAnyOptions }
func (r *Required) Kind() NodeKind   { return KindRequired }
func (o *Optional) Kind() NodeKind   { return KindOptional }
func (e *Either) Kind() NodeKind     { return KindEither }
func (o *OneOrMore) Kind() NodeKind  { return KindOneOrMore }

// Name returns the identifying name of the option: the long form when
// declared, the short form otherwise.
func (o *Option) Name() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// WithValue returns a copy of the option carrying the given bound value.
// The receiver is left untouched; registry entries are never mutated.
func (o *Option) WithValue(v Value) *Option {
	return &Option{Short: o.Short, Long: o.Long, ArgCount: o.ArgCount, Value: v}
}

// NameOf returns the identifying name of a leaf node and true, or the
// empty string and false for composites and the options placeholder.
func NameOf(p Pattern) (string, bool) {
	switch n := p.(type) {
	case *Argument:
		return n.Name, true
	case *Command:
		return n.Name, true
	case *Option:
		return n.Name(), true
	default:
		return "", false
	}
}

// ValueOf returns the value carried by a leaf node; composites and the
// options placeholder carry no value.
func ValueOf(p Pattern) Value {
	switch n := p.(type) {
	case *Argument:
		return n.Value
	case *Command:
		return n.Value
	case *Option:
		return n.Value
	default:
		return NilValue()
	}
}

// ChildrenOf returns the ordered children of a composite node, or nil for
// leaves.
func ChildrenOf(p Pattern) []Pattern {
	switch n := p.(type) {
	case *Required:
		return n.Children
	case *Optional:
		return n.Children
	case *Either:
		return n.Children
	case *OneOrMore:
		return n.Children
	default:
		return nil
	}
}

// IsLeaf returns true for argument, command, option and options-placeholder
// nodes.
func IsLeaf(p Pattern) bool {
	switch p.Kind() {
	case KindArgument, KindCommand, KindOption, KindAnyOptions:
		return true
	default:
		return false
	}
}

// Flatten returns all leaves of the tree in depth-first order. When kinds
// are given, only leaves of those kinds are returned.
func Flatten(p Pattern, kinds ...NodeKind) []Pattern {
	if IsLeaf(p) {
		if len(kinds) == 0 {
			return []Pattern{p}
		}
		for _, k := range kinds {
			if p.Kind() == k {
				return []Pattern{p}
			}
		}
		return nil
	}

	var leaves []Pattern
	for _, child := range ChildrenOf(p) {
		leaves = append(leaves, Flatten(child, kinds...)...)
	}
	return leaves
}

// String implementations. The rendering is canonical: re-tokenizing the
// output of a composite yields a shape-stable tree on a second parse.

func (a *Argument) String() string {
	return a.Name
}

func (c *Command) String() string {
	return c.Name
}

func (o *Option) String() string {
	return o.Name()
}

func (s *AnyOptions) String() string {
	return "options"
}

func (r *Required) String() string {
	return "( " + joinChildren(r.Children) + " )"
}

func (o *Optional) String() string {
	return "[ " + joinChildren(o.Children) + " ]"
}

func (e *Either) String() string {
	parts := make([]string, 0, len(e.Children))
	for _, child := range e.Children {
		parts = append(parts, child.String())
	}
	return "( " + strings.Join(parts, " | ") + " )"
}

func (o *OneOrMore) String() string {
	if len(o.Children) == 1 {
		return o.Children[0].String() + " ..."
	}
	return "( " + joinChildren(o.Children) + " ) ..."
}

func joinChildren(children []Pattern) string {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		parts = append(parts, child.String())
	}
	return strings.Join(parts, " ")
}
