// File: match.go
// Title: Pattern Matcher and Tree Transforms
// Description: Implements unification of a grammar tree with the leaf
//              patterns produced by argument-vector parsing. Includes the
//              options-placeholder expansion, the repetition fix that turns
//              repeated leaves into accumulators, and the structural match
//              itself. All transforms return new trees; input trees are
//              never mutated.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial matcher implementation

package pattern

import (
	"strings"
)

// ExpandOptions returns a copy of the tree in which every AnyOptions
// placeholder is replaced by an Optional over the given options. The caller
// decides which options take part; typically the declared options minus
// those the usage line already names.
func ExpandOptions(p Pattern, options []*Option) Pattern {
	if p.Kind() == KindAnyOptions {
		children := make([]Pattern, 0, len(options))
		for _, o := range options {
			children = append(children, o)
		}
		return NewOptional(children...)
	}
	if IsLeaf(p) {
		return p
	}
	return rebuild(p, expandChildren(p, options))
}

func expandChildren(p Pattern, options []*Option) []Pattern {
	old := ChildrenOf(p)
	children := make([]Pattern, 0, len(old))
	for _, child := range old {
		children = append(children, ExpandOptions(child, options))
	}
	return children
}

// Fix returns a copy of the tree in which every leaf that can match more
// than once within a single alternation branch carries an accumulator base
// value: a list for arguments and argument-taking options, an integer
// counter for commands and boolean options. Repetition then accumulates
// instead of overwriting.
func Fix(p Pattern) Pattern {
	repeated := make(map[leafKey]bool)
	for _, branch := range transform(p) {
		counts := make(map[leafKey]int)
		for _, leaf := range branch {
			counts[keyOf(leaf)]++
		}
		for key, n := range counts {
			if n > 1 {
				repeated[key] = true
			}
		}
	}
	return fixLeaves(p, repeated)
}

// leafKey identifies a leaf across branches by kind and name.
type leafKey struct {
	kind NodeKind
	name string
}

func keyOf(p Pattern) leafKey {
	name, _ := NameOf(p)
	return leafKey{kind: p.Kind(), name: name}
}

func fixLeaves(p Pattern, repeated map[leafKey]bool) Pattern {
	if IsLeaf(p) {
		if !repeated[keyOf(p)] {
			return p
		}
		return accumulatorLeaf(p)
	}

	old := ChildrenOf(p)
	children := make([]Pattern, 0, len(old))
	for _, child := range old {
		children = append(children, fixLeaves(child, repeated))
	}
	return rebuild(p, children)
}

// accumulatorLeaf returns a copy of the leaf with its declared value
// replaced by the matching accumulator. A declared string default is split
// on whitespace into the initial list, mirroring how a repeatable option
// default names several values at once.
func accumulatorLeaf(p Pattern) Pattern {
	switch n := p.(type) {
	case *Argument:
		return NewArgument(n.Name, listBase(n.Value))
	case *Command:
		c := NewCommand(n.Name)
		c.Value = IntValue(0)
		return c
	case *Option:
		if n.ArgCount > 0 {
			return n.WithValue(listBase(n.Value))
		}
		return n.WithValue(IntValue(0))
	default:
		return p
	}
}

func listBase(v Value) Value {
	switch v.Type {
	case ValueTypeList:
		return v
	case ValueTypeString:
		return ListValue(strings.Fields(v.GetStringValue())...)
	default:
		return ListValue()
	}
}

// transform distributes alternation to the top of the tree and returns the
// flat leaf sequences of every alternative branch.
func transform(p Pattern) [][]Pattern {
	var result [][]Pattern
	groups := [][]Pattern{{p}}

	for len(groups) > 0 {
		children := groups[0]
		groups = groups[1:]

		idx := -1
		for i, child := range children {
			if !IsLeaf(child) {
				idx = i
				break
			}
		}
		if idx < 0 {
			result = append(result, children)
			continue
		}

		composite := children[idx]
		rest := make([]Pattern, 0, len(children)-1)
		rest = append(rest, children[:idx]...)
		rest = append(rest, children[idx+1:]...)

		switch c := composite.(type) {
		case *Either:
			for _, alt := range c.Children {
				group := make([]Pattern, 0, 1+len(rest))
				group = append(group, alt)
				group = append(group, rest...)
				groups = append(groups, group)
			}
		case *OneOrMore:
			group := make([]Pattern, 0, 2*len(c.Children)+len(rest))
			group = append(group, c.Children...)
			group = append(group, c.Children...)
			group = append(group, rest...)
			groups = append(groups, group)
		default:
			sub := ChildrenOf(composite)
			group := make([]Pattern, 0, len(sub)+len(rest))
			group = append(group, sub...)
			group = append(group, rest...)
			groups = append(groups, group)
		}
	}

	return result
}

func rebuild(p Pattern, children []Pattern) Pattern {
	switch p.Kind() {
	case KindRequired:
		return NewRequired(children...)
	case KindOptional:
		return NewOptional(children...)
	case KindEither:
		return NewEither(children...)
	case KindOneOrMore:
		return NewOneOrMore(children...)
	default:
		return p
	}
}

// Match unifies the grammar tree with the ordered leaves parsed from an
// argument vector. It reports whether the tree matched, the leftover leaves
// the tree could not consume, and the collected leaves carrying bound
// values. A successful match with non-empty leftover is an error condition
// for the caller.
func Match(p Pattern, leaves []Pattern) (bool, []Pattern, []Pattern) {
	return match(p, leaves, nil)
}

func match(p Pattern, left, collected []Pattern) (bool, []Pattern, []Pattern) {
	switch n := p.(type) {
	case *Required:
		l, c := left, collected
		for _, child := range n.Children {
			ok, l2, c2 := match(child, l, c)
			if !ok {
				return false, left, collected
			}
			l, c = l2, c2
		}
		return true, l, c

	case *Optional:
		l, c := left, collected
		for _, child := range n.Children {
			_, l, c = match(child, l, c)
		}
		return true, l, c

	case *AnyOptions:
		// Unexpanded placeholder consumes nothing.
		return true, left, collected

	case *Either:
		bestLen := -1
		var bestLeft, bestCollected []Pattern
		for _, child := range n.Children {
			ok, l2, c2 := match(child, left, collected)
			if ok && (bestLen < 0 || len(l2) < bestLen) {
				bestLen = len(l2)
				bestLeft, bestCollected = l2, c2
			}
		}
		if bestLen >= 0 {
			return true, bestLeft, bestCollected
		}
		return false, left, collected

	case *OneOrMore:
		var child Pattern
		if len(n.Children) == 1 {
			child = n.Children[0]
		} else {
			child = NewRequired(n.Children...)
		}

		l, c := left, collected
		times := 0
		lastLen := -1
		for {
			ok, l2, c2 := match(child, l, c)
			if !ok {
				break
			}
			times++
			l, c = l2, c2
			if lastLen == len(l) {
				break
			}
			lastLen = len(l)
		}
		if times >= 1 {
			return true, l, c
		}
		return false, left, collected

	default:
		return matchLeaf(p, left, collected)
	}
}

func matchLeaf(p Pattern, left, collected []Pattern) (bool, []Pattern, []Pattern) {
	pos, bound := singleMatch(p, left)
	if bound == nil {
		return false, left, collected
	}

	remaining := make([]Pattern, 0, len(left)-1)
	remaining = append(remaining, left[:pos]...)
	remaining = append(remaining, left[pos+1:]...)

	name, _ := NameOf(p)
	declared := ValueOf(p)

	switch declared.Type {
	case ValueTypeInt:
		if idx := indexByName(collected, name); idx >= 0 {
			count, _ := ValueOf(collected[idx]).GetIntValue()
			return true, remaining, replaceAt(collected, idx, withLeafValue(collected[idx], IntValue(count+1)))
		}
		return true, remaining, appendLeaf(collected, withLeafValue(bound, IntValue(1)))

	case ValueTypeList:
		increment := listIncrement(ValueOf(bound))
		if idx := indexByName(collected, name); idx >= 0 {
			existing, _ := ValueOf(collected[idx]).GetListValue()
			merged := make([]string, 0, len(existing)+len(increment))
			merged = append(merged, existing...)
			merged = append(merged, increment...)
			return true, remaining, replaceAt(collected, idx, withLeafValue(collected[idx], ListValue(merged...)))
		}
		return true, remaining, appendLeaf(collected, withLeafValue(bound, ListValue(increment...)))

	default:
		return true, remaining, appendLeaf(collected, bound)
	}
}

// singleMatch finds the first leaf in left the pattern leaf can consume and
// returns its position together with the bound leaf, or (-1, nil).
func singleMatch(p Pattern, left []Pattern) (int, Pattern) {
	switch n := p.(type) {
	case *Argument:
		for i, l := range left {
			if arg, ok := l.(*Argument); ok {
				return i, NewArgument(n.Name, arg.Value)
			}
		}

	case *Command:
		for i, l := range left {
			if arg, ok := l.(*Argument); ok {
				if arg.Value.GetStringValue() == n.Name {
					cmd := NewCommand(n.Name)
					cmd.Value = BooleanValue(true)
					return i, cmd
				}
				// The first positional decides; it is not this command.
				return -1, nil
			}
		}

	case *Option:
		for i, l := range left {
			if opt, ok := l.(*Option); ok && opt.Name() == n.Name() {
				return i, opt
			}
		}
	}
	return -1, nil
}

func listIncrement(v Value) []string {
	if list, ok := v.GetListValue(); ok {
		return list
	}
	return []string{v.GetStringValue()}
}

func indexByName(leaves []Pattern, name string) int {
	for i, leaf := range leaves {
		if n, ok := NameOf(leaf); ok && n == name {
			return i
		}
	}
	return -1
}

func replaceAt(leaves []Pattern, idx int, leaf Pattern) []Pattern {
	out := make([]Pattern, len(leaves))
	copy(out, leaves)
	out[idx] = leaf
	return out
}

func appendLeaf(leaves []Pattern, leaf Pattern) []Pattern {
	out := make([]Pattern, 0, len(leaves)+1)
	out = append(out, leaves...)
	out = append(out, leaf)
	return out
}

func withLeafValue(p Pattern, v Value) Pattern {
	switch n := p.(type) {
	case *Argument:
		return NewArgument(n.Name, v)
	case *Command:
		c := NewCommand(n.Name)
		c.Value = v
		return c
	case *Option:
		return n.WithValue(v)
	default:
		return p
	}
}
