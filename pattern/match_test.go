// File: match_test.go
// Title: Pattern Matcher Unit Tests
// Description: Tests for options-placeholder expansion, the repetition
//              fix and structural matching of parsed argument leaves
//              against grammar trees.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial test suite

package pattern

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestExpandOptions(t *testing.T) {
	all := NewOption("-a", "--all", 0, BooleanValue(false))
	quiet := NewOption("-q", "", 0, BooleanValue(false))

	tree := NewRequired(
		NewAnyOptions(),
		NewArgument("<x>", NilValue()),
	)

	got := ExpandOptions(tree, []*Option{all, quiet})
	expected := NewRequired(
		NewOptional(all, quiet),
		NewArgument("<x>", NilValue()),
	)

	if diff := cmp.Diff(Pattern(expected), got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ExpandOptions mismatch (-want +got):\n%s", diff)
	}

	// The input tree keeps its placeholder.
	if tree.Children[0].Kind() != KindAnyOptions {
		t.Errorf("Expected the input tree to stay untouched")
	}
}

func TestFix(t *testing.T) {
	t.Run("Repeated argument becomes a list accumulator", func(t *testing.T) {
		tree := NewRequired(
			NewArgument("<name>", NilValue()),
			NewArgument("<name>", NilValue()),
		)
		fixed := Fix(tree)

		expected := NewRequired(
			NewArgument("<name>", ListValue()),
			NewArgument("<name>", ListValue()),
		)
		if diff := cmp.Diff(Pattern(expected), fixed); diff != "" {
			t.Errorf("Fix mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Repetition marker counts as repeated", func(t *testing.T) {
		tree := NewRequired(NewOneOrMore(NewArgument("<name>", NilValue())))
		fixed := Fix(tree)

		leaf := ChildrenOf(ChildrenOf(fixed)[0])[0]
		if ValueOf(leaf).Type != ValueTypeList {
			t.Errorf("Expected a list accumulator, got %s", ValueOf(leaf).Type)
		}
	})

	t.Run("Repeatable flag becomes a counter", func(t *testing.T) {
		verbose := NewOption("-v", "", 0, BooleanValue(false))
		fixed := Fix(NewRequired(NewOneOrMore(verbose)))

		leaf := ChildrenOf(ChildrenOf(fixed)[0])[0]
		if got, _ := ValueOf(leaf).GetIntValue(); ValueOf(leaf).Type != ValueTypeInt || got != 0 {
			t.Errorf("Expected counter base 0, got %s", ValueOf(leaf))
		}
	})

	t.Run("String default splits into the initial list", func(t *testing.T) {
		path := NewOption("", "--path", 1, StringValue("./here ./there"))
		fixed := Fix(NewRequired(NewOneOrMore(path)))

		leaf := ChildrenOf(ChildrenOf(fixed)[0])[0]
		list, ok := ValueOf(leaf).GetListValue()
		if !ok {
			t.Fatalf("Expected a list accumulator, got %s", ValueOf(leaf).Type)
		}
		if diff := cmp.Diff([]string{"./here", "./there"}, list); diff != "" {
			t.Errorf("Initial list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Occurrences in separate alternatives are not repetition", func(t *testing.T) {
		tree := NewRequired(NewEither(
			NewCommand("go"),
			NewCommand("go"),
		))
		fixed := Fix(tree)

		leaf := ChildrenOf(ChildrenOf(fixed)[0])[0]
		if ValueOf(leaf).Type != ValueTypeBoolean {
			t.Errorf("Expected the command to keep its boolean marker, got %s", ValueOf(leaf).Type)
		}
	})
}

func TestMatch_Leaves(t *testing.T) {
	help := NewOption("-h", "--help", 0, BooleanValue(false))

	tests := []struct {
		name      string
		tree      Pattern
		leaves    []Pattern
		ok        bool
		leftover  int
		collected []Pattern
	}{
		{
			name:      "Option matches by name",
			tree:      NewRequired(help),
			leaves:    []Pattern{help.WithValue(BooleanValue(true))},
			ok:        true,
			collected: []Pattern{help.WithValue(BooleanValue(true))},
		},
		{
			name:   "Option absent",
			tree:   NewRequired(help),
			leaves: nil,
			ok:     false,
		},
		{
			name:      "Argument binds the positional value under its own name",
			tree:      NewRequired(NewArgument("<x>", NilValue())),
			leaves:    []Pattern{NewArgument("", StringValue("10"))},
			ok:        true,
			collected: []Pattern{NewArgument("<x>", StringValue("10"))},
		},
		{
			name:   "Command requires the exact word",
			tree:   NewRequired(NewCommand("ship")),
			leaves: []Pattern{NewArgument("", StringValue("ship"))},
			ok:     true,
			collected: []Pattern{func() Pattern {
				c := NewCommand("ship")
				c.Value = BooleanValue(true)
				return c
			}()},
		},
		{
			name:   "Command rejects a different word",
			tree:   NewRequired(NewCommand("ship")),
			leaves: []Pattern{NewArgument("", StringValue("boat"))},
			ok:     false,
		},
		{
			name:   "Command does not skip over positionals",
			tree:   NewRequired(NewCommand("ship")),
			leaves: []Pattern{NewArgument("", StringValue("boat")), NewArgument("", StringValue("ship"))},
			ok:     false,
		},
		{
			name:      "Optional tolerates absence",
			tree:      NewRequired(NewOptional(help)),
			leaves:    nil,
			ok:        true,
			collected: nil,
		},
		{
			name:      "Unexpanded placeholder consumes nothing",
			tree:      NewRequired(NewAnyOptions()),
			leaves:    []Pattern{NewArgument("", StringValue("x"))},
			ok:        true,
			leftover:  1,
			collected: nil,
		},
		{
			name:      "Surplus leaves stay as leftover",
			tree:      NewRequired(NewArgument("<x>", NilValue())),
			leaves:    []Pattern{NewArgument("", StringValue("a")), NewArgument("", StringValue("b"))},
			ok:        true,
			leftover:  1,
			collected: []Pattern{NewArgument("<x>", StringValue("a"))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, leftover, collected := Match(tt.tree, tt.leaves)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if len(leftover) != tt.leftover {
				t.Errorf("Expected %d leftover leaves, got %d", tt.leftover, len(leftover))
			}
			if diff := cmp.Diff(tt.collected, collected, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Collected mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatch_EitherPrefersFewestLeftover(t *testing.T) {
	a := NewOption("-a", "", 0, BooleanValue(false))
	b := NewOption("-b", "", 0, BooleanValue(false))

	tree := NewRequired(NewEither(
		a,
		NewRequired(a, b),
	))
	leaves := []Pattern{
		a.WithValue(BooleanValue(true)),
		b.WithValue(BooleanValue(true)),
	}

	ok, leftover, collected := Match(tree, leaves)
	if !ok {
		t.Fatal("Expected the alternation to match")
	}
	if len(leftover) != 0 {
		t.Errorf("Expected the greedier branch to win, got %d leftover", len(leftover))
	}
	if len(collected) != 2 {
		t.Errorf("Expected 2 collected leaves, got %d", len(collected))
	}
}

func TestMatch_Repetition(t *testing.T) {
	t.Run("Repeated argument accumulates a list", func(t *testing.T) {
		tree := Fix(NewRequired(NewOneOrMore(NewArgument("<name>", NilValue()))))
		leaves := []Pattern{
			NewArgument("", StringValue("Guardian")),
			NewArgument("", StringValue("Defiant")),
		}

		ok, leftover, collected := Match(tree, leaves)
		if !ok || len(leftover) != 0 {
			t.Fatalf("Expected a clean match, got ok=%v leftover=%d", ok, len(leftover))
		}
		if len(collected) != 1 {
			t.Fatalf("Expected a single accumulated leaf, got %d", len(collected))
		}
		list, _ := ValueOf(collected[0]).GetListValue()
		if diff := cmp.Diff([]string{"Guardian", "Defiant"}, list); diff != "" {
			t.Errorf("List mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Repeated flag counts occurrences", func(t *testing.T) {
		verbose := NewOption("-v", "", 0, BooleanValue(false))
		tree := Fix(NewRequired(NewOneOrMore(verbose)))
		leaves := []Pattern{
			verbose.WithValue(BooleanValue(true)),
			verbose.WithValue(BooleanValue(true)),
			verbose.WithValue(BooleanValue(true)),
		}

		ok, _, collected := Match(tree, leaves)
		if !ok {
			t.Fatal("Expected the repetition to match")
		}
		if len(collected) != 1 {
			t.Fatalf("Expected a single counting leaf, got %d", len(collected))
		}
		if count, _ := ValueOf(collected[0]).GetIntValue(); count != 3 {
			t.Errorf("Expected count 3, got %d", count)
		}
	})

	t.Run("Repetition requires at least one occurrence", func(t *testing.T) {
		tree := Fix(NewRequired(NewOneOrMore(NewArgument("<name>", NilValue()))))
		ok, _, _ := Match(tree, nil)
		if ok {
			t.Error("Expected the empty vector to fail the repetition")
		}
	})
}

func TestMatch_LeavesInputUntouched(t *testing.T) {
	help := NewOption("-h", "--help", 0, BooleanValue(false))
	tree := NewRequired(help)
	leaves := []Pattern{help.WithValue(BooleanValue(true))}

	Match(tree, leaves)

	if help.Value.IsTruthy() {
		t.Errorf("Expected the declared option to keep its false value")
	}
	if len(leaves) != 1 || !ValueOf(leaves[0]).IsTruthy() {
		t.Errorf("Expected the input leaves to stay untouched")
	}
}
