// File: chomsky.go
// Title: Usage-Grammar Engine
// Description: Provides the high-level API that turns a help text into a
//              grammar tree, parses a runtime argument vector against it,
//              unifies the two, and binds the result to a name-value map.
//              Integrates the parser, pattern and matcher components.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial engine implementation

package chomsky

import (
	"strings"

	mdwlog "github.com/msto63/chomsky/core/log"
	"github.com/msto63/chomsky/parser"
	"github.com/msto63/chomsky/pattern"
)

// Engine coordinates usage extraction, grammar parsing, argument-vector
// parsing, matching and binding for one help text format.
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine behavior
type Options struct {
	// Logger for parse lifecycle events (optional, defaults to the
	// default logger)
	Logger *mdwlog.Logger

	// Help intercepts -h/--help in the argument vector and reports the
	// help text through an *Exit result (default: true)
	Help bool

	// Version, when non-empty, intercepts --version and reports it
	// through an *Exit result
	Version string

	// OptionsFirst stops option recognition at the first positional
	// argument (strict POSIX ordering)
	OptionsFirst bool
}

// Exit carries text the calling program is expected to print before
// terminating with Code. It is returned for intercepted help and version
// requests, never for parse failures.
type Exit struct {
	Text string
	Code int
}

// Error implements the error interface
func (e *Exit) Error() string {
	return e.Text
}

// NewEngine creates a new engine with the specified options
func NewEngine(opts ...Options) *Engine {
	options := Options{
		Logger: mdwlog.GetDefault(),
		Help:   true,
	}
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		options.Help = provided.Help
		options.Version = provided.Version
		options.OptionsFirst = provided.OptionsFirst
	}

	return &Engine{
		logger:  options.Logger.WithField("component", "chomsky-engine"),
		options: options,
	}
}

// ParseArgs parses the argument vector against the help text and returns
// the bound values. Failures are tagged *parser.Error values; intercepted
// help and version requests surface as *Exit.
func (e *Engine) ParseArgs(doc string, argv []string) (Opts, error) {
	usage, err := parser.PrintableUsage(doc)
	if err != nil {
		return nil, err
	}

	declared := parser.ParseDescriptions(doc)

	tree, reg, err := parser.ParsePattern(parser.FormalUsage(usage), declared)
	if err != nil {
		e.logger.Warn("usage grammar rejected", mdwlog.Fields{"error": err.Error()})
		return nil, err
	}

	leaves, _, err := parser.ParseArgv(argv, reg, e.options.OptionsFirst)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("argument vector parsed", mdwlog.Fields{
		"argv":    len(argv),
		"leaves":  len(leaves),
		"options": len(reg),
	})

	if e.options.Help && flagSeen(leaves, "-h", "--help") {
		return nil, &Exit{Text: strings.TrimSpace(doc)}
	}
	if e.options.Version != "" && flagSeen(leaves, "--version") {
		return nil, &Exit{Text: e.options.Version}
	}

	fixed := pattern.Fix(pattern.ExpandOptions(tree, shortcutOptions(tree, declared)))

	ok, leftover, collected := pattern.Match(fixed, leaves)
	if !ok {
		return nil, parser.NewUserError(parser.KindUnconsumedInput,
			"arguments do not match usage: %s", usage)
	}
	if len(leftover) > 0 {
		return nil, parser.NewUserError(parser.KindUnconsumedInput,
			"unconsumed arguments: %s", renderLeaves(leftover))
	}

	return e.bind(doc, fixed, collected), nil
}

// Validate checks that the help text itself is well-formed without parsing
// any arguments.
func (e *Engine) Validate(doc string) error {
	_, err := e.ParseTree(doc)
	return err
}

// ParseTree builds the grammar tree of a help text without consuming an
// argument vector. The options placeholder stays unexpanded.
func (e *Engine) ParseTree(doc string) (pattern.Pattern, error) {
	usage, err := parser.PrintableUsage(doc)
	if err != nil {
		return nil, err
	}
	tree, _, err := parser.ParsePattern(parser.FormalUsage(usage), parser.ParseDescriptions(doc))
	return tree, err
}

// bind produces the final name-value map: defaults from the fixed tree's
// leaves and description-declared argument defaults, overwritten by the
// collected leaves.
func (e *Engine) bind(doc string, fixed pattern.Pattern, collected []pattern.Pattern) Opts {
	opts := make(Opts)

	for _, leaf := range pattern.Flatten(fixed) {
		if name, ok := pattern.NameOf(leaf); ok {
			opts[name] = pattern.ValueOf(leaf).Interface()
		}
	}
	for _, arg := range parser.ParseArgumentDefaults(doc) {
		if held, exists := opts[arg.Name]; exists && held == nil {
			opts[arg.Name] = arg.Value.Interface()
		}
	}
	for _, leaf := range collected {
		if name, ok := pattern.NameOf(leaf); ok {
			opts[name] = pattern.ValueOf(leaf).Interface()
		}
	}

	e.logger.Debug("arguments bound", mdwlog.Fields{"keys": len(opts)})
	return opts
}

// ParseArgs parses argv against doc using a default engine. A non-empty
// version string enables --version interception; -h/--help interception is
// always on.
func ParseArgs(doc string, argv []string, version string) (Opts, error) {
	return NewEngine(Options{Help: true, Version: version}).ParseArgs(doc, argv)
}

// flagSeen reports whether any option leaf with one of the given names
// carries a truthy value.
func flagSeen(leaves []pattern.Pattern, names ...string) bool {
	for _, leaf := range leaves {
		o, ok := leaf.(*pattern.Option)
		if !ok || !o.Value.IsTruthy() {
			continue
		}
		for _, name := range names {
			if o.Name() == name {
				return true
			}
		}
	}
	return false
}

// shortcutOptions returns the declared options the usage line does not
// already name; they stand in for the "options" placeholder.
func shortcutOptions(tree pattern.Pattern, declared parser.Registry) []*pattern.Option {
	named := make(map[string]bool)
	for _, leaf := range pattern.Flatten(tree, pattern.KindOption) {
		if o, ok := leaf.(*pattern.Option); ok {
			named[o.Name()] = true
		}
	}

	var rest []*pattern.Option
	for _, o := range declared {
		if !named[o.Name()] {
			rest = append(rest, o)
		}
	}
	return rest
}

func renderLeaves(leaves []pattern.Pattern) string {
	parts := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		if arg, ok := leaf.(*pattern.Argument); ok && arg.Name == "" {
			parts = append(parts, arg.Value.GetStringValue())
			continue
		}
		parts = append(parts, leaf.String())
	}
	return strings.Join(parts, " ")
}
