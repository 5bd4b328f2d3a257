// File: argv.go
// Title: Argument-Vector Parser
// Description: Tokenizes and classifies a runtime argument list into leaf
//              patterns, resolving long and short options against the known
//              options registry and registering previously unseen options
//              on the fly. The long and short resolvers are shared with the
//              grammar parser: grammar mode declares, argv mode binds
//              values. Both are pure folds over (tokens, registry).
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial argument-vector parser

package parser

import (
	"strings"

	"github.com/msto63/chomsky/pattern"
)

// ParseArgv classifies a runtime argument vector into leaf patterns, in
// argv order. Long options, short clusters and positionals are recognized
// until "--" is seen, after which everything is positional. With
// optionsFirst set, the first plain token already ends option recognition.
// The returned registry extends the given one with every option argv
// introduced.
func ParseArgv(argv []string, reg Registry, optionsFirst bool) ([]pattern.Pattern, Registry, error) {
	var parsed []pattern.Pattern

	for len(argv) > 0 {
		tok := argv[0]
		switch {
		case tok == "--":
			return appendPositionals(parsed, argv), reg, nil

		case strings.HasPrefix(tok, "--"):
			leaf, rest, next, err := parseLong(tok, argv[1:], reg, true)
			if err != nil {
				return nil, reg, err
			}
			parsed = append(parsed, leaf)
			argv, reg = rest, next

		case strings.HasPrefix(tok, "-") && tok != "-":
			leaves, rest, next, err := parseShorts(tok, argv[1:], reg, true)
			if err != nil {
				return nil, reg, err
			}
			parsed = append(parsed, leaves...)
			argv, reg = rest, next

		case optionsFirst:
			return appendPositionals(parsed, argv), reg, nil

		default:
			parsed = append(parsed, positional(tok))
			argv = argv[1:]
		}
	}
	return parsed, reg, nil
}

// ParseArgvText is ParseArgv over a raw argument string. The string is
// split on whitespace only; argv tokens carry no grammar delimiters.
func ParseArgvText(text string, reg Registry, optionsFirst bool) ([]pattern.Pattern, Registry, error) {
	return ParseArgv(SplitArgv(text), reg, optionsFirst)
}

func positional(tok string) pattern.Pattern {
	return pattern.NewArgument("", pattern.StringValue(tok))
}

func appendPositionals(parsed []pattern.Pattern, argv []string) []pattern.Pattern {
	for _, tok := range argv {
		parsed = append(parsed, positional(tok))
	}
	return parsed
}

// parseLong resolves one --token. In grammar mode (argvMode false) it
// registers or reuses a declaration without consuming a value; in argv
// mode it binds a value, consuming the next token when the option takes an
// argument and none was supplied inline. Unknown names auto-register; in
// argv mode an unknown name additionally falls back to unambiguous prefix
// matching before registering.
func parseLong(raw string, rest []string, reg Registry, argvMode bool) (pattern.Pattern, []string, Registry, error) {
	name, inline, hasInline := strings.Cut(raw, "=")

	candidates := reg.MatchLong(name)
	if argvMode && len(candidates) == 0 {
		candidates = reg.MatchLongPrefix(name)
	}

	if len(candidates) > 1 {
		return nil, rest, reg, modeError(argvMode, KindAmbiguousOption,
			"%s is not a unique prefix: %s?", name, longNames(candidates))
	}

	if len(candidates) == 0 {
		argCount := 0
		declared := pattern.BooleanValue(false)
		if hasInline {
			argCount = 1
			declared = pattern.NilValue()
		}
		entry := pattern.NewOption("", name, argCount, declared)
		reg = reg.With(entry)

		if !argvMode {
			return entry, rest, reg, nil
		}
		bound := pattern.BooleanValue(true)
		if argCount == 1 {
			bound = pattern.StringValue(inline)
		}
		return entry.WithValue(bound), rest, reg, nil
	}

	o := candidates[0]
	if o.ArgCount == 0 && hasInline {
		return nil, rest, reg, modeError(argvMode, KindUnexpectedArgument,
			"%s must not have an argument", o.Long)
	}
	if o.ArgCount == 1 && !hasInline && argvMode {
		if len(rest) == 0 || rest[0] == "--" {
			return nil, rest, reg, NewUserError(KindMissingArgument,
				"%s requires argument", o.Long)
		}
		inline, hasInline = rest[0], true
		rest = rest[1:]
	}

	if !argvMode {
		return o, rest, reg, nil
	}
	bound := pattern.BooleanValue(true)
	if o.ArgCount == 1 {
		bound = pattern.StringValue(inline)
	}
	return o.WithValue(bound), rest, reg, nil
}

// parseShorts resolves a clustered short token such as "-abc" character by
// character. An argument-taking option consumes either the remainder of
// the cluster or the next whole token; the remainder is never reprocessed
// as further flags. Leaves are returned in encounter order.
func parseShorts(raw string, rest []string, reg Registry, argvMode bool) ([]pattern.Pattern, []string, Registry, error) {
	var leaves []pattern.Pattern
	remaining := strings.TrimPrefix(raw, "-")

	for remaining != "" {
		short := "-" + remaining[:1]
		remaining = remaining[1:]

		similar := reg.MatchShort(short)
		if len(similar) > 1 {
			return nil, rest, reg, modeError(argvMode, KindOptionSyntax,
				"%s is specified ambiguously %d times", short, len(similar))
		}

		if len(similar) == 0 {
			entry := pattern.NewOption(short, "", 0, pattern.BooleanValue(false))
			reg = reg.With(entry)
			if argvMode {
				leaves = append(leaves, entry.WithValue(pattern.BooleanValue(true)))
			} else {
				leaves = append(leaves, entry)
			}
			continue
		}

		o := similar[0]
		if o.ArgCount == 0 {
			if argvMode {
				leaves = append(leaves, o.WithValue(pattern.BooleanValue(true)))
			} else {
				leaves = append(leaves, o)
			}
			continue
		}

		// Argument-taking option: the rest of the cluster is the value, or
		// the next whole token when the cluster is exhausted.
		value := remaining
		remaining = ""
		if value == "" && argvMode {
			if len(rest) == 0 || rest[0] == "--" {
				return nil, rest, reg, NewUserError(KindMissingArgument,
					"%s requires argument", short)
			}
			value = rest[0]
			rest = rest[1:]
		}

		if argvMode {
			leaves = append(leaves, o.WithValue(pattern.StringValue(value)))
		} else {
			leaves = append(leaves, o)
		}
	}

	return leaves, rest, reg, nil
}

func longNames(options []*pattern.Option) string {
	names := make([]string, 0, len(options))
	for _, o := range options {
		names = append(names, o.Long)
	}
	return strings.Join(names, ", ")
}
