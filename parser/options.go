// File: options.go
// Title: Option Descriptor Parser and Options Registry
// Description: Parses option-description lines and argument placeholders
//              from help text, and defines the append-only registry of
//              known options that is threaded explicitly through the
//              grammar and argument-vector parsers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial descriptor parser and registry

package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/msto63/chomsky/pattern"
)

// Registry is the append-only ordered sequence of known options. It is
// never mutated in place: With returns a successor registry, and every
// parsing step that can discover an option accepts the current registry and
// returns its successor. A nil Registry is the valid empty registry.
type Registry []*pattern.Option

// With returns a successor registry extended by the given option. The
// receiver is left untouched.
func (r Registry) With(o *pattern.Option) Registry {
	out := make(Registry, 0, len(r)+1)
	out = append(out, r...)
	out = append(out, o)
	return out
}

// MatchLong returns every registered option whose long form equals name.
func (r Registry) MatchLong(name string) []*pattern.Option {
	var matches []*pattern.Option
	for _, o := range r {
		if o.Long == name {
			matches = append(matches, o)
		}
	}
	return matches
}

// MatchLongPrefix returns every registered option whose long form starts
// with the given prefix.
func (r Registry) MatchLongPrefix(prefix string) []*pattern.Option {
	var matches []*pattern.Option
	for _, o := range r {
		if o.Long != "" && strings.HasPrefix(o.Long, prefix) {
			matches = append(matches, o)
		}
	}
	return matches
}

// MatchShort returns every registered option whose short form equals name.
func (r Registry) MatchShort(name string) []*pattern.Option {
	var matches []*pattern.Option
	for _, o := range r {
		if o.Short == name {
			matches = append(matches, o)
		}
	}
	return matches
}

var (
	// columnPattern separates the options column from the description
	// column on the first run of two or more spaces.
	columnPattern = regexp.MustCompile(`\s{2,}`)

	// placeholderPattern matches an <argument> placeholder.
	placeholderPattern = regexp.MustCompile(`<[^<>\s]+>`)
)

// ParseOption parses one option-description line, e.g.
//
//	-v, --verbose  Print more text
//	--speed=<kn>   Maximum speed [default: 10]
//
// The line is trimmed and split into an options column and a description
// column on the first run of two or more spaces; a missing description is
// tolerated. Within the options column, tokens starting with "--" become
// the long form, tokens starting with "-" the short form, and any other
// token signals that the option takes exactly one argument. Boolean options
// default to false; argument-taking options default to the [default: X]
// annotation of the description. A line declaring neither form is reported
// as not-an-option; the caller decides whether that is a failure.
func ParseOption(line string) (*pattern.Option, bool) {
	trimmed := strings.TrimSpace(line)

	columns := columnPattern.Split(trimmed, 2)
	optionsColumn := columns[0]
	description := ""
	if len(columns) == 2 {
		description = columns[1]
	}

	short, long, argCount := "", "", 0
	fields := strings.FieldsFunc(optionsColumn, func(r rune) bool {
		return r == ',' || r == '=' || unicode.IsSpace(r)
	})
	for _, field := range fields {
		switch {
		case strings.HasPrefix(field, "--"):
			long = field
		case strings.HasPrefix(field, "-"):
			short = field
		default:
			argCount = 1
		}
	}
	if short == "" && long == "" {
		return nil, false
	}

	value := pattern.BooleanValue(false)
	if argCount == 1 {
		value = pattern.ParseDefault(description)
	}
	return pattern.NewOption(short, long, argCount, value), true
}

// ParseArgument parses one <argument> placeholder description, e.g.
//
//	<port>  Port to listen on [default: 8080]
//
// It succeeds only if the text contains a bracketed placeholder; the
// matched placeholder becomes the argument name and its default is
// extracted from the surrounding text.
func ParseArgument(text string) (*pattern.Argument, bool) {
	name := placeholderPattern.FindString(text)
	if name == "" {
		return nil, false
	}
	return pattern.NewArgument(name, pattern.ParseDefault(text)), true
}

// ParseDescriptions scans help text for option-description lines and
// returns the initial options registry, in declaration order. Lines that
// do not decompose into an option are skipped silently.
func ParseDescriptions(doc string) Registry {
	var reg Registry
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "-") {
			continue
		}
		if o, ok := ParseOption(line); ok {
			reg = reg.With(o)
		}
	}
	return reg
}

// ParseArgumentDefaults scans help text for argument-description lines
// ("<name>  text [default: X]") and returns the placeholders that declare a
// non-empty default.
func ParseArgumentDefaults(doc string) []*pattern.Argument {
	var args []*pattern.Argument
	for _, line := range strings.Split(doc, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "<") {
			continue
		}
		if a, ok := ParseArgument(line); ok && a.Value.GetStringValue() != "" {
			args = append(args, a)
		}
	}
	return args
}
