// File: grammar.go
// Title: Usage Grammar Parser
// Description: Implements the recursive descent parser that converts
//              tokenized usage text into a pattern tree. Owns the bracket,
//              paren, alternation and ellipsis semantics. The options
//              registry is threaded explicitly through every parse step:
//              each function receives the current registry and returns its
//              successor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial grammar parser

package parser

import (
	"strings"
	"unicode"

	"github.com/msto63/chomsky/pattern"
)

// ParsePattern parses usage-grammar source into a pattern tree, wrapping
// the result in an implicit top-level Required. The returned registry
// extends the given one with every option the grammar declares.
func ParsePattern(source string, reg Registry) (pattern.Pattern, Registry, error) {
	tokens := Tokenize(source)

	result, rest, reg, err := parseExpr(tokens, reg)
	if err != nil {
		return nil, reg, err
	}
	if len(rest) > 0 {
		return nil, reg, NewLanguageError(KindUnconsumedInput,
			"unexpected ending: %s", joinTokens(rest))
	}
	return pattern.NewRequired(result...), reg, nil
}

// parseExpr parses seq ('|' seq)*. Multi-element branches are wrapped in
// Required; the whole becomes an Either only when more than one alternative
// was produced. Singletons stay unwrapped.
func parseExpr(tokens []Token, reg Registry) ([]pattern.Pattern, []Token, Registry, error) {
	seq, tokens, reg, err := parseSeq(tokens, reg)
	if err != nil {
		return nil, tokens, reg, err
	}
	if len(tokens) == 0 || tokens[0].Kind != TokenPipe {
		return seq, tokens, reg, nil
	}

	result := wrapBranch(seq)
	for len(tokens) > 0 && tokens[0].Kind == TokenPipe {
		seq, tokens, reg, err = parseSeq(tokens[1:], reg)
		if err != nil {
			return nil, tokens, reg, err
		}
		result = append(result, wrapBranch(seq)...)
	}

	if len(result) > 1 {
		return []pattern.Pattern{pattern.NewEither(result...)}, tokens, reg, nil
	}
	return result, tokens, reg, nil
}

// wrapBranch groups a multi-element alternation branch in a Required; a
// single-element branch stays unwrapped.
func wrapBranch(seq []pattern.Pattern) []pattern.Pattern {
	if len(seq) > 1 {
		return []pattern.Pattern{pattern.NewRequired(seq...)}
	}
	return seq
}

// parseSeq parses atoms left to right until a reserved token or end of
// input. An atom immediately followed by an ellipsis is wrapped in
// OneOrMore.
func parseSeq(tokens []Token, reg Registry) ([]pattern.Pattern, []Token, Registry, error) {
	var result []pattern.Pattern
	for len(tokens) > 0 && !terminatesSeq(tokens[0].Kind) {
		atoms, rest, next, err := parseAtom(tokens, reg)
		if err != nil {
			return nil, rest, next, err
		}
		tokens, reg = rest, next

		if len(tokens) > 0 && tokens[0].Kind == TokenEllipsis {
			atoms = []pattern.Pattern{pattern.NewOneOrMore(atoms...)}
			tokens = tokens[1:]
		}
		result = append(result, atoms...)
	}
	return result, tokens, reg, nil
}

func terminatesSeq(kind TokenKind) bool {
	return kind == TokenOptionalClose || kind == TokenGroupClose || kind == TokenPipe
}

// parseAtom dispatches on the lookahead token: grouping, the options
// placeholder, long options, short clusters, arguments and literal command
// words.
func parseAtom(tokens []Token, reg Registry) ([]pattern.Pattern, []Token, Registry, error) {
	tok := tokens[0]

	switch tok.Kind {
	case TokenGroupOpen:
		children, rest, reg, err := parseExpr(tokens[1:], reg)
		if err != nil {
			return nil, rest, reg, err
		}
		if len(rest) == 0 || rest[0].Kind != TokenGroupClose {
			return nil, rest, reg, NewLanguageError(KindUnclosedGroup,
				`unmatched "(": expected ")"`)
		}
		if len(children) == 1 {
			return children, rest[1:], reg, nil
		}
		return []pattern.Pattern{pattern.NewRequired(children...)}, rest[1:], reg, nil

	case TokenOptionalOpen:
		children, rest, reg, err := parseExpr(tokens[1:], reg)
		if err != nil {
			return nil, rest, reg, err
		}
		if len(rest) == 0 || rest[0].Kind != TokenOptionalClose {
			return nil, rest, reg, NewLanguageError(KindUnclosedGroup,
				`unmatched "[": expected "]"`)
		}
		return []pattern.Pattern{pattern.NewOptional(children...)}, rest[1:], reg, nil
	}

	text := tok.Text
	switch {
	case text == "options":
		return []pattern.Pattern{pattern.NewAnyOptions()}, tokens[1:], reg, nil

	case strings.HasPrefix(text, "--") && text != "--":
		leaf, _, reg, err := parseLong(text, nil, reg, false)
		if err != nil {
			return nil, tokens, reg, err
		}
		return []pattern.Pattern{leaf}, tokens[1:], reg, nil

	case strings.HasPrefix(text, "-") && text != "-" && text != "--":
		leaves, _, reg, err := parseShorts(text, nil, reg, false)
		if err != nil {
			return nil, tokens, reg, err
		}
		return leaves, tokens[1:], reg, nil

	case isArgumentToken(text):
		return []pattern.Pattern{pattern.NewArgument(text, pattern.NilValue())}, tokens[1:], reg, nil

	default:
		return []pattern.Pattern{pattern.NewCommand(text)}, tokens[1:], reg, nil
	}
}

// isArgumentToken reports whether a word denotes a positional argument:
// either wrapped in angle brackets or written fully upper-case.
func isArgumentToken(text string) bool {
	if strings.HasPrefix(text, "<") && strings.HasSuffix(text, ">") {
		return true
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func joinTokens(tokens []Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, tok.Text)
	}
	return strings.Join(parts, " ")
}
