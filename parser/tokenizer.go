// File: tokenizer.go
// Title: Usage Text Tokenizer
// Description: Splits usage-grammar source text into classified tokens.
//              Grammar delimiters are padded with spaces so they tokenize
//              as standalone units; every token carries one of a closed set
//              of kinds so the grammar parser never inspects raw text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial tokenizer implementation

package parser

import (
	"regexp"
	"strings"
)

// TokenKind classifies a usage-grammar token
type TokenKind int

const (
	// TokenWord is any token that is not a grammar delimiter
	TokenWord TokenKind = iota

	// TokenGroupOpen is the required-group opener "("
	TokenGroupOpen

	// TokenGroupClose is the required-group closer ")"
	TokenGroupClose

	// TokenOptionalOpen is the optional-group opener "["
	TokenOptionalOpen

	// TokenOptionalClose is the optional-group closer "]"
	TokenOptionalClose

	// TokenPipe is the alternation separator "|"
	TokenPipe

	// TokenEllipsis is the repetition marker "..."
	TokenEllipsis
)

// String returns the string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenGroupOpen:
		return "group-open"
	case TokenGroupClose:
		return "group-close"
	case TokenOptionalOpen:
		return "optional-open"
	case TokenOptionalClose:
		return "optional-close"
	case TokenPipe:
		return "pipe"
	case TokenEllipsis:
		return "ellipsis"
	default:
		return "unknown"
	}
}

// Token is one whitespace-delimited unit of usage-grammar source. Tokens
// are produced once and never re-split.
type Token struct {
	Kind TokenKind // Classification from the closed kind set
	Text string    // The token text, verbatim
}

// delimiterPattern matches the grammar delimiters that must tokenize as
// standalone units even when written without surrounding spaces.
var delimiterPattern = regexp.MustCompile(`([\[\]()|]|\.\.\.)`)

// Tokenize splits usage-grammar source into classified tokens. Delimiters
// are first padded with single spaces, then the source is split on runs of
// whitespace with empty tokens dropped. Order is preserved.
func Tokenize(source string) []Token {
	padded := delimiterPattern.ReplaceAllString(source, " $1 ")

	var tokens []Token
	for _, text := range strings.Fields(padded) {
		tokens = append(tokens, Token{Kind: classify(text), Text: text})
	}
	return tokens
}

// SplitArgv splits a raw argument string on whitespace. Argument-vector
// tokens carry no grammar delimiters and are never re-split internally.
func SplitArgv(source string) []string {
	return strings.Fields(source)
}

func classify(text string) TokenKind {
	switch text {
	case "(":
		return TokenGroupOpen
	case ")":
		return TokenGroupClose
	case "[":
		return TokenOptionalOpen
	case "]":
		return TokenOptionalClose
	case "|":
		return TokenPipe
	case "...":
		return TokenEllipsis
	default:
		return TokenWord
	}
}
