// File: errors.go
// Title: Parse Error Definitions
// Description: Defines the tagged error values produced by all parsing
//              phases. Every failure carries a Kind from a closed set and a
//              user/language classification, so callers can distinguish
//              failure modes without matching message text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial error model

package parser

import (
	"errors"
	"fmt"
)

// Kind classifies a parse failure
type Kind string

const (
	// KindUsageSection reports a missing or duplicated "usage:" header
	KindUsageSection Kind = "USAGE_SECTION"

	// KindOptionSyntax reports an option line or token that cannot be
	// decomposed into short form, long form and arity
	KindOptionSyntax Kind = "OPTION_SYNTAX"

	// KindUnexpectedArgument reports a value supplied to a boolean option
	KindUnexpectedArgument Kind = "UNEXPECTED_ARGUMENT"

	// KindMissingArgument reports an argument-taking option at end of input
	KindMissingArgument Kind = "MISSING_ARGUMENT"

	// KindUnclosedGroup reports a "(" or "[" without its matching closer
	KindUnclosedGroup Kind = "UNCLOSED_GROUP"

	// KindAmbiguousOption reports a long-option prefix matching more than
	// one known option
	KindAmbiguousOption Kind = "AMBIGUOUS_OPTION"

	// KindUnconsumedInput reports tokens left over after the grammar or the
	// matcher has finished
	KindUnconsumedInput Kind = "UNCONSUMED_INPUT"
)

// String returns the string representation of the error kind
func (k Kind) String() string {
	return string(k)
}

// Error is a tagged parse failure. Failures abort the parse; none are
// retried or partially recovered.
type Error struct {
	Kind    Kind   // Failure classification
	Message string // Human-readable description
	User    bool   // True for argv-side failures, false for usage-text defects
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// NewLanguageError creates an error reporting a defect in the usage text
// itself; the tool author has to fix the document.
func NewLanguageError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewUserError creates an error reporting invalid runtime arguments; the
// invoking user has to fix the command line.
func NewUserError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), User: true}
}

// modeError creates a user or language error depending on the parsing mode.
// The long- and short-option resolvers run in both grammar and argv mode
// and classify their failures by it.
func modeError(argvMode bool, kind Kind, format string, args ...interface{}) *Error {
	if argvMode {
		return NewUserError(kind, format, args...)
	}
	return NewLanguageError(kind, format, args...)
}

// KindOf returns the kind of a parse error, or the empty kind for foreign
// errors.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return ""
}

// IsUserError returns true if the error reports invalid runtime arguments
// rather than a defect in the usage text.
func IsUserError(err error) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.User
}
