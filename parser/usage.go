// File: usage.go
// Title: Usage Section Extraction
// Description: Locates the "Usage:" block in help text and reshapes its
//              program-invocation lines into a single alternation
//              expression the grammar parser consumes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial usage extraction

package parser

import (
	"regexp"
	"strings"
)

var (
	usageMarkerPattern = regexp.MustCompile(`(?i)usage:`)
	blankLinePattern   = regexp.MustCompile(`\n[ \t]*\n`)
)

// PrintableUsage returns the usage block of a help text: the text between
// the case-insensitive "usage:" marker and the next blank line, trimmed.
// Exactly one marker is required; zero or multiple markers fail.
func PrintableUsage(doc string) (string, error) {
	markers := usageMarkerPattern.FindAllStringIndex(doc, -1)
	if len(markers) == 0 {
		return "", NewLanguageError(KindUsageSection,
			`"usage:" (case-insensitive) not found`)
	}
	if len(markers) > 1 {
		return "", NewLanguageError(KindUsageSection,
			`more than one "usage:" section found`)
	}

	block := blankLinePattern.Split(doc[markers[0][1]:], 2)[0]
	return strings.TrimSpace(block), nil
}

// FormalUsage reshapes a usage block into one alternation expression. The
// first word is the program name; every further occurrence of it starts a
// new alternative invocation. Each invocation is parenthesized and the
// invocations are joined with "|".
func FormalUsage(usage string) string {
	words := strings.Fields(usage)
	if len(words) == 0 {
		return ""
	}
	program := words[0]

	parts := []string{"("}
	for _, word := range words[1:] {
		if word == program {
			parts = append(parts, ") | (")
		} else {
			parts = append(parts, word)
		}
	}
	parts = append(parts, ")")
	return strings.Join(parts, " ")
}
