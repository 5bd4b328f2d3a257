// File: usage_test.go
// Title: Usage Section Extraction Unit Tests
// Description: Tests for locating the usage block in help text and
//              reshaping it into one alternation expression.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial test suite

package parser

import (
	"testing"
)

func TestPrintableUsage(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
		kind     Kind
	}{
		{
			name:     "Single line",
			doc:      "Usage: prog <arg>",
			expected: "prog <arg>",
		},
		{
			name: "Multi-line block ends at the blank line",
			doc: `Naval Fate.

Usage:
  naval_fate ship new <name>...
  naval_fate ship shoot <x> <y>

Options:
  -h --help  Show this screen.`,
			expected: "naval_fate ship new <name>...\n  naval_fate ship shoot <x> <y>",
		},
		{
			name:     "Marker is case-insensitive",
			doc:      "uSaGe: prog go",
			expected: "prog go",
		},
		{
			name: "Blank line with trailing spaces still terminates",
			doc:  "Usage: prog run\n   \nMore text",
			// The blank-line pattern tolerates spaces and tabs.
			expected: "prog run",
		},
		{
			name: "No marker",
			doc:  "This text has no marker at all.",
			kind: KindUsageSection,
		},
		{
			name: "Two markers",
			doc:  "Usage: prog\n\nusage: prog again",
			kind: KindUsageSection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrintableUsage(tt.doc)
			if tt.kind != "" {
				if err == nil {
					t.Fatalf("Expected error, got %q", got)
				}
				if KindOf(err) != tt.kind {
					t.Errorf("Expected kind %q, got %q", tt.kind, KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("PrintableUsage failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormalUsage(t *testing.T) {
	tests := []struct {
		name     string
		usage    string
		expected string
	}{
		{
			name:     "Single invocation",
			usage:    "prog <arg>",
			expected: "( <arg> )",
		},
		{
			name:     "Program name repeats start new alternatives",
			usage:    "prog go <x>\n  prog stop",
			expected: "( go <x> ) | ( stop )",
		},
		{
			name:     "Empty usage",
			usage:    "",
			expected: "",
		},
		{
			name:     "Program name alone",
			usage:    "prog",
			expected: "( )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormalUsage(tt.usage); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
