// File: value_test.go
// Title: Value Coercion Unit Tests
// Description: Tests for typed value construction, coercion of raw text
//              and extraction of [default: X] annotations.
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
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Value
	}{
		{
			name:     "Plain integer",
			input:    "42",
			expected: IntValue(42),
		},
		{
			name:     "Zero",
			input:    "0",
			expected: IntValue(0),
		},
		{
			name:     "Float",
			input:    "2.95",
			expected: DoubleValue(2.95),
		},
		{
			name:     "Signed float",
			input:    "-1.5",
			expected: DoubleValue(-1.5),
		},
		{
			name:     "Scientific notation",
			input:    "1e3",
			expected: DoubleValue(1000),
		},
		{
			name:     "Boolean true, case-insensitive",
			input:    "True",
			expected: BooleanValue(true),
		},
		{
			name:     "Boolean false",
			input:    "false",
			expected: BooleanValue(false),
		},
		{
			name:     "Plain word",
			input:    "Guardian",
			expected: StringValue("Guardian"),
		},
		{
			name:     "Leading zeros still integer",
			input:    "007",
			expected: IntValue(7),
		},
		{
			name:     "Negative integer coerces as float",
			input:    "-3",
			expected: DoubleValue(-3),
		},
		{
			name:     "Empty text",
			input:    "",
			expected: StringValue(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseValue(tt.input)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseValue(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseDefault(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple default",
			input:    "Speed in knots [default: 10].",
			expected: "10",
		},
		{
			name:     "Case-insensitive label",
			input:    "The K coefficient [DEFAULT: 2.95]",
			expected: "2.95",
		},
		{
			name:     "Multi-word default",
			input:    "Search paths [default: ./here ./there]",
			expected: "./here ./there",
		},
		{
			name:     "No annotation",
			input:    "Show this screen.",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDefault(tt.input)
			if got.Type != ValueTypeString {
				t.Fatalf("Expected string value, got %s", got.Type)
			}
			if got.GetStringValue() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got.GetStringValue())
			}
		})
	}
}

func TestValue_IsTruthy(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected bool
	}{
		{"Nil", NilValue(), false},
		{"False boolean", BooleanValue(false), false},
		{"True boolean", BooleanValue(true), true},
		{"Zero counter", IntValue(0), false},
		{"Positive counter", IntValue(3), true},
		{"Empty string", StringValue(""), false},
		{"Non-empty string", StringValue("x"), true},
		{"Empty list", ListValue(), false},
		{"Non-empty list", ListValue("a"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.IsTruthy(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	if s := IntValue(7).GetStringValue(); s != "7" {
		t.Errorf("Expected \"7\", got %q", s)
	}
	if s := ListValue("a", "b").GetStringValue(); s != "a b" {
		t.Errorf("Expected \"a b\", got %q", s)
	}
	if _, ok := StringValue("x").GetIntValue(); ok {
		t.Errorf("Expected string value to refuse integer access")
	}
	if list, ok := ListValue("a").GetListValue(); !ok || len(list) != 1 {
		t.Errorf("Expected one-element list, got %v (ok=%v)", list, ok)
	}
	if IntValue(1).Interface() != 1 {
		t.Errorf("Expected native int 1")
	}
	if NilValue().Interface() != nil {
		t.Errorf("Expected native nil")
	}
}
